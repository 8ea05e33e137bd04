package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		in   string
		want string
	}{
		{
			name: "braced variable",
			env:  map[string]string{"HOST": "example.com"},
			in:   "url: https://${HOST}:443",
			want: "url: https://example.com:443",
		},
		{
			name: "bare variable",
			env:  map[string]string{"WORKSPACE_DIR": "/srv/work"},
			in:   "dir: $WORKSPACE_DIR",
			want: "dir: /srv/work",
		},
		{
			name: "multiple variables",
			env:  map[string]string{"A": "1", "B": "2"},
			in:   "${A}-${B}",
			want: "1-2",
		},
		{
			name: "missing variable expands empty",
			in:   "key: ${DEFINITELY_NOT_SET_XYZ}",
			want: "key: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			got := ExpandEnv([]byte(tt.in))
			assert.Equal(t, tt.want, string(got))
		})
	}
}
