package governance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateOutboundURLRejectsForbiddenRanges(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"cloud metadata endpoint", "http://169.254.169.254/metadata"},
		{"loopback", "http://127.0.0.1:8080/"},
		{"private 10/8", "http://10.0.0.5/admin"},
		{"private 192.168/16", "https://192.168.1.1/"},
		{"unspecified", "http://0.0.0.0/"},
		{"non-http scheme", "ftp://example.com/file"},
		{"empty host", "http:///path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateOutboundURL(tt.url))
		})
	}
}

func TestValidateOutboundURLAllowsPublicIP(t *testing.T) {
	// Literal public addresses pass without DNS.
	assert.NoError(t, ValidateOutboundURL("https://93.184.216.34/"))
}
