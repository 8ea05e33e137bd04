package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePack(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return dir
}

func TestComputePackChecksumStable(t *testing.T) {
	files := map[string]string{
		"pack.yaml":         "name: review-pack\nversion: 1.0.0\n",
		"skills/triage.md":  "triage the finding",
		"skills/verify.md":  "verify before reporting",
		"nested/deep/x.txt": "x",
	}
	dir := writePack(t, files)

	first, err := ComputePackChecksum(dir)
	require.NoError(t, err)

	// Same contents in a different directory hash identically.
	other := writePack(t, files)
	second, err := ComputePackChecksum(other)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Changing any file changes the hash.
	require.NoError(t, os.WriteFile(filepath.Join(other, "skills", "triage.md"), []byte("changed"), 0o644))
	third, err := ComputePackChecksum(other)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestComputePackChecksumPathSensitive(t *testing.T) {
	a := writePack(t, map[string]string{"a.txt": "same"})
	b := writePack(t, map[string]string{"b.txt": "same"})

	ha, err := ComputePackChecksum(a)
	require.NoError(t, err)
	hb, err := ComputePackChecksum(b)
	require.NoError(t, err)
	assert.NotEqual(t, ha, hb, "renames must change the hash")
}

func TestLoadPack(t *testing.T) {
	dir := writePack(t, map[string]string{
		"pack.yaml": `
name: review-pack
version: 1.2.0
skills:
  - skills/triage.md
  - skills/verify.md
`,
		"skills/triage.md": "triage the finding",
		"skills/verify.md": "verify before reporting",
	})

	skillReg := NewRegistry()
	packReg := NewPackRegistry()

	pack, err := packReg.LoadPack(dir, skillReg)
	require.NoError(t, err)
	assert.Equal(t, "review-pack", pack.Manifest.Name)
	assert.NotEmpty(t, pack.Checksum)

	s, ok := skillReg.Get("triage")
	require.True(t, ok)
	assert.Equal(t, "review-pack", s.Pack)
	assert.Equal(t, "triage the finding", s.Content)

	assert.Len(t, skillReg.ListByPack("review-pack"), 2)

	got, ok := packReg.Get("review-pack")
	require.True(t, ok)
	assert.Equal(t, pack.Checksum, got.Checksum)
}

func TestLoadPackMissingManifest(t *testing.T) {
	dir := t.TempDir()
	_, err := NewPackRegistry().LoadPack(dir, NewRegistry())
	assert.Error(t, err)
}
