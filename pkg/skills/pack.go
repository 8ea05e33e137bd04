package skills

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// PackManifest is the pack.yaml file at the root of a pack directory.
type PackManifest struct {
	Name        string   `yaml:"name"`
	Version     string   `yaml:"version"`
	Description string   `yaml:"description,omitempty"`
	Skills      []string `yaml:"skills,omitempty"` // skill file names, relative
}

// Pack is a loaded, checksummed skill bundle.
type Pack struct {
	Manifest PackManifest
	Dir      string
	Checksum string // content hash, stable across traversal order
}

// PackRegistry stores loaded packs keyed by name.
type PackRegistry struct {
	mu     sync.RWMutex
	byName map[string]*Pack
}

// NewPackRegistry creates an empty pack registry.
func NewPackRegistry() *PackRegistry {
	return &PackRegistry{byName: make(map[string]*Pack)}
}

// LoadPack reads a pack directory: parses pack.yaml, computes the content
// checksum, registers the pack, and registers its skills into skillReg.
func (r *PackRegistry) LoadPack(dir string, skillReg *Registry) (*Pack, error) {
	manifestPath := filepath.Join(dir, "pack.yaml")
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("skills: failed to read pack manifest: %w", err)
	}

	var manifest PackManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("skills: invalid pack manifest: %w", err)
	}
	if manifest.Name == "" {
		return nil, fmt.Errorf("skills: pack manifest missing name")
	}

	checksum, err := ComputePackChecksum(dir)
	if err != nil {
		return nil, err
	}

	pack := &Pack{Manifest: manifest, Dir: dir, Checksum: checksum}

	for _, skillFile := range manifest.Skills {
		content, err := os.ReadFile(filepath.Join(dir, skillFile))
		if err != nil {
			return nil, fmt.Errorf("skills: failed to read skill %q: %w", skillFile, err)
		}
		name := strings.TrimSuffix(filepath.Base(skillFile), filepath.Ext(skillFile))
		if err := skillReg.Register(&Skill{
			Name:    name,
			Content: string(content),
			Pack:    manifest.Name,
		}); err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	r.byName[manifest.Name] = pack
	r.mu.Unlock()

	return pack, nil
}

// Get returns a borrowed reference to the named pack.
func (r *PackRegistry) Get(name string) (*Pack, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.byName[name]
	return p, ok
}

// List returns all packs sorted by name.
func (r *PackRegistry) List() []*Pack {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Pack, 0, len(r.byName))
	for _, p := range r.byName {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Manifest.Name < out[j].Manifest.Name })
	return out
}

// ComputePackChecksum hashes a pack directory's contents. File paths are
// collected first and sorted, so the same contents produce the same hash
// regardless of filesystem traversal order. Each file contributes its
// slash-separated relative path, a NUL, its contents, and a NUL, to keep
// renames and content moves from colliding.
func ComputePackChecksum(dir string) (string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("skills: failed to walk pack dir: %w", err)
	}
	sort.Strings(paths)

	h := sha256.New()
	for _, rel := range paths {
		h.Write([]byte(rel))
		h.Write([]byte{0})
		f, err := os.Open(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			return "", fmt.Errorf("skills: failed to open %q: %w", rel, err)
		}
		if _, err := io.Copy(h, f); err != nil {
			_ = f.Close()
			return "", fmt.Errorf("skills: failed to hash %q: %w", rel, err)
		}
		_ = f.Close()
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
