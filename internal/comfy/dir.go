// Package comfy knows the on-disk layout of a ComfyUI installation: the
// custom_nodes directory nodes are installed into and the manifest file
// autonode maintains inside it.
package comfy

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DirName is the required base name of the target directory.
	DirName = "custom_nodes"

	// MarkerFile must exist in the parent of the target directory for it
	// to count as a ComfyUI installation.
	MarkerFile = "main.py"

	// ManifestName is the repository list written into the target directory.
	ManifestName = "comfy-repos.txt"

	// RequirementsName is the per-node dependency manifest processed by pip.
	RequirementsName = "requirements.txt"
)

// Validation errors, from most to least specific check.
var (
	ErrNotFound        = errors.New("path does not exist")
	ErrNotADirectory   = errors.New("path is not a directory")
	ErrWrongName       = errors.New("directory must be named " + DirName)
	ErrNotComfyInstall = errors.New("not a ComfyUI installation (" + MarkerFile + " not found in parent directory)")
)

// Dir is a validated custom_nodes directory.
type Dir struct {
	Path string
}

// ValidateDir checks that path is a usable custom_nodes directory.
// The checks run in order and stop at the first failure so the error names
// the most specific problem: existence, directory, base name, parent marker.
func ValidateDir(path string) (Dir, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return Dir{}, fmt.Errorf("resolve path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Dir{}, fmt.Errorf("%s: %w", abs, ErrNotFound)
		}
		return Dir{}, fmt.Errorf("stat %s: %w", abs, err)
	}

	if !info.IsDir() {
		return Dir{}, fmt.Errorf("%s: %w", abs, ErrNotADirectory)
	}

	if filepath.Base(abs) != DirName {
		return Dir{}, fmt.Errorf("%s: %w", abs, ErrWrongName)
	}

	marker := filepath.Join(filepath.Dir(abs), MarkerFile)
	if _, err := os.Stat(marker); err != nil {
		return Dir{}, fmt.Errorf("%s: %w", abs, ErrNotComfyInstall)
	}

	return Dir{Path: abs}, nil
}

// ManifestPath returns the path of the repository manifest inside the dir.
func (d Dir) ManifestPath() string {
	return filepath.Join(d.Path, ManifestName)
}

// NodePath returns the path a node with the given name is cloned into.
func (d Dir) NodePath(name string) string {
	return filepath.Join(d.Path, name)
}
