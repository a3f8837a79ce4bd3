package ciutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const goModFile = "go.mod"

// maxTraversal bounds the upward search for go.mod.
const maxTraversal = 10

// ErrProjectRootNotFound is returned when no go.mod is found above the
// working directory.
var ErrProjectRootNotFound = errors.New("unable to find project root")

// FindProjectRoot returns the directory holding go.mod. BLOOM_PROJECT_ROOT
// overrides the search.
func FindProjectRoot() (string, error) {
	if root := os.Getenv(EnvProjectRoot); root != "" {
		if !fileExists(filepath.Join(root, goModFile)) {
			return "", fmt.Errorf("%s=%s has no %s", EnvProjectRoot, root, goModFile)
		}
		return root, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return findUpward(dir)
}

// ProjectPath joins elem onto the project root.
func ProjectPath(elem ...string) (string, error) {
	root, err := FindProjectRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(append([]string{root}, elem...)...), nil
}

func findUpward(dir string) (string, error) {
	for i := 0; i < maxTraversal; i++ {
		if fileExists(filepath.Join(dir, goModFile)) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ErrProjectRootNotFound
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
