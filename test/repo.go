package test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestRepo is a temporary data directory for a single test.
type TestRepo struct {
	Directory string
}

// NewTestRepo creates an empty data directory which is removed when the test finishes.
func NewTestRepo(t *testing.T) *TestRepo {
	normalizedName := strings.ReplaceAll(t.Name(), "/", "_")
	dir, err := ioutil.TempDir("", normalizedName)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.RemoveAll(dir)
	})
	return &TestRepo{Directory: dir}
}

// WriteFile writes a file relative to the repo directory, creating parent directories as needed.
func (r TestRepo) WriteFile(t *testing.T, file string, data string) string {
	target := filepath.Join(r.Directory, file)
	if err := os.MkdirAll(filepath.Dir(target), os.ModePerm); err != nil {
		t.Fatal(err)
	}
	if err := ioutil.WriteFile(target, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return target
}

// ReadFile reads a file relative to the repo directory, failing the test when it can't be read.
func (r TestRepo) ReadFile(t *testing.T, file string) string {
	data, err := ioutil.ReadFile(filepath.Join(r.Directory, file))
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
