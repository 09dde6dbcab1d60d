package osutil

import (
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

var fs = afero.NewMemMapFs()

func TestCopyFile(t *testing.T) {
	src := "src.go"
	dst := "dst.go"

	err := afero.WriteFile(fs, src, []byte("package main\n"), 0755)
	assert.Nil(t, err)

	err = CopyFile(fs, src, dst)
	assert.Nil(t, err)

	s, err := afero.ReadFile(fs, src)
	assert.Nil(t, err)

	d, err := afero.ReadFile(fs, dst)
	assert.Nil(t, err)

	assert.Equal(t, s, d)
}

func TestWriteFile(t *testing.T) {
	path := "rewrite.go"

	err := afero.WriteFile(fs, path, []byte("before"), 0600)
	assert.Nil(t, err)

	err = WriteFile(fs, path, []byte("after"))
	assert.Nil(t, err)

	d, err := afero.ReadFile(fs, path)
	assert.Nil(t, err)
	assert.Equal(t, []byte("after"), d)

	i, err := fs.Stat(path)
	assert.Nil(t, err)
	assert.Equal(t, os.FileMode(0600), i.Mode().Perm())
}

func TestWriteFileCreates(t *testing.T) {
	path := "fresh.go"

	err := WriteFile(fs, path, []byte("package fresh\n"))
	assert.Nil(t, err)

	d, err := afero.ReadFile(fs, path)
	assert.Nil(t, err)
	assert.Equal(t, []byte("package fresh\n"), d)
}
