package osutil

import (
	"io"

	"github.com/spf13/afero"
)

// CopyFile copies a file from src to dst on the given filesystem, carrying
// the source's file mode over to the destination.
func CopyFile(fs afero.Fs, src string, dst string) (err error) {
	s, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		e := s.Close()
		if err == nil {
			err = e
		}
	}()

	d, err := fs.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		e := d.Close()
		if err == nil {
			err = e
		}
	}()

	if _, err = io.Copy(d, s); err != nil {
		return err
	}

	i, err := fs.Stat(src)
	if err != nil {
		return err
	}

	return fs.Chmod(dst, i.Mode())
}
