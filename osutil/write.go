package osutil

import (
	"os"

	"github.com/spf13/afero"
)

// WriteFile replaces the contents of path in place. An existing file keeps
// its mode; a fresh one is created with 0644.
func WriteFile(fs afero.Fs, path string, data []byte) (err error) {
	f, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if err == nil {
			err = e
		}
	}()

	_, err = f.Write(data)

	return err
}
