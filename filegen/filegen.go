package filegen

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// WriteAtomic writes data to a temporary file next to outputFilePath and
// renames it into place, so readers never observe a partial file.
func WriteAtomic(outputFilePath string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(outputFilePath)

	if _, err := os.Stat(dir); err != nil && os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "error creating directory %s", dir)
		}
	}

	tmp, err := ioutil.TempFile(dir, "."+filepath.Base(outputFilePath)+".*")
	if err != nil {
		return errors.Wrapf(err, "error creating temporary file in %s", dir)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "error writing %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "error closing %s", tmpName)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return errors.Wrapf(err, "error setting mode on %s", tmpName)
	}
	if err := os.Rename(tmpName, outputFilePath); err != nil {
		return errors.Wrapf(err, "error moving %s into place", outputFilePath)
	}
	return nil
}
