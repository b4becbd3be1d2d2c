package fingerprint

import (
	"crypto/sha256"
	"fmt"
	"io/ioutil"
	"os"
)

// SHA256 returns the hex encoded SHA-256 digest of data.
func SHA256(data []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(data))
}

// File returns the digest of the file at path. A missing file yields an
// empty fingerprint and no error.
func File(path string) (string, error) {
	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return SHA256(data), nil
}

// Unchanged reports whether the file at path already holds exactly data.
func Unchanged(path string, data []byte) (bool, error) {
	current, err := File(path)
	if err != nil || current == "" {
		return false, err
	}
	return current == SHA256(data), nil
}
