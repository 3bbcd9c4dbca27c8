// Package hashutil computes content checksums for published files.
package hashutil

import (
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/laurenhamel/plugin-node-tab/pkg/types"
)

// FileChecksum streams path from fsys and returns its SHA256 checksum
func FileChecksum(fsys types.FS, path string) (string, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}

	return format(hash.Sum(nil)), nil
}

// Checksum returns the SHA256 checksum of data
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return format(sum[:])
}

func format(sum []byte) string {
	return fmt.Sprintf("sha256:%x", sum)
}
