package filesystem

import (
	"io"
	"path/filepath"

	"github.com/laurenhamel/plugin-node-tab/pkg/errors"
	"github.com/laurenhamel/plugin-node-tab/pkg/types"
)

const (
	// DirPerm is the mode used for directories created while publishing
	DirPerm = 0755

	// FilePerm is the mode used for published files
	FilePerm = 0644
)

// IsRegularFile reports whether name exists in fsys and is a regular file.
// Any stat failure counts as absent.
func IsRegularFile(fsys types.FS, name string) bool {
	info, err := fsys.Stat(name)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// CopyFile streams src from srcFS into dst on dstFS, creating parent
// directories and truncating any existing content at dst. The copy is not
// atomic.
func CopyFile(srcFS types.FS, src string, dstFS types.FS, dst string) (int64, error) {
	in, err := srcFS.Open(src)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileRead, "failed to open %s", src)
	}
	defer func() { _ = in.Close() }()

	if err := dstFS.MkdirAll(filepath.Dir(dst), DirPerm); err != nil {
		return 0, errors.Wrapf(err, errors.ErrDirCreate, "failed to create parent of %s", dst)
	}

	out, err := dstFS.Create(dst)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", dst)
	}

	n, err := io.Copy(out, in)
	if err != nil {
		_ = out.Close()
		return n, errors.Wrapf(err, errors.ErrFileCopy, "failed to copy %s to %s", src, dst)
	}
	if err := out.Close(); err != nil {
		return n, errors.Wrapf(err, errors.ErrFileWrite, "failed to close %s", dst)
	}
	return n, nil
}

// OutputFile writes data to name, creating parent directories first.
func OutputFile(fsys types.FS, name string, data []byte) error {
	if err := fsys.MkdirAll(filepath.Dir(name), DirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create parent of %s", name)
	}
	if err := fsys.WriteFile(name, data, FilePerm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", name)
	}
	return nil
}
