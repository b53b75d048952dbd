package internal

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type NameChecker func(filename string) bool

func HasSuffixNameChecker(suffix string) NameChecker {
	return func(filename string) bool {
		return strings.HasSuffix(filename, suffix)
	}
}

func ContainsNameChecker(substring string) NameChecker {
	return func(filename string) bool {
		return strings.Contains(filename, substring)
	}
}

func CalculateDirSize(dirPath string) (int64, error) {
	var totalSize int64

	err := filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		var linfo os.FileInfo

		if linfo, err = os.Lstat(path); err != nil {
			return err
		}

		if linfo.Mode()&os.ModeSymlink != 0 {
			// It's a symlink; ignore it.
			return nil
		}

		if !info.IsDir() {
			totalSize += info.Size()
		}

		return nil
	})

	return totalSize, err
}

// CopyTree recursively copies the directory at src to dst, which must not
// already exist. Special files (sockets, devices, symlinks) are skipped.
func CopyTree(src string, dst string) error {
	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("destination already exists: %s", dst)
	}

	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(src, path)

		if err != nil {
			return err
		}

		target := filepath.Join(dst, rel)

		if info.IsDir() {
			return os.MkdirAll(target, info.Mode().Perm())
		}

		if info.Mode().Type() != 0 {
			// Skip special files.
			return nil
		}

		return CopyFileContents(path, target, info.Mode().Perm())
	})
}

// CopyFileContents copies a single regular file from src to dst with the
// given permissions.
func CopyFileContents(src string, dst string, mode os.FileMode) error {
	in, err := os.Open(src)

	if err != nil {
		return err
	}

	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)

	if err != nil {
		return err
	}

	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}

	return out.Close()
}
