// Package fsx provides file system helpers for writing output files.
package fsx

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// WriteFileAtomic writes data to dir/name through a temp file in the same
// directory followed by a rename, replacing any existing file. Readers see
// either the old content or the complete new content.
func WriteFileAtomic(dir, name string, data []byte) error {
	return writeFileAtomic(dir, name, data, 0o644)
}

func writeFileAtomic(dir, name string, data []byte, perm os.FileMode) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	dst := filepath.Join(dir, name)

	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		return fmt.Errorf("output path %q is a directory", dst)
	}

	tmp, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
	}()

	if err := writeAll(tmp, data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmp.Chmod(perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, dst); err != nil {
		return fmt.Errorf("failed to replace %s: %w", dst, err)
	}

	_ = syncDirBestEffort(dir)

	return nil
}

func writeAll(w io.Writer, b []byte) error {
	for len(b) > 0 {
		n, err := w.Write(b)
		if err != nil {
			return err
		}

		b = b[n:]
	}

	return nil
}

func syncDirBestEffort(dir string) error {
	// Directory sync is not supported on Windows.
	if runtime.GOOS == "windows" {
		return nil
	}

	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()

	return f.Sync()
}
