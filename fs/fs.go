// Package fs resolves build inputs and writes build outputs on the local
// filesystem.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile atomically writes data to path, creating parent directories as
// needed. The data goes to a uniquely named temp file in the same directory
// which is then renamed over path, so concurrent writers never share a temp
// file and existing files next to path are left alone.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	f, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmp := f.Name()
	if err := writeAndClose(f, data); err != nil {
		os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp) // best-effort cleanup
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func writeAndClose(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	// CreateTemp opens with 0600.
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// OutputPath maps a source file under root to its HTML output path. With an
// empty outDir the output sits next to the source; otherwise it keeps the
// source's path relative to root inside outDir.
func OutputPath(root, src, outDir string) (string, error) {
	rel := src
	if outDir != "" {
		r, err := filepath.Rel(root, src)
		if err != nil {
			return "", fmt.Errorf("relative path: %w", err)
		}
		rel = filepath.Join(outDir, r)
	}
	return rel[:len(rel)-len(filepath.Ext(rel))] + ".html", nil
}
