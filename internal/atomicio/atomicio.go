// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package atomicio provides atomic file writing.
package atomicio

import (
	"io/fs"
	"os"
	"path/filepath"
)

// WriteFile writes data to a file atomically: readers see either the old
// contents or the new ones, never a partial write. The file gets perm
// permission bits.
func WriteFile(name string, data []byte, perm fs.FileMode) (err error) {
	// Create a temporary file in the same directory to ensure that it's on the
	// same filesystem, which is a requirement for an atomic os.Rename.
	f, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".tmp")
	if err != nil {
		return err
	}
	defer func() {
		// Clean up the temporary file if something goes wrong.
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if _, err := f.Write(data); err != nil {
		return err
	}
	if err := f.Chmod(perm); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(f.Name(), name)
}
