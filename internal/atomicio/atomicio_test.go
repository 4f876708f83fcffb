// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package atomicio

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"go.astrophena.name/docfmt/internal/testutil"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("new file", func(t *testing.T) {
		t.Parallel()
		file := filepath.Join(t.TempDir(), "test.txt")

		if err := WriteFile(file, []byte("hello"), 0o644); err != nil {
			t.Fatal(err)
		}
		got, err := os.ReadFile(file)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, string(got), "hello")
	})

	t.Run("overwrite keeps no temporary files", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		file := filepath.Join(dir, "test.txt")

		if err := WriteFile(file, []byte("hello"), 0o644); err != nil {
			t.Fatal(err)
		}
		if err := WriteFile(file, []byte("world"), 0o600); err != nil {
			t.Fatal(err)
		}

		got, err := os.ReadFile(file)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, string(got), "world")

		fi, err := os.Stat(file)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, fi.Mode().Perm(), fs.FileMode(0o600))

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, len(entries), 1)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		file := filepath.Join(t.TempDir(), "nope", "test.txt")
		if err := WriteFile(file, []byte("x"), 0o644); err == nil {
			t.Fatal("want error")
		}
	})
}
