// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package cli

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"
	"testing"

	"go.astrophena.name/docfmt/internal/testutil"
)

func TestExtractDocComment(t *testing.T) {
	t.Parallel()

	src := []byte(`// Copyright header.

/*
Docfmt formats things.

	$ docfmt
*/
package main

/*
Ignored.
*/
`)
	testutil.AssertEqual(t, extractDocComment(src), "Docfmt formats things.\n\n\t$ docfmt\n")
	testutil.AssertEqual(t, extractDocComment([]byte("package main\n")), "")
}

func TestIsPrintableError(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		err  error
		want bool
	}{
		"plain":           {err: errors.New("boom"), want: true},
		"invalid args":    {err: fmt.Errorf("%w: no", ErrInvalidArgs), want: true},
		"help":            {err: flag.ErrHelp, want: false},
		"version":         {err: ErrExitVersion, want: false},
		"wrapped version": {err: fmt.Errorf("x: %w", ErrExitVersion), want: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, isPrintableError(tc.err), tc.want)
		})
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	env := &Env{
		Args:   []string{"a", "b"},
		Getenv: func(string) string { return "" },
		Stdin:  strings.NewReader(""),
		Stdout: &stdout,
		Stderr: &stderr,
	}

	var gotArgs []string
	err := Run(WithEnv(context.Background(), env), AppFunc(func(ctx context.Context) error {
		env := GetEnv(ctx)
		gotArgs = env.Args
		env.Logf("hello %s", "log")
		return nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, gotArgs, []string{"a", "b"})
	testutil.AssertEqual(t, stderr.String(), "hello log\n")

	stderr.Reset()
	env.Args = []string{"-version"}
	err = Run(WithEnv(context.Background(), env), AppFunc(func(context.Context) error { return nil }))
	if !errors.Is(err, ErrExitVersion) {
		t.Fatalf("want ErrExitVersion, got %v", err)
	}

	env.Args = []string{"-nope"}
	err = Run(WithEnv(context.Background(), env), AppFunc(func(context.Context) error { return nil }))
	if err == nil || isPrintableError(err) {
		t.Fatalf("want unprintable flag error, got %v", err)
	}
}
