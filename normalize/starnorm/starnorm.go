// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package starnorm implements a [codeblock.Normalizer] scripted in Starlark.
//
// A script must define a function named normalize that takes a line and
// returns it normalized:
//
//	def normalize(line):
//	    return html_text(line).replace("final ", "")
//
// The following builtins are available to scripts in addition to the
// Starlark universe:
//
//   - html_text(s): converts an HTML fragment to plain text, like the
//     default normalizer does.
package starnorm

import (
	"fmt"

	"go.astrophena.name/docfmt/codeblock"
	"go.astrophena.name/docfmt/internal/logger"
	"go.astrophena.name/docfmt/normalize/htmltext"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// FuncName is the name of the function a script has to define.
const FuncName = "normalize"

// Normalizer calls the normalize function of a Starlark script.
// It is safe for concurrent use.
type Normalizer struct {
	filename string
	fn       starlark.Callable
	logf     logger.Logf
}

var _ codeblock.Normalizer = (*Normalizer)(nil)

// ResultError is returned when the normalize function returns something other
// than a string.
type ResultError struct {
	Line string
	Type string
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("%s must return a string, got %s for %q", FuncName, e.Type, e.Line)
}

// Load executes the script and returns a Normalizer calling its normalize
// function. src may be anything [starlark.ExecFileOptions] accepts; if it is
// nil, the script is read from filename. Output of print goes to logf.
func Load(filename string, src any, logf logger.Logf) (*Normalizer, error) {
	n := &Normalizer{filename: filename, logf: logf}

	globals, err := starlark.ExecFileOptions(
		&syntax.FileOptions{},
		n.thread("load"),
		filename,
		src,
		starlark.StringDict{
			"html_text": starlark.NewBuiltin("html_text", htmlTextBuiltin),
		},
	)
	if err != nil {
		return nil, err
	}
	globals.Freeze()

	fn, ok := globals[FuncName].(starlark.Callable)
	if !ok {
		return nil, fmt.Errorf("%s: %s must be defined and be a function", filename, FuncName)
	}
	n.fn = fn

	return n, nil
}

// Normalize implements [codeblock.Normalizer].
func (n *Normalizer) Normalize(line string) (string, error) {
	v, err := starlark.Call(n.thread(FuncName), n.fn, starlark.Tuple{starlark.String(line)}, nil)
	if err != nil {
		return "", err
	}
	s, ok := v.(starlark.String)
	if !ok {
		return "", &ResultError{Line: line, Type: v.Type()}
	}
	return s.GoString(), nil
}

func (n *Normalizer) thread(name string) *starlark.Thread {
	return &starlark.Thread{
		Name: n.filename + ":" + name,
		Print: func(_ *starlark.Thread, msg string) {
			if n.logf != nil {
				n.logf("%s: %s", n.filename, msg)
			}
		},
	}
}

// html_text Starlark function.
func htmlTextBuiltin(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var s string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "s", &s); err != nil {
		return nil, err
	}
	text, err := htmltext.ToText(s)
	if err != nil {
		return nil, err
	}
	return starlark.String(text), nil
}
