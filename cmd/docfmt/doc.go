// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Docfmt converts code markup in documentation comments to a lightweight
markup: <code> spans become backticks and multi-line <code> or <pre> blocks
become listings delimited by "----" lines.

# Usage

	$ docfmt [flags...] [file...]

Without files, docfmt reads standard input and writes the result to standard
output. With -w, every file is rewritten in place.

# Normalizers

Lines inside a code block are passed through a normalizer before being
written. The -normalizer flag selects it:

  - html (default): drops HTML tags and decodes entities.
  - none: leaves lines as they are.
  - a path to a Starlark script that defines normalize(line). Scripts can call
    html_text(s) to get the default behavior.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/docfmt/internal/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
