// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package htmltext converts fragments of HTML found in documentation comments
// to plain text.
package htmltext

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.astrophena.name/docfmt/codeblock"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Normalizer is a [codeblock.Normalizer] that drops HTML tags, decodes
// entities and collapses whitespace. A <br> and block-level tags start a new
// line.
type Normalizer struct {
	// LineSeparator joins the lines of the converted text. It should match
	// the LineSeparator of the formatter. If empty,
	// codeblock.NativeLineSeparator is used.
	LineSeparator string
}

var _ codeblock.Normalizer = Normalizer{}

// Normalize implements [codeblock.Normalizer].
func (n Normalizer) Normalize(line string) (string, error) {
	sep := n.LineSeparator
	if sep == "" {
		sep = codeblock.NativeLineSeparator
	}
	return toText(line, sep)
}

// breaks lists the tags that start a new line of text.
var breaks = map[atom.Atom]bool{
	atom.Br:         true,
	atom.P:          true,
	atom.Div:        true,
	atom.Li:         true,
	atom.Ul:         true,
	atom.Ol:         true,
	atom.Dl:         true,
	atom.Dt:         true,
	atom.Dd:         true,
	atom.Table:      true,
	atom.Tr:         true,
	atom.Blockquote: true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Hr:         true,
}

// ToText converts the HTML fragment s to plain text, separating its lines
// with codeblock.NativeLineSeparator.
func ToText(s string) (string, error) { return toText(s, codeblock.NativeLineSeparator) }

func toText(s, sep string) (string, error) {
	if !strings.ContainsAny(s, "<&") {
		return collapse(s, sep), nil
	}

	var (
		sb strings.Builder
		z  = html.NewTokenizer(strings.NewReader(s))
	)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", fmt.Errorf("htmltext: %w", err)
			}
			return collapse(sb.String(), sep), nil
		case html.TextToken:
			sb.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if breaks[atom.Lookup(name)] {
				sb.WriteByte('\n')
			}
		}
	}
}

// collapse squeezes runs of whitespace inside every line into one space and
// trims the lines, dropping the empty ones. The rest are joined with sep.
func collapse(s, sep string) string {
	var lines []string
	for line := range strings.SplitSeq(s, "\n") {
		if line = strings.Join(strings.Fields(line), " "); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, sep)
}
