// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package codeblock converts code markup found in documentation comments
// (<code> and <pre> tags) to backtick spans and "----" delimited blocks.
//
// Text without a line separator is treated as a single line: only <code> and
// </code> are replaced with backticks. Multi-line text is scanned line by line.
// A line that has an opening tag but no closing tag opens a block, and a line
// that has a closing tag but no opening tag closes it. Lines inside a block
// have their tags stripped, leading tabs expanded to four spaces and the rest
// passed through a [Normalizer].
package codeblock

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Delimiter is the line that opens and closes a code block in the output.
const Delimiter = "----"

var (
	blockStartRe = sync.OnceValue(func() *regexp.Regexp {
		return regexp.MustCompile(`<code>|<pre>`)
	})
	blockEndRe = sync.OnceValue(func() *regexp.Regexp {
		return regexp.MustCompile(`</code>|</pre>`)
	})
	lineRe = sync.OnceValue(func() *regexp.Regexp {
		return regexp.MustCompile(`\r?\n`)
	})
)

var (
	inlineReplacer = strings.NewReplacer("<code>", "`", "</code>", "`")
	tagStripper    = strings.NewReplacer("<code>", "", "<pre>", "", "</code>", "", "</pre>", "")
)

// Normalizer turns a line of code block content into plain text, decoding
// whatever markup is left in it.
type Normalizer interface {
	Normalize(line string) (string, error)
}

// NormalizerFunc is a function type that implements the [Normalizer]
// interface.
type NormalizerFunc func(line string) (string, error)

// Normalize calls f(line).
func (f NormalizerFunc) Normalize(line string) (string, error) { return f(line) }

// Identity is a [Normalizer] that returns lines unchanged.
var Identity Normalizer = NormalizerFunc(func(line string) (string, error) { return line, nil })

// Formatter formats documentation text. The zero value uses
// [NativeLineSeparator] and [Identity].
//
// A Formatter is safe for concurrent use if its Normalizer is.
type Formatter struct {
	// LineSeparator is used both to decide whether the text spans multiple
	// lines and to join output lines. Empty means NativeLineSeparator.
	LineSeparator string
	// Normalizer is applied to every line inside a code block. Nil means
	// Identity.
	Normalizer Normalizer
}

// Format formats text with the native line separator and no normalization.
func Format(text string) string {
	// Identity never fails.
	s, _ := new(Formatter).Format(text)
	return s
}

// Format converts code markup in text. The only possible error is one
// returned by the Normalizer, which is passed through wrapped.
func (f *Formatter) Format(text string) (string, error) {
	sep := f.LineSeparator
	if sep == "" {
		sep = NativeLineSeparator
	}
	norm := f.Normalizer
	if norm == nil {
		norm = Identity
	}

	if !strings.Contains(text, sep) {
		return inlineReplacer.Replace(text), nil
	}

	var (
		sb          strings.Builder
		inCodeBlock bool
	)
	sb.Grow(len(text))

	for i, line := range lineRe().Split(text, -1) {
		start := blockStartRe().MatchString(line)
		end := blockEndRe().MatchString(line)

		if start && !end {
			sb.WriteString(Delimiter)
			sb.WriteString(sep)
			inCodeBlock = true
		}

		if inCodeBlock {
			line = tagStripper.Replace(line)
			writeIndent(&sb, line)
			var err error
			line, err = norm.Normalize(line)
			if err != nil {
				return "", fmt.Errorf("normalizing line %d: %w", i+1, err)
			}
		} else {
			line = inlineReplacer.Replace(line)
		}

		if line != "" {
			sb.WriteString(line)
			sb.WriteString(sep)
		}

		if !start && end {
			sb.WriteString(Delimiter)
			sb.WriteString(sep)
			inCodeBlock = false
		}
	}

	return sb.String(), nil
}

// writeIndent copies the leading whitespace of line to sb, expanding each tab
// to four spaces.
func writeIndent(sb *strings.Builder, line string) {
	for _, c := range line {
		switch c {
		case ' ':
			sb.WriteByte(' ')
		case '\t':
			sb.WriteString("    ")
		default:
			return
		}
	}
}
