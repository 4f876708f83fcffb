// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package htmltext

import (
	"testing"

	"go.astrophena.name/docfmt/codeblock"
	"go.astrophena.name/docfmt/internal/testutil"
)

func TestToText(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		in   string
		want string
	}{
		"empty":             {in: "", want: ""},
		"plain":             {in: "int x = 1;", want: "int x = 1;"},
		"leading space":     {in: "   int x;", want: "int x;"},
		"collapses spaces":  {in: "a  \t b", want: "a b"},
		"entities":          {in: "List&lt;String&gt; l = a &amp;&amp; b;", want: "List<String> l = a && b;"},
		"numeric entity":    {in: "&#64;Override", want: "@Override"},
		"drops inline tags": {in: "<b>bold</b> and <i>italic</i>", want: "bold and italic"},
		"link":              {in: `see <a href="x.html">x</a>`, want: "see x"},
		"line break":        {in: "one<br>two<br/>three", want: "one\ntwo\nthree"},
		"paragraph":         {in: "<p>first</p><p>second</p>", want: "first\nsecond"},
		"list":              {in: "<ul><li>a</li><li>b</li></ul>", want: "a\nb"},
		"comment":           {in: "x<!-- hidden -->y", want: "xy"},
		"bare less than":    {in: "if (a < b)", want: "if (a < b)"},
		"only tags":         {in: "<span></span>", want: ""},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := Normalizer{LineSeparator: "\n"}.Normalize(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestFormatWithNormalizer(t *testing.T) {
	t.Parallel()

	f := &codeblock.Formatter{
		LineSeparator: "\n",
		Normalizer:    Normalizer{},
	}
	got, err := f.Format("Example:\n<pre>\n  List&lt;String&gt; names;\n\tif (a &amp;&amp; b) {}\n</pre>\nUse <code>names</code>.")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, got, "Example:\n"+
		"----\n"+
		"  List<String> names;\n"+
		"    if (a && b) {}\n"+
		"----\n"+
		"Use `names`.\n")
}

func TestNormalizerLineSeparator(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		sep  string
		in   string
		want string
	}{
		"lf":      {sep: "\n", in: "a<br>b<p>c</p>", want: "a\nb\nc"},
		"crlf":    {sep: "\r\n", in: "a<br>b<p>c</p>", want: "a\r\nb\r\nc"},
		"native":  {sep: "", in: "a<br>b", want: "a" + codeblock.NativeLineSeparator + "b"},
		"no html": {sep: "\r\n", in: "  a  b ", want: "a b"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := Normalizer{LineSeparator: tc.sep}.Normalize(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, got, tc.want)
		})
	}

	got, err := ToText("a<br>b")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, got, "a"+codeblock.NativeLineSeparator+"b")
}

func TestFormatCRLFWithLineBreaks(t *testing.T) {
	t.Parallel()

	f := &codeblock.Formatter{
		LineSeparator: "\r\n",
		Normalizer:    Normalizer{LineSeparator: "\r\n"},
	}
	got, err := f.Format("<pre>\r\n  a<br>b\r\n</pre>")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, got, "----\r\n  a\r\nb\r\n----\r\n")
}
