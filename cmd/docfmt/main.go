// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"go.astrophena.name/docfmt/codeblock"
	"go.astrophena.name/docfmt/internal/atomicio"
	"go.astrophena.name/docfmt/internal/cli"
	"go.astrophena.name/docfmt/internal/cli/envflag"
	"go.astrophena.name/docfmt/internal/util/syncx"
	"go.astrophena.name/docfmt/normalize/htmltext"
	"go.astrophena.name/docfmt/normalize/starnorm"
)

func main() { cli.Main(new(app)) }

type app struct {
	// flags
	normalizer    *string
	lineSeparator *string
	jobs          *int
	rewrite       bool
	verbose       bool
}

func (a *app) Flags(fs *flag.FlagSet, getenv func(string) string) {
	a.normalizer = envflag.Value("normalizer", "DOCFMT_NORMALIZER", "html",
		"Code line `normalizer`: html, none or a path to a Starlark script.", fs, getenv)
	a.lineSeparator = envflag.Value("line-separator", "DOCFMT_LINE_SEPARATOR", "native",
		"Line `separator` of the input and output: native, lf or crlf.", fs, getenv)
	a.jobs = envflag.Value("j", "DOCFMT_JOBS", 4,
		"Number of files formatted concurrently.", fs, getenv)
	fs.BoolVar(&a.rewrite, "w", false, "Write result to (source) file instead of stdout.")
	fs.BoolVar(&a.verbose, "v", false, "Log every formatted file.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	f, err := a.formatter(env)
	if err != nil {
		return err
	}

	if len(env.Args) == 0 {
		if a.rewrite {
			return fmt.Errorf("%w: -w requires at least one file", cli.ErrInvalidArgs)
		}
		b, err := io.ReadAll(env.Stdin)
		if err != nil {
			return err
		}
		out, err := f.Format(string(b))
		if err != nil {
			return fmt.Errorf("formatting standard input: %w", err)
		}
		_, err = io.WriteString(env.Stdout, out)
		return err
	}

	type result struct {
		out string
		err error
	}
	results := make([]result, len(env.Args))

	lwg := syncx.NewLimitedWaitGroup(max(*a.jobs, 1))
	for i, file := range env.Args {
		if ctx.Err() != nil {
			break
		}
		lwg.Add(1)
		go func() {
			defer lwg.Done()
			results[i].out, results[i].err = formatFile(f, file)
		}()
	}
	lwg.Wait()
	if err := ctx.Err(); err != nil {
		return err
	}

	for i, file := range env.Args {
		res := results[i]
		if res.err != nil {
			return fmt.Errorf("formatting %q: %w", file, res.err)
		}
		if a.rewrite {
			perm := fs.FileMode(0o644)
			if fi, err := os.Stat(file); err == nil {
				perm = fi.Mode().Perm()
			}
			if err := atomicio.WriteFile(file, []byte(res.out), perm); err != nil {
				return err
			}
		} else if _, err := io.WriteString(env.Stdout, res.out); err != nil {
			return err
		}
		if a.verbose {
			env.Logf("formatted %s", file)
		}
	}

	return nil
}

func (a *app) formatter(env *cli.Env) (*codeblock.Formatter, error) {
	f := new(codeblock.Formatter)

	switch sep := *a.lineSeparator; sep {
	case "native":
		f.LineSeparator = codeblock.NativeLineSeparator
	case "lf":
		f.LineSeparator = "\n"
	case "crlf":
		f.LineSeparator = "\r\n"
	default:
		return nil, fmt.Errorf("%w: unknown line separator %q", cli.ErrInvalidArgs, sep)
	}

	switch norm := *a.normalizer; {
	case norm == "html":
		f.Normalizer = htmltext.Normalizer{LineSeparator: f.LineSeparator}
	case norm == "none":
		f.Normalizer = codeblock.Identity
	case strings.HasSuffix(norm, ".star"):
		src, err := os.ReadFile(norm)
		if err != nil {
			return nil, fmt.Errorf("loading normalizer: %w", err)
		}
		n, err := starnorm.Load(norm, src, env.Logf)
		if err != nil {
			return nil, fmt.Errorf("loading normalizer: %w", err)
		}
		f.Normalizer = n
	default:
		return nil, fmt.Errorf("%w: unknown normalizer %q", cli.ErrInvalidArgs, norm)
	}

	return f, nil
}

func formatFile(f *codeblock.Formatter, file string) (string, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return "", err
	}
	return f.Format(string(b))
}
