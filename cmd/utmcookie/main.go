// Command utmcookie decodes and generates utm tracking cookies and can serve
// a local endpoint that maintains them.
//
// Usage:
//
//	utmcookie [-format json|yaml] utma <value>
//	utmcookie [-format json|yaml] utmb <value>
//	utmcookie [-format json|yaml] new [-ua agent] [-domain host] [-res WxH] [-depth bits]
//	utmcookie [-format json|yaml] serve [-addr host:port]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const usage = `usage: utmcookie [-format json|yaml] <command> [arguments]

commands:
  utma <value>   decode a __utma cookie value
  utmb <value>   decode a __utmb cookie value
  new            generate cookies for a new visitor
  serve          run an HTTP endpoint that maintains the cookies
`

var errUsage = errors.New("invalid usage")

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("utmcookie", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	format := fs.String("format", "json", "output format: json or yaml")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	enc, err := newEncoder(*format, stdout)
	if err != nil {
		fmt.Fprintln(stderr, "utmcookie:", err)
		return 2
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "utma":
		err = decodeUTMA(rest, enc)
	case "utmb":
		err = decodeUTMB(rest, enc)
	case "new":
		err = generate(rest, enc, stderr)
	case "serve":
		err = serve(ctx, rest, stderr)
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}

	switch {
	case err == nil:
		return 0
	case errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, "utmcookie:", err)
		fs.Usage()
		return 2
	default:
		fmt.Fprintln(stderr, "utmcookie:", err)
		return 1
	}
}

// encoder writes one document to the output.
type encoder func(v any) error

func newEncoder(format string, w io.Writer) (encoder, error) {
	switch format {
	case "json":
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode, nil
	case "yaml":
		return func(v any) error {
			e := yaml.NewEncoder(w)
			e.SetIndent(2)
			if err := e.Encode(v); err != nil {
				return err
			}
			return e.Close()
		}, nil
	default:
		return nil, fmt.Errorf("unknown format %q: must be json or yaml", format)
	}
}
