// Command safeexpr evaluates arithmetic expressions. With no arguments it
// runs an interactive calculator; expressions may also be given as arguments
// or read one per line from a file.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/safeexpr/safeexpr"
)

func main() {
	log.SetFlags(0)
	app := &cli.App{
		Name:      "safeexpr",
		Usage:     "evaluate arithmetic expressions, and nothing else",
		ArgsUsage: "[expression ...]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "test",
				Aliases: []string{"t"},
				Usage:   "run the built-in checks and exit",
			},
			&cli.StringFlag{
				Name:  "in",
				Usage: "read expressions line by line from `FILE` (- for stdin)",
			},
			&cli.BoolFlag{
				Name:  "echo",
				Usage: "print parse trees before results",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(c *cli.Context) error {
	if c.Bool("test") {
		return runChecks(os.Stdout)
	}
	echo := c.Bool("echo")
	if c.NArg() > 0 {
		for _, arg := range c.Args().Slice() {
			if err := evalOne(os.Stdout, arg, echo); err != nil {
				return err
			}
		}
		return nil
	}
	if name := c.String("in"); name != "" {
		in := os.Stdin
		if name != "-" {
			f, err := os.Open(name)
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}
		return evalStream(os.Stdout, bufio.NewReader(in), echo)
	}
	return repl(bufio.NewScanner(os.Stdin), os.Stdout)
}

// evalOne parses, optionally echoes, evaluates, and prints one expression.
func evalOne(w io.Writer, src string, echo bool) error {
	a, err := safeexpr.Parse(strings.NewReader(src))
	if err != nil {
		return err
	}
	if echo {
		fmt.Fprintf(w, "%v : ", a)
	}
	r, err := a.Eval()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, display(r))
	return nil
}

// evalStream evaluates newline-separated expressions from a reader.
func evalStream(w io.Writer, in io.RuneScanner, echo bool) error {
	for {
		// First check whether we're done with the input.
		r, _, err := in.ReadRune()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if r == '\n' {
			// Blank line.
			continue
		}
		in.UnreadRune()
		a, err := safeexpr.Parse(in, safeexpr.StopOn('\n'))
		if err != nil {
			return err
		}
		if echo {
			fmt.Fprintf(w, "%v : ", a)
		}
		v, err := a.Eval()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, display(v))
	}
}
