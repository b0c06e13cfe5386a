package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/safeexpr/safeexpr"
)

const (
	banner = "Simple calculator. Type 'quit' or 'exit' to leave. Type 'help' for help."
	usage  = "Enter arithmetic expressions using + - * / // % ** and parentheses."
)

// repl reads expressions a line at a time and prints results until the input
// ends or the user quits.
func repl(in *bufio.Scanner, out io.Writer) error {
	fmt.Fprintln(out, banner)
	for {
		fmt.Fprint(out, "calc> ")
		if !in.Scan() {
			fmt.Fprintln(out)
			return in.Err()
		}
		line := strings.TrimSpace(in.Text())
		if line == "" {
			continue
		}
		switch strings.ToLower(line) {
		case "quit", "exit", "q":
			return nil
		case "help":
			fmt.Fprintln(out, usage)
			continue
		}
		r, err := safeexpr.EvalString(line)
		if err != nil {
			fmt.Fprintln(out, "Error:", err)
			continue
		}
		fmt.Fprintln(out, display(r))
	}
}

// display formats a result for printing. A float that is within rounding
// distance of an integer prints as that integer; this is cosmetic only, the
// evaluator's result keeps its float kind.
func display(n safeexpr.Number) string {
	if !n.IsInt() {
		f := n.Float64()
		t := math.Trunc(f)
		if closeTo(f, t) && math.Abs(t) < 1<<62 {
			return strconv.FormatInt(int64(t), 10)
		}
	}
	return n.String()
}

// closeTo reports whether a and b agree to within 1e-9 relative tolerance.
func closeTo(a, b float64) bool {
	if a == b {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}
	return math.Abs(a-b) <= 1e-9*math.Max(math.Abs(a), math.Abs(b))
}
