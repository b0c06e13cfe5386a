package main

import (
	"fmt"
	"io"
	"math"

	"github.com/urfave/cli/v2"

	"github.com/safeexpr/safeexpr"
)

// checks is a fixed table of expressions with known values.
var checks = []struct {
	src  string
	want safeexpr.Number
}{
	{"1+2", safeexpr.Int(3)},
	{"2*3+4", safeexpr.Int(10)},
	{"2*(3+4)", safeexpr.Int(14)},
	{"10/4", safeexpr.Float(2.5)},
	{"2**3", safeexpr.Int(8)},
	{"2**3**2", safeexpr.Int(512)},
	{"-5+3", safeexpr.Int(-2)},
	{"-2**2", safeexpr.Int(-4)},
	{"7//2", safeexpr.Int(3)},
	{"7%4", safeexpr.Int(3)},
	{"1e3+0.5", safeexpr.Float(1000.5)},
}

// errChecks is a fixed table of expressions that must fail to evaluate.
var errChecks = []string{
	"5/0",
	"5//0",
	"5%0",
	"2+x",
	"exp(1)",
	"1 < 2",
}

// runChecks exercises the built-in tables and reports pass/fail counts. The
// returned error is non-nil exactly when any check failed.
func runChecks(w io.Writer) error {
	failed := 0
	for _, c := range checks {
		got, err := safeexpr.EvalString(c.src)
		if err != nil {
			fmt.Fprintf(w, "FAIL: %s errored: %v\n", c.src, err)
			failed++
			continue
		}
		if !sameNumber(got, c.want) {
			fmt.Fprintf(w, "FAIL: %s -> %v (expected %v)\n", c.src, got, c.want)
			failed++
			continue
		}
		fmt.Fprintf(w, "OK: %s = %s\n", c.src, display(got))
	}
	for _, src := range errChecks {
		if got, err := safeexpr.EvalString(src); err == nil {
			fmt.Fprintf(w, "FAIL: %s -> %v (expected an error)\n", src, got)
			failed++
			continue
		}
		fmt.Fprintf(w, "OK: %s is an error\n", src)
	}
	if failed != 0 {
		return cli.Exit(fmt.Sprintf("%d check(s) failed", failed), 1)
	}
	fmt.Fprintln(w, "All checks passed")
	return nil
}

// sameNumber compares results by kind, exactly for integers and to within
// closeTo's tolerance for floats.
func sameNumber(got, want safeexpr.Number) bool {
	if got.IsInt() != want.IsInt() {
		return false
	}
	if got.IsInt() {
		return got.Int64() == want.Int64()
	}
	if math.IsNaN(want.Float64()) {
		return math.IsNaN(got.Float64())
	}
	return closeTo(got.Float64(), want.Float64())
}
