package safeexpr_test

import (
	"fmt"

	"github.com/safeexpr/safeexpr"
)

func Example() {
	for _, src := range []string{"2*3+4", "2*(3+4)", "2**3**2", "10/4", "7//2", "-5+3"} {
		n, err := safeexpr.EvalString(src)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(n)
	}
	// Output:
	// 10
	// 14
	// 512
	// 2.5
	// 3
	// -2
}

func ExampleEvalString_errors() {
	_, err := safeexpr.EvalString("5//0")
	fmt.Println(err)
	_, err = safeexpr.EvalString("2 3")
	fmt.Println(err)
	// Output:
	// division by zero in "//"
	// 3: unexpected "3" after expression
}
