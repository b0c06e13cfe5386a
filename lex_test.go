package safeexpr

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		errs   int
	}{
		// spaces
		{"", nil, 0},
		{" \t \r\n ", nil, 0},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}}, 0},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}}, 0},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1.0", []lexToken{{text: "1.0", kind: tokenNum, pos: 1}}, 0},
		{"1e1", []lexToken{{text: "1e1", kind: tokenNum, pos: 1}}, 0},
		{"1e", nil, 1},
		{"1e+1", []lexToken{{text: "1e+1", kind: tokenNum, pos: 1}}, 0},
		{"1e-1", []lexToken{{text: "1e-1", kind: tokenNum, pos: 1}}, 0},
		{"1.1.1", []lexToken{{text: "1", kind: tokenNum, pos: 5}}, 1},
		{"1.0e1", []lexToken{{text: "1.0e1", kind: tokenNum, pos: 1}}, 0},
		{".", nil, 1},
		{".1", []lexToken{{text: ".1", kind: tokenNum, pos: 1}}, 0},
		{".1e1", []lexToken{{text: ".1e1", kind: tokenNum, pos: 1}}, 0},
		{"1a", nil, 1},
		// operators
		{"+", []lexToken{{text: "+", kind: tokenOp, pos: 1}}, 0},
		{"++", []lexToken{{text: "+", kind: tokenOp, pos: 1}, {text: "+", kind: tokenOp, pos: 2}}, 0},
		{"%", []lexToken{{text: "%", kind: tokenOp, pos: 1}}, 0},
		{"/", []lexToken{{text: "/", kind: tokenOp, pos: 1}}, 0},
		{"//", []lexToken{{text: "//", kind: tokenOp, pos: 1}}, 0},
		{"**", []lexToken{{text: "**", kind: tokenOp, pos: 1}}, 0},
		{"***", []lexToken{{text: "**", kind: tokenOp, pos: 1}, {text: "*", kind: tokenOp, pos: 3}}, 0},
		{"1--2", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "-", kind: tokenOp, pos: 2}, {text: "-", kind: tokenOp, pos: 3}, {text: "2", kind: tokenNum, pos: 4}}, 0},
		{"1+0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "+", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"5//0", []lexToken{{text: "5", kind: tokenNum, pos: 1}, {text: "//", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 4}}, 0},
		{"2**3", []lexToken{{text: "2", kind: tokenNum, pos: 1}, {text: "**", kind: tokenOp, pos: 2}, {text: "3", kind: tokenNum, pos: 4}}, 0},
		{"2 * 3", []lexToken{{text: "2", kind: tokenNum, pos: 1}, {text: "*", kind: tokenOp, pos: 3}, {text: "3", kind: tokenNum, pos: 5}}, 0},
		// parens
		{"()", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: ")", kind: tokenClose, pos: 2}}, 0},
		{"(1)", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: "1", kind: tokenNum, pos: 2}, {text: ")", kind: tokenClose, pos: 3}}, 0},
		// everything outside the language is an invalid token
		{"x", nil, 1},
		{"exp", nil, 3},
		{"$", nil, 1},
		{"a$", nil, 2},
		{"1,2", []lexToken{{text: "2", kind: tokenNum, pos: 3}}, 1},
		{"1<2", []lexToken{{text: "2", kind: tokenNum, pos: 3}}, 1},
		{`"s"`, nil, 3},
		{"[1]", nil, 2},
		{"^", nil, 1},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		var got []lexToken
		errs := 0
		for {
			tok, err := scan.next("")
			if err != nil {
				if errors.Is(err, io.EOF) {
					t.Errorf("scanning %q: exhausted before EOF token", c.src)
					break
				}
				errs++
				continue
			}
			if tok.kind == tokenEOF {
				break
			}
			got = append(got, tok)
		}
		if !reflect.DeepEqual(got, c.tokens) {
			t.Errorf("scanning %q: want tokens %v, got %v", c.src, c.tokens, got)
		}
		if errs != c.errs {
			t.Errorf("scanning %q: want %d errors, got %d", c.src, c.errs, errs)
		}
	}
}

func TestLexStop(t *testing.T) {
	scan := lex(strings.NewReader("1\n2"))
	tok, err := scan.next("\n")
	if err != nil || tok.kind != tokenNum || tok.text != "1" {
		t.Fatalf("want number 1, got %v with error %v", tok, err)
	}
	tok, err = scan.next("\n")
	if err != nil || tok.kind != tokenEOF {
		t.Fatalf("want EOF token at newline, got %v with error %v", tok, err)
	}
	if _, err := scan.next("\n"); !errors.Is(err, io.EOF) {
		t.Fatalf("want io.EOF after EOF token, got %v", err)
	}
}

func TestLexPush(t *testing.T) {
	scan := lex(strings.NewReader("1+2"))
	tok, err := scan.next("")
	if err != nil {
		t.Fatal(err)
	}
	scan.push(tok)
	if got := scan.must(); got != tok {
		t.Errorf("pushed %v but must gave %v", tok, got)
	}
	got, err := scan.next("")
	if err != nil || got.text != "+" {
		t.Errorf("want + after re-reading 1, got %v with error %v", got, err)
	}
}
