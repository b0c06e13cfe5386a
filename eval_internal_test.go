package safeexpr

import "testing"

func TestEvalFailsClosed(t *testing.T) {
	// Nothing the parser builds has these kinds, but evaluation must refuse
	// them rather than skip them if a tree is constructed any other way.
	for _, k := range []nodeKind{nodeNone, nodeKind(73), nodeKind(-1)} {
		n := &node{kind: k}
		_, err := n.eval()
		if _, ok := err.(*InvalidNodeError); !ok {
			t.Errorf("evaluating kind %v gave %#v, want InvalidNodeError", k, err)
		}
	}
}
