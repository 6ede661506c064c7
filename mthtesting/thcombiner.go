package mthtesting

import "github.com/treeproof/go-treeproof/mth"

// THCombiner is a traceable combiner for tests: the parent of x and y is
// the literal string "TH(x, y)" with the pair in byte order. Roots computed
// with it spell out the whole tree, which makes failures legible.
var THCombiner = mth.CombinerFunc(func(a, b []byte) []byte {
	x, y := string(a), string(b)
	if y < x {
		x, y = y, x
	}
	return []byte("TH(" + x + ", " + y + ")")
})
