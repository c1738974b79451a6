//go:build go1.18
// +build go1.18

package calculator_test

import (
	"testing"

	calculator "github.com/zachh-cs/Calculator"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("2+3*4")
	f.Add("2^3^2")
	f.Add("(1+2)(3+4)")
	f.Add("2e")
	f.Add("10 % 0.5")
	f.Fuzz(func(t *testing.T, s string) {
		r, err := calculator.Evaluate(s)
		if err != nil {
			return
		}
		// Evaluation is deterministic.
		q, err := calculator.Evaluate(s)
		if err != nil {
			t.Fatalf("%q evaluated, then failed: %v", s, err)
		}
		if q != r && !(q != q && r != r) {
			t.Errorf("%q gave %g, then %g", s, r, q)
		}
	})
}
