// Package calculator implements a double-precision arithmetic calculator.
//
// Expressions follow the usual PEMDAS rules: exponentiation with ^ or **
// binds tightest and associates to the right, then multiplication, division,
// and modulo, then addition and subtraction. Adjacent factors multiply
// implicitly, so "2(3+4)" and "(1+2)(3+4)" work the way they read. Literals
// may carry a scientific-notation suffix, as in "2e3" or "1.5E-2".
//
// Parsing and evaluation happen in a single recursive descent over the input
// with no intermediate tree. Errors carry the byte offset where the problem
// was found.
package calculator
