// Package minivac implements an interactive calculator engine.
//
// A line of input is either a plain expression, a variable assignment like
// "mass = 9.81 * 2", or a single-variable function definition like
// "f(x) = x^2 - 1". Plain expressions support the usual arithmetic with
// precedence, unary sign, postfix factorial, brackets, scientific notation
// ("2E3" is 2 times 10^3), and calls to builtin or user-defined functions.
//
// Results of plain expressions are remembered: "ans" holds the latest
// result and "preans" the one before it, so "3+3" followed by "ans*2"
// yields 6 and then 12.
package minivac
