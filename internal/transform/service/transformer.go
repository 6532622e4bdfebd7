// Package service implements the text transformation applied by the internal
// transform service.
package service

import "strings"

// Transformer defines the transformation contract.
type Transformer interface {
	// Transform reverses the text and uppercases it.
	Transform(text string) string
}

// reverseUppercaseTransformer reverses the input rune-by-rune and uppercases it.
type reverseUppercaseTransformer struct{}

// Transform reverses the text and applies Unicode uppercasing.
// Reversal operates on runes, not bytes, so multi-byte characters survive.
func (t *reverseUppercaseTransformer) Transform(text string) string {
	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return strings.ToUpper(string(runes))
}

// NewTransformer creates the reverse-and-uppercase Transformer.
func NewTransformer() Transformer {
	return &reverseUppercaseTransformer{}
}
