// Package numeral implements a bijective base-N numeral system over an
// ordered alphabet with no zero symbol.
//
// Index 1 maps to the alphabet's first symbol and index N to its last, so
// the scheme is the spreadsheet-column numbering generalized to an arbitrary
// alphabet. Because no symbol ever means "zero", strings of different
// lengths never alias and the mapping is a total bijection between positive
// integers and non-empty strings over the alphabet.
package numeral

import (
	"errors"
	"math/big"
)

// DefaultSymbols is the candidate alphabet: lowercase ASCII letters, digits,
// hyphen and underscore: 38 symbols, ordered as listed.
const DefaultSymbols = "abcdefghijklmnopqrstuvwxyz0123456789-_"

// ErrNonPositive is returned by Encode when the index is below 1.
// There is no representation for zero or negative numbers.
var ErrNonPositive = errors.New("numeral: index must be >= 1")

var one = big.NewInt(1)

// Alphabet is an ordered sequence of distinct symbols. The zero value is not
// usable; construct with New or Default.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
	base    *big.Int
}

// New creates an Alphabet from the given symbols, ordered as they appear.
// Symbols must be distinct; duplicates keep their first position.
func New(symbols string) *Alphabet {
	runes := []rune(symbols)
	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, ok := index[r]; !ok {
			index[r] = i
		}
	}
	return &Alphabet{
		symbols: runes,
		index:   index,
		base:    big.NewInt(int64(len(runes))),
	}
}

// Default returns the standard 38-symbol candidate alphabet.
func Default() *Alphabet {
	return New(DefaultSymbols)
}

// Len returns the number of symbols.
func (a *Alphabet) Len() int {
	return len(a.symbols)
}

// First returns the alphabet's first symbol as a string.
func (a *Alphabet) First() string {
	return string(a.symbols[0])
}

// Last returns the alphabet's last symbol as a string.
func (a *Alphabet) Last() string {
	return string(a.symbols[len(a.symbols)-1])
}

// Encode converts a positive index to its string form.
// Returns ErrNonPositive when n < 1.
func (a *Alphabet) Encode(n *big.Int) (string, error) {
	if n.Cmp(one) < 0 {
		return "", ErrNonPositive
	}

	// Digits accumulate least-significant first; reversed at the end.
	var digits []rune
	num := new(big.Int).Set(n)
	mod := new(big.Int)

	for num.Sign() > 0 {
		mod.Sub(num, one)
		mod.Mod(mod, a.base)
		digits = append(digits, a.symbols[mod.Int64()])
		num.Sub(num, mod)
		num.Div(num, a.base)
	}

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return string(digits), nil
}

// Decode converts a string back to its index. Inverse of Encode for every
// string over the alphabet. Symbols outside the alphabet are the caller's
// responsibility: they decode as position 0 rather than failing.
func (a *Alphabet) Decode(s string) *big.Int {
	n := new(big.Int)
	pos := new(big.Int)
	for _, r := range s {
		n.Mul(n, a.base)
		pos.SetInt64(int64(a.index[r] + 1))
		n.Add(n, pos)
	}
	return n
}
