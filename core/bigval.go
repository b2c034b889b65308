package core

import "math/big"

// BigValue is an arbitrary-precision non-negative integer, used for tieoff
// constants and (via the validate package) drive/use coverage bitmaps.
// Tieoff values may exceed 64 bits (spec §9); math/big is the standard
// library's arbitrary-precision type and no third-party bignum package
// appears anywhere in the reference corpus, so it is used directly rather
// than wrapped behind an alternate library (see DESIGN.md).
type BigValue struct {
	v *big.Int
}

// NewBigValue wraps an int64 as a BigValue.
func NewBigValue(v int64) BigValue {
	return BigValue{v: big.NewInt(v)}
}

// NewBigValueFromBigInt wraps an existing *big.Int (not copied).
func NewBigValueFromBigInt(v *big.Int) BigValue {
	return BigValue{v: v}
}

// Int returns the underlying *big.Int. Callers must not mutate it.
func (b BigValue) Int() *big.Int {
	if b.v == nil {
		return big.NewInt(0)
	}
	return b.v
}

// Sign mirrors big.Int.Sign: -1, 0, or 1.
func (b BigValue) Sign() int { return b.Int().Sign() }

// FitsWidth reports whether b, taken modulo 2^width, equals b itself (i.e.
// b is non-negative and representable in `width` bits without truncation).
func (b BigValue) FitsWidth(width int) bool {
	if b.Sign() < 0 {
		return false
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(width))
	return b.Int().Cmp(limit) < 0
}

// Slice extracts `width` bits of b starting at bit offset `offset`
// (b >> offset) & ((1<<width)-1), for re-slicing a Tieoff ConnectedItem.
func (b BigValue) Slice(offset, width int) BigValue {
	shifted := new(big.Int).Rsh(b.Int(), uint(offset))
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(width)), big.NewInt(1))
	return BigValue{v: new(big.Int).And(shifted, mask)}
}

// Combine merges two adjacent tieoff slices, upper at the high end, lower
// at the low end: (upper << lowerWidth) | lower.
func Combine(upper, lower BigValue, lowerWidth int) BigValue {
	shifted := new(big.Int).Lsh(upper.Int(), uint(lowerWidth))
	return BigValue{v: new(big.Int).Or(shifted, lower.Int())}
}

// Equal reports bit-for-bit equality.
func (b BigValue) Equal(o BigValue) bool { return b.Int().Cmp(o.Int()) == 0 }

// Text renders b in base-2s-complement-free hex without prefix.
func (b BigValue) Text() string { return b.Int().Text(16) }
