package validate

import "math/big"

// bitmap is a growable bit set over [0, width) used to accumulate which
// bits of a port are accounted for (driven, or driving/unused) during a
// single port's check. Backed by math/big since port widths are
// unbounded in principle (spec §9), same rationale as core.BigValue.
type bitmap struct {
	bits *big.Int
}

func newBitmap() *bitmap { return &bitmap{bits: new(big.Int)} }

func (b *bitmap) mark(lsb, w int) {
	if w <= 0 {
		return
	}
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(w)), big.NewInt(1))
	mask.Lsh(mask, uint(lsb))
	b.bits.Or(b.bits, mask)
}

// gaps returns every maximal uncovered [msb:lsb] range within [0, width),
// highest first.
func (b *bitmap) gaps(width int) [][2]int {
	var out [][2]int
	i := width - 1
	for i >= 0 {
		if b.bits.Bit(i) == 1 {
			i--
			continue
		}
		j := i
		for j >= 0 && b.bits.Bit(j) == 0 {
			j--
		}
		out = append(out, [2]int{i, j + 1}) // msb, lsb
		i = j
	}
	return out
}
