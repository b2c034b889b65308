package sv

import (
	"fmt"
	"math/big"
	"strings"
)

// NewLiteral builds a Literal with the minimum number of hex digits width
// implies.
func NewLiteral(width int, v *big.Int) Literal { return Literal{Width: width, Value: v} }

// render produces e.g. "8'h00" or "32'h0000_0010": an unsigned hex
// constant, zero-padded to ceil(Width/4) hex digits, underscore-grouped
// every four digits from the right (spec §6).
func (l Literal) render() string {
	hexDigits := (l.Width + 3) / 4
	v := l.Value
	if v == nil {
		v = big.NewInt(0)
	}
	hex := v.Text(16)
	if len(hex) < hexDigits {
		hex = strings.Repeat("0", hexDigits-len(hex)) + hex
	}
	return fmt.Sprintf("%d'h%s", l.Width, groupHex(hex))
}

// groupHex inserts an underscore every four hex digits, counting from the
// right (least-significant digit), e.g. "000000010" -> "0_0000_0010".
func groupHex(hex string) string {
	if len(hex) <= 4 {
		return hex
	}
	first := len(hex) % 4
	var b strings.Builder
	if first > 0 {
		b.WriteString(hex[:first])
		b.WriteByte('_')
	}
	for i := first; i < len(hex); i += 4 {
		if i > first {
			b.WriteByte('_')
		}
		b.WriteString(hex[i : i+4])
	}
	return b.String()
}
