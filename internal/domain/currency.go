package domain

import "strconv"

// FormatINR renders a rupee amount with Indian digit grouping, e.g.
// ₹1,23,456. Negative amounts keep the sign ahead of the symbol.
func FormatINR(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var out []byte
	n := len(digits)
	for i, d := range []byte(digits) {
		if i > 0 {
			rem := n - i
			// Groups of two after the final group of three.
			if rem == 3 || (rem > 3 && (rem-3)%2 == 0) {
				out = append(out, ',')
			}
		}
		out = append(out, d)
	}
	if neg {
		return "-₹" + string(out)
	}
	return "₹" + string(out)
}
