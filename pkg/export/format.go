package export

import (
	"strconv"
	"strings"
)

// FormatRupiah formats an amount as Rupiah with comma thousands separators, e.g. Rp1,500,000
func FormatRupiah(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	return sign + "Rp" + b.String()
}
