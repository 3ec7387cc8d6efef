package economy

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatGold renders a gold amount in short scale for tight HUD layouts:
// 999.99 and below with two decimals, then 1.23K, 4.56M, 7.89B.
func FormatGold(v float64) string {
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2fK", v/1e3)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// FormatGoldExact renders a gold amount with comma grouping for places where
// the full figure matters (stats tables, achievement targets).
func FormatGoldExact(v float64) string {
	return humanize.CommafWithDigits(v, 2)
}
