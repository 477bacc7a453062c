package dashboard

import "fmt"

// Change renders the period-over-period delta shown on dashboard cards.
// A previous count of zero with any growth reads "+100%"; two zeroes
// read "0%"; everything else is the signed percentage with one decimal.
func Change(current, previous int) string {
	if previous == 0 {
		if current > 0 {
			return "+100%"
		}
		return "0%"
	}
	delta := float64(current-previous) / float64(previous) * 100
	sign := ""
	if delta > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.1f%%", sign, delta)
}
