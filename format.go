package pomomo

import "fmt"

func MinutesPart(total int) int {
	return total / 60
}

func SecondsPart(total int) int {
	return total % 60
}

// FormatClock renders total seconds as "MM:SS". Minutes are not capped, so
// durations of 100 minutes or more render with three digits.
func FormatClock(total int) string {
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d", MinutesPart(total), SecondsPart(total))
}
