package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseDuration converts an "HH:MM" string into total minutes. Hours are not
// bounded to 24; the timesheet reports day totals like "27:45" for long days.
func ParseDuration(s string) (int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	hours, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}
	return hours*60 + minutes, nil
}

// FormatDuration renders minutes as a zero-padded "HH:MM" string, with a
// leading "-" for negative values. Zero carries no sign.
func FormatDuration(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, minutes/60, minutes%60)
}

// SubtractDurations subtracts the sum of subtrahends from total. The result
// may be negative; rejecting that is the caller's policy, not this one's.
func SubtractDurations(total string, subtrahends []string) (string, error) {
	remaining, err := ParseDuration(total)
	if err != nil {
		return "", err
	}
	for _, s := range subtrahends {
		m, err := ParseDuration(s)
		if err != nil {
			return "", err
		}
		remaining -= m
	}
	return FormatDuration(remaining), nil
}
