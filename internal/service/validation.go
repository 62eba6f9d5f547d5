package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/maxviazov/country-list-service/internal/model"
)

const (
	DefaultOffset = 0
	DefaultLimit  = 10
	MaxLimit      = 100
)

// ParsePage turns raw query values into a page. Input without a leading
// integer (including empty input) silently falls back to the defaults; range
// checks are left to ValidatePage.
func ParsePage(rawOffset, rawLimit string) model.Page {
	offset, ok := parseLeadingInt(rawOffset)
	if !ok {
		offset = DefaultOffset
	}
	limit, ok := parseLeadingInt(rawLimit)
	if !ok {
		limit = DefaultLimit
	}
	return model.Page{Offset: offset, Limit: limit}
}

// parseLeadingInt reads an optionally signed integer at the start of s,
// ignoring leading whitespace and anything after the digits: "12abc" is 12,
// "3.9" is 3, "0x1f" is 31, "abc", "-" and "0x" are not numbers.
// Values outside the int range saturate.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		if s[0] == '-' {
			sign = "-"
		}
		s = s[1:]
	}
	base, isDigit := 10, isDecimalDigit
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base, isDigit = 16, isHexDigit
		s = s[2:]
	}
	end := 0
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(sign+s[:end], base, 0)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return int(n), true
}

func isDecimalDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return isDecimalDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// validatePage checks p against the accepted ranges; offset is checked first.
// total only feeds the valid range reported back to the client.
func validatePage(p model.Page, total int) error {
	if p.Offset < 0 {
		return &PageError{
			Kind:       ErrInvalidOffset,
			Message:    "Offset must be a positive number",
			ValidRange: fmt.Sprintf("0 - %d", total-1),
		}
	}
	if p.Limit <= 0 || p.Limit > MaxLimit {
		return &PageError{
			Kind:       ErrInvalidLimit,
			Message:    fmt.Sprintf("Limit must be between 1 and %d", MaxLimit),
			MaxAllowed: MaxLimit,
		}
	}
	return nil
}
