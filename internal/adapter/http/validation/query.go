package validation

import (
	"errors"
	"strconv"
	"strings"

	"dayplanner/internal/core/domain"
)

var ErrInvalidID = errors.New("invalid id")

// ParseDay parses the date query parameter. An absent date means today in
// the civil zone.
func ParseDay(cal *domain.Calendar, raw string) (domain.Date, error) {
	if strings.TrimSpace(raw) == "" {
		return cal.Today(), nil
	}
	return cal.ParseDate(raw)
}

// ParseID parses a positive numeric identifier.
func ParseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
