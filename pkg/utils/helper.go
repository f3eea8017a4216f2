package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseInt64 parses a base-10 path or query value. Sign is preserved.
func ParseInt64(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("invalid number: empty value")
	}

	result, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", value, err)
	}

	return result, nil
}
