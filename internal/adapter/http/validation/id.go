package validation

import (
	"errors"
	"strconv"
)

var ErrInvalidID = errors.New("invalid id")

// ParseID accepts a positive decimal id that fits a signed 64-bit column.
func ParseID(value string) (uint64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return uint64(id), nil
}
