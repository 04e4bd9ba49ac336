package services

import (
	"fmt"
	"strings"
)

// requireText trims s and returns errRequired when nothing is left.
func requireText(s string, errRequired error) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errRequired
	}
	return s, nil
}

func requireID(field string, id int) error {
	if id <= 0 {
		return fmt.Errorf("%w: %s=%d", ErrInvalidReference, field, id)
	}
	return nil
}

// requireOptionalID accepts nil (an unset nullable reference) or a positive id.
func requireOptionalID(field string, id *int) error {
	if id == nil {
		return nil
	}
	return requireID(field, *id)
}
