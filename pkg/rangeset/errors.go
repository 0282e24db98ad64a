package rangeset

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrInvalidRange is returned for ranges whose start is not below their end.
var ErrInvalidRange = errors.New("invalid range")

func validate[T constraints.Integer](r Range[T]) error {
	if !r.IsValid() {
		return fmt.Errorf("%w %s: start must be smaller than end", ErrInvalidRange, r)
	}
	return nil
}
