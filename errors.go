package quantgo

import (
	"errors"
	"fmt"

	"github.com/hupe1980/quantgo/ckms"
)

var (
	// ErrEmpty is returned when a quantile is queried before any observation
	// was inserted. It is an expected, recoverable condition.
	ErrEmpty = errors.New("no observations recorded")
)

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ckms.ErrEmpty) {
		return fmt.Errorf("%w: %w", ErrEmpty, err)
	}

	return err
}
