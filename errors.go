package pomomo

import "errors"

var (
	ErrInvalidDuration  = errors.New("invalid duration")
	ErrInvalidIntervals = errors.New("invalid intervals")
	ErrInvalidMode      = errors.New("invalid mode")
	ErrInvalidTheme     = errors.New("invalid theme")
)
