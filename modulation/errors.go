package modulation

import "errors"

var (
	// ErrUnsupportedScheme reports a modulation type outside the supported set.
	ErrUnsupportedScheme = errors.New("unsupported modulation type")

	// ErrInvalidConfig reports a Config that cannot produce a well-defined frame.
	ErrInvalidConfig = errors.New("invalid modulation config")
)
