package preference

import "errors"

var (
	ErrInvalidPrefs = errors.New("invalid preference values")
)
