package plot

import "errors"

var (
	ErrNotFound         = errors.New("plot not found")
	ErrPropertyNotFound = errors.New("property not found")
)
