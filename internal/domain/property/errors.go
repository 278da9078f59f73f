package property

import "errors"

var (
	ErrNotFound       = errors.New("property not found")
	ErrClientNotFound = errors.New("client not found")
)
