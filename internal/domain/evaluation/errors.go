package evaluation

import "errors"

var (
	ErrNotFound      = errors.New("evaluation not found")
	ErrVisitNotFound = errors.New("visit not found")
	ErrPlotNotFound  = errors.New("plot not found")
	ErrPlotMismatch  = errors.New("plot does not belong to the visited property")
)
