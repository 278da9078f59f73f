package product

import "errors"

var (
	ErrNotFound   = errors.New("product not found")
	ErrNameExists = errors.New("product name already exists")
	ErrInUse      = errors.New("product is referenced by sales orders")
)
