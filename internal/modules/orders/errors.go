package orders

import "errors"

var (
	ErrNotLoaded      = errors.New("order list not loaded")
	ErrOrderNotFound  = errors.New("order not found")
	ErrNotConfirmable = errors.New("order has no unconfirmed payment to confirm")
)
