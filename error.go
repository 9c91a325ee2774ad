package track

import "errors"

var (
	ErrDuplicateID    = errors.New("order id already exists in the book")
	ErrNotFound       = errors.New("order not found")
	ErrTradeImbalance = errors.New("trade quantity does not balance")
	ErrInvalidParam   = errors.New("the param is invalid")
)
