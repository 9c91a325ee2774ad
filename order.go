package track

import (
	"github.com/0x5487/order-tracker/protocol"
)

type Side = protocol.Side

const (
	Buy  Side = protocol.SideBuy
	Sell Side = protocol.SideSell
)

// Order is the state of one resting order in the book.
// Quantity is the only field mutated in place; it may reach zero
// through trades without the order leaving the book.
type Order struct {
	ID       int64
	Product  int64
	Side     Side
	Quantity int64
	Price    int64
}

// NewOrderFromMessage builds a resting order from a validated "new" message.
func NewOrderFromMessage(msg *protocol.Message) *Order {
	return &Order{
		ID:       msg.ID,
		Product:  msg.Product,
		Side:     msg.Side,
		Quantity: msg.Quantity,
		Price:    msg.Price,
	}
}
