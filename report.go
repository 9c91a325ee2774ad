package track

import (
	"fmt"
	"io"

	"github.com/0x5487/order-tracker/protocol"
)

// writeOrder renders one resting order in the input record layout.
func writeOrder(w io.Writer, order *Order) {
	fmt.Fprintf(w, "%s, %d, %d, %s, %d, %d\n",
		protocol.ActionNew, order.Product, order.ID, order.Side, order.Quantity, order.Price)
}

// dumpBook writes every live order ordered by product, then arrival
// order, followed by a blank separator line.
func (t *Tracker) dumpBook() {
	t.book.EachByProduct(func(order *Order) bool {
		writeOrder(t.out, order)
		return true
	})
	fmt.Fprintln(t.out)
}

// writeTradeSummary writes the one-line summary of a committed trade
// and the resulting per-product aggregate.
func (t *Tracker) writeTradeSummary(msg *protocol.Message, count TradeCount) {
	fmt.Fprintf(t.out, "%s,%d,%d,%d => product %d: %d@%d\n",
		protocol.ActionTrade, msg.Product, msg.Quantity, msg.Price,
		msg.Product, count.Count, count.Price)
}

// writePotentials writes the reconciliation result in ascending id
// order.
func (t *Tracker) writePotentials(ps *PotentialSet) {
	fmt.Fprintln(t.out, "potential matches:")
	for _, order := range ps.Orders() {
		writeOrder(t.out, order)
	}
}
