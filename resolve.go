package track

import (
	"sort"
)

// PotentialSet holds the orders flagged by Resolve as residual
// counter-liquidity at stream end. Purely diagnostic.
type PotentialSet struct {
	orders map[int64]*Order
}

// Len returns the number of flagged orders.
func (ps *PotentialSet) Len() int {
	return len(ps.orders)
}

// Contains reports whether the order id was flagged.
func (ps *PotentialSet) Contains(id int64) bool {
	_, ok := ps.orders[id]
	return ok
}

// Orders returns the flagged orders in ascending id order.
func (ps *PotentialSet) Orders() []*Order {
	out := make([]*Order, 0, len(ps.orders))
	for _, order := range ps.orders {
		out = append(out, order)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Resolve scans the final book once and flags every resting order that
// could still match a live order on the other side: for a buy, sells
// priced at or below it; for a sell, buys priced at or above it. The
// scan only accounts overlap, it never mutates a quantity, so running
// it again yields the same set.
func (b *OrderBook) Resolve() *PotentialSet {
	ps := &PotentialSet{orders: make(map[int64]*Order)}

	ids := make([]int64, 0, len(b.orders))
	for id := range b.orders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		order := b.orders[id]

		remaining := order.Quantity
		if remaining == 0 {
			continue
		}

		low, high := int64(0), order.Price
		if order.Side == Sell {
			low, high = order.Price, MaxPrice
		}

		b.RangeByComposite(order.Product, order.Side.Opposite(), low, high, func(candidate *Order) bool {
			overlap := min(remaining, candidate.Quantity)
			if overlap > 0 {
				ps.orders[candidate.ID] = candidate
				remaining -= overlap
			}
			return remaining > 0
		})
	}

	return ps
}
