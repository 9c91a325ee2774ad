package track

import (
	"math"

	"github.com/huandu/skiplist"
)

// MaxPrice is the upper bound used for at-or-above composite range scans.
const MaxPrice = int64(math.MaxInt64)

// compositeKey orders the matching view: ascending by product, side and
// price, with the order id as the arrival-order tie break for equal
// prices. Quantity is never part of a key, so trades mutate orders in
// place without reindexing.
type compositeKey struct {
	product int64
	side    Side
	price   int64
	id      int64
}

// productKey orders the reporting view by product, then arrival order.
type productKey struct {
	product int64
	id      int64
}

// BookStats contains counters describing the current book contents.
type BookStats struct {
	OrderCount int64
	BuyCount   int64
	SellCount  int64
}

// OrderBook owns every live order and keeps three synchronized access
// paths over the same records: unique by id, ordered by product for
// reporting, and ordered by (product, side, price) for matching scans.
type OrderBook struct {
	orders      map[int64]*Order
	byProduct   *skiplist.SkipList
	byComposite *skiplist.SkipList
	buyCount    int64
	sellCount   int64
}

// NewOrderBook creates an empty order book.
func NewOrderBook() *OrderBook {
	return &OrderBook{
		orders: make(map[int64]*Order),
		byProduct: skiplist.New(skiplist.GreaterThanFunc(func(lhs, rhs any) int {
			k1, _ := lhs.(productKey)
			k2, _ := rhs.(productKey)

			if k1.product != k2.product {
				if k1.product < k2.product {
					return -1
				}
				return 1
			}
			if k1.id != k2.id {
				if k1.id < k2.id {
					return -1
				}
				return 1
			}
			return 0
		})),
		byComposite: skiplist.New(skiplist.GreaterThanFunc(func(lhs, rhs any) int {
			k1, _ := lhs.(compositeKey)
			k2, _ := rhs.(compositeKey)

			if k1.product != k2.product {
				if k1.product < k2.product {
					return -1
				}
				return 1
			}
			if k1.side != k2.side {
				if k1.side < k2.side {
					return -1
				}
				return 1
			}
			if k1.price != k2.price {
				if k1.price < k2.price {
					return -1
				}
				return 1
			}
			if k1.id != k2.id {
				if k1.id < k2.id {
					return -1
				}
				return 1
			}
			return 0
		})),
	}
}

// Insert adds an order to all views. It returns false and leaves the
// book untouched when the id is already live.
func (b *OrderBook) Insert(order *Order) bool {
	if _, ok := b.orders[order.ID]; ok {
		return false
	}

	// The composite and product keys embed the unique id, so neither
	// Set below can collide once the id check passed.
	b.orders[order.ID] = order
	b.byProduct.Set(productKey{product: order.Product, id: order.ID}, order)
	b.byComposite.Set(b.compositeKeyOf(order), order)

	if order.Side == Buy {
		b.buyCount++
	} else {
		b.sellCount++
	}
	return true
}

// FindByID returns the live order with the given id.
func (b *OrderBook) FindByID(id int64) (*Order, bool) {
	order, ok := b.orders[id]
	return order, ok
}

// RemoveByID removes the order from all views. It returns false when
// the id is not live.
func (b *OrderBook) RemoveByID(id int64) bool {
	order, ok := b.orders[id]
	if !ok {
		return false
	}

	delete(b.orders, id)
	b.byProduct.Remove(productKey{product: order.Product, id: order.ID})
	b.byComposite.Remove(b.compositeKeyOf(order))

	if order.Side == Buy {
		b.buyCount--
	} else {
		b.sellCount--
	}
	return true
}

// RepriceByID changes an order's price. Price is part of the composite
// key, so the entry is removed and reinserted rather than mutated in
// place; skipping that would silently corrupt the matching order.
func (b *OrderBook) RepriceByID(id int64, newPrice int64) error {
	if newPrice <= 0 {
		return ErrInvalidParam
	}

	order, ok := b.orders[id]
	if !ok {
		return ErrNotFound
	}
	if order.Price == newPrice {
		return nil
	}

	b.byComposite.Remove(b.compositeKeyOf(order))
	order.Price = newPrice
	b.byComposite.Set(b.compositeKeyOf(order), order)
	return nil
}

// RangeByComposite walks the orders of one product and side with price
// inside [priceLow, priceHigh], ascending by price then arrival order.
// The walk stops early when fn returns false. Callbacks may mutate
// Quantity but no key field.
func (b *OrderBook) RangeByComposite(product int64, side Side, priceLow, priceHigh int64, fn func(*Order) bool) {
	start := compositeKey{product: product, side: side, price: priceLow}

	for el := b.byComposite.Find(start); el != nil; el = el.Next() {
		key, _ := el.Key().(compositeKey)
		if key.product != product || key.side != side || key.price > priceHigh {
			return
		}

		order, _ := el.Value.(*Order)
		if !fn(order) {
			return
		}
	}
}

// IterateProduct walks the orders of one product in arrival order.
func (b *OrderBook) IterateProduct(product int64, fn func(*Order) bool) {
	for el := b.byProduct.Find(productKey{product: product}); el != nil; el = el.Next() {
		key, _ := el.Key().(productKey)
		if key.product != product {
			return
		}

		order, _ := el.Value.(*Order)
		if !fn(order) {
			return
		}
	}
}

// EachByProduct walks the whole book ordered by product, then arrival
// order within a product. Used for reporting.
func (b *OrderBook) EachByProduct(fn func(*Order) bool) {
	for el := b.byProduct.Front(); el != nil; el = el.Next() {
		order, _ := el.Value.(*Order)
		if !fn(order) {
			return
		}
	}
}

// Len returns the number of live orders.
func (b *OrderBook) Len() int {
	return len(b.orders)
}

// Stats returns usage counters for the book.
func (b *OrderBook) Stats() BookStats {
	return BookStats{
		OrderCount: int64(len(b.orders)),
		BuyCount:   b.buyCount,
		SellCount:  b.sellCount,
	}
}

func (b *OrderBook) compositeKeyOf(order *Order) compositeKey {
	return compositeKey{
		product: order.Product,
		side:    order.Side,
		price:   order.Price,
		id:      order.ID,
	}
}
