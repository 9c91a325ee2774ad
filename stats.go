package track

import (
	"github.com/igrmk/treemap/v2"
)

// TradeCount is the running aggregate of matched quantity at the most
// recent trade price for one product.
type TradeCount struct {
	Count int64
	Price int64
}

// TradeCounts keeps per-product trade aggregates, ordered by product id
// for reporting.
type TradeCounts struct {
	counts *treemap.TreeMap[int64, TradeCount]
}

// NewTradeCounts creates an empty aggregate table.
func NewTradeCounts() *TradeCounts {
	return &TradeCounts{
		counts: treemap.New[int64, TradeCount](),
	}
}

// Record folds one committed trade into the product's aggregate and
// returns the resulting value. A first trade creates the aggregate, a
// trade at the same price accumulates the count, and a price change
// resets the aggregate to the incoming trade.
func (tc *TradeCounts) Record(product, quantity, price int64) TradeCount {
	current, ok := tc.counts.Get(product)

	switch {
	case !ok:
		current = TradeCount{Count: quantity, Price: price}
	case current.Price != price:
		current = TradeCount{Count: quantity, Price: price}
	default:
		current.Count += quantity
	}

	tc.counts.Set(product, current)
	return current
}

// Get returns the aggregate for one product.
func (tc *TradeCounts) Get(product int64) (TradeCount, bool) {
	return tc.counts.Get(product)
}

// Len returns the number of products with at least one committed trade.
func (tc *TradeCounts) Len() int {
	return tc.counts.Len()
}

// Each walks the aggregates in ascending product order.
func (tc *TradeCounts) Each(fn func(product int64, count TradeCount) bool) {
	for it := tc.counts.Iterator(); it.Valid(); it.Next() {
		if !fn(it.Key(), it.Value()) {
			return
		}
	}
}
