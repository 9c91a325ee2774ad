package track

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// reduction records one touched order and its pre-reduction quantity so
// an aborted trade can be compensated exactly.
type reduction struct {
	order   *Order
	prevQty int64
}

// ExecuteTrade applies a trade report (product, quantity, price) against
// the book. Resting quantities on both sides are reduced greedily in
// price-then-arrival order; if either side cannot absorb the full
// quantity, every reduction already made is rolled back and the book is
// left exactly as it was. A nil return means the trade committed.
func (b *OrderBook) ExecuteTrade(product, quantity, price int64) error {
	if quantity <= 0 || price <= 0 {
		return ErrInvalidParam
	}

	buyTouched, remaining := b.reduceSide(product, Buy, quantity, price)
	if remaining != 0 {
		rollback(buyTouched)
		logger.Debug("trade rolled back",
			zap.Int64("product", product),
			zap.Int64("quantity", quantity),
			zap.Int64("price", price),
			zap.String("side", "buy"),
			zap.Int64("unfilled", remaining))
		return errors.Wrapf(ErrTradeImbalance,
			"invalid trade (X) transaction; quantity not zero for buy side; product <%d> price <%d> quantity <%d>",
			product, price, quantity)
	}

	// The sell side scans the same at-or-above price range as the buy
	// side; the bound is not mirrored.
	sellTouched, remaining := b.reduceSide(product, Sell, quantity, price)
	if remaining != 0 {
		rollback(sellTouched)
		rollback(buyTouched)
		logger.Debug("trade rolled back",
			zap.Int64("product", product),
			zap.Int64("quantity", quantity),
			zap.Int64("price", price),
			zap.String("side", "sell"),
			zap.Int64("unfilled", remaining))
		return errors.Wrapf(ErrTradeImbalance,
			"invalid trade (X) transaction; quantity not zero for sell side; product <%d> price <%d> quantity <%d>",
			product, price, quantity)
	}

	return nil
}

// reduceSide walks the qualifying range [price, MaxPrice] of one side
// and reduces resting quantities until the trade quantity is consumed or
// the range is exhausted. It returns every touched order with its prior
// quantity, and the unconsumed remainder.
func (b *OrderBook) reduceSide(product int64, side Side, quantity, price int64) ([]reduction, int64) {
	touched := make([]reduction, 0, 8)
	remaining := quantity

	b.RangeByComposite(product, side, price, MaxPrice, func(order *Order) bool {
		touched = append(touched, reduction{order: order, prevQty: order.Quantity})

		reduceBy := min(remaining, order.Quantity)
		order.Quantity -= reduceBy
		remaining -= reduceBy

		return remaining > 0
	})

	return touched, remaining
}

// rollback restores every touched order to its recorded quantity.
func rollback(touched []reduction) {
	for _, r := range touched {
		r.order.Quantity = r.prevQty
	}
}
