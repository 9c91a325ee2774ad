package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrder(id, product int64, side Side, quantity, price int64) *Order {
	return &Order{
		ID:       id,
		Product:  product,
		Side:     side,
		Quantity: quantity,
		Price:    price,
	}
}

func collectIDs(orders []*Order) []int64 {
	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	return ids
}

func TestInsertAndFind(t *testing.T) {
	book := NewOrderBook()

	ok := book.Insert(newOrder(100, 5, Buy, 10, 1000))
	require.True(t, ok)

	order, found := book.FindByID(100)
	require.True(t, found)
	assert.Equal(t, int64(5), order.Product)
	assert.Equal(t, Buy, order.Side)
	assert.Equal(t, int64(10), order.Quantity)
	assert.Equal(t, int64(1000), order.Price)
	assert.Equal(t, 1, book.Len())
}

func TestInsertDuplicateIDLeavesBookUntouched(t *testing.T) {
	book := NewOrderBook()

	require.True(t, book.Insert(newOrder(100, 5, Buy, 10, 1000)))
	assert.False(t, book.Insert(newOrder(100, 7, Sell, 99, 2000)))

	order, found := book.FindByID(100)
	require.True(t, found)
	assert.Equal(t, int64(5), order.Product)
	assert.Equal(t, Buy, order.Side)
	assert.Equal(t, int64(10), order.Quantity)
	assert.Equal(t, 1, book.Len())
}

func TestRemoveByID(t *testing.T) {
	book := NewOrderBook()

	require.True(t, book.Insert(newOrder(100, 5, Buy, 10, 1000)))
	assert.True(t, book.RemoveByID(100))
	assert.False(t, book.RemoveByID(100))

	_, found := book.FindByID(100)
	assert.False(t, found)
	assert.Equal(t, 0, book.Len())

	// removed from the ordered views too
	visited := 0
	book.EachByProduct(func(*Order) bool {
		visited++
		return true
	})
	assert.Equal(t, 0, visited)
}

func TestRangeByCompositeOrdering(t *testing.T) {
	book := NewOrderBook()

	// out-of-order inserts; the walk must come back ascending by price
	// with arrival order (ascending id) breaking price ties
	require.True(t, book.Insert(newOrder(103, 5, Buy, 1, 1020)))
	require.True(t, book.Insert(newOrder(101, 5, Buy, 1, 1010)))
	require.True(t, book.Insert(newOrder(104, 5, Buy, 1, 1010)))
	require.True(t, book.Insert(newOrder(102, 5, Buy, 1, 1000)))

	var ids []int64
	book.RangeByComposite(5, Buy, 0, MaxPrice, func(o *Order) bool {
		ids = append(ids, o.ID)
		return true
	})

	assert.Equal(t, []int64{102, 101, 104, 103}, ids)
}

func TestRangeByCompositeBoundsAreInclusive(t *testing.T) {
	book := NewOrderBook()

	require.True(t, book.Insert(newOrder(1, 5, Sell, 1, 990)))
	require.True(t, book.Insert(newOrder(2, 5, Sell, 1, 1000)))
	require.True(t, book.Insert(newOrder(3, 5, Sell, 1, 1010)))
	require.True(t, book.Insert(newOrder(4, 5, Sell, 1, 1020)))

	var ids []int64
	book.RangeByComposite(5, Sell, 1000, 1010, func(o *Order) bool {
		ids = append(ids, o.ID)
		return true
	})

	assert.Equal(t, []int64{2, 3}, ids)
}

func TestRangeByCompositeIsolatesProductAndSide(t *testing.T) {
	book := NewOrderBook()

	require.True(t, book.Insert(newOrder(1, 5, Buy, 1, 1000)))
	require.True(t, book.Insert(newOrder(2, 5, Sell, 1, 1000)))
	require.True(t, book.Insert(newOrder(3, 6, Buy, 1, 1000)))

	var ids []int64
	book.RangeByComposite(5, Buy, 0, MaxPrice, func(o *Order) bool {
		ids = append(ids, o.ID)
		return true
	})

	assert.Equal(t, []int64{1}, ids)
}

func TestIterateProduct(t *testing.T) {
	book := NewOrderBook()

	require.True(t, book.Insert(newOrder(103, 5, Buy, 1, 900)))
	require.True(t, book.Insert(newOrder(101, 5, Sell, 1, 1100)))
	require.True(t, book.Insert(newOrder(102, 6, Buy, 1, 800)))

	var ids []int64
	book.IterateProduct(5, func(o *Order) bool {
		ids = append(ids, o.ID)
		return true
	})

	assert.Equal(t, []int64{101, 103}, ids)
}

func TestEachByProductOrdersAcrossProducts(t *testing.T) {
	book := NewOrderBook()

	require.True(t, book.Insert(newOrder(200, 7, Buy, 1, 900)))
	require.True(t, book.Insert(newOrder(101, 5, Sell, 1, 1100)))
	require.True(t, book.Insert(newOrder(100, 5, Buy, 1, 800)))

	var ids []int64
	book.EachByProduct(func(o *Order) bool {
		ids = append(ids, o.ID)
		return true
	})

	assert.Equal(t, []int64{100, 101, 200}, ids)
}

func TestRepriceByIDReindexesCompositeView(t *testing.T) {
	book := NewOrderBook()

	require.True(t, book.Insert(newOrder(1, 5, Sell, 1, 900)))
	require.True(t, book.Insert(newOrder(2, 5, Sell, 1, 1000)))

	require.NoError(t, book.RepriceByID(1, 1100))

	var ids []int64
	book.RangeByComposite(5, Sell, 0, MaxPrice, func(o *Order) bool {
		ids = append(ids, o.ID)
		return true
	})

	assert.Equal(t, []int64{2, 1}, ids)

	order, _ := book.FindByID(1)
	assert.Equal(t, int64(1100), order.Price)
}

func TestRepriceByIDValidation(t *testing.T) {
	book := NewOrderBook()
	require.True(t, book.Insert(newOrder(1, 5, Sell, 1, 900)))

	assert.ErrorIs(t, book.RepriceByID(1, 0), ErrInvalidParam)
	assert.ErrorIs(t, book.RepriceByID(99, 1000), ErrNotFound)
	assert.NoError(t, book.RepriceByID(1, 900))
}

func TestStats(t *testing.T) {
	book := NewOrderBook()

	require.True(t, book.Insert(newOrder(1, 5, Buy, 1, 900)))
	require.True(t, book.Insert(newOrder(2, 5, Buy, 1, 910)))
	require.True(t, book.Insert(newOrder(3, 5, Sell, 1, 1100)))

	stats := book.Stats()
	assert.Equal(t, int64(3), stats.OrderCount)
	assert.Equal(t, int64(2), stats.BuyCount)
	assert.Equal(t, int64(1), stats.SellCount)

	book.RemoveByID(2)
	stats = book.Stats()
	assert.Equal(t, int64(1), stats.BuyCount)
}
