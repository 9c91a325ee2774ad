package track

import (
	"bufio"
	"io"

	"github.com/rs/xid"
	"go.uber.org/zap"

	"github.com/0x5487/order-tracker/protocol"
)

// Tracker consumes one input line at a time, routes it to the matching
// handler and keeps the run-wide error chain. Strictly single threaded:
// each message is applied to completion before the next is read.
type Tracker struct {
	cfg       Config
	book      *OrderBook
	counts    *TradeCounts
	errs      *ErrorChain
	out       io.Writer
	log       *zap.Logger
	processed uint64
}

// NewTracker creates a tracker writing its reports to out.
func NewTracker(cfg Config, out io.Writer) *Tracker {
	if out == nil {
		out = io.Discard
	}

	return &Tracker{
		cfg:    cfg,
		book:   NewOrderBook(),
		counts: NewTradeCounts(),
		errs:   &ErrorChain{},
		out:    out,
		log:    logger.With(zap.String("run_id", xid.New().String())),
	}
}

// Book returns the live order book.
func (t *Tracker) Book() *OrderBook {
	return t.book
}

// Counts returns the per-product trade aggregates.
func (t *Tracker) Counts() *TradeCounts {
	return t.counts
}

// Errors returns the accumulated error chain of the run.
func (t *Tracker) Errors() *ErrorChain {
	return t.errs
}

// Processed returns the number of lines consumed so far, valid or not.
func (t *Tracker) Processed() uint64 {
	return t.processed
}

// Run processes every line from r, then writes the end-of-stream
// report. It returns the accumulated error chain; the run itself never
// aborts on a recoverable error.
func (t *Tracker) Run(r io.Reader) *ErrorChain {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		t.Process(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.errs.Appendf(-1, "failed reading input: %s", err)
	}

	t.Finish()
	return t.errs
}

// Process applies one raw input line. A malformed line is recorded on
// the error chain and skipped; the line still counts toward the
// periodic dump cadence.
func (t *Tracker) Process(line string) {
	msg, err := protocol.ParseLine(line)
	if err != nil {
		t.errs.Append(-1, err.Error())
	} else {
		switch msg.Action {
		case protocol.ActionNew:
			t.handleNew(msg)
		case protocol.ActionCancel:
			t.handleCancel(msg)
		case protocol.ActionModify:
			t.handleModify(msg)
		case protocol.ActionTrade:
			t.handleTrade(msg)
		}
	}

	t.processed++
	if !t.cfg.Quiet && t.cfg.DumpInterval > 0 && t.processed%uint64(t.cfg.DumpInterval) == 0 {
		t.dumpBook()
	}
}

// Finish writes the end-of-stream report: the final book, then the
// potential-match set when non-empty.
func (t *Tracker) Finish() {
	t.dumpBook()

	potentials := t.book.Resolve()
	if potentials.Len() > 0 {
		t.writePotentials(potentials)
	}

	t.log.Info("run complete",
		zap.Uint64("lines", t.processed),
		zap.Int("live_orders", t.book.Len()),
		zap.Int("traded_products", t.counts.Len()),
		zap.Int("potential_matches", potentials.Len()),
		zap.Int("errors", t.errs.Len()))
}

func (t *Tracker) handleNew(msg *protocol.Message) {
	order := NewOrderFromMessage(msg)
	if !t.book.Insert(order) {
		t.errs.Appendf(-1, "failed to add new order to order book - duplicate; order id <%d>", msg.ID)
		return
	}

	t.log.Debug("order inserted",
		zap.Int64("id", order.ID),
		zap.Int64("product", order.Product),
		zap.String("side", order.Side.String()),
		zap.Int64("quantity", order.Quantity),
		zap.Int64("price", order.Price))
}

func (t *Tracker) handleCancel(msg *protocol.Message) {
	if !t.book.RemoveByID(msg.ID) {
		t.errs.Appendf(-1, "failed to cancel order - not found; order id <%d>", msg.ID)
		return
	}

	t.log.Debug("order cancelled", zap.Int64("id", msg.ID))
}

func (t *Tracker) handleModify(msg *protocol.Message) {
	order, ok := t.book.FindByID(msg.ID)
	if !ok {
		t.errs.Appendf(-1, "failed to modify order - not found; order id <%d>", msg.ID)
		return
	}

	// The message quantity replaces the resting quantity verbatim; it
	// is not a delta. Price and side are validated upstream but play no
	// role here.
	order.Quantity = msg.Quantity

	t.log.Debug("order modified",
		zap.Int64("id", order.ID),
		zap.Int64("quantity", order.Quantity))
}

func (t *Tracker) handleTrade(msg *protocol.Message) {
	if err := t.book.ExecuteTrade(msg.Product, msg.Quantity, msg.Price); err != nil {
		t.errs.Append(-1, err.Error())
		return
	}

	count := t.counts.Record(msg.Product, msg.Quantity, msg.Price)
	if !t.cfg.Quiet {
		t.writeTradeSummary(msg, count)
	}

	t.log.Debug("trade committed",
		zap.Int64("product", msg.Product),
		zap.Int64("quantity", msg.Quantity),
		zap.Int64("price", msg.Price),
		zap.Int64("aggregate_count", count.Count))
}
