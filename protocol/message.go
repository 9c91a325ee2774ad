package protocol

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Message is one validated input record.
// Field presence depends on the action:
//
//	new    N,<product>,<id>,<side>,<quantity>,<price>
//	cancel R,<id>,<side>,<quantity>,<price>
//	modify M,<id>,<side>,<quantity>,<price>
//	trade  X,<product>,<quantity>,<price>
//
// Absent fields are left zero.
type Message struct {
	Action   Action
	Product  int64
	ID       int64
	Side     Side
	Quantity int64
	Price    int64
}

// field counts per action, including the action code itself
const (
	fieldsNew          = 6
	fieldsCancelModify = 5
	fieldsTrade        = 4
)

// ParseLine parses and validates a single comma-delimited input line.
// Surrounding whitespace is trimmed from every field. Any violation
// rejects the whole line: the returned message is nil and the error
// describes the first problem found.
func ParseLine(line string) (*Message, error) {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	if len(fields) == 0 || fields[0] == "" {
		return nil, errors.Errorf("cannot parse invalid line <%s>", line)
	}

	msg := &Message{}

	switch fields[0] {
	case "N":
		msg.Action = ActionNew
	case "R":
		msg.Action = ActionCancel
	case "M":
		msg.Action = ActionModify
	case "X":
		msg.Action = ActionTrade
	default:
		return nil, errors.Errorf("cannot parse, invalid action <%s>", line)
	}

	switch msg.Action {
	case ActionNew:
		if len(fields) != fieldsNew {
			return nil, errors.Errorf("cannot parse, invalid tokens for new line <%s>", line)
		}
	case ActionCancel, ActionModify:
		if len(fields) != fieldsCancelModify {
			return nil, errors.Errorf("cannot parse, invalid tokens for cancel/modify <%s>", line)
		}
	case ActionTrade:
		if len(fields) != fieldsTrade {
			return nil, errors.Errorf("cannot parse, invalid tokens for trade <%s>", line)
		}
	}

	var err error
	next := 1

	if msg.Action == ActionNew || msg.Action == ActionTrade {
		if msg.Product, err = parseField(fields[next], "product id", line); err != nil {
			return nil, err
		}
		next++
	}

	if msg.Action != ActionTrade {
		if msg.ID, err = parseField(fields[next], "order id", line); err != nil {
			return nil, err
		}
		next++

		switch fields[next] {
		case "B":
			msg.Side = SideBuy
		case "S":
			msg.Side = SideSell
		default:
			return nil, errors.Errorf("invalid buy/sell indicator for line <%s>", line)
		}
		next++
	}

	if msg.Quantity, err = parseField(fields[next], "quantity", line); err != nil {
		return nil, err
	}
	next++
	if msg.Price, err = parseField(fields[next], "price", line); err != nil {
		return nil, err
	}

	return msg, nil
}

// parseField parses one numeric field, which must be a strictly
// positive integer.
func parseField(field, name, line string) (int64, error) {
	if field == "" {
		return 0, errors.Errorf("empty %s for line <%s>", name, line)
	}

	v, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, errors.Errorf("invalid %s for line <%s>", name, line)
	}

	if v <= 0 {
		return 0, errors.Errorf("non-positive %s for line <%s>", name, line)
	}

	return v, nil
}
