package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/tradingiq/bybit-client/types"
)

// Shape identifies which of the known frame layouts a frame matched.
type Shape int

const (
	ShapeAck Shape = iota
	ShapeOrderbookSnapshot
	ShapeOrderbookDelta
	ShapeTrade
	ShapeInsurance
	ShapeInstrumentInfoSnapshot
	ShapeInstrumentInfoDelta
	ShapeKline
	ShapeLiquidation
	ShapePosition
	ShapeExecution
	ShapeOrder
	ShapeStopOrder
)

var shapeNames = [...]string{
	ShapeAck:                    "ack",
	ShapeOrderbookSnapshot:      "orderbook_snapshot",
	ShapeOrderbookDelta:         "orderbook_delta",
	ShapeTrade:                  "trade",
	ShapeInsurance:              "insurance",
	ShapeInstrumentInfoSnapshot: "instrument_info_snapshot",
	ShapeInstrumentInfoDelta:    "instrument_info_delta",
	ShapeKline:                  "kline",
	ShapeLiquidation:            "liquidation",
	ShapePosition:               "position",
	ShapeExecution:              "execution",
	ShapeOrder:                  "order",
	ShapeStopOrder:              "stop_order",
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return fmt.Sprintf("shape(%d)", int(s))
	}
	return shapeNames[s]
}

// Response is a classified inbound frame. Ack is set only for ShapeAck;
// data shapes carry their events in wire order.
type Response struct {
	Shape  Shape
	Topic  string
	Ack    *types.RequestAck
	Events []types.Event
}

// Classify matches frame against the known shapes in order and decodes the
// first one whose required fields are all present.
func Classify(frame []byte) (*Response, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(frame, &raw); err != nil {
		return nil, &DecodeError{Frame: frame, Err: err}
	}

	for _, s := range shapes {
		if !matches(s.typ, raw) {
			continue
		}
		resp, err := s.decode(raw)
		if err != nil {
			return nil, &DecodeError{Frame: frame, Err: fmt.Errorf("%s: %w", s.kind, err)}
		}
		resp.Shape = s.kind
		return resp, nil
	}

	return nil, &DecodeError{Frame: frame, Err: ErrUnrecognizedFrame}
}
