package websocket

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"sync"

	"github.com/tradingiq/bybit-client/types"
)

type shape struct {
	kind   Shape
	typ    reflect.Type
	decode func(json.RawMessage) (*Response, error)
}

// shapes is tried top to bottom. Earlier entries must not be satisfiable by
// frames meant for later ones.
var shapes = []shape{
	newShape(ShapeAck, func(v *types.RequestAck) *Response {
		return &Response{Ack: v}
	}),
	newShape(ShapeOrderbookSnapshot, func(v *types.OrderbookSnapshotResponse) *Response {
		return &Response{Topic: v.Topic, Events: eventsOf(v.Data)}
	}),
	newShape(ShapeOrderbookDelta, func(v *types.OrderbookDeltaResponse) *Response {
		return &Response{Topic: v.Topic, Events: []types.Event{v.Data}}
	}),
	newShape(ShapeTrade, func(v *types.TradeResponse) *Response {
		return &Response{Topic: v.Topic, Events: eventsOf(v.Data)}
	}),
	newShape(ShapeInsurance, func(v *types.InsuranceResponse) *Response {
		return &Response{Topic: v.Topic, Events: eventsOf(v.Data)}
	}),
	newShape(ShapeInstrumentInfoSnapshot, func(v *types.InstrumentInfoSnapshotResponse) *Response {
		return &Response{Topic: v.Topic, Events: []types.Event{v.Data}}
	}),
	newShape(ShapeInstrumentInfoDelta, func(v *types.InstrumentInfoDeltaResponse) *Response {
		return &Response{Topic: v.Topic, Events: []types.Event{v.Data}}
	}),
	newShape(ShapeKline, func(v *types.KlineResponse) *Response {
		return &Response{Topic: v.Topic, Events: eventsOf(v.Data)}
	}),
	newShape(ShapeLiquidation, func(v *types.LiquidationResponse) *Response {
		return &Response{Topic: v.Topic, Events: []types.Event{v.Data}}
	}),
	newShape(ShapePosition, func(v *types.PositionResponse) *Response {
		return &Response{Topic: v.Topic, Events: eventsOf(v.Data)}
	}),
	newShape(ShapeExecution, func(v *types.ExecutionResponse) *Response {
		return &Response{Topic: v.Topic, Events: eventsOf(v.Data)}
	}),
	newShape(ShapeOrder, func(v *types.OrderResponse) *Response {
		return &Response{Topic: v.Topic, Events: eventsOf(v.Data)}
	}),
	newShape(ShapeStopOrder, func(v *types.StopOrderResponse) *Response {
		return &Response{Topic: v.Topic, Events: eventsOf(v.Data)}
	}),
}

// strictTypes reject objects carrying keys they do not declare.
var strictTypes = map[reflect.Type]bool{
	reflect.TypeOf(types.Liquidation{}): true,
}

func newShape[T any](kind Shape, build func(*T) *Response) shape {
	return shape{
		kind: kind,
		typ:  reflect.TypeOf((*T)(nil)).Elem(),
		decode: func(raw json.RawMessage) (*Response, error) {
			v := new(T)
			if err := json.Unmarshal(raw, v); err != nil {
				return nil, err
			}
			return build(v), nil
		},
	}
}

func eventsOf[T types.Event](items []T) []types.Event {
	events := make([]types.Event, len(items))
	for i, item := range items {
		events[i] = item
	}
	return events
}

var unmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()

type fieldInfo struct {
	name     string
	typ      reflect.Type
	optional bool
}

var fieldCache sync.Map // map[reflect.Type][]fieldInfo

func fieldsOf(t reflect.Type) []fieldInfo {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]fieldInfo)
	}

	fields := make([]fieldInfo, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		fields = append(fields, fieldInfo{
			name:     name,
			typ:      f.Type,
			optional: f.Type.Kind() == reflect.Pointer || hasOption(opts, "omitempty") || hasOption(opts, "omitzero"),
		})
	}

	cached, _ := fieldCache.LoadOrStore(t, fields)
	return cached.([]fieldInfo)
}

func hasOption(opts, option string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == option {
			return true
		}
	}
	return false
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// matches reports whether raw has the structure of t: every required field
// is present and non-null, objects are objects and arrays are arrays.
// Scalar values are left to the decoder.
func matches(t reflect.Type, raw json.RawMessage) bool {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if reflect.PointerTo(t).Implements(unmarshalerType) {
		return true
	}

	switch t.Kind() {
	case reflect.Struct:
		var object map[string]json.RawMessage
		if err := json.Unmarshal(raw, &object); err != nil || object == nil {
			return false
		}

		fields := fieldsOf(t)
		for _, f := range fields {
			value, ok := object[f.name]
			if !ok || isNull(value) {
				if f.optional {
					continue
				}
				return false
			}
			if !matches(f.typ, value) {
				return false
			}
		}

		if strictTypes[t] {
			for key := range object {
				if !declares(fields, key) {
					return false
				}
			}
		}
		return true

	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return true
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return false
		}
		for _, item := range items {
			if !matches(t.Elem(), item) {
				return false
			}
		}
		return true

	case reflect.Map:
		var object map[string]json.RawMessage
		if err := json.Unmarshal(raw, &object); err != nil {
			return false
		}
		for _, value := range object {
			if !matches(t.Elem(), value) {
				return false
			}
		}
		return true

	default:
		return true
	}
}

func declares(fields []fieldInfo, key string) bool {
	for _, f := range fields {
		if f.name == key {
			return true
		}
	}
	return false
}
