package dcbor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// FromJSON converts a JSON document into a Value. Numbers route through
// the numeric reducer (integral values become integers regardless of a
// trailing ".0"), object keys are NFC-normalized text and take the
// canonical map order, and duplicate object keys are rejected rather
// than last-wins.
func FromJSON(b []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	v, err := jsonValue(dec)
	if err != nil {
		return Value{}, err
	}
	if dec.More() {
		return Value{}, errors.New("dcbor: trailing data after JSON value")
	}
	return v, nil
}

func jsonValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			var elems []Value
			for dec.More() {
				e, err := jsonValue(dec)
				if err != nil {
					return Value{}, err
				}
				elems = append(elems, e)
			}
			if _, err := dec.Token(); err != nil { // closing ']'
				return Value{}, err
			}
			return Value{it: &item{typ: ArrayType, arr: elems}}, nil
		case '{':
			mb := NewMapBuilder()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return Value{}, fmt.Errorf("dcbor: unexpected JSON object key %v", keyTok)
				}
				val, err := jsonValue(dec)
				if err != nil {
					return Value{}, err
				}
				if err := mb.Insert(Str(key), val); err != nil {
					return Value{}, fmt.Errorf("dcbor: JSON object key %q: %w", key, err)
				}
			}
			if _, err := dec.Token(); err != nil { // closing '}'
				return Value{}, err
			}
			return FromMap(mb.Build()), nil
		default:
			return Value{}, fmt.Errorf("dcbor: unexpected JSON delimiter %v", t)
		}
	case bool:
		return Bool(t), nil
	case string:
		return Str(t), nil
	case json.Number:
		return jsonNumber(t)
	case nil:
		return Null(), nil
	default:
		return Value{}, fmt.Errorf("dcbor: unexpected JSON token %v", tok)
	}
}

func jsonNumber(n json.Number) (Value, error) {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(i), nil
		}
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return Uint(u), nil
		}
		if x, ok := new(big.Int).SetString(s, 10); ok {
			if v, err := BigInt(x); err == nil {
				return v, nil
			}
		}
	}
	f, err := n.Float64()
	if err != nil {
		return Value{}, fmt.Errorf("dcbor: JSON number %q: %w", s, err)
	}
	return Float(f), nil
}
