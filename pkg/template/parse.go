// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/pklformation/pklformation/pkg/orderedmap"
)

// ParseJSON parses JSON bytes (the pkl evaluator's output format) into a
// Document, preserving object key order. Duplicate keys within one object
// are rejected since mapping keys must be unique within a node.
func ParseJSON(data []byte) (*Document, error) {
	// duplicate names pass through the decoder; parseObject reports
	// them with the offending key
	dec := jsontext.NewDecoder(bytes.NewReader(data), jsontext.AllowDuplicateNames(true))

	val, err := parseValue(dec)
	if err != nil {
		return nil, err
	}

	// anything after the top-level value is garbage
	if _, err := dec.ReadToken(); err == nil {
		return nil, fmt.Errorf("Expected single top-level value, but found trailing content")
	}

	return NewDocument(val), nil
}

func parseValue(dec *jsontext.Decoder) (interface{}, error) {
	switch dec.PeekKind() {
	case '{':
		return parseObject(dec)
	case '[':
		return parseArray(dec)
	default:
		return parseScalar(dec)
	}
}

func parseObject(dec *jsontext.Decoder) (*orderedmap.Map, error) {
	if _, err := dec.ReadToken(); err != nil { // '{'
		return nil, fmt.Errorf("Reading object open: %w", err)
	}

	result := orderedmap.NewMap()
	for dec.PeekKind() != '}' {
		var key string
		err := json.UnmarshalDecode(dec, &key)
		if err != nil {
			return nil, fmt.Errorf("Reading object key: %w", err)
		}
		if _, found := result.Get(key); found {
			return nil, fmt.Errorf("Expected object keys to be unique, but found duplicate key '%s'", key)
		}
		val, err := parseValue(dec)
		if err != nil {
			return nil, fmt.Errorf("Reading value for key '%s': %w", key, err)
		}
		result.Set(key, val)
	}

	if _, err := dec.ReadToken(); err != nil { // '}'
		return nil, fmt.Errorf("Reading object close: %w", err)
	}
	return result, nil
}

func parseArray(dec *jsontext.Decoder) ([]interface{}, error) {
	if _, err := dec.ReadToken(); err != nil { // '['
		return nil, fmt.Errorf("Reading array open: %w", err)
	}

	result := []interface{}{}
	for dec.PeekKind() != ']' {
		item, err := parseValue(dec)
		if err != nil {
			return nil, fmt.Errorf("Reading array item: %w", err)
		}
		result = append(result, item)
	}

	if _, err := dec.ReadToken(); err != nil { // ']'
		return nil, fmt.Errorf("Reading array close: %w", err)
	}
	return result, nil
}

// parseScalar keeps integers as int64 so that values like AutoScaling
// counts survive emission without turning into floats.
func parseScalar(dec *jsontext.Decoder) (interface{}, error) {
	raw, err := dec.ReadValue()
	if err != nil {
		return nil, fmt.Errorf("Reading value: %w", err)
	}

	switch raw.Kind() {
	case '"':
		var str string
		err := json.Unmarshal(raw, &str)
		if err != nil {
			return nil, fmt.Errorf("Unquoting string: %w", err)
		}
		return str, nil

	case '0':
		text := string(raw)
		if !bytes.ContainsAny(raw, ".eE") {
			i, err := strconv.ParseInt(text, 10, 64)
			if err == nil {
				return i, nil
			}
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("Parsing number '%s': %w", text, err)
		}
		return f, nil

	case 't':
		return true, nil
	case 'f':
		return false, nil
	case 'n':
		return nil, nil

	default:
		return nil, fmt.Errorf("Unexpected value of kind '%v'", raw.Kind())
	}
}
