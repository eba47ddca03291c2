// Copyright 2026 The Pklformation Authors.
// SPDX-License-Identifier: Apache-2.0

package template

import (
	"bytes"
	"fmt"
	"io"

	"github.com/go-json-experiment/json/jsontext"
	"gopkg.in/yaml.v3"

	"github.com/pklformation/pklformation/pkg/orderedmap"
)

// Format selects the emission syntax for a template.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// NewFormat validates a format selector as given on the command line.
func NewFormat(val string) (Format, error) {
	switch Format(val) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, Format("yml"):
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("Expected format to be one of 'json', 'yaml', but was '%s'", val)
	}
}

// SerializationError indicates that a document holds a value that cannot
// be represented in the requested output format.
type SerializationError struct {
	Format Format
	Msg    string
}

func (e SerializationError) Error() string {
	return fmt.Sprintf("Serializing document as %s: %s", e.Format, e.Msg)
}

// DocumentPrinter emits a single document to its writer.
type DocumentPrinter interface {
	Print(*Document) error
}

// Emit serializes doc in the given format. Bytes are produced entirely
// in memory so that callers never observe a partially written output.
func Emit(doc *Document, format Format) ([]byte, error) {
	buf := bytes.NewBuffer(nil)

	var printer DocumentPrinter
	switch format {
	case FormatJSON:
		printer = NewJSONPrinter(buf)
	case FormatYAML:
		printer = NewYAMLPrinter(buf)
	default:
		return nil, fmt.Errorf("Unknown format '%s'", format)
	}

	err := printer.Print(doc)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type YAMLPrinter struct {
	buf io.Writer
}

var _ DocumentPrinter = &YAMLPrinter{}

func NewYAMLPrinter(writer io.Writer) *YAMLPrinter {
	return &YAMLPrinter{writer}
}

func (p *YAMLPrinter) Print(item *Document) error {
	node, err := yamlNode(item.Value)
	if err != nil {
		return err
	}

	bs, err := yaml.Marshal(node)
	if err != nil {
		return SerializationError{FormatYAML, err.Error()}
	}
	_, err = p.buf.Write(bs)
	return err
}

func yamlNode(val interface{}) (*yaml.Node, error) {
	switch typedVal := val.(type) {
	case *orderedmap.Map:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		err := typedVal.IterateErr(func(k string, v interface{}) error {
			keyNode := &yaml.Node{}
			keyNode.SetString(k)
			valNode, err := yamlNode(v)
			if err != nil {
				return err
			}
			node.Content = append(node.Content, keyNode, valNode)
			return nil
		})
		if err != nil {
			return nil, err
		}
		return node, nil

	case []interface{}:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range typedVal {
			itemNode, err := yamlNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, itemNode)
		}
		return node, nil

	case string, int64, int, float64, bool, nil:
		node := &yaml.Node{}
		err := node.Encode(typedVal)
		if err != nil {
			return nil, SerializationError{FormatYAML, err.Error()}
		}
		return node, nil

	default:
		return nil, SerializationError{FormatYAML, fmt.Sprintf("unsupported value of type %T", val)}
	}
}

type JSONPrinter struct {
	buf io.Writer
}

var _ DocumentPrinter = &JSONPrinter{}

func NewJSONPrinter(writer io.Writer) *JSONPrinter {
	return &JSONPrinter{writer}
}

func (p *JSONPrinter) Print(item *Document) error {
	buf := bytes.NewBuffer(nil)
	enc := jsontext.NewEncoder(buf, jsontext.WithIndent("  "))

	err := writeJSONValue(enc, item.Value)
	if err != nil {
		return err
	}

	// terminate with a newline like other CLI emitters do
	buf.WriteByte('\n')

	_, err = p.buf.Write(buf.Bytes())
	return err
}

func writeJSONValue(enc *jsontext.Encoder, val interface{}) error {
	switch typedVal := val.(type) {
	case *orderedmap.Map:
		err := enc.WriteToken(jsontext.BeginObject)
		if err != nil {
			return SerializationError{FormatJSON, err.Error()}
		}
		err = typedVal.IterateErr(func(k string, v interface{}) error {
			err := enc.WriteToken(jsontext.String(k))
			if err != nil {
				return SerializationError{FormatJSON, err.Error()}
			}
			return writeJSONValue(enc, v)
		})
		if err != nil {
			return err
		}
		err = enc.WriteToken(jsontext.EndObject)
		if err != nil {
			return SerializationError{FormatJSON, err.Error()}
		}
		return nil

	case []interface{}:
		err := enc.WriteToken(jsontext.BeginArray)
		if err != nil {
			return SerializationError{FormatJSON, err.Error()}
		}
		for _, item := range typedVal {
			err := writeJSONValue(enc, item)
			if err != nil {
				return err
			}
		}
		err = enc.WriteToken(jsontext.EndArray)
		if err != nil {
			return SerializationError{FormatJSON, err.Error()}
		}
		return nil

	default:
		tok, err := jsonScalarToken(typedVal)
		if err != nil {
			return err
		}
		err = enc.WriteToken(tok)
		if err != nil {
			return SerializationError{FormatJSON, err.Error()}
		}
		return nil
	}
}

func jsonScalarToken(val interface{}) (jsontext.Token, error) {
	switch typedVal := val.(type) {
	case string:
		return jsontext.String(typedVal), nil
	case int64:
		return jsontext.Int(typedVal), nil
	case int:
		return jsontext.Int(int64(typedVal)), nil
	case float64:
		return jsontext.Float(typedVal), nil
	case bool:
		return jsontext.Bool(typedVal), nil
	case nil:
		return jsontext.Null, nil
	default:
		return jsontext.Token{}, SerializationError{FormatJSON, fmt.Sprintf("unsupported value of type %T", val)}
	}
}
