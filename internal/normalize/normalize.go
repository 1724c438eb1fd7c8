// Package normalize turns raw source entries into domain.Item values.
//
// A raw entry is either a structured record (a JSON object decoded as a map,
// or an Item) or a scalar. Records contribute value, label and metadata keys;
// scalars become both value and label.
package normalize

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/spf13/cast"

	"typeahead/internal/domain"
)

const (
	keyValue    = "value"
	keyLabel    = "label"
	keyMetadata = "metadata"
)

// Normalize converts one raw entry into a canonical item
func Normalize(raw any) domain.Item {
	switch r := raw.(type) {
	case domain.Item:
		return fromFields(r.Value, r.Value != "", r.Label, r.Label != "", r.Metadata)
	case *domain.Item:
		if r == nil {
			return domain.Item{}
		}
		return Normalize(*r)
	case map[string]any:
		return fromRecord(r)
	case map[string]string:
		rec := make(map[string]any, len(r))
		for k, v := range r {
			rec[k] = v
		}
		return fromRecord(rec)
	default:
		s := stringify(raw)
		return domain.Item{Value: s, Label: s}
	}
}

// List normalizes every element of a slice or array, preserving order.
// Anything that is not a sequence yields an empty list.
func List(raw any) []domain.Item {
	if raw == nil {
		return []domain.Item{}
	}

	switch r := raw.(type) {
	case []domain.Item:
		items := make([]domain.Item, len(r))
		for i, it := range r {
			items[i] = Normalize(it)
		}
		return items
	case []any:
		items := make([]domain.Item, len(r))
		for i, it := range r {
			items[i] = Normalize(it)
		}
		return items
	case string, []byte:
		return []domain.Item{}
	}

	v := reflect.ValueOf(raw)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return []domain.Item{}
	}
	items := make([]domain.Item, v.Len())
	for i := 0; i < v.Len(); i++ {
		items[i] = Normalize(v.Index(i).Interface())
	}
	return items
}

func fromRecord(rec map[string]any) domain.Item {
	value, hasValue := rec[keyValue]
	label, hasLabel := rec[keyLabel]
	hasValue = hasValue && value != nil
	hasLabel = hasLabel && label != nil

	var metadata any
	if m, ok := rec[keyMetadata]; ok {
		metadata = m
	}

	var valueStr, labelStr string
	if hasValue {
		valueStr = stringify(value)
	}
	if hasLabel {
		labelStr = stringify(label)
	}
	return fromFields(valueStr, hasValue, labelStr, hasLabel, metadata)
}

func fromFields(value string, hasValue bool, label string, hasLabel bool, metadata any) domain.Item {
	item := domain.Item{Metadata: metadata}
	switch {
	case hasValue:
		item.Value = value
	case hasLabel:
		item.Value = label
	}
	if hasLabel {
		item.Label = label
	} else {
		item.Label = item.Value
	}
	return item
}

// stringify renders a scalar the way it would read in an input field.
// Values cast cannot handle (nested objects, arrays) fall back to JSON.
func stringify(v any) string {
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	if b, err := json.Marshal(v); err == nil {
		return string(b)
	}
	return fmt.Sprint(v)
}
