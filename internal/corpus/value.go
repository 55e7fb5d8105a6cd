package corpus

import (
	"fmt"

	"textcorpus/internal/domain"
)

// FromValue builds a corpus from an untyped value such as one decoded from
// YAML or JSON: nil, a string, a []string or a []any holding only strings.
func FromValue(v any) (*Corpus, error) {
	switch docs := v.(type) {
	case nil:
		return New(), nil
	case string:
		return New(docs), nil
	case []string:
		return New(docs...), nil
	case []any:
		texts := make([]string, 0, len(docs))
		for i, d := range docs {
			s, ok := d.(string)
			if !ok {
				return nil, fmt.Errorf("%w: constructor expects a string or an array of strings (element %d is %T)", ErrInvalidArgument, i, d)
			}
			texts = append(texts, s)
		}
		return New(texts...), nil
	}
	return nil, fmt.Errorf("%w: constructor expects a string or an array of strings, got %T", ErrInvalidArgument, v)
}

// AttributesFromValue converts an untyped list of mappings into attribute
// sets suitable for SetAttributes.
func AttributesFromValue(v any) ([]domain.Attributes, error) {
	switch items := v.(type) {
	case []domain.Attributes:
		return items, nil
	case []map[string]any:
		out := make([]domain.Attributes, len(items))
		for i, m := range items {
			out[i] = m
		}
		return out, nil
	case []any:
		out := make([]domain.Attributes, len(items))
		for i, item := range items {
			switch m := item.(type) {
			case map[string]any:
				out[i] = m
			case domain.Attributes:
				out[i] = m
			default:
				return nil, fmt.Errorf("%w: attributes element %d is %T, expected a mapping", ErrInvalidArgument, i, item)
			}
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: attributes must be an array of mappings, got %T", ErrInvalidArgument, v)
}
