package restdb

import (
	"encoding/json"
	"net/url"
	"strings"
)

type Direction int

const (
	Ascending  Direction = 1
	Descending Direction = -1
)

// Filter holds exact-match equality conditions. The store's richer operator
// syntax is deliberately not modeled; nothing in this service needs it.
type Filter map[string]string

type Sort struct {
	Field     string
	Direction Direction
}

// Query describes a collection list call. Fields, when set, restricts the
// returned documents to those fields (plus the store's own _id).
type Query struct {
	Filter Filter
	Sort   *Sort
	Fields []string
}

// encode serializes the query into the store's wire convention: JSON objects
// URL-encoded into the q, sort and h parameters. This is the only place that
// representation exists.
func (q Query) encode() (url.Values, error) {
	values := url.Values{}

	if len(q.Filter) > 0 {
		filter := make(map[string]string, len(q.Filter))
		for field, value := range q.Filter {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			filter[field] = value
		}
		if len(filter) > 0 {
			raw, err := json.Marshal(filter)
			if err != nil {
				return nil, err
			}
			values.Set("q", string(raw))
		}
	}

	if q.Sort != nil && strings.TrimSpace(q.Sort.Field) != "" {
		raw, err := json.Marshal(map[string]int{q.Sort.Field: int(q.Sort.Direction)})
		if err != nil {
			return nil, err
		}
		values.Set("sort", string(raw))
	}

	if len(q.Fields) > 0 {
		fields := make(map[string]int, len(q.Fields))
		for _, field := range q.Fields {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			fields[field] = 1
		}
		if len(fields) > 0 {
			raw, err := json.Marshal(map[string]any{"$fields": fields})
			if err != nil {
				return nil, err
			}
			values.Set("h", string(raw))
		}
	}

	return values, nil
}
