package catalog

import (
	"math"
	"slices"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/listenupapp/bookcatalog/internal/domain"
	"github.com/listenupapp/bookcatalog/internal/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// FromJSON builds a catalog from a JSON array of record objects.
//
// Malformed JSON, or a top-level value that is not an array, is a parse
// error. Each element then goes through the same validation as Add; the
// first invalid element aborts construction and no catalog is returned.
func FromJSON(data []byte, opts Options) (*Catalog, error) {
	c := newEmpty(opts)
	if err := c.ImportJSON(data); err != nil {
		return nil, err
	}
	return c, nil
}

// ImportJSON appends the records of a JSON array to the catalog, in order.
// Every element is decoded and validated before any is inserted, so on
// error the catalog is left exactly as it was.
func (c *Catalog) ImportJSON(data []byte) error {
	elements, err := splitArray(data)
	if err != nil {
		return err
	}

	records := make([]domain.Record, 0, len(elements))
	for i, raw := range elements {
		r, err := decodeRecord(raw)
		if err == nil {
			err = c.validator.Validate(r)
		}
		if err != nil {
			return errors.Wrapf(err, errors.CodeValidation, "invalid record at index %d", i)
		}
		records = append(records, r)
	}

	for _, r := range records {
		c.insert(r)
	}

	c.logger.Debug("records imported", "imported", len(records), "records", c.Len(), "genres", len(c.genreCounts))
	return nil
}

// splitArray returns the raw elements of a top-level JSON array.
func splitArray(data []byte) ([]jsoniter.RawMessage, error) {
	if !json.Valid(data) {
		var v any
		cause := json.Unmarshal(data, &v)
		return nil, errors.Wrap(cause, errors.CodeParse, "error parsing JSON")
	}

	iter := json.BorrowIterator(data)
	kind := iter.WhatIsNext()
	json.ReturnIterator(iter)
	if kind != jsoniter.ArrayValue {
		return nil, errors.Parse("error parsing JSON: expected an array of records")
	}

	var elements []jsoniter.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return nil, errors.Wrap(err, errors.CodeParse, "error parsing JSON")
	}
	return elements, nil
}

// decodeRecord checks the JSON shape of one element: an object whose text
// fields are strings and whose year is an integral number. Presence and
// emptiness of text fields are left to the validator.
func decodeRecord(raw jsoniter.RawMessage) (domain.Record, error) {
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return domain.Record{}, errors.Validation("invalid record: expected an object")
	}

	problems := make(map[string]string)
	text := func(key string) string {
		v, ok := fields[key]
		if !ok || v == nil {
			return ""
		}
		s, ok := v.(string)
		if !ok {
			problems[key] = "must be a string"
		}
		return s
	}

	r := domain.Record{
		Title:  text("title"),
		Author: text("author"),
		Genre:  text("genre"),
	}

	switch v := fields["year"].(type) {
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
			problems["year"] = "must be an integer"
		} else {
			r.Year = int(v)
		}
	case nil:
		problems["year"] = "is required"
	default:
		problems["year"] = "must be a number"
	}

	if len(problems) > 0 {
		return domain.Record{}, shapeError(problems)
	}
	return r, nil
}

func shapeError(problems map[string]string) *errors.Error {
	keys := make([]string, 0, len(problems))
	for k := range problems {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + " " + problems[k]
	}
	return errors.ValidationWithDetails("validation failed: "+strings.Join(parts, ", "), problems)
}

// ToJSON serializes the records, in order, in the form FromJSON accepts.
func (c *Catalog) ToJSON() ([]byte, error) {
	return json.Marshal(c.All())
}

// MarshalJSON implements json.Marshaler.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	return c.ToJSON()
}
