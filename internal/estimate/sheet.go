// Package estimate implements the line-item cost estimator: rows of
// name / quantity / price and a running total.
package estimate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/idilsaglam/tada/internal/liststate"
	"github.com/idilsaglam/tada/internal/model"
)

// Field names an editable column of a line.
type Field int

const (
	FieldName Field = iota
	FieldQuantity
	FieldPrice
)

// Fields lists the editable columns in display order.
var Fields = []Field{FieldName, FieldQuantity, FieldPrice}

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldQuantity:
		return "quantity"
	case FieldPrice:
		return "price"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// ParseField maps a column name typed on the command line to a Field.
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "name":
		return FieldName, nil
	case "quantity", "qty":
		return FieldQuantity, nil
	case "price":
		return FieldPrice, nil
	}
	return 0, fmt.Errorf("unknown field %q", s)
}

// Row is one line with its id.
type Row = liststate.Row[model.Item]

// Sheet is the estimator state.
type Sheet struct {
	list liststate.List[model.Item]
}

// New returns a sheet holding one blank line, the way the form opens.
func New() *Sheet {
	s := NewEmpty()
	s.Add()
	return s
}

// NewEmpty returns a sheet with no lines.
func NewEmpty() *Sheet { return &Sheet{} }

// Add appends a blank line and returns its id.
func (s *Sheet) Add() liststate.ID {
	return s.list.Add(model.NewItem())
}

// Remove drops the line; unknown ids are ignored.
func (s *Sheet) Remove(id liststate.ID) bool { return s.list.Remove(id) }

// Update sets one column of one line to value.
func (s *Sheet) Update(id liststate.ID, f Field, value string) bool {
	return s.list.Update(id, func(it model.Item) model.Item {
		return withField(it, f, value)
	})
}

func (s *Sheet) Get(id liststate.ID) (model.Item, bool) { return s.list.Get(id) }
func (s *Sheet) Rows() []Row                             { return s.list.Snapshot() }
func (s *Sheet) Len() int                                { return s.list.Len() }

// Subscribe forwards change notifications from the underlying list.
func (s *Sheet) Subscribe(fn func([]Row)) (cancel func()) { return s.list.Subscribe(fn) }

// Total sums Subtotal over every line.
func (s *Sheet) Total() float64 { return Total(s.list.Snapshot()) }

// Total sums Subtotal over rows.
func Total(rows []Row) float64 {
	var sum float64
	for _, r := range rows {
		sum += Subtotal(r.Value)
	}
	return sum
}

// Subtotal is quantity × price, or zero when either does not parse.
func Subtotal(it model.Item) float64 {
	q, ok := ParseAmount(it.Quantity)
	if !ok {
		return 0
	}
	p, ok := ParseAmount(it.Price)
	if !ok {
		return 0
	}
	v := q * p
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseAmount reads a number typed into a form field. Blank, malformed and
// non-finite input is rejected. Negative numbers are returned as given.
func ParseAmount(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FieldValue returns the text of column f.
func FieldValue(it model.Item, f Field) string {
	switch f {
	case FieldQuantity:
		return it.Quantity
	case FieldPrice:
		return it.Price
	}
	return it.Name
}

func withField(it model.Item, f Field, value string) model.Item {
	switch f {
	case FieldName:
		it.Name = value
	case FieldQuantity:
		it.Quantity = value
	case FieldPrice:
		it.Price = value
	}
	return it
}
