package core

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type FilterOp string

const (
	FilterEq    FilterOp = "eq"
	FilterIn    FilterOp = "in"
	FilterRange FilterOp = "range"
)

type (
	// FilterClause is one condition of the closed filter algebra: exact-match
	// equality, set-membership or an inclusive range. Clauses are ANDed.
	FilterClause struct {
		Field  string
		Op     FilterOp
		Value  interface{}   // FilterEq
		Values []interface{} // FilterIn
		Min    interface{}   // FilterRange; nil = unbounded
		Max    interface{}   // FilterRange; nil = unbounded
	}

	Filter []FilterClause

	// Ordering is a single sort key; Field holds the document field name.
	Ordering struct {
		Field     string
		Ascending bool
	}

	// Projection restricts (or excludes) a single field of returned records.
	Projection struct {
		Field   string
		Include bool
	}

	// ListOptions is the store-level form of a validated ListQuery.
	ListOptions struct {
		Filter Filter
		Sort   []Ordering
		Skip   int64
		Limit  int64
		Select []Projection
	}
)

// ListQuery is the input of every findAll procedure. Page and Limit are
// pointers so that an absent value defaults while an explicit 0 is rejected.
type ListQuery struct {
	Page   *int                   `json:"page"`
	Limit  *int                   `json:"limit"`
	Sort   string                 `json:"sort"`
	Select string                 `json:"select"`
	Filter map[string]interface{} `json:"filter"`

	filter Filter
}

func (q *ListQuery) Validate() error {
	if q.Page == nil {
		page := defaultPage
		q.Page = &page
	} else if *q.Page < 1 {
		return NewValidationError(
			errors.New("invalid query"),
			FieldError{Field: "page", Error: "must be at least 1"},
		)
	}
	if q.Limit == nil {
		limit := defaultLimit
		q.Limit = &limit
	} else if *q.Limit < 1 || *q.Limit > maxLimit {
		return NewValidationError(
			errors.New("invalid query"),
			FieldError{Field: "limit", Error: fmt.Sprintf("must be between 1 and %d", maxLimit)},
		)
	}
	q.Sort = CleanString(q.Sort)
	q.Select = CleanString(q.Select)

	filter, err := ParseFilter(q.Filter)
	if err != nil {
		return err
	}
	q.filter = filter
	return nil
}

// Options translates a validated query into store-level options.
// Pagination is offset-based: skip = (page-1) * limit.
func (q *ListQuery) Options() ListOptions {
	return ListOptions{
		Filter: q.filter,
		Sort:   ParseSort(q.Sort),
		Skip:   int64(*q.Page-1) * int64(*q.Limit),
		Limit:  int64(*q.Limit),
		Select: ParseSelect(q.Select),
	}
}

// IDQuery is the input of every findById/delete procedure.
type IDQuery struct {
	ID     string `json:"id" validate:"required"`
	Select string `json:"select"`
}

func (q *IDQuery) Validate(validate *validator.Validate) error {
	q.ID = CleanString(q.ID)
	q.Select = CleanString(q.Select)
	return validate.Struct(q)
}

// ParseFilter checks a raw filter object against the supported algebra.
// Scalars mean equality, arrays set-membership; the only object forms
// allowed are {"in": [...]} and {"gte": .., "lte": ..} (any subset).
// Anything else is rejected before it can reach the store.
func ParseFilter(raw map[string]interface{}) (Filter, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	filter := make(Filter, 0, len(raw))
	for field, val := range raw {
		clause, err := parseClause(field, val)
		if err != nil {
			return nil, err
		}
		filter = append(filter, clause)
	}
	// map iteration order is random; keep clauses deterministic
	sort.Slice(filter, func(i, j int) bool { return filter[i].Field < filter[j].Field })
	return filter, nil
}

func parseClause(field string, val interface{}) (FilterClause, error) {
	badFilter := func() (FilterClause, error) {
		return FilterClause{}, NewValidationError(
			errors.New("invalid query"),
			FieldError{Field: "filter." + field, Error: "unsupported filter expression"},
		)
	}

	switch v := val.(type) {
	case nil, string, bool, float64:
		return FilterClause{Field: field, Op: FilterEq, Value: v}, nil
	case []interface{}:
		return FilterClause{Field: field, Op: FilterIn, Values: v}, nil
	case map[string]interface{}:
		if in, ok := v["in"]; ok {
			vals, ok := in.([]interface{})
			if !ok || len(v) != 1 {
				return badFilter()
			}
			return FilterClause{Field: field, Op: FilterIn, Values: vals}, nil
		}
		clause := FilterClause{Field: field, Op: FilterRange}
		for op, bound := range v {
			switch op {
			case "gte":
				clause.Min = bound
			case "lte":
				clause.Max = bound
			default:
				return badFilter()
			}
		}
		if clause.Min == nil && clause.Max == nil {
			return badFilter()
		}
		return clause, nil
	default:
		return badFilter()
	}
}

// ParseSort parses a mongoose-style sort expression: field names separated
// by spaces or commas, "-" prefix for descending. e.g. "-assignDate,title"
func ParseSort(s string) []Ordering {
	if s == "" {
		return nil
	}

	var orderings []Ordering
	for _, field := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
		descending := strings.HasPrefix(field, "-")
		if descending {
			field = field[1:] // drop "-"
		}
		if field == "" {
			continue
		}
		orderings = append(orderings, Ordering{Field: field, Ascending: !descending})
	}
	return orderings
}

// ParseSelect parses a mongoose-style projection: field names separated by
// spaces or commas, "-" prefix to exclude. Empty means all fields.
func ParseSelect(s string) []Projection {
	if s == "" {
		return nil
	}

	var projections []Projection
	for _, field := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
		exclude := strings.HasPrefix(field, "-")
		if exclude {
			field = field[1:]
		}
		if field == "" {
			continue
		}
		projections = append(projections, Projection{Field: field, Include: !exclude})
	}
	return projections
}
