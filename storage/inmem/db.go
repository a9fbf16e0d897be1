// Package inmem is a mutex-map implementation of the entity repositories.
// It backs the handler tests and local runs without a document store, and
// mirrors the store semantics: filters use the same closed algebra, missing
// records come back as nil, pagination is offset-based.
package inmem

import (
	"sort"
	"sync"
	"time"

	"github.com/shuleni/kazi/core"
	"github.com/shuleni/kazi/core/homework"
	"github.com/shuleni/kazi/core/submission"
	"github.com/shuleni/kazi/core/user"
)

type DB struct {
	mutex       sync.RWMutex
	users       map[string]*user.User
	homeworks   map[string]*homework.Homework
	submissions map[string]*submission.Submission
}

func Open() *DB {
	return &DB{
		users:       make(map[string]*user.User),
		homeworks:   make(map[string]*homework.Homework),
		submissions: make(map[string]*submission.Submission),
	}
}

// fieldFunc resolves a document field name to its value on one record.
type fieldFunc func(field string) (interface{}, bool)

func matchFilter(filter core.Filter, get fieldFunc) bool {
	for _, clause := range filter {
		val, ok := get(clause.Field)
		if !ok {
			return false
		}
		switch clause.Op {
		case core.FilterEq:
			if !equalValues(val, clause.Value) {
				return false
			}
		case core.FilterIn:
			var found bool
			for _, want := range clause.Values {
				if equalValues(val, want) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		case core.FilterRange:
			if clause.Min != nil {
				if cmp, ok := compareValues(val, clause.Min); !ok || cmp < 0 {
					return false
				}
			}
			if clause.Max != nil {
				if cmp, ok := compareValues(val, clause.Max); !ok || cmp > 0 {
					return false
				}
			}
		}
	}
	return true
}

func equalValues(a, b interface{}) bool {
	cmp, ok := compareValues(a, b)
	return ok && cmp == 0
}

// compareValues orders two loosely-typed values: JSON filter input carries
// float64/string/bool while records carry int/string/bool/time.Time.
func compareValues(a, b interface{}) (int, bool) {
	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			return compareFloats(af, bf), true
		}
		return 0, false
	}
	if at, ok := toTime(a); ok {
		if bt, ok := toTime(b); ok {
			switch {
			case at.Before(bt):
				return -1, true
			case at.After(bt):
				return 1, true
			}
			return 0, true
		}
		return 0, false
	}
	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			switch {
			case av < bv:
				return -1, true
			case av > bv:
				return 1, true
			}
			return 0, true
		}
	case bool:
		if bv, ok := b.(bool); ok {
			return compareFloats(boolToFloat(av), boolToFloat(bv)), true
		}
	}
	return 0, false
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func toTime(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		for _, format := range []string{time.RFC3339, "2006-01-02"} {
			if parsed, err := time.Parse(format, t); err == nil {
				return parsed, true
			}
		}
	}
	return time.Time{}, false
}

// sortRecords orders indices of n records by the requested keys.
func sortRecords(n int, orderings []core.Ordering, get func(i int) fieldFunc) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	if len(orderings) == 0 {
		return indices
	}

	sort.SliceStable(indices, func(i, j int) bool {
		for _, ord := range orderings {
			vi, oki := get(indices[i])(ord.Field)
			vj, okj := get(indices[j])(ord.Field)
			if !oki || !okj {
				continue
			}
			cmp, ok := compareValues(vi, vj)
			if !ok || cmp == 0 {
				continue
			}
			if ord.Ascending {
				return cmp < 0
			}
			return cmp > 0
		}
		return false
	})
	return indices
}

func paginate(indices []int, skip, limit int64) []int {
	if skip >= int64(len(indices)) {
		return nil
	}
	indices = indices[skip:]
	if limit > 0 && limit < int64(len(indices)) {
		indices = indices[:limit]
	}
	return indices
}
