package queries

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"flightdeals/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Op int

const (
	OpEq Op = iota + 1
	OpIn
	OpContains
	// OpRange is addressed as <key>From / <key>To; both bounds are inclusive.
	OpRange
	// OpTier accepts all | premium | free. With ExpiryColumn set, premium means
	// the flag is set and the expiry is absent or still in the future.
	OpTier
)

type Kind int

const (
	KindString Kind = iota + 1
	KindInt
	KindBool
	KindTime
	KindDecimal
	KindUUID
)

type Field struct {
	Column       string
	Op           Op
	Kind         Kind
	Enum         []string
	ExpiryColumn string
}

type Sort struct {
	Column string
	Desc   bool
}

type Schema struct {
	Entity      string
	Fields      map[string]Field
	Sortable    map[string]string
	DefaultSort Sort
}

// Predicate is a compiled, typed filter condition. The same slice is rendered
// to SQL by the postgres store and evaluated by Matches in memory.
type Predicate struct {
	Column string
	Op     Op
	Values []any
	Lo, Hi any
	// OpTier
	Premium      bool
	ExpiryColumn string
	Now          time.Time
}

const (
	tierAll     = "all"
	tierPremium = "premium"
	tierFree    = "free"

	suffixFrom = "From"
	suffixTo   = "To"
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, format string, args ...any) error {
	return errs.Validation(&ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)})
}

// Compile turns raw query filters into predicates. Unknown keys and
// unparseable values are rejected rather than ignored.
func Compile(schema Schema, filters map[string][]string, now time.Time) ([]Predicate, error) {
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	preds := make([]Predicate, 0, len(keys))
	ranges := map[string]int{}

	for _, key := range keys {
		raw := filters[key]
		if f, ok := schema.Fields[key]; ok {
			if f.Op == OpRange {
				return nil, invalid(key, "use %s%s or %s%s", key, suffixFrom, key, suffixTo)
			}
			pred, skip, err := compileField(key, f, raw, now)
			if err != nil {
				return nil, err
			}
			if !skip {
				preds = append(preds, pred)
			}
			continue
		}

		base, upper, ok := splitRangeKey(key)
		f, known := schema.Fields[base]
		if !ok || !known || f.Op != OpRange {
			return nil, invalid(key, "unknown filter")
		}
		value, err := single(key, raw)
		if err != nil {
			return nil, err
		}
		bound, err := parseValue(key, f.Kind, value)
		if err != nil {
			return nil, err
		}
		if f.Kind == KindTime && upper && isDateOnly(value) {
			bound = bound.(time.Time).Add(24*time.Hour - time.Nanosecond)
		}

		idx, seen := ranges[base]
		if !seen {
			preds = append(preds, Predicate{Column: f.Column, Op: OpRange})
			idx = len(preds) - 1
			ranges[base] = idx
		}
		if upper {
			preds[idx].Hi = bound
		} else {
			preds[idx].Lo = bound
		}
	}

	for base, idx := range ranges {
		p := preds[idx]
		if p.Lo != nil && p.Hi != nil && CompareValues(p.Lo, p.Hi) > 0 {
			return nil, invalid(base, "lower bound exceeds upper bound")
		}
	}
	return preds, nil
}

func compileField(key string, f Field, raw []string, now time.Time) (Predicate, bool, error) {
	pred := Predicate{Column: f.Column, Op: f.Op}

	switch f.Op {
	case OpTier:
		value, err := single(key, raw)
		if err != nil {
			return pred, false, err
		}
		switch strings.ToLower(value) {
		case tierAll:
			return pred, true, nil
		case tierPremium:
			pred.Premium = true
		case tierFree:
			pred.Premium = false
		default:
			return pred, false, invalid(key, "must be one of all, premium, free")
		}
		pred.ExpiryColumn = f.ExpiryColumn
		pred.Now = now
		return pred, false, nil

	case OpIn:
		for _, r := range raw {
			for _, part := range strings.Split(r, ",") {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				if len(f.Enum) > 0 && !contains(f.Enum, strings.ToLower(part)) {
					return pred, false, invalid(key, "unsupported value %q", part)
				}
				if len(f.Enum) > 0 {
					part = strings.ToLower(part)
				}
				v, err := parseValue(key, f.Kind, part)
				if err != nil {
					return pred, false, err
				}
				pred.Values = append(pred.Values, v)
			}
		}
		if len(pred.Values) == 0 {
			return pred, false, invalid(key, "requires a value")
		}
		return pred, false, nil

	case OpContains:
		value, err := single(key, raw)
		if err != nil {
			return pred, false, err
		}
		pred.Values = []any{value}
		return pred, false, nil

	default:
		value, err := single(key, raw)
		if err != nil {
			return pred, false, err
		}
		v, err := parseValue(key, f.Kind, value)
		if err != nil {
			return pred, false, err
		}
		pred.Values = []any{v}
		return pred, false, nil
	}
}

func splitRangeKey(key string) (string, bool, bool) {
	switch {
	case strings.HasSuffix(key, suffixFrom) && len(key) > len(suffixFrom):
		return strings.TrimSuffix(key, suffixFrom), false, true
	case strings.HasSuffix(key, suffixTo) && len(key) > len(suffixTo):
		return strings.TrimSuffix(key, suffixTo), true, true
	}
	return "", false, false
}

func single(key string, raw []string) (string, error) {
	if len(raw) != 1 {
		return "", invalid(key, "expects exactly one value")
	}
	v := strings.TrimSpace(raw[0])
	if v == "" {
		return "", invalid(key, "requires a value")
	}
	return v, nil
}

func parseValue(key string, kind Kind, value string) (any, error) {
	switch kind {
	case KindInt:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, invalid(key, "not an integer: %q", value)
		}
		return n, nil
	case KindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, invalid(key, "not a boolean: %q", value)
		}
		return b, nil
	case KindTime:
		if t, err := time.Parse(time.RFC3339, value); err == nil {
			return t, nil
		}
		t, err := time.Parse(time.DateOnly, value)
		if err != nil {
			return nil, invalid(key, "not a date: %q", value)
		}
		return t, nil
	case KindDecimal:
		d, err := decimal.NewFromString(value)
		if err != nil {
			return nil, invalid(key, "not a number: %q", value)
		}
		return d, nil
	case KindUUID:
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, invalid(key, "not a uuid: %q", value)
		}
		return id, nil
	default:
		return value, nil
	}
}

func isDateOnly(value string) bool {
	_, err := time.Parse(time.DateOnly, value)
	return err == nil
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

// ResolveSort validates the requested sort against the schema. An empty field
// falls back to the schema default; an empty direction means descending.
func ResolveSort(schema Schema, field, direction string) (Sort, error) {
	s := schema.DefaultSort
	if field != "" {
		col, ok := schema.Sortable[field]
		if !ok {
			return Sort{}, invalid("sortField", "cannot sort by %q", field)
		}
		s = Sort{Column: col, Desc: true}
	}
	switch strings.ToLower(direction) {
	case "":
	case "asc":
		s.Desc = false
	case "desc":
		s.Desc = true
	default:
		return Sort{}, invalid("sortDirection", "must be asc or desc")
	}
	return s, nil
}
