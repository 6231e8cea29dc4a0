package queries

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Columnar exposes a row by column name for in-memory evaluation. Values use
// the same Go types parseValue produces; nullable columns return nil.
type Columnar interface {
	Column(name string) any
}

func Matches(preds []Predicate, row Columnar) bool {
	for _, p := range preds {
		if !matchOne(p, row) {
			return false
		}
	}
	return true
}

func matchOne(p Predicate, row Columnar) bool {
	v := row.Column(p.Column)

	switch p.Op {
	case OpTier:
		flag, _ := v.(bool)
		active := flag
		if flag && p.ExpiryColumn != "" {
			if exp, ok := row.Column(p.ExpiryColumn).(time.Time); ok {
				active = exp.After(p.Now)
			}
		}
		return active == p.Premium
	case OpContains:
		s, ok := v.(string)
		if !ok {
			return false
		}
		return strings.Contains(strings.ToLower(s), strings.ToLower(p.Values[0].(string)))
	case OpEq, OpIn:
		if v == nil {
			return false
		}
		for _, want := range p.Values {
			if CompareValues(v, want) == 0 {
				return true
			}
		}
		return false
	case OpRange:
		if v == nil {
			return false
		}
		if p.Lo != nil && CompareValues(v, p.Lo) < 0 {
			return false
		}
		if p.Hi != nil && CompareValues(v, p.Hi) > 0 {
			return false
		}
		return true
	}
	return false
}

// CompareValues orders two values of the same column type. nil sorts first,
// mismatched types compare equal.
func CompareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	case int64:
		if y, ok := b.(int64); ok {
			return cmpOrdered(x, y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case decimal.Decimal:
		if y, ok := b.(decimal.Decimal); ok {
			return x.Cmp(y)
		}
	case uuid.UUID:
		if y, ok := b.(uuid.UUID); ok {
			return strings.Compare(x.String(), y.String())
		}
	}
	return 0
}

func cmpOrdered[T int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// LessBy orders rows by s, breaking ties on the id column so paging is stable.
func LessBy(s Sort, a, b Columnar) bool {
	c := CompareValues(a.Column(s.Column), b.Column(s.Column))
	if c == 0 {
		c = CompareValues(a.Column(ColumnID), b.Column(ColumnID))
	}
	if s.Desc {
		return c > 0
	}
	return c < 0
}

const ColumnID = "id"
