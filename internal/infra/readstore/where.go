package readstore

import (
	"strconv"
	"strings"

	"flightdeals/internal/pkg/pgconv"
	"flightdeals/internal/usecase/queries"

	"github.com/shopspring/decimal"
)

// Args collects positional parameters while a statement is rendered.
type Args struct {
	values []any
}

func (a *Args) add(v any) string {
	if d, ok := v.(decimal.Decimal); ok {
		v = pgconv.DecimalToNumeric(d)
	}
	a.values = append(a.values, v)
	return "$" + strconv.Itoa(len(a.values))
}

func (a *Args) Values() []any { return a.values }

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// BuildWhere renders preds as one WHERE clause. COUNT and SELECT of a list
// both call it with the same slice. Column names come from the query schemas,
// never from request input.
func BuildWhere(preds []queries.Predicate, a *Args) string {
	if len(preds) == 0 {
		return ""
	}
	clauses := make([]string, 0, len(preds))
	for _, p := range preds {
		if c := predicateSQL(p, a); c != "" {
			clauses = append(clauses, c)
		}
	}
	if len(clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(clauses, " AND ")
}

func predicateSQL(p queries.Predicate, a *Args) string {
	switch p.Op {
	case queries.OpEq:
		return p.Column + " = " + a.add(p.Values[0])
	case queries.OpIn:
		placeholders := make([]string, len(p.Values))
		for i, v := range p.Values {
			placeholders[i] = a.add(v)
		}
		return p.Column + " IN (" + strings.Join(placeholders, ", ") + ")"
	case queries.OpContains:
		pattern := "%" + likeEscaper.Replace(p.Values[0].(string)) + "%"
		return p.Column + " ILIKE " + a.add(pattern) + ` ESCAPE '\'`
	case queries.OpRange:
		var parts []string
		if p.Lo != nil {
			parts = append(parts, p.Column+" >= "+a.add(p.Lo))
		}
		if p.Hi != nil {
			parts = append(parts, p.Column+" <= "+a.add(p.Hi))
		}
		return strings.Join(parts, " AND ")
	case queries.OpTier:
		active := p.Column
		if p.ExpiryColumn != "" {
			active = "(" + p.Column + " AND (" + p.ExpiryColumn + " IS NULL OR " + p.ExpiryColumn + " > " + a.add(p.Now) + "))"
		}
		if p.Premium {
			return active
		}
		return "NOT " + active
	}
	return ""
}

// OrderBy mirrors queries.LessBy: NULLs sort lowest and id breaks ties in the
// same direction.
func OrderBy(s queries.Sort) string {
	if s.Desc {
		return " ORDER BY " + s.Column + " DESC NULLS LAST, " + queries.ColumnID + " DESC"
	}
	return " ORDER BY " + s.Column + " ASC NULLS FIRST, " + queries.ColumnID + " ASC"
}
