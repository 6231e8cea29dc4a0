package request

import (
	"net/url"
	"strconv"

	"flightdeals/internal/pkg/errs"
	"flightdeals/internal/usecase/queries"
)

// Reserved list keys. Every other query key is a filter.
const (
	KeyPage          = "page"
	KeyPageSize      = "pageSize"
	KeySortField     = "sortField"
	KeySortDirection = "sortDirection"

	MaxPageSize = 100
)

var reserved = map[string]bool{KeyPage: true, KeyPageSize: true, KeySortField: true, KeySortDirection: true}

// ParseList splits a query string into paging, sorting and raw filters. Paging
// values are validated here; filters are compiled by the query engine.
func ParseList(values url.Values) (queries.ListRequest, error) {
	req := queries.ListRequest{Filters: make(map[string][]string)}

	var err error
	if req.Page, err = positiveInt(values, KeyPage, 1, 0); err != nil {
		return queries.ListRequest{}, err
	}
	if req.PageSize, err = positiveInt(values, KeyPageSize, 0, MaxPageSize); err != nil {
		return queries.ListRequest{}, err
	}
	req.SortField = values.Get(KeySortField)
	req.SortDirection = values.Get(KeySortDirection)

	for k, v := range values {
		if !reserved[k] {
			req.Filters[k] = v
		}
	}
	return req, nil
}

// positiveInt returns def when key is absent. upper of 0 means unbounded.
func positiveInt(values url.Values, key string, def, upper int) (int, error) {
	raw := values.Get(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || (upper > 0 && n > upper) {
		reason := "must be a positive integer"
		if upper > 0 {
			reason = "must be between 1 and " + strconv.Itoa(upper)
		}
		return 0, errs.Validation(&queries.ValidationError{Field: key, Reason: reason})
	}
	return n, nil
}
