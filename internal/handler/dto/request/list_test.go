//go:build unit

package request_test

import (
	"math"
	"net/url"
	"testing"

	"flightdeals/internal/handler/dto/request"
	"flightdeals/internal/pkg/errs"
	"flightdeals/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		testCases := []struct {
			name  string
			query string
			want  queries.ListRequest
		}{
			{
				name:  "empty query uses defaults",
				query: "",
				want:  queries.ListRequest{Page: 1, Filters: map[string][]string{}},
			},
			{
				name:  "reserved keys and filters are split",
				query: "page=3&pageSize=100&sortField=discount&sortDirection=asc&from=Lisbon&isPremium=premium",
				want: queries.ListRequest{
					Page:          3,
					PageSize:      100,
					SortField:     "discount",
					SortDirection: "asc",
					Filters:       map[string][]string{"from": {"Lisbon"}, "isPremium": {"premium"}},
				},
			},
			{
				name:  "repeated filter keys keep every value",
				query: "status=paid&status=refunded",
				want:  queries.ListRequest{Page: 1, Filters: map[string][]string{"status": {"paid", "refunded"}}},
			},
			{
				name:  "largest page is accepted and left to the engine",
				query: "page=9223372036854775807&pageSize=10",
				want:  queries.ListRequest{Page: math.MaxInt64, PageSize: 10, Filters: map[string][]string{}},
			},
			{
				name:  "empty filter values are passed through for the engine to reject",
				query: "from=",
				want:  queries.ListRequest{Page: 1, Filters: map[string][]string{"from": {""}}},
			},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				values, err := url.ParseQuery(tc.query)
				require.NoError(t, err)

				got, err := request.ParseList(values)
				require.NoError(t, err)
				if diff := cmp.Diff(tc.want, got); diff != "" {
					t.Errorf("ParseList mismatch (-want +got):\n%s", diff)
				}
			})
		}
	})

	t.Run("NG", func(t *testing.T) {
		testCases := []struct {
			name      string
			query     string
			wantField string
		}{
			{name: "page zero", query: "page=0", wantField: request.KeyPage},
			{name: "negative page", query: "page=-2", wantField: request.KeyPage},
			{name: "page not a number", query: "page=two", wantField: request.KeyPage},
			{name: "page size above max", query: "pageSize=101", wantField: request.KeyPageSize},
			{name: "page size zero", query: "pageSize=0", wantField: request.KeyPageSize},
			{name: "page beyond int range", query: "page=9223372036854775808", wantField: request.KeyPage},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				values, err := url.ParseQuery(tc.query)
				require.NoError(t, err)

				_, err = request.ParseList(values)
				require.Error(t, err)
				assert.True(t, errs.Is(err, errs.ErrValidation))

				var verr *queries.ValidationError
				require.True(t, errs.As(err, &verr))
				assert.Equal(t, tc.wantField, verr.Field)
			})
		}
	})
}
