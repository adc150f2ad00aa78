// File: supabase/query.go
package supabase

import (
	"context"
	"net/http"
	"net/url"
)

// ------------------- query builder -------------------

// QueryBuilder accumulates filters for one request against one collection.
// The surface matches what the application actually uses: select, insert,
// equality filters, ordering, and an expect-exactly-one-row mode.
type QueryBuilder struct {
	client *Client
	table  string
	params url.Values
	token  string
	single bool
}

// Select names the columns to return ("*" for all).
func (q *QueryBuilder) Select(columns string) *QueryBuilder {
	q.params.Set("select", columns)
	return q
}

// Eq filters rows where column equals value.
func (q *QueryBuilder) Eq(column, value string) *QueryBuilder {
	q.params.Set(column, "eq."+value)
	return q
}

// Order asks the store to sort rows by column. The store's order is final;
// callers never re-sort.
func (q *QueryBuilder) Order(column string, ascending bool) *QueryBuilder {
	direction := "desc"
	if ascending {
		direction = "asc"
	}
	q.params.Set("order", column+"."+direction)
	return q
}

// Single makes the query expect exactly one row. Zero rows surfaces as
// ErrNoRows instead of an empty list.
func (q *QueryBuilder) Single() *QueryBuilder {
	q.single = true
	return q
}

// Auth attaches a user's access token so the store applies that user's
// row-level access instead of the anonymous role's.
func (q *QueryBuilder) Auth(accessToken string) *QueryBuilder {
	q.token = accessToken
	return q
}

// ------------------- terminal operations -------------------

// Get executes the query as a read and decodes the rows into dest.
// With Single(), dest receives one object rather than a list.
func (q *QueryBuilder) Get(ctx context.Context, dest any) error {
	header := q.header()
	if q.single {
		header.Set("Accept", "application/vnd.pgrst.object+json")
	}

	err := q.client.do(ctx, http.MethodGet, "/rest/v1/"+q.table, q.params, header, nil, dest)
	if q.single && isNoRows(err) {
		return ErrNoRows
	}
	return err
}

// Insert writes rows to the collection. When dest is non-nil the inserted
// rows are returned in it (Prefer: return=representation); otherwise the
// store is told not to echo them back.
func (q *QueryBuilder) Insert(ctx context.Context, rows any, dest any) error {
	header := q.header()
	if dest != nil {
		header.Set("Prefer", "return=representation")
	} else {
		header.Set("Prefer", "return=minimal")
	}

	return q.client.do(ctx, http.MethodPost, "/rest/v1/"+q.table, q.params, header, rows, dest)
}

func (q *QueryBuilder) header() http.Header {
	header := http.Header{}
	if q.token != "" {
		header.Set("Authorization", "Bearer "+q.token)
	}
	return header
}
