package api

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// Intent selects the URL template for a transaction list query.
type Intent string

const (
	IntentLatest   Intent = "latest"   // newest transactions, unfiltered
	IntentCategory Intent = "category" // one category, all time
	IntentInterval Intent = "interval" // one period, all categories
	IntentBoth     Intent = "both"     // one category within one period
)

// ErrUnknownIntent rejects query intents outside the table. There is no
// silent default.
var ErrUnknownIntent = errors.New("api: unknown query intent")

// Query describes a transaction list fetch. Page is 1-based; zero means
// the first page.
type Query struct {
	Intent    Intent
	Category  string
	FirstDate string
	LastDate  string
	Page      int
}

// endpointTable maps each intent to its URL template. Endpoint construction
// is table-driven so adding an intent cannot silently fall through.
var endpointTable = map[Intent]func(q Query) (string, url.Values){
	IntentLatest: func(Query) (string, url.Values) {
		return "/transactions", url.Values{}
	},
	IntentCategory: func(q Query) (string, url.Values) {
		return "/transactions/category/" + url.PathEscape(q.Category), url.Values{}
	},
	IntentInterval: func(q Query) (string, url.Values) {
		v := url.Values{}
		v.Set("first_date", q.FirstDate)
		v.Set("last_date", q.LastDate)
		return "/transactions/interval", v
	},
	IntentBoth: func(q Query) (string, url.Values) {
		v := url.Values{}
		v.Set("category", q.Category)
		v.Set("first_date", q.FirstDate)
		v.Set("last_date", q.LastDate)
		return "/transactions/both", v
	},
}

// endpoint resolves the query to a path and parameters. Page 1 omits the
// page parameter entirely: the first page must be reachable both with and
// without an explicit ?page=1.
func (q Query) endpoint() (string, url.Values, error) {
	build, ok := endpointTable[q.Intent]
	if !ok {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownIntent, q.Intent)
	}
	path, params := build(q)
	addPage(params, q.Page)
	return path, params, nil
}

// accountEndpoint resolves an account-scoped transaction query. Accounts
// support the latest and category intents only.
func accountEndpoint(accountID int, q Query) (string, url.Values, error) {
	base := fmt.Sprintf("/accounts/%d/transactions", accountID)
	params := url.Values{}

	switch q.Intent {
	case IntentLatest:
	case IntentCategory:
		base += "/both"
		params.Set("category", q.Category)
	default:
		return "", nil, fmt.Errorf("%w: %q for account transactions", ErrUnknownIntent, q.Intent)
	}

	addPage(params, q.Page)
	return base, params, nil
}

func addPage(params url.Values, page int) {
	if page > 1 {
		params.Set("page", strconv.Itoa(page))
	}
}
