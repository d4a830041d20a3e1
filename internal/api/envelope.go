package api

import (
	"encoding/json"
	"fmt"

	"bettero/internal/model"
)

// The server answers list requests with one of two envelope shapes: a bare
// resource array, or a paged {count, results} object. Both normalize to the
// same internal shape at this boundary; view code never sees the envelope.

// TransactionPage is the normalized shape every transaction list fetch
// produces, regardless of source endpoint.
type TransactionPage struct {
	Page             int
	TransactionCount int
	TransactionList  []model.Transaction
}

// pagedEnvelope mirrors the {count, results} wire shape after camelizing.
type pagedEnvelope struct {
	Count   *int            `json:"count"`
	Results json.RawMessage `json:"results"`
}

// decodeEnvelope normalizes either envelope shape into (count, results).
// data must already be camelized.
func decodeEnvelope[T any](data []byte) (int, []T, error) {
	// Paged object first: a {count, results} body is also valid JSON for
	// probing, a flat array is not an object.
	var paged pagedEnvelope
	if err := json.Unmarshal(data, &paged); err == nil && paged.Count != nil && paged.Results != nil {
		var results []T
		if err := json.Unmarshal(paged.Results, &results); err != nil {
			return 0, nil, fmt.Errorf("api: decoding paged results: %w", err)
		}
		return *paged.Count, results, nil
	}

	var flat []T
	if err := json.Unmarshal(data, &flat); err != nil {
		return 0, nil, fmt.Errorf("api: decoding list body: %w", err)
	}
	return len(flat), flat, nil
}

// transactionPage decodes a camelized list body into the normalized page
// triple. A request with no explicit page index is page 1.
func transactionPage(data []byte, page int) (TransactionPage, error) {
	if page < 1 {
		page = 1
	}
	count, results, err := decodeEnvelope[model.Transaction](data)
	if err != nil {
		return TransactionPage{}, err
	}
	if results == nil {
		results = []model.Transaction{}
	}
	return TransactionPage{
		Page:             page,
		TransactionCount: count,
		TransactionList:  results,
	}, nil
}
