package api

import (
	"context"
	"net/http"

	"bettero/internal/model"
)

// Transactions fetches a transaction list according to the query's intent
// and returns it as a normalized page.
func (c *Client) Transactions(ctx context.Context, q Query) (TransactionPage, error) {
	path, params, err := q.endpoint()
	if err != nil {
		return TransactionPage{}, err
	}
	body, err := c.get(ctx, path, params)
	if err != nil {
		return TransactionPage{}, err
	}
	return transactionPage(body, q.Page)
}

// AccountTransactions fetches transactions scoped to one account.
func (c *Client) AccountTransactions(ctx context.Context, accountID int, q Query) (TransactionPage, error) {
	path, params, err := accountEndpoint(accountID, q)
	if err != nil {
		return TransactionPage{}, err
	}
	body, err := c.get(ctx, path, params)
	if err != nil {
		return TransactionPage{}, err
	}
	return transactionPage(body, q.Page)
}

// CreateTransaction posts a new transaction. The server answers with the
// refreshed first page of the latest-transactions list.
func (c *Client) CreateTransaction(ctx context.Context, t model.Transaction) (TransactionPage, error) {
	if err := t.Validate(); err != nil {
		return TransactionPage{}, err
	}
	body, err := c.mutate(ctx, http.MethodPost, "/transactions", t)
	if err != nil {
		return TransactionPage{}, err
	}
	return transactionPage(body, 1)
}
