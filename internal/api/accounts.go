package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"bettero/internal/interval"
	"bettero/internal/model"
)

// Accounts fetches the user's account list.
func (c *Client) Accounts(ctx context.Context) ([]model.Account, error) {
	body, err := c.get(ctx, "/accounts", nil)
	if err != nil {
		return nil, err
	}
	var accounts []model.Account
	if err := json.Unmarshal(body, &accounts); err != nil {
		return nil, fmt.Errorf("api: decoding accounts: %w", err)
	}
	return accounts, nil
}

// AccountSummary fetches the interval bucket structure for one account.
func (c *Client) AccountSummary(ctx context.Context, id int) (interval.BucketMap, error) {
	body, err := c.get(ctx, fmt.Sprintf("/accounts/%d/summary", id), nil)
	if err != nil {
		return nil, err
	}
	var buckets interval.BucketMap
	if err := json.Unmarshal(body, &buckets); err != nil {
		return nil, fmt.Errorf("api: decoding account summary: %w", err)
	}
	return buckets, nil
}

// CreateAccount posts a new account after checking its invariants locally.
func (c *Client) CreateAccount(ctx context.Context, a model.Account) (model.Account, error) {
	if err := a.Validate(); err != nil {
		return model.Account{}, err
	}
	return c.writeAccount(ctx, http.MethodPost, "/accounts", a)
}

// UpdateAccount replaces the account with the given id.
func (c *Client) UpdateAccount(ctx context.Context, id int, a model.Account) (model.Account, error) {
	if err := a.Validate(); err != nil {
		return model.Account{}, err
	}
	return c.writeAccount(ctx, http.MethodPut, fmt.Sprintf("/accounts/%d", id), a)
}

// DeleteAccount removes the account with the given id.
func (c *Client) DeleteAccount(ctx context.Context, id int) error {
	_, err := c.mutate(ctx, http.MethodDelete, fmt.Sprintf("/accounts/%d", id), nil)
	return err
}

func (c *Client) writeAccount(ctx context.Context, method, path string, a model.Account) (model.Account, error) {
	body, err := c.mutate(ctx, method, path, a)
	if err != nil {
		return model.Account{}, err
	}
	var saved model.Account
	if err := json.Unmarshal(body, &saved); err != nil {
		return model.Account{}, fmt.Errorf("api: decoding account: %w", err)
	}
	return saved, nil
}
