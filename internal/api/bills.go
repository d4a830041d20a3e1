package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"bettero/internal/model"
)

// Bills fetches the user's bill list.
func (c *Client) Bills(ctx context.Context) ([]model.Bill, error) {
	body, err := c.get(ctx, "/bills", nil)
	if err != nil {
		return nil, err
	}
	var bills []model.Bill
	if err := json.Unmarshal(body, &bills); err != nil {
		return nil, fmt.Errorf("api: decoding bills: %w", err)
	}
	return bills, nil
}

// OverdueMessages fetches reminders for bills past their due date.
func (c *Client) OverdueMessages(ctx context.Context) ([]model.OverdueMessage, error) {
	body, err := c.get(ctx, "/overdue_message", nil)
	if err != nil {
		return nil, err
	}
	var messages []model.OverdueMessage
	if err := json.Unmarshal(body, &messages); err != nil {
		return nil, fmt.Errorf("api: decoding overdue messages: %w", err)
	}
	return messages, nil
}

// CreateBill posts a new bill.
func (c *Client) CreateBill(ctx context.Context, b model.Bill) (model.Bill, error) {
	if err := b.Validate(); err != nil {
		return model.Bill{}, err
	}
	return c.writeBill(ctx, http.MethodPost, "/bills", b)
}

// UpdateBill replaces the bill with the given id.
func (c *Client) UpdateBill(ctx context.Context, b model.Bill) (model.Bill, error) {
	if err := b.Validate(); err != nil {
		return model.Bill{}, err
	}
	return c.writeBill(ctx, http.MethodPut, fmt.Sprintf("/bills/%d", b.ID), b)
}

// DeleteBill removes the bill with the given id. Deleting a paid bill does
// not undo the transaction the server created for it; callers warn the user
// first.
func (c *Client) DeleteBill(ctx context.Context, id int) error {
	_, err := c.mutate(ctx, http.MethodDelete, fmt.Sprintf("/bills/%d", id), nil)
	return err
}

func (c *Client) writeBill(ctx context.Context, method, path string, b model.Bill) (model.Bill, error) {
	body, err := c.mutate(ctx, method, path, b)
	if err != nil {
		return model.Bill{}, err
	}
	var saved model.Bill
	if err := json.Unmarshal(body, &saved); err != nil {
		return model.Bill{}, fmt.Errorf("api: decoding bill: %w", err)
	}
	return saved, nil
}
