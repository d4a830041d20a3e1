package api

import (
	"context"
	"encoding/json"
	"fmt"

	"bettero/internal/interval"
	"bettero/internal/model"
)

// FinancialSummary fetches the headline balance/income/expense figures.
func (c *Client) FinancialSummary(ctx context.Context) (model.FinancialSummary, error) {
	body, err := c.get(ctx, "/summary", nil)
	if err != nil {
		return model.FinancialSummary{}, err
	}
	var summary model.FinancialSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return model.FinancialSummary{}, fmt.Errorf("api: decoding summary: %w", err)
	}
	return summary, nil
}

// FullSummary fetches the interval bucket structure driving the expense
// analysis charts.
func (c *Client) FullSummary(ctx context.Context) (interval.BucketMap, error) {
	body, err := c.get(ctx, "/full_summary", nil)
	if err != nil {
		return nil, err
	}
	var buckets interval.BucketMap
	if err := json.Unmarshal(body, &buckets); err != nil {
		return nil, fmt.Errorf("api: decoding full summary: %w", err)
	}
	return buckets, nil
}
