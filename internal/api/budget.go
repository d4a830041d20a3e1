package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"bettero/internal/model"
)

// BudgetPlans fetches every active budget plan, keyed by interval type
// server-side (at most one plan per type).
func (c *Client) BudgetPlans(ctx context.Context) ([]model.BudgetPlan, error) {
	body, err := c.get(ctx, "/budget", nil)
	if err != nil {
		return nil, err
	}
	var plans []model.BudgetPlan
	if err := json.Unmarshal(body, &plans); err != nil {
		return nil, fmt.Errorf("api: decoding budget plans: %w", err)
	}
	return plans, nil
}

// CreateBudgetPlan posts a new plan. The composition invariant (category
// percentages summing to 100) is enforced here, before any network call.
func (c *Client) CreateBudgetPlan(ctx context.Context, p model.BudgetPlan) (model.BudgetPlan, error) {
	if err := p.Validate(); err != nil {
		return model.BudgetPlan{}, err
	}
	return c.writeBudgetPlan(ctx, http.MethodPost, "/budget", p)
}

// UpdateBudgetPlan replaces the plan for its interval type.
func (c *Client) UpdateBudgetPlan(ctx context.Context, p model.BudgetPlan) (model.BudgetPlan, error) {
	if err := p.Validate(); err != nil {
		return model.BudgetPlan{}, err
	}
	return c.writeBudgetPlan(ctx, http.MethodPut, "/budget/"+p.IntervalType, p)
}

// DeleteBudgetPlan removes the plan for the given interval type.
func (c *Client) DeleteBudgetPlan(ctx context.Context, intervalType string) error {
	if !model.ValidIntervalType(intervalType) {
		return fmt.Errorf("api: unknown interval type %q", intervalType)
	}
	_, err := c.mutate(ctx, http.MethodDelete, "/budget/"+intervalType, nil)
	return err
}

func (c *Client) writeBudgetPlan(ctx context.Context, method, path string, p model.BudgetPlan) (model.BudgetPlan, error) {
	body, err := c.mutate(ctx, method, path, p)
	if err != nil {
		return model.BudgetPlan{}, err
	}
	var saved model.BudgetPlan
	if err := json.Unmarshal(body, &saved); err != nil {
		return model.BudgetPlan{}, fmt.Errorf("api: decoding budget plan: %w", err)
	}
	return saved, nil
}
