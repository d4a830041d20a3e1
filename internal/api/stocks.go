package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"bettero/internal/model"
)

// Stocks fetches the user's portfolio positions.
func (c *Client) Stocks(ctx context.Context) ([]model.Stock, error) {
	body, err := c.get(ctx, "/stocks", nil)
	if err != nil {
		return nil, err
	}
	var stocks []model.Stock
	if err := json.Unmarshal(body, &stocks); err != nil {
		return nil, fmt.Errorf("api: decoding stocks: %w", err)
	}
	return stocks, nil
}

// StockPrices fetches the price history of one symbol since the start of
// last month. An unknown symbol yields ErrNotFound; callers map that to a
// "symbol not found" state instead of a generic failure.
func (c *Client) StockPrices(ctx context.Context, symbol string) ([]model.PricePoint, error) {
	body, err := c.get(ctx, "/stocks/"+url.PathEscape(symbol), nil)
	if err != nil {
		return nil, err
	}
	var prices []model.PricePoint
	if err := json.Unmarshal(body, &prices); err != nil {
		return nil, fmt.Errorf("api: decoding stock prices: %w", err)
	}
	return prices, nil
}

// PortfolioValues fetches the portfolio's total value series since the
// start of last month.
func (c *Client) PortfolioValues(ctx context.Context) ([]model.PricePoint, error) {
	body, err := c.get(ctx, "/portfolio_value", nil)
	if err != nil {
		return nil, err
	}
	var values []model.PricePoint
	if err := json.Unmarshal(body, &values); err != nil {
		return nil, fmt.Errorf("api: decoding portfolio values: %w", err)
	}
	return values, nil
}

// CreateStock adds a position to the portfolio.
func (c *Client) CreateStock(ctx context.Context, s model.Stock) (model.Stock, error) {
	if err := s.Validate(); err != nil {
		return model.Stock{}, err
	}
	return c.writeStock(ctx, http.MethodPost, "/stocks", s)
}

// UpdateStock replaces the position for its symbol. The symbol itself is
// immutable; it only addresses the resource.
func (c *Client) UpdateStock(ctx context.Context, s model.Stock) (model.Stock, error) {
	if err := s.Validate(); err != nil {
		return model.Stock{}, err
	}
	return c.writeStock(ctx, http.MethodPut, "/stocks/"+url.PathEscape(s.Symbol), s)
}

// DeleteStock removes the position for the given symbol.
func (c *Client) DeleteStock(ctx context.Context, symbol string) error {
	_, err := c.mutate(ctx, http.MethodDelete, "/stocks/"+url.PathEscape(symbol), nil)
	return err
}

func (c *Client) writeStock(ctx context.Context, method, path string, s model.Stock) (model.Stock, error) {
	body, err := c.mutate(ctx, method, path, s)
	if err != nil {
		return model.Stock{}, err
	}
	var saved model.Stock
	if err := json.Unmarshal(body, &saved); err != nil {
		return model.Stock{}, fmt.Errorf("api: decoding stock: %w", err)
	}
	return saved, nil
}
