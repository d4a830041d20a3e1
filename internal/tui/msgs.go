package tui

import (
	"context"

	"bettero/internal/api"
	"bettero/internal/interval"
	"bettero/internal/model"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"
)

// Every load message carries the generation counter it was issued under.
// The app bumps the counter on each refresh and drops messages from older
// generations, so a slow response never overwrites a newer one.

// dashboardMsg delivers everything except the transaction list.
type dashboardMsg struct {
	seq       int
	summary   model.FinancialSummary
	buckets   interval.BucketMap
	accounts  []model.Account
	bills     []model.Bill
	overdue   []model.OverdueMessage
	plans     []model.BudgetPlan
	stocks    []model.Stock
	portfolio []model.PricePoint
	err       error
}

// transactionsMsg delivers one page of the transaction list.
type transactionsMsg struct {
	seq  int
	page api.TransactionPage
	err  error
}

// pricesMsg delivers the price history for one symbol.
type pricesMsg struct {
	seq    int
	symbol string
	points []model.PricePoint
	err    error
}

// actionMsg reports the outcome of a mutation (create/delete). A nil err
// with reload set triggers a full refetch.
type actionMsg struct {
	seq    int
	notice string
	reload bool
	err    error
}

// loadDashboardCmd fetches all dashboard data in parallel. The first
// failure cancels the rest, and ctx lets the app cancel the whole batch
// when a newer generation starts.
func loadDashboardCmd(ctx context.Context, client *api.Client, seq int) tea.Cmd {
	return func() tea.Msg {
		msg := dashboardMsg{seq: seq}
		g, ctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			var err error
			msg.summary, err = client.FinancialSummary(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.buckets, err = client.FullSummary(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.accounts, err = client.Accounts(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.bills, err = client.Bills(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.overdue, err = client.OverdueMessages(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.plans, err = client.BudgetPlans(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.stocks, err = client.Stocks(ctx)
			return err
		})
		g.Go(func() error {
			var err error
			msg.portfolio, err = client.PortfolioValues(ctx)
			return err
		})

		msg.err = g.Wait()
		return msg
	}
}

func loadTransactionsCmd(ctx context.Context, client *api.Client, q api.Query, seq int) tea.Cmd {
	return func() tea.Msg {
		page, err := client.Transactions(ctx, q)
		return transactionsMsg{seq: seq, page: page, err: err}
	}
}

func loadPricesCmd(ctx context.Context, client *api.Client, symbol string, seq int) tea.Cmd {
	return func() tea.Msg {
		points, err := client.StockPrices(ctx, symbol)
		return pricesMsg{seq: seq, symbol: symbol, points: points, err: err}
	}
}

// runActionCmd wraps a mutation into a command that reports its outcome on
// the status bar and reloads on success.
func runActionCmd(seq int, notice string, fn func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		if err := fn(context.Background()); err != nil {
			return actionMsg{seq: seq, err: err}
		}
		return actionMsg{seq: seq, notice: notice, reload: true}
	}
}
