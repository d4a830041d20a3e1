// Package tui implements the interactive bettero dashboard.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bettero/internal/api"
	"bettero/internal/config"
	"bettero/internal/interval"
	"bettero/internal/model"
	"bettero/internal/paging"
	"bettero/internal/session"
	"bettero/internal/tui/components"
	"bettero/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	minTerminalWidth = 70
	maxContentWidth  = 160
	minContentHeight = 5

	tabOverview = 0
	tabExpenses = 1
	tabBudget   = 2
	tabStocks   = 3
)

// authMsg reports the startup token check.
type authMsg struct {
	err error
}

// App is the bubbletea model for the dashboard.
type App struct {
	cfg    config.Config
	client *api.Client

	// UI state
	width     int
	height    int
	activeTab int
	loaded    bool
	loading   bool
	spinner   spinner.Model

	// Load generation. Responses carrying an older seq are discarded, and
	// the context their requests run under is cancelled when a newer
	// generation starts.
	seq        int
	loadCtx    context.Context
	cancelLoad context.CancelFunc

	// Status bar notice (action outcomes, surfaced request failures)
	notice    string
	noticeErr bool

	// Active form (login gate or add-entity), nil when browsing
	form     *huh.Form
	formKind formKind
	formVals formValues

	// Server data
	summary   model.FinancialSummary
	buckets   interval.BucketMap
	accounts  []model.Account
	bills     []model.Bill
	overdue   []model.OverdueMessage
	plans     []model.BudgetPlan
	stocks    []model.Stock
	portfolio []model.PricePoint
	page      api.TransactionPage

	// Expenses tab
	pager       *paging.Pager
	categoryIdx int // 0 = all, 1.. = model.Categories index+1

	// Budget tab
	intervalType interval.Type

	// Stocks tab
	stockCursor int
	prices      map[string][]model.PricePoint
}

// NewApp creates the dashboard model.
func NewApp(cfg config.Config, client *api.Client) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	intervalType := interval.Type(cfg.General.DefaultIntervalType)
	if !model.ValidIntervalType(string(intervalType)) {
		intervalType = interval.Month
	}

	return App{
		cfg:          cfg,
		client:       client,
		spinner:      sp,
		intervalType: intervalType,
		pager:        paging.New(0, cfg.Paging.PageSize, cfg.Paging.WindowSize, nil),
		prices:       make(map[string][]model.PricePoint),
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	client := a.client
	return tea.Batch(
		a.spinner.Tick,
		func() tea.Msg {
			return authMsg{err: client.EnsureFresh(context.Background())}
		},
	)
}

// query assembles the transaction query for the current filter and page.
func (a App) query() api.Query {
	q := api.Query{Intent: api.IntentLatest, Page: a.pager.Current()}
	if a.categoryIdx > 0 {
		q.Intent = api.IntentCategory
		q.Category = model.Categories[a.categoryIdx-1]
	}
	return q
}

// nextLoadCtx begins a new load generation. Requests still in flight from
// the previous generation are cancelled.
func (a *App) nextLoadCtx() context.Context {
	if a.cancelLoad != nil {
		a.cancelLoad()
	}
	a.loadCtx, a.cancelLoad = context.WithCancel(context.Background())
	a.seq++
	return a.loadCtx
}

// currentLoadCtx returns the context of the generation in flight. Price
// fetches join the current generation instead of starting a new one.
func (a App) currentLoadCtx() context.Context {
	if a.loadCtx != nil {
		return a.loadCtx
	}
	return context.Background()
}

func (a App) quit() (tea.Model, tea.Cmd) {
	if a.cancelLoad != nil {
		a.cancelLoad()
	}
	return a, tea.Quit
}

func (a *App) startLoad() tea.Cmd {
	ctx := a.nextLoadCtx()
	a.loading = true
	return tea.Batch(
		loadDashboardCmd(ctx, a.client, a.seq),
		loadTransactionsCmd(ctx, a.client, a.query(), a.seq),
	)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case spinner.TickMsg:
		if !a.loading && a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case authMsg:
		if msg.err != nil {
			return a.handleLoadErr(msg.err)
		}
		return a, a.startLoad()

	case tea.KeyMsg:
		return a.updateKeys(msg)

	case dashboardMsg:
		if msg.seq != a.seq {
			return a, nil
		}
		a.loading = false
		if msg.err != nil {
			a.loaded = true
			return a.handleLoadErr(msg.err)
		}
		a.loaded = true
		a.summary = msg.summary
		a.buckets = msg.buckets
		a.accounts = msg.accounts
		a.bills = msg.bills
		a.overdue = msg.overdue
		a.plans = msg.plans
		a.stocks = msg.stocks
		a.portfolio = msg.portfolio
		if a.stockCursor >= len(a.stocks) {
			a.stockCursor = 0
		}
		if len(a.stocks) > 0 {
			symbol := a.stocks[a.stockCursor].Symbol
			if _, ok := a.prices[symbol]; !ok {
				return a, loadPricesCmd(a.currentLoadCtx(), a.client, symbol, a.seq)
			}
		}
		return a, nil

	case transactionsMsg:
		if msg.seq != a.seq {
			return a, nil
		}
		if msg.err != nil {
			return a.handleLoadErr(msg.err)
		}
		a.page = msg.page
		a.pager.Sync(msg.page.TransactionCount, msg.page.Page)
		return a, nil

	case pricesMsg:
		if msg.seq != a.seq {
			return a, nil
		}
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrNotFound) {
				a.prices[msg.symbol] = []model.PricePoint{}
				return a, nil
			}
			return a.handleLoadErr(msg.err)
		}
		a.prices[msg.symbol] = msg.points
		return a, nil

	case actionMsg:
		if msg.err != nil {
			a.setNotice(msg.err.Error(), true)
			return a, nil
		}
		a.setNotice(msg.notice, false)
		if msg.reload {
			return a, a.startLoad()
		}
		return a, nil
	}

	// Unhandled messages (cursor blinks etc.) go to the active form.
	if a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) handleLoadErr(err error) (tea.Model, tea.Cmd) {
	if errors.Is(err, session.ErrUnauthenticated) || errors.Is(err, api.ErrUnauthorized) {
		a.formKind = formLogin
		a.formVals = formValues{}
		a.form = newLoginForm(&a.formVals)
		return a, a.form.Init()
	}
	a.setNotice(err.Error(), true)
	return a, nil
}

func (a *App) setNotice(text string, isErr bool) {
	a.notice = text
	a.noticeErr = isErr
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		return a.quit()
	}

	// Forms intercept all other keys.
	if a.form != nil {
		return a.updateForm(msg)
	}

	if !a.loaded {
		if key == "q" {
			return a.quit()
		}
		return a, nil
	}

	// Any keypress clears a stale notice.
	a.setNotice("", false)

	switch key {
	case "q":
		return a.quit()
	case "r":
		return a, a.startLoad()
	case "left", "shift+tab":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right", "tab":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case "a":
		return a.openAddForm()
	}

	if len(key) == 1 {
		if idx := components.TabIdxByKey(rune(key[0])); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	switch a.activeTab {
	case tabOverview:
		return a.updateOverviewKeys(key)
	case tabExpenses:
		return a.updateExpensesKeys(key)
	case tabBudget:
		return a.updateBudgetKeys(key)
	case tabStocks:
		return a.updateStocksKeys(key)
	}
	return a, nil
}

func (a App) updateOverviewKeys(key string) (tea.Model, tea.Cmd) {
	// "a" adds an account; bills get their own key.
	if key == "i" {
		a.formVals = formValues{}
		a.formKind = formBill
		a.form = newBillForm(&a.formVals, a.accounts)
		if a.width > 0 {
			a.form = a.form.WithWidth(a.width).WithHeight(a.height)
		}
		return a, a.form.Init()
	}
	return a, nil
}

func (a App) openAddForm() (tea.Model, tea.Cmd) {
	a.formVals = formValues{}
	switch a.activeTab {
	case tabOverview:
		a.formKind = formAccount
		a.form = newAccountForm(&a.formVals)
	case tabExpenses:
		a.formKind = formTransaction
		a.form = newTransactionForm(&a.formVals, a.accounts)
	case tabBudget:
		a.formKind = formBudget
		a.form = newBudgetForm(&a.formVals)
	case tabStocks:
		a.formKind = formStock
		a.form = newStockForm(&a.formVals)
	}
	if a.width > 0 {
		a.form = a.form.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	if a.form.State == huh.StateAborted {
		if a.formKind == formLogin {
			return a.quit()
		}
		a.form = nil
		a.formKind = formNone
		return a, nil
	}

	if a.form.State != huh.StateCompleted {
		return a, cmd
	}

	kind := a.formKind
	a.form = nil
	a.formKind = formNone
	return a.submitForm(kind)
}

func (a App) submitForm(kind formKind) (tea.Model, tea.Cmd) {
	client := a.client
	vals := a.formVals
	// Submitting supersedes whatever was loading.
	a.nextLoadCtx()
	seq := a.seq

	switch kind {
	case formLogin:
		creds := api.Credentials{Username: vals.username, Password: vals.password}
		return a, func() tea.Msg {
			return authMsg{err: client.Login(context.Background(), creds)}
		}

	case formTransaction:
		tx, err := buildTransaction(&vals)
		if err != nil {
			a.setNotice(err.Error(), true)
			return a, nil
		}
		return a, runActionCmd(seq, "Transaction recorded.", func(ctx context.Context) error {
			_, err := client.CreateTransaction(ctx, tx)
			return err
		})

	case formAccount:
		account, err := buildAccount(&vals)
		if err != nil {
			a.setNotice(err.Error(), true)
			return a, nil
		}
		return a, runActionCmd(seq, "Account added.", func(ctx context.Context) error {
			_, err := client.CreateAccount(ctx, account)
			return err
		})

	case formBill:
		bill, err := buildBill(&vals)
		if err != nil {
			a.setNotice(err.Error(), true)
			return a, nil
		}
		return a, runActionCmd(seq, "Bill added.", func(ctx context.Context) error {
			_, err := client.CreateBill(ctx, bill)
			return err
		})

	case formStock:
		stock, err := buildStock(&vals)
		if err != nil {
			a.setNotice(err.Error(), true)
			return a, nil
		}
		return a, runActionCmd(seq, stock.Symbol+" added.", func(ctx context.Context) error {
			_, err := client.CreateStock(ctx, stock)
			return err
		})

	case formBudget:
		plan, err := buildBudgetPlan(&vals)
		if err != nil {
			a.setNotice(err.Error(), true)
			return a, nil
		}
		update := false
		for _, existing := range a.plans {
			if existing.IntervalType == plan.IntervalType {
				update = true
			}
		}
		return a, runActionCmd(seq, "Budget plan saved.", func(ctx context.Context) error {
			var err error
			if update {
				_, err = client.UpdateBudgetPlan(ctx, plan)
			} else {
				_, err = client.CreateBudgetPlan(ctx, plan)
			}
			return err
		})
	}
	return a, nil
}

func (a App) updateExpensesKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		a.pager.Select(a.pager.Current() + 1)
	case "k", "up":
		a.pager.Select(a.pager.Current() - 1)
	case "]":
		a.pager.Next()
	case "[":
		a.pager.Prev()
	case "c":
		a.categoryIdx = (a.categoryIdx + 1) % (len(model.Categories) + 1)
		a.pager.Sync(a.page.TransactionCount, 1)
	case "C":
		a.categoryIdx = (a.categoryIdx - 1 + len(model.Categories) + 1) % (len(model.Categories) + 1)
		a.pager.Sync(a.page.TransactionCount, 1)
	default:
		return a, nil
	}
	ctx := a.nextLoadCtx()
	return a, loadTransactionsCmd(ctx, a.client, a.query(), a.seq)
}

func (a App) updateBudgetKeys(key string) (tea.Model, tea.Cmd) {
	types := model.IntervalTypes
	idx := 0
	for i, t := range types {
		if interval.Type(t) == a.intervalType {
			idx = i
		}
	}
	switch key {
	case "j", "down", "l":
		a.intervalType = interval.Type(types[(idx+1)%len(types)])
	case "k", "up", "h":
		a.intervalType = interval.Type(types[(idx-1+len(types))%len(types)])
	}
	return a, nil
}

func (a App) updateStocksKeys(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.stockCursor < len(a.stocks)-1 {
			a.stockCursor++
		}
	case "k", "up":
		if a.stockCursor > 0 {
			a.stockCursor--
		}
	default:
		return a, nil
	}
	if len(a.stocks) == 0 {
		return a, nil
	}
	symbol := a.stocks[a.stockCursor].Symbol
	if _, ok := a.prices[symbol]; !ok {
		return a, loadPricesCmd(a.currentLoadCtx(), a.client, symbol, a.seq)
	}
	return a, nil
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return fmt.Sprintf("\n  Terminal too narrow (%d cols).\n  bettero needs at least %d columns.\n",
			a.width, minTerminalWidth)
	}

	if a.form != nil {
		return a.form.View()
	}

	if !a.loaded {
		return a.viewLoading()
	}

	return a.viewMain()
}

func (a App) viewLoading() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 4)

	title := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Render("◈ bettero")
	sub := lipgloss.NewStyle().Foreground(t.TextMuted).Render(" · personal finance")
	body := title + sub + "\n\n" + a.spinner.View() +
		lipgloss.NewStyle().Foreground(t.TextMuted).Render(" Fetching your data...")

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center,
		cardStyle.Render(body))
}

func (a App) viewMain() string {
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab) + "\n"
	statusBar := components.RenderStatusBar(w, a.notice, a.noticeErr)

	contentH := h - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabExpenses:
		content = a.renderExpensesTab(cw, contentH)
	case tabBudget:
		content = a.renderBudgetTab(cw)
	case tabStocks:
		content = a.renderStocksTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// truncateHeight drops lines past h.
func truncateHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= h {
		return s
	}
	return strings.Join(lines[:h], "\n")
}

// padHeight appends blank lines up to h.
func padHeight(s string, h int) string {
	lines := strings.Count(s, "\n") + 1
	if lines >= h {
		return s
	}
	return s + strings.Repeat("\n", h-lines)
}
