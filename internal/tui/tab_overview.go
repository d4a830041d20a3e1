package tui

import (
	"fmt"
	"strings"

	"bettero/internal/cli"
	"bettero/internal/interval"
	"bettero/internal/model"
	"bettero/internal/tui/components"
	"bettero/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active

	metrics := []struct{ Label, Value, Delta string }{
		{"Total Balance", cli.FormatMoney(a.summary.TotalBalance), ""},
		{"Amount Due", cli.FormatMoney(a.summary.TotalAmountDue), ""},
		{"Income", cli.FormatMoney(a.summary.TotalIncome), ""},
		{"Expense", cli.FormatMoney(a.summary.TotalExpense), ""},
	}

	var b strings.Builder
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	widths := components.LayoutRow(cw, 2)
	left := components.ContentCard("Accounts", a.renderAccountList(components.CardInnerWidth(widths[0])), widths[0])
	right := components.ContentCard("Bills due", a.renderBillList(components.CardInnerWidth(widths[1])), widths[1])
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	b.WriteString("\n")

	// Expense trend, oldest to newest
	spans := interval.Latest(a.buckets, a.intervalType)
	expenses := interval.LatestExpense(a.buckets, a.intervalType)
	if len(spans) > 0 {
		values := make([]float64, 0, len(spans))
		labels := make([]string, 0, len(spans))
		for i := len(spans) - 1; i >= 0; i-- {
			values = append(values, expenses[spans[i].FirstDate])
			labels = append(labels, shortDate(spans[i].FirstDate))
		}
		chart := components.BarChart(values, labels, t.Accent,
			components.CardInnerWidth(cw), 6)
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Expense by %s", a.intervalType), chart, cw))
	}

	return b.String()
}

func (a App) renderAccountList(w int) string {
	t := theme.Active
	if len(a.accounts) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("No accounts yet. Press [a] to add one.")
	}

	nameStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	metaStyle := lipgloss.NewStyle().Foreground(t.TextMuted)

	var b strings.Builder
	for i, account := range a.accounts {
		if i > 0 {
			b.WriteString("\n")
		}
		balance := cli.FormatMoney(account.Balance)
		label := fmt.Sprintf("%s · %s", account.Name, account.Institution)
		pad := w - lipgloss.Width(label) - lipgloss.Width(balance)
		if pad < 1 {
			pad = 1
		}
		b.WriteString(nameStyle.Render(cli.Truncate(label, w-len(balance)-1)))
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(balance)
		if account.AccountType == model.AccountCredit && account.DueDate != nil {
			b.WriteString("\n")
			b.WriteString(metaStyle.Render("  due " + *account.DueDate))
		}
	}
	return b.String()
}

func (a App) renderBillList(w int) string {
	t := theme.Active
	if len(a.bills) == 0 && len(a.overdue) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).Render("Nothing due.")
	}

	overdueStyle := lipgloss.NewStyle().Foreground(t.Orange)
	textStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var b strings.Builder
	for _, m := range a.overdue {
		b.WriteString(overdueStyle.Render(cli.Truncate(
			fmt.Sprintf("! %s (%s) was due %s", m.BillDescription, cli.FormatMoney(m.BillAmount), m.BillDueDate), w)))
		b.WriteString("\n")
	}
	for i, bill := range a.bills {
		if i > 0 || len(a.overdue) > 0 {
			b.WriteString("\n")
		}
		amount := cli.FormatMoney(bill.Amount)
		label := fmt.Sprintf("%s  %s", bill.DueDate, bill.Description)
		pad := w - lipgloss.Width(label) - lipgloss.Width(amount)
		if pad < 1 {
			pad = 1
		}
		b.WriteString(textStyle.Render(cli.Truncate(label, w-len(amount)-1)))
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(amount)
	}
	return b.String()
}

// shortDate trims a YYYY-MM-DD date to MM/DD for axis labels.
func shortDate(date string) string {
	if reformatted, err := interval.ReformatDate(date, "-", "/"); err == nil && len(reformatted) == 10 {
		return reformatted[5:]
	}
	return date
}
