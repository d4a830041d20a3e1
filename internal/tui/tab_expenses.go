package tui

import (
	"fmt"
	"strings"

	"bettero/internal/cli"
	"bettero/internal/model"
	"bettero/internal/tui/components"
	"bettero/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderExpensesTab(cw, ch int) string {
	t := theme.Active

	filter := "All categories"
	if a.categoryIdx > 0 {
		filter = model.Categories[a.categoryIdx-1]
	}

	headerStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	filterStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(headerStyle.Render("Filter [c]: "))
	b.WriteString(filterStyle.Render(filter))
	b.WriteString(headerStyle.Render(fmt.Sprintf("   %d transactions", a.page.TransactionCount)))
	b.WriteString("\n\n")

	if a.page.TransactionCount == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render("  There are no transactions."))
		return b.String()
	}

	rows := make([][]string, 0, len(a.page.TransactionList))
	for _, tx := range a.page.TransactionList {
		amount := cli.FormatSigned(tx.Amount, tx.Inflow())
		if tx.Inflow() {
			amount = cli.GainStyle.Render(amount)
		}
		rows = append(rows, []string{
			tx.OccurDate,
			cli.Truncate(tx.Description, cw/3),
			tx.Category,
			tx.AccountName,
			amount,
		})
	}
	b.WriteString(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Description", "Category", "Account", "Amount"},
		Rows:    rows,
	}))

	if pager := components.RenderPager(a.pager); pager != "" {
		b.WriteString("\n  ")
		b.WriteString(pager)
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render("   j/k page  [/] window"))
	}

	return b.String()
}
