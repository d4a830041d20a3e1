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

func (a App) renderBudgetTab(cw int) string {
	t := theme.Active

	headerStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(headerStyle.Render("Interval [j/k]: "))
	b.WriteString(accentStyle.Render(string(a.intervalType)))
	b.WriteString("\n\n")

	plan, ok := a.planFor(a.intervalType)
	if !ok {
		b.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).
			Render(fmt.Sprintf("  No %s budget plan yet. Press [a] to create one.", a.intervalType)))
		return b.String()
	}

	summary := cli.RenderKeyValues([][2]string{
		{"Income", cli.FormatMoney(plan.RecurringIncome)},
		{"For expense", cli.FormatPercent(plan.PortionForExpense)},
	})
	b.WriteString(components.ContentCard("Plan", summary, cw))
	b.WriteString("\n")

	labelW := 0
	for _, category := range model.ExpenseCategories {
		if len(category) > labelW {
			labelW = len(category)
		}
	}
	barW := components.CardInnerWidth(cw) - labelW - 8
	if barW < 10 {
		barW = 10
	}

	var bars strings.Builder
	for i, category := range model.ExpenseCategories {
		if i > 0 {
			bars.WriteString("\n")
		}
		progress, ok := plan.Progress[category]
		pct := 0.0
		caption := ""
		if ok && progress.Budget > 0 {
			pct = progress.Current / progress.Budget
			caption = fmt.Sprintf("  %s of %s", cli.FormatMoney(progress.Current), cli.FormatMoney(progress.Budget))
		}
		bars.WriteString(components.BudgetBar(category, pct, labelW, barW))
		if caption != "" {
			bars.WriteString(lipgloss.NewStyle().Foreground(t.TextDim).Render(caption))
		}
	}
	b.WriteString(components.ContentCard("Spending against budget", bars.String(), cw))
	b.WriteString("\n")

	// Composition of the latest interval, from the full-summary buckets.
	spans := interval.Latest(a.buckets, a.intervalType)
	if len(spans) > 0 {
		if chart, ok := interval.Chart(a.buckets, a.intervalType, spans[0].FirstDate); ok {
			b.WriteString(components.ContentCard(
				"Latest composition "+spans[0].FirstDate+" to "+spans[0].LastDate,
				a.renderComposition(chart, components.CardInnerWidth(cw)), cw))
		}
	}

	return b.String()
}

func (a App) planFor(intervalType interval.Type) (model.BudgetPlan, bool) {
	for _, plan := range a.plans {
		if plan.IntervalType == string(intervalType) {
			return plan, true
		}
	}
	return model.BudgetPlan{}, false
}

func (a App) renderComposition(chart interval.ChartData, w int) string {
	t := theme.Active

	labelW := 0
	for _, category := range model.ExpenseCategories {
		if len(category) > labelW {
			labelW = len(category)
		}
	}
	barMax := w - labelW - 20
	if barMax < 10 {
		barMax = 10
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent)
	pctStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	changeUp := lipgloss.NewStyle().Foreground(t.Red)
	changeDown := lipgloss.NewStyle().Foreground(t.Green)

	var b strings.Builder
	for i, category := range model.ExpenseCategories {
		if i > 0 {
			b.WriteString("\n")
		}
		pct := chart.CompositionPercentage[category]
		filled := int(pct / 100 * float64(barMax))
		if filled > barMax {
			filled = barMax
		}
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", labelW, category)))
		b.WriteString(" ")
		b.WriteString(barStyle.Render(strings.Repeat("█", filled)))
		b.WriteString(strings.Repeat(" ", barMax-filled))
		b.WriteString(pctStyle.Render(fmt.Sprintf(" %5.1f%%", pct)))

		if change, ok := chart.ChangePercentage[category]; ok {
			style := changeUp
			if change < 0 {
				style = changeDown
			}
			b.WriteString(style.Render(fmt.Sprintf("  %+.1f%%", change)))
		}
	}
	return b.String()
}
