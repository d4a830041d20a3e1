package tui

import (
	"fmt"
	"strings"

	"bettero/internal/cli"
	"bettero/internal/tui/components"
	"bettero/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderStocksTab(cw int) string {
	t := theme.Active

	if len(a.stocks) == 0 {
		return lipgloss.NewStyle().Foreground(t.TextDim).
			Render("\n  No stock positions. Press [a] to add one.")
	}

	var total float64
	for _, s := range a.stocks {
		total += s.MarketValue()
	}

	var b strings.Builder

	// Portfolio value trend since the start of last month
	if len(a.portfolio) > 1 {
		values := make([]float64, 0, len(a.portfolio))
		for _, p := range a.portfolio {
			values = append(values, p.Close)
		}
		body := lipgloss.NewStyle().Foreground(t.TextPrimary).Bold(true).Render(cli.FormatMoney(total)) +
			"\n" + components.Sparkline(values, t.Accent)
		b.WriteString(components.ContentCard("Portfolio value", body, cw))
		b.WriteString("\n")
	}

	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)

	var table strings.Builder
	header := fmt.Sprintf("  %-8s %-22s %12s %12s %12s %14s", "Symbol", "Name", "Shares", "Close", "Change", "Value")
	table.WriteString(lipgloss.NewStyle().Foreground(t.TextMuted).Bold(true).Render(header))
	table.WriteString("\n")
	for i, s := range a.stocks {
		change := cli.FormatMoney(s.Change)
		if s.Change >= 0 {
			change = "+" + change
		}
		line := fmt.Sprintf("  %-8s %-22s %12s %12s %12s %14s",
			s.Symbol,
			cli.Truncate(s.Name, 22),
			cli.FormatShares(s.Shares),
			cli.FormatMoney(s.CurrentClose),
			change,
			cli.FormatMoney(s.MarketValue()),
		)
		if i == a.stockCursor {
			table.WriteString(selStyle.Render(line))
		} else {
			table.WriteString(rowStyle.Render(line))
		}
		table.WriteString("\n")
	}
	b.WriteString(components.ContentCard("Positions [j/k]", table.String(), cw))
	b.WriteString("\n")

	b.WriteString(a.renderSelectedStock(cw))
	return b.String()
}

func (a App) renderSelectedStock(cw int) string {
	t := theme.Active
	s := a.stocks[a.stockCursor]

	points, loaded := a.prices[s.Symbol]
	var body string
	switch {
	case !loaded:
		body = lipgloss.NewStyle().Foreground(t.TextDim).Render("Loading price history...")
	case len(points) == 0:
		body = lipgloss.NewStyle().Foreground(t.TextDim).Render("No price history for " + s.Symbol + ".")
	default:
		values := make([]float64, 0, len(points))
		for _, p := range points {
			values = append(values, p.Close)
		}
		color := t.Green
		if s.Change < 0 {
			color = t.Red
		}
		detail := cli.RenderKeyValues([][2]string{
			{"Open", cli.FormatMoney(s.Open)},
			{"High", cli.FormatMoney(s.High)},
			{"Low", cli.FormatMoney(s.Low)},
			{"Prev close", cli.FormatMoney(s.PreviousClose)},
			{"Volume", cli.FormatNumber(s.Volume)},
			{"Updated", s.LastUpdatedDate},
		})
		body = components.Sparkline(values, color) + "\n" + detail
	}

	title := fmt.Sprintf("%s · %s", s.Symbol, s.Corporation)
	return components.ContentCard(title, body, cw)
}
