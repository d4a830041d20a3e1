package components

import (
	"fmt"
	"strings"

	"bettero/internal/paging"
	"bettero/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderPager renders the page-number window with prev/next affordances,
// e.g. "‹  6 [7] 8 9 10  ›". Returns "" when the record set fits one page.
func RenderPager(p *paging.Pager) string {
	if !p.Enabled() {
		return ""
	}

	t := theme.Active
	currentStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	pageStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	arrowStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	b.WriteString(arrowStyle.Render("‹"))
	b.WriteString(" ")
	for _, page := range p.Visible() {
		b.WriteString(" ")
		if page == p.Current() {
			b.WriteString(currentStyle.Render(fmt.Sprintf("[%d]", page)))
		} else {
			b.WriteString(pageStyle.Render(fmt.Sprintf("%d", page)))
		}
	}
	b.WriteString("  ")
	b.WriteString(arrowStyle.Render("›"))
	b.WriteString(pageStyle.Render(fmt.Sprintf("  %d/%d", p.Current(), p.TotalPages())))
	return b.String()
}
