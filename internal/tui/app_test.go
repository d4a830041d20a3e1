package tui

import (
	"testing"

	"bettero/internal/api"
	"bettero/internal/config"

	tea "github.com/charmbracelet/bubbletea"
)

func TestStartLoad_CancelsPreviousGeneration(t *testing.T) {
	app := NewApp(config.DefaultConfig(), nil)

	if cmd := app.startLoad(); cmd == nil {
		t.Fatal("startLoad returned no command")
	}
	first := app.loadCtx
	firstSeq := app.seq

	if cmd := app.startLoad(); cmd == nil {
		t.Fatal("startLoad returned no command")
	}

	select {
	case <-first.Done():
	default:
		t.Fatal("previous generation still live after a new load started")
	}
	select {
	case <-app.loadCtx.Done():
		t.Fatal("current generation cancelled at start")
	default:
	}
	if app.seq != firstSeq+1 {
		t.Fatalf("seq = %d, want %d", app.seq, firstSeq+1)
	}
}

func TestExpensesPaging_CancelsPreviousGeneration(t *testing.T) {
	app := NewApp(config.DefaultConfig(), nil)
	_ = app.startLoad()
	first := app.loadCtx

	model, cmd := app.updateExpensesKeys("]")
	if cmd == nil {
		t.Fatal("page change issued no load")
	}

	select {
	case <-first.Done():
	default:
		t.Fatal("previous generation still live after a page change")
	}
	next := model.(App)
	if next.seq != app.seq+1 {
		t.Fatalf("seq = %d, want %d", next.seq, app.seq+1)
	}
}

func TestQuitKey_CancelsInFlightLoads(t *testing.T) {
	app := NewApp(config.DefaultConfig(), nil)
	_ = app.startLoad()
	app.loaded = true

	_, cmd := app.updateKeys(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q issued no command")
	}

	select {
	case <-app.loadCtx.Done():
	default:
		t.Fatal("in-flight loads still live after quit")
	}
}

func TestStaleTransactionsDiscarded(t *testing.T) {
	app := NewApp(config.DefaultConfig(), nil)
	_ = app.startLoad()
	app.loaded = true
	staleSeq := app.seq
	_ = app.startLoad()

	stale := transactionsMsg{seq: staleSeq, page: api.TransactionPage{TransactionCount: 42, Page: 2}}
	model, _ := app.Update(stale)
	next := model.(App)
	if next.page.TransactionCount != 0 {
		t.Fatal("stale transactions response was applied")
	}
}
