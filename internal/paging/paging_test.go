package paging

import "testing"

func TestTotalPages(t *testing.T) {
	cases := []struct {
		records int
		want    int
	}{
		{0, 1},
		{1, 1},
		{10, 1},
		{11, 2},
		{23, 3},
		{50, 5},
		{51, 6},
	}
	for _, tc := range cases {
		p := New(tc.records, 10, 5, nil)
		if got := p.TotalPages(); got != tc.want {
			t.Errorf("TotalPages(%d records) = %d, want %d", tc.records, got, tc.want)
		}
	}
}

func TestEnabled(t *testing.T) {
	if New(10, 10, 5, nil).Enabled() {
		t.Error("pager enabled with records == pageSize, want disabled")
	}
	if !New(11, 10, 5, nil).Enabled() {
		t.Error("pager disabled with records > pageSize, want enabled")
	}
}

func TestVisible_InitialWindow(t *testing.T) {
	p := New(23, 10, 5, nil)
	got := p.Visible()
	want := []int{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Visible() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Visible() = %v, want %v", got, want)
		}
	}
}

func TestSelect_FiresCallbackAndClamps(t *testing.T) {
	var selected []int
	p := New(120, 10, 5, func(page int) { selected = append(selected, page) })

	p.Select(3)
	if p.Current() != 3 {
		t.Fatalf("Current() = %d, want 3", p.Current())
	}

	p.Select(99)
	if p.Current() != 12 {
		t.Fatalf("Current() after overshoot = %d, want 12 (clamped)", p.Current())
	}

	p.Select(-4)
	if p.Current() != 1 {
		t.Fatalf("Current() after undershoot = %d, want 1 (clamped)", p.Current())
	}

	if len(selected) != 3 || selected[0] != 3 || selected[1] != 12 || selected[2] != 1 {
		t.Fatalf("callback pages = %v, want [3 12 1]", selected)
	}
}

func TestSelect_AlignsWindow(t *testing.T) {
	p := New(120, 10, 5, nil)
	p.Select(7)
	got := p.Visible()
	want := []int{6, 7, 8, 9, 10}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Visible() after Select(7) = %v, want %v", got, want)
		}
	}
}

func TestNext_ShiftsWindowAndSelectsFirst(t *testing.T) {
	p := New(120, 10, 5, nil)

	p.Next()
	if p.Current() != 6 {
		t.Fatalf("Current() after Next = %d, want 6", p.Current())
	}
	got := p.Visible()
	want := []int{6, 7, 8, 9, 10}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Visible() after Next = %v, want %v", got, want)
		}
	}
}

func TestNext_StopsAtLastWindow(t *testing.T) {
	p := New(120, 10, 5, nil) // 12 pages, windows [1-5] [6-10] [11-12]
	p.Next()
	p.Next()
	if p.Current() != 11 {
		t.Fatalf("Current() = %d, want 11", p.Current())
	}
	p.Next() // would shift past the last page
	if p.Current() != 11 {
		t.Fatalf("Current() after blocked Next = %d, want 11", p.Current())
	}
}

func TestPrev_ShiftsBackAndStopsAtStart(t *testing.T) {
	p := New(120, 10, 5, nil)
	p.Next()
	p.Prev()
	if p.Current() != 1 {
		t.Fatalf("Current() after Next+Prev = %d, want 1", p.Current())
	}
	p.Prev() // already at the first window
	if p.Current() != 1 {
		t.Fatalf("Current() after blocked Prev = %d, want 1", p.Current())
	}
}

func TestSync_NoCallback(t *testing.T) {
	fired := false
	p := New(0, 10, 5, func(int) { fired = true })

	p.Sync(75, 7)
	if fired {
		t.Fatal("Sync fired the selection callback")
	}
	if p.Current() != 7 {
		t.Fatalf("Current() = %d, want 7", p.Current())
	}
	got := p.Visible()
	want := []int{6, 7, 8}
	if len(got) != len(want) {
		t.Fatalf("Visible() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Visible() = %v, want %v", got, want)
		}
	}
}

func TestSync_ClampsCurrent(t *testing.T) {
	p := New(0, 10, 5, nil)
	p.Sync(23, 9)
	if p.Current() != 3 {
		t.Fatalf("Current() = %d, want 3 (clamped to total pages)", p.Current())
	}
}
