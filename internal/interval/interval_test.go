package interval

import "testing"

func sampleBuckets() BucketMap {
	return BucketMap{
		Month: {
			{
				FirstDate:    "2026-08-01",
				LastDate:     "2026-08-31",
				TotalExpense: 2100.50,
				ExpenseChange: map[string]float64{
					"Grocery": 12.5,
				},
				ExpenseComposition: map[string]float64{
					"Grocery": 40,
					"Housing": 60,
				},
				DailyExpense: map[string]float64{
					"2026-08-01": 70,
				},
			},
			{FirstDate: "2026-07-01", LastDate: "2026-07-31", TotalExpense: 1800},
			{FirstDate: "2026-06-01", LastDate: "2026-06-30", TotalExpense: 1950.25},
		},
		Week: {
			{FirstDate: "2026-08-24", LastDate: "2026-08-30", TotalExpense: 310},
		},
	}
}

func TestReformatDate(t *testing.T) {
	got, err := ReformatDate("07/04/2026", "/", "-")
	if err != nil {
		t.Fatalf("ReformatDate: %v", err)
	}
	if got != "07-04-2026" {
		t.Fatalf("ReformatDate = %q, want %q", got, "07-04-2026")
	}
}

func TestReformatDate_Inverse(t *testing.T) {
	original := "2026-08-01"
	there, err := ReformatDate(original, "-", "/")
	if err != nil {
		t.Fatalf("forward: %v", err)
	}
	back, err := ReformatDate(there, "/", "-")
	if err != nil {
		t.Fatalf("inverse: %v", err)
	}
	if back != original {
		t.Fatalf("round trip = %q, want %q", back, original)
	}
}

func TestReformatDate_WrongTokenCount(t *testing.T) {
	cases := []string{"2026-08", "2026-08-01-extra", "20260801", ""}
	for _, date := range cases {
		if _, err := ReformatDate(date, "-", "/"); err == nil {
			t.Errorf("ReformatDate(%q) succeeded, want error", date)
		}
	}
}

func TestLatest_PreservesOrderAndPairs(t *testing.T) {
	spans := Latest(sampleBuckets(), Month)
	if len(spans) != 3 {
		t.Fatalf("len(spans) = %d, want 3", len(spans))
	}
	if spans[0].FirstDate != "2026-08-01" || spans[0].LastDate != "2026-08-31" {
		t.Fatalf("spans[0] = %+v, newest bucket must come first", spans[0])
	}
	if spans[2].FirstDate != "2026-06-01" {
		t.Fatalf("spans[2].FirstDate = %q, want 2026-06-01", spans[2].FirstDate)
	}
}

func TestLatest_MissingType(t *testing.T) {
	spans := Latest(sampleBuckets(), BiWeek)
	if len(spans) != 0 {
		t.Fatalf("len(spans) = %d for absent type, want 0", len(spans))
	}
}

func TestLatestExpense_KeysBySpanStart(t *testing.T) {
	expenses := LatestExpense(sampleBuckets(), Month)
	if len(expenses) != 3 {
		t.Fatalf("len(expenses) = %d, want 3", len(expenses))
	}
	if expenses["2026-07-01"] != 1800 {
		t.Fatalf("expenses[2026-07-01] = %v, want 1800", expenses["2026-07-01"])
	}
}

func TestChart_Found(t *testing.T) {
	chart, ok := Chart(sampleBuckets(), Month, "2026-08-01")
	if !ok {
		t.Fatal("Chart returned !ok for existing bucket")
	}
	if chart.CompositionPercentage["Housing"] != 60 {
		t.Fatalf("CompositionPercentage[Housing] = %v, want 60", chart.CompositionPercentage["Housing"])
	}
	if chart.ChangePercentage["Grocery"] != 12.5 {
		t.Fatalf("ChangePercentage[Grocery] = %v, want 12.5", chart.ChangePercentage["Grocery"])
	}
	if chart.DailyExpense["2026-08-01"] != 70 {
		t.Fatalf("DailyExpense[2026-08-01] = %v, want 70", chart.DailyExpense["2026-08-01"])
	}
}

func TestChart_NotFound(t *testing.T) {
	if _, ok := Chart(sampleBuckets(), Month, "1999-01-01"); ok {
		t.Fatal("Chart returned ok for unknown first date")
	}
	if _, ok := Chart(sampleBuckets(), BiWeek, "2026-08-01"); ok {
		t.Fatal("Chart returned ok for absent interval type")
	}
}
