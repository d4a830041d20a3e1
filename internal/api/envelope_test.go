package api

import "testing"

func TestTransactionPage_PagedEnvelope(t *testing.T) {
	body := []byte(`{
		"count": 23,
		"results": [
			{"id": 1, "description": "Coffee", "category": "Dining", "amount": 4.5, "occurDate": "2026-08-01", "accountName": "Checking"},
			{"id": 2, "description": "Rent", "category": "Housing", "amount": 1200, "occurDate": "2026-08-01", "accountName": "Checking"}
		]
	}`)

	page, err := transactionPage(body, 0)
	if err != nil {
		t.Fatalf("transactionPage: %v", err)
	}
	if page.Page != 1 {
		t.Fatalf("Page = %d, want 1 (no explicit page means first)", page.Page)
	}
	if page.TransactionCount != 23 {
		t.Fatalf("TransactionCount = %d, want 23 (envelope count, not slice length)", page.TransactionCount)
	}
	if len(page.TransactionList) != 2 {
		t.Fatalf("len(TransactionList) = %d, want 2", len(page.TransactionList))
	}
	if page.TransactionList[1].Description != "Rent" {
		t.Fatalf("TransactionList[1].Description = %q", page.TransactionList[1].Description)
	}
}

func TestTransactionPage_FlatArray(t *testing.T) {
	body := []byte(`[
		{"id": 1, "description": "Coffee", "category": "Dining", "amount": 4.5, "occurDate": "2026-08-01", "accountName": "Checking"}
	]`)

	page, err := transactionPage(body, 4)
	if err != nil {
		t.Fatalf("transactionPage: %v", err)
	}
	if page.Page != 4 {
		t.Fatalf("Page = %d, want 4", page.Page)
	}
	if page.TransactionCount != 1 {
		t.Fatalf("TransactionCount = %d, want 1 (flat array counts itself)", page.TransactionCount)
	}
}

func TestTransactionPage_EmptyResults(t *testing.T) {
	page, err := transactionPage([]byte(`{"count": 0, "results": []}`), 1)
	if err != nil {
		t.Fatalf("transactionPage: %v", err)
	}
	if page.TransactionList == nil {
		t.Fatal("TransactionList is nil, want empty slice")
	}
	if page.TransactionCount != 0 {
		t.Fatalf("TransactionCount = %d, want 0", page.TransactionCount)
	}
}

func TestTransactionPage_Malformed(t *testing.T) {
	if _, err := transactionPage([]byte(`{"count": "many"}`), 1); err == nil {
		t.Fatal("malformed body decoded without error")
	}
}

func TestDecodeEnvelope_ObjectWithoutEnvelopeKeys(t *testing.T) {
	// An object that is neither a paged envelope nor an array must error,
	// not silently produce an empty list.
	if _, _, err := decodeEnvelope[int]([]byte(`{"detail": "nope"}`)); err == nil {
		t.Fatal("non-envelope object decoded without error")
	}
}
