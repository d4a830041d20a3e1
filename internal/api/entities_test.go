package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bettero/internal/interval"
	"bettero/internal/model"
)

func TestUpdateStock_AddressesBySymbol(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_, _ = w.Write([]byte(`{"id": 1, "symbol": "VT", "name": "Total World", "corporation": "Vanguard", "shares": 25}`))
	}))
	defer srv.Close()

	client := New(srv.URL, testSession(t, newMemStore()))
	saved, err := client.UpdateStock(context.Background(), model.Stock{
		Symbol: "VT", Name: "Total World", Corporation: "Vanguard", Shares: 25,
	})
	if err != nil {
		t.Fatalf("UpdateStock: %v", err)
	}

	if gotMethod != http.MethodPut {
		t.Fatalf("method = %q, want PUT", gotMethod)
	}
	if gotPath != "/stocks/VT" {
		t.Fatalf("path = %q, want /stocks/VT (the symbol addresses the position)", gotPath)
	}
	if gotBody["symbol"] != "VT" {
		t.Fatalf("request body = %v, want snake_cased symbol", gotBody)
	}
	if saved.Shares != 25 {
		t.Fatalf("saved.Shares = %d, want 25", saved.Shares)
	}
}

func TestUpdateStock_RejectsInvalidLocally(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		hits++
	}))
	defer srv.Close()

	client := New(srv.URL, testSession(t, newMemStore()))
	_, err := client.UpdateStock(context.Background(), model.Stock{Symbol: "VT", Shares: 0})
	if err == nil {
		t.Fatal("zero-share update accepted")
	}
	if hits != 0 {
		t.Fatalf("server hits = %d, validation must fail before any request", hits)
	}
}

func TestUpdateAccount_PutsToID(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"id": 7, "account_number": 12345678, "name": "Checking", "institution": "Credit Union", "account_type": "Debit", "balance": 250}`))
	}))
	defer srv.Close()

	client := New(srv.URL, testSession(t, newMemStore()))
	saved, err := client.UpdateAccount(context.Background(), 7, model.Account{
		AccountNumber: 12345678,
		Name:          "Checking",
		Institution:   "Credit Union",
		AccountType:   model.AccountDebit,
		Balance:       250,
	})
	if err != nil {
		t.Fatalf("UpdateAccount: %v", err)
	}

	if gotMethod != http.MethodPut || gotPath != "/accounts/7" {
		t.Fatalf("request = %s %s, want PUT /accounts/7", gotMethod, gotPath)
	}
	if saved.Balance != 250 {
		t.Fatalf("saved.Balance = %v, want 250", saved.Balance)
	}
}

func TestUpdateBill_PutsToID(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"id": 3, "description": "Electricity", "category": "Housing", "amount": 90, "due_date": "2026-09-05", "pay_account_name": "Checking"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, testSession(t, newMemStore()))
	saved, err := client.UpdateBill(context.Background(), model.Bill{
		ID:             3,
		Description:    "Electricity",
		Category:       "Housing",
		Amount:         90,
		DueDate:        "2026-09-05",
		PayAccountName: "Checking",
	})
	if err != nil {
		t.Fatalf("UpdateBill: %v", err)
	}

	if gotMethod != http.MethodPut || gotPath != "/bills/3" {
		t.Fatalf("request = %s %s, want PUT /bills/3", gotMethod, gotPath)
	}
	if saved.Amount != 90 {
		t.Fatalf("saved.Amount = %v, want 90", saved.Amount)
	}
}

func TestAccountSummary_DecodesBuckets(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{
			"month": [
				{"first_date": "2026-08-01", "last_date": "2026-08-31", "total_expense": 120.5}
			]
		}`))
	}))
	defer srv.Close()

	client := New(srv.URL, testSession(t, newMemStore()))
	buckets, err := client.AccountSummary(context.Background(), 3)
	if err != nil {
		t.Fatalf("AccountSummary: %v", err)
	}

	if gotPath != "/accounts/3/summary" {
		t.Fatalf("path = %q, want /accounts/3/summary", gotPath)
	}
	months := buckets[interval.Month]
	if len(months) != 1 {
		t.Fatalf("len(month buckets) = %d, want 1", len(months))
	}
	if months[0].FirstDate != "2026-08-01" || months[0].TotalExpense != 120.5 {
		t.Fatalf("bucket = %+v, response not camelized into the summary", months[0])
	}
}
