package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"bettero/internal/model"
	"bettero/internal/session"

	"github.com/golang-jwt/jwt/v5"
)

// memStore is an in-memory TokenStore and CacheBackend for tests.
type memStore struct {
	mu        sync.Mutex
	tokens    map[string]string
	responses map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{
		tokens:    make(map[string]string),
		responses: make(map[string][]byte),
	}
}

func (m *memStore) SaveToken(name, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[name] = value
	return nil
}

func (m *memStore) Token(name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokens[name], nil
}

func (m *memStore) ClearTokens() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens = make(map[string]string)
	return nil
}

func (m *memStore) SaveResponse(key string, body []byte, _ time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[key] = body
	return nil
}

func (m *memStore) Response(key string, _ time.Duration) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	body, ok := m.responses[key]
	return body, ok, nil
}

func (m *memStore) InvalidateResponses(prefix string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key := range m.responses {
		if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
			delete(m.responses, key)
		}
	}
	return nil
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return signed
}

func testSession(t *testing.T, store *memStore) *session.Session {
	t.Helper()
	sess, err := session.New(store)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	return sess
}

func TestFetch_BearerAndBodyCasing(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count": 1, "results": [{"id": 1, "description": "Coffee", "category": "Dining", "amount": 4.5, "occur_date": "2026-08-01", "account_name": "Checking"}]}`))
	}))
	defer srv.Close()

	store := newMemStore()
	sess := testSession(t, store)
	access := signedToken(t, time.Now().Add(time.Hour))
	if err := sess.SetPair(access, "refresh-token"); err != nil {
		t.Fatalf("SetPair: %v", err)
	}

	client := New(srv.URL, sess)
	page, err := client.CreateTransaction(context.Background(), model.Transaction{
		Description: "Coffee",
		Category:    "Dining",
		Amount:      4.5,
		OccurDate:   "2026-08-01",
		AccountName: "Checking",
	})
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}

	if gotAuth != "Bearer "+access {
		t.Fatalf("Authorization = %q, want bearer access token", gotAuth)
	}
	if _, ok := gotBody["occur_date"]; !ok {
		t.Fatalf("request body not snake_cased: %v", gotBody)
	}
	if _, ok := gotBody["occurDate"]; ok {
		t.Fatalf("request body still carries camelCase key: %v", gotBody)
	}
	if page.TransactionList[0].OccurDate != "2026-08-01" {
		t.Fatalf("response not camelized into model: %+v", page.TransactionList[0])
	}
}

func TestFetch_StatusMapping(t *testing.T) {
	status := http.StatusNotFound
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"detail": "no such thing"}`))
	}))
	defer srv.Close()

	client := New(srv.URL, testSession(t, newMemStore()))

	_, err := client.StockPrices(context.Background(), "ZZZZ")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("404 err = %v, want ErrNotFound", err)
	}

	status = http.StatusUnauthorized
	_, err = client.Stocks(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("401 err = %v, want ErrUnauthorized", err)
	}

	status = http.StatusForbidden
	_, err = client.Stocks(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("403 err = %v, want ErrUnauthorized", err)
	}

	status = http.StatusBadRequest
	_, err = client.Stocks(context.Background())
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("400 err = %v, want StatusError", err)
	}
	if statusErr.Code != http.StatusBadRequest || statusErr.Detail != "no such thing" {
		t.Fatalf("StatusError = %+v", statusErr)
	}
}

func TestGet_ServesFromCache(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	store := newMemStore()
	client := New(srv.URL, testSession(t, store), WithCache(store, time.Minute))

	for i := 0; i < 3; i++ {
		if _, err := client.Stocks(context.Background()); err != nil {
			t.Fatalf("Stocks call %d: %v", i, err)
		}
	}
	if hits != 1 {
		t.Fatalf("server hits = %d, want 1 (cache must serve repeats)", hits)
	}
}

func TestMutate_InvalidatesEndpointPrefix(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`[]`))
			return
		}
		_, _ = w.Write([]byte(`{"id": 1, "symbol": "VT", "name": "Total World", "corporation": "Vanguard", "shares": 10}`))
	}))
	defer srv.Close()

	store := newMemStore()
	client := New(srv.URL, testSession(t, store), WithCache(store, time.Minute))

	if _, err := client.Stocks(context.Background()); err != nil {
		t.Fatalf("prime cache: %v", err)
	}
	if _, ok := store.responses["/stocks"]; !ok {
		t.Fatal("cache not primed for /stocks")
	}

	_, err := client.CreateStock(context.Background(), model.Stock{
		Symbol: "VT", Name: "Total World", Corporation: "Vanguard", Shares: 10,
	})
	if err != nil {
		t.Fatalf("CreateStock: %v", err)
	}
	if _, ok := store.responses["/stocks"]; ok {
		t.Fatal("mutation left /stocks cache entry in place")
	}
}

func TestEnsureFresh_RefreshesExpiredAccess(t *testing.T) {
	refreshCalls := 0
	fresh := ""
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/login/refresh" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		refreshCalls++
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["refresh"] != "refresh-token" {
			t.Errorf("refresh body = %v", body)
		}
		_, _ = w.Write([]byte(`{"access": "` + fresh + `"}`))
	}))
	defer srv.Close()

	store := newMemStore()
	sess := testSession(t, store)
	expiredAccess := signedToken(t, time.Now().Add(-time.Hour))
	if err := sess.SetPair(expiredAccess, "refresh-token"); err != nil {
		t.Fatalf("SetPair: %v", err)
	}

	fresh = signedToken(t, time.Now().Add(time.Hour))
	client := New(srv.URL, sess)
	if err := client.EnsureFresh(context.Background()); err != nil {
		t.Fatalf("EnsureFresh: %v", err)
	}
	if refreshCalls != 1 {
		t.Fatalf("refresh calls = %d, want 1", refreshCalls)
	}
	if sess.AccessToken() != fresh {
		t.Fatal("access token not replaced after refresh")
	}

	// A second check with the fresh token must not hit the server.
	if err := client.EnsureFresh(context.Background()); err != nil {
		t.Fatalf("second EnsureFresh: %v", err)
	}
	if refreshCalls != 1 {
		t.Fatalf("refresh calls after fresh token = %d, want still 1", refreshCalls)
	}
}
