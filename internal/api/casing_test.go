package api

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestCamelize(t *testing.T) {
	cases := map[string]string{
		"first_date":     "firstDate",
		"account_number": "accountNumber",
		"count":          "count",
		"_private":       "_private",
		"trailing_":      "trailing_",
		"a_b_c":          "aBC",
	}
	for in, want := range cases {
		if got := camelize(in); got != want {
			t.Errorf("camelize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDecamelize(t *testing.T) {
	cases := map[string]string{
		"firstDate":     "first_date",
		"accountNumber": "account_number",
		"count":         "count",
		"ID":            "i_d",
	}
	for in, want := range cases {
		if got := decamelize(in); got != want {
			t.Errorf("decamelize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCamelizeBytes_Deep(t *testing.T) {
	raw := []byte(`{
		"transaction_count": 2,
		"transaction_list": [
			{"occur_date": "2026-08-01", "account_name": "Checking"},
			{"occur_date": "2026-08-02", "nested": {"pay_account_name": "Visa"}}
		]
	}`)

	converted, err := camelizeBytes(raw)
	if err != nil {
		t.Fatalf("camelizeBytes: %v", err)
	}

	var tree map[string]any
	if err := json.Unmarshal(converted, &tree); err != nil {
		t.Fatalf("unmarshal converted: %v", err)
	}

	if _, ok := tree["transactionCount"]; !ok {
		t.Fatalf("top-level key not camelized: %v", tree)
	}
	list, ok := tree["transactionList"].([]any)
	if !ok || len(list) != 2 {
		t.Fatalf("transactionList missing or wrong length: %v", tree)
	}
	first := list[0].(map[string]any)
	if _, ok := first["occurDate"]; !ok {
		t.Fatalf("array element key not camelized: %v", first)
	}
	nested := list[1].(map[string]any)["nested"].(map[string]any)
	if _, ok := nested["payAccountName"]; !ok {
		t.Fatalf("nested object key not camelized: %v", nested)
	}
}

func TestEncodeBody_Deep(t *testing.T) {
	body := map[string]any{
		"intervalType":    "month",
		"categoryPortion": map[string]float64{"Housing": 20},
		"items": []map[string]any{
			{"occurDate": "2026-08-01"},
		},
	}

	encoded, err := encodeBody(body)
	if err != nil {
		t.Fatalf("encodeBody: %v", err)
	}

	var tree map[string]any
	if err := json.Unmarshal(encoded, &tree); err != nil {
		t.Fatalf("unmarshal encoded: %v", err)
	}
	if _, ok := tree["interval_type"]; !ok {
		t.Fatalf("top-level key not decamelized: %v", tree)
	}
	items := tree["items"].([]any)
	item := items[0].(map[string]any)
	if _, ok := item["occur_date"]; !ok {
		t.Fatalf("array element key not decamelized: %v", item)
	}
}

func TestConvertKeys_LeavesScalarsAlone(t *testing.T) {
	in := map[string]any{"snake_key": []any{"a_string_value", 3.5, true, nil}}
	out := convertKeys(in, camelize).(map[string]any)
	got := out["snakeKey"].([]any)
	want := []any{"a_string_value", 3.5, true, nil}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("values changed: got %v, want %v", got, want)
	}
}
