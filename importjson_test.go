package networth

import (
	"strings"
	"testing"
)

const accountsExport = `{
  "accounts": [
    {"name": "Bank", "balance": 1000.5, "at": "2024-01-01"},
    {"name": "Broker", "balance": "2500,75", "at": "2024-02-01", "deposited": 500}
  ]
}`

func TestImportJSON(t *testing.T) {
	m := JSONMapping{
		Records:  "$.accounts[*]",
		Date:     "$.at",
		Platform: "$.name",
		Amount:   "$.balance",
	}
	entries, err := ImportJSON(strings.NewReader(accountsExport), m)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if e := entries[0]; e.Date() != jan(1) || e.Platform() != "Bank" || e.Amount() != 1000.5 {
		t.Errorf("entries[0] = %v", e)
	}
	// string number with a comma decimal separator
	if got := entries[1].Amount(); got != 2500.75 {
		t.Errorf("entries[1].Amount() = %v, want 2500.75", got)
	}
}

func TestImportJSON_WithContribution(t *testing.T) {
	doc := `{"rows":[{"name":"Broker","balance":2500,"at":"2024-02-01","deposited":500}]}`
	m := JSONMapping{
		Records:      "$.rows[*]",
		Date:         "$.at",
		Platform:     "$.name",
		Amount:       "$.balance",
		Contribution: "$.deposited",
	}
	entries, err := ImportJSON(strings.NewReader(doc), m)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	e := entries[0]
	if e.TransactionType() != Contribution {
		t.Errorf("TransactionType() = %v, want %v", e.TransactionType(), Contribution)
	}
	if c, ok := e.Contribution(); !ok || c != 500 {
		t.Errorf("Contribution() = %v,%v, want 500,true", c, ok)
	}
}

func TestImportJSON_Errors(t *testing.T) {
	valid := JSONMapping{Records: "$.accounts[*]", Date: "$.at", Platform: "$.name", Amount: "$.balance"}

	t.Run("incomplete mapping", func(t *testing.T) {
		if _, err := ImportJSON(strings.NewReader(accountsExport), JSONMapping{Records: "$.accounts[*]"}); err == nil {
			t.Error("expected an error for an incomplete mapping")
		}
	})
	t.Run("not json", func(t *testing.T) {
		if _, err := ImportJSON(strings.NewReader("nope"), valid); err == nil {
			t.Error("expected an error for invalid JSON")
		}
	})
	t.Run("bad amount type", func(t *testing.T) {
		doc := `{"accounts":[{"name":"Bank","balance":true,"at":"2024-01-01"}]}`
		_, err := ImportJSON(strings.NewReader(doc), valid)
		if err == nil || !strings.Contains(err.Error(), "amount") {
			t.Errorf("error = %v, want an amount error", err)
		}
	})
	t.Run("bad date", func(t *testing.T) {
		doc := `{"accounts":[{"name":"Bank","balance":1,"at":"when?"}]}`
		_, err := ImportJSON(strings.NewReader(doc), valid)
		if err == nil || !strings.Contains(err.Error(), "record 1") {
			t.Errorf("error = %v, want it keyed to record 1", err)
		}
	})
}
