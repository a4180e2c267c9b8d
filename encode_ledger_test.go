package networth

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeDecodeLedger(t *testing.T) {
	l := NewLedger()
	l.Append(
		NewEntry(jan(1), "Bank", 1000.50, 1.5),
		NewContribution(feb(1), "Broker", 2500, 7, 500).WithNotes("monthly deposit"),
		NewEntry(feb(1), "Bank", 1010, 1.5).WithHint(HintSnapshotOnly),
	)
	l.SetTag("Broker", "investments")

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}

	back, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}

	if back.Len() != l.Len() {
		t.Fatalf("Len() = %d, want %d", back.Len(), l.Len())
	}
	for i, e := range back.All() {
		want := l.Entries()[i]
		if e.Date() != want.Date() || e.Platform() != want.Platform() {
			t.Errorf("entry %d = %v, want %v", i, e, want)
		}
		if e.Amount() != want.Amount() || e.Rate() != want.Rate() {
			t.Errorf("entry %d amount/rate = %v/%v, want %v/%v", i, e.Amount(), e.Rate(), want.Amount(), want.Rate())
		}
		gc, gok := e.Contribution()
		wc, wok := want.Contribution()
		if gc != wc || gok != wok {
			t.Errorf("entry %d contribution = %v,%v, want %v,%v", i, gc, gok, wc, wok)
		}
		if e.Notes() != want.Notes() || e.QualityHint() != want.QualityHint() {
			t.Errorf("entry %d notes/hint = %q/%q, want %q/%q", i, e.Notes(), e.QualityHint(), want.Notes(), want.QualityHint())
		}
	}
	if got := back.Tag("Broker"); got != "investments" {
		t.Errorf("Tag(Broker) = %q, want %q", got, "investments")
	}
}

func TestEncodeEntry_Canonical(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeEntry(&buf, NewEntry(jan(1), "Bank", 1000, 1.5)); err != nil {
		t.Fatalf("EncodeEntry() error = %v", err)
	}
	want := `{"date":"2024-01-01","platform":"Bank","amount":1000,"rate":1.5}` + "\n"
	if buf.String() != want {
		t.Errorf("EncodeEntry() = %q, want %q", buf.String(), want)
	}
}

func TestEncodeEntry_WithContribution(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeEntry(&buf, NewContribution(feb(1), "Broker", 2500, 7, 500)); err != nil {
		t.Fatalf("EncodeEntry() error = %v", err)
	}
	want := `{"date":"2024-02-01","platform":"Broker","amount":2500,"rate":7,"transactionType":"contribution","contributionAmount":500}` + "\n"
	if buf.String() != want {
		t.Errorf("EncodeEntry() = %q, want %q", buf.String(), want)
	}
}

func TestDecodeLedger_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "not json at all\n"},
		{"entry without date", `{"platform":"Bank","amount":10,"rate":0}` + "\n"},
		{"entry without platform", `{"date":"2024-01-01","amount":10,"rate":0}` + "\n"},
		{"unknown transaction type", `{"date":"2024-01-01","platform":"B","amount":10,"rate":0,"transactionType":"wat"}` + "\n"},
		{"tag without platform", `{"tag":"investments"}` + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeLedger(strings.NewReader(tt.input)); err == nil {
				t.Errorf("DecodeLedger(%q) did not fail", tt.input)
			}
		})
	}
}

func TestDecodeLedger_SkipsEmptyLinesAndSorts(t *testing.T) {
	input := `{"date":"2024-02-01","platform":"B","amount":20,"rate":0}

{"date":"2024-01-01","platform":"A","amount":10,"rate":0}
`
	l, err := DecodeLedger(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	if l.Entries()[0].Platform() != "A" {
		t.Errorf("first entry = %v, want the January one", l.Entries()[0])
	}
}
