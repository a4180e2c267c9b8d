package networth

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// JSONMapping drives a JSON import: Records selects the list of raw records
// in the document, the other fields are jsonpath expressions evaluated
// against each record. Date, Platform and Amount are required; the rest may
// be empty and are then skipped.
//
// Example, for a document like {"accounts":[{"name":"X","balance":12.5,"at":"2025-01-31"}]}:
//
//	JSONMapping{Records: "$.accounts[*]", Date: "$.at", Platform: "$.name", Amount: "$.balance"}
type JSONMapping struct {
	Records      string
	Date         string
	Platform     string
	Amount       string
	Rate         string
	Contribution string
	Notes        string
}

// ImportJSON imports entries from an arbitrary JSON export using the given
// mapping. This is the escape hatch for banking apps whose export format is
// JSON but not ours.
func ImportJSON(r io.Reader, m JSONMapping) ([]Entry, error) {
	if m.Records == "" || m.Date == "" || m.Platform == "" || m.Amount == "" {
		return nil, fmt.Errorf("incomplete mapping: records, date, platform and amount paths are required")
	}

	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse JSON input: %w", err)
	}

	jrecords, err := jsonpath.Get(m.Records, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating records path %q: %w", m.Records, err)
	}
	records, ok := jrecords.([]any)
	if !ok {
		// a path selecting a single object is still a valid import of one
		records = []any{jrecords}
	}

	var entries []Entry
	for i, record := range records {
		e, err := importJSONRecord(record, m)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func importJSONRecord(record any, m JSONMapping) (Entry, error) {
	ds, err := jsonString(record, m.Date)
	if err != nil {
		return Entry{}, fmt.Errorf("date: %w", err)
	}
	d, err := ParseDate(ds)
	if err != nil {
		return Entry{}, fmt.Errorf("date: %w", err)
	}
	platform, err := jsonString(record, m.Platform)
	if err != nil {
		return Entry{}, fmt.Errorf("platform: %w", err)
	}
	amount, err := jsonNumber(record, m.Amount)
	if err != nil {
		return Entry{}, fmt.Errorf("amount: %w", err)
	}

	rate := 0.0
	if m.Rate != "" {
		if rate, err = jsonNumber(record, m.Rate); err != nil {
			return Entry{}, fmt.Errorf("rate: %w", err)
		}
	}
	var contribution *decimal.Decimal
	txType := Snapshot
	if m.Contribution != "" {
		c, err := jsonNumber(record, m.Contribution)
		if err != nil {
			return Entry{}, fmt.Errorf("contribution: %w", err)
		}
		cd := decimal.NewFromFloat(c)
		contribution = &cd
		txType = Contribution
	}
	notes := ""
	if m.Notes != "" {
		// notes are best effort, a missing path is not an error
		notes, _ = jsonString(record, m.Notes)
	}
	return newEntry(d, platform, decimal.NewFromFloat(amount), Percent(rate), txType, contribution, HintNone, notes), nil
}

// jsonValue evaluates a path against a record. jsonpath is never clear about
// whether it returns a list of one answer or a single answer: keep the first
// one if any.
func jsonValue(record any, path string) (any, error) {
	jval, err := jsonpath.Get(path, record)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok {
		if len(jlist) == 0 {
			return nil, fmt.Errorf("path %q matched nothing", path)
		}
		jval = jlist[0]
	}
	return jval, nil
}

func jsonString(record any, path string) (string, error) {
	jval, err := jsonValue(record, path)
	if err != nil {
		return "", err
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("path %q: want a string, got %T", path, jval)
	}
	return s, nil
}

// jsonNumber reads a numeric value; some APIs return numbers as strings,
// sometimes with a comma decimal separator, so those are accepted too.
func jsonNumber(record any, path string) (float64, error) {
	jval, err := jsonValue(record, path)
	if err != nil {
		return 0, err
	}
	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(strings.ReplaceAll(v, ",", "."), 64)
		if err != nil {
			return 0, fmt.Errorf("path %q: cannot parse %q as a number: %w", path, v, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("path %q: want a number, got %T", path, jval)
	}
}
