package networth

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// This file contains functions to handle the CSV import/export format.
// It should remain human readable, single file and easy to produce from a
// spreadsheet export.

// csvHeader is the canonical column order. The first four columns are
// required on import; the remaining three are optional, but must appear in
// this order when present.
var csvHeader = []string{"Date", "Platform", "Amount", "Rate", "TransactionType", "ContributionAmount", "Notes"}

const csvRequiredColumns = 4

// ImportCSV imports entries from 'r' in the CSV import/export format.
//
// The first row must be a header starting with Date,Platform,Amount,Rate;
// the optional TransactionType, ContributionAmount and Notes columns extend
// it in that order. Every error is reported with its line number.
func ImportCSV(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // validated per row, for better messages

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty CSV input: expected a header row")
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header: %w", err)
	}
	if err := checkCSVHeader(header); err != nil {
		return nil, err
	}

	var entries []Entry
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		e, err := parseCSVRecord(record, len(header))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func checkCSVHeader(header []string) error {
	if len(header) < csvRequiredColumns || len(header) > len(csvHeader) {
		return fmt.Errorf("CSV header has %d columns, want between %d and %d", len(header), csvRequiredColumns, len(csvHeader))
	}
	for i, name := range header {
		if !strings.EqualFold(strings.TrimSpace(name), csvHeader[i]) {
			return fmt.Errorf("CSV header column %d is %q, want %q", i+1, name, csvHeader[i])
		}
	}
	return nil
}

func parseCSVRecord(record []string, columns int) (Entry, error) {
	if len(record) < csvRequiredColumns || len(record) > columns {
		return Entry{}, fmt.Errorf("row has %d columns, want between %d and %d", len(record), csvRequiredColumns, columns)
	}
	field := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	d, err := ParseDate(field(0))
	if err != nil {
		return Entry{}, fmt.Errorf("bad date %q: %w", field(0), err)
	}
	platform := field(1)
	if platform == "" {
		return Entry{}, fmt.Errorf("empty platform")
	}
	amount, err := decimal.NewFromString(field(2))
	if err != nil {
		return Entry{}, fmt.Errorf("bad amount %q: %w", field(2), err)
	}
	rate := 0.0
	if s := field(3); s != "" {
		if rate, err = strconv.ParseFloat(s, 64); err != nil {
			return Entry{}, fmt.Errorf("bad rate %q: %w", s, err)
		}
	}
	txType, err := ParseTransactionType(field(4))
	if err != nil {
		return Entry{}, err
	}
	var contribution *decimal.Decimal
	if s := field(5); s != "" {
		c, err := decimal.NewFromString(s)
		if err != nil {
			return Entry{}, fmt.Errorf("bad contribution amount %q: %w", s, err)
		}
		contribution = &c
	}
	return newEntry(d, platform, amount, Percent(rate), txType, contribution, HintNone, field(6)), nil
}

// ExportCSV exports entries to 'w' in the CSV import/export format, always
// with the full seven-column header.
func ExportCSV(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, e := range entries {
		record := []string{
			e.Date().String(),
			e.Platform(),
			strconv.FormatFloat(e.Amount(), 'f', -1, 64),
			strconv.FormatFloat(float64(e.Rate()), 'f', -1, 64),
			"",
			"",
			e.Notes(),
		}
		if e.TransactionType() != Snapshot {
			record[4] = string(e.TransactionType())
		}
		if c, ok := e.Contribution(); ok {
			record[5] = strconv.FormatFloat(c, 'f', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV row for %s: %w", e, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
