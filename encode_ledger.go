package networth

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// entryRecord is a specialized struct for decoding json. It carries every
// field an entry line may have; optional fields stay nil when absent.
type entryRecord struct {
	Date         Date             `json:"date"`
	Platform     string           `json:"platform"`
	Amount       decimal.Decimal  `json:"amount"`
	Rate         float64          `json:"rate"`
	Type         string           `json:"transactionType"`
	Contribution *decimal.Decimal `json:"contributionAmount"`
	Quality      string           `json:"dataQuality"`
	Notes        string           `json:"notes"`
}

// tagRecord is the persisted form of a platform display tag.
type tagRecord struct {
	Platform string `json:"platform"`
	Tag      string `json:"tag"`
}

// DecodeLedger decodes a ledger from a stream of JSONL data: one JSON object
// per line, either an entry or a platform tag assignment (identified by the
// presence of a "tag" key). The returned ledger is sorted chronologically.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Tag *string `json:"tag"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: cannot parse ledger line %q: %w", line, string(lineBytes), err)
		}

		if identifier.Tag != nil {
			var t tagRecord
			if err := json.Unmarshal(lineBytes, &t); err != nil {
				return nil, fmt.Errorf("line %d: cannot parse tag line: %w", line, err)
			}
			if t.Platform == "" {
				return nil, fmt.Errorf("line %d: tag line without a platform", line)
			}
			ledger.SetTag(t.Platform, t.Tag)
			continue
		}

		var rec entryRecord
		if err := json.Unmarshal(lineBytes, &rec); err != nil {
			return nil, fmt.Errorf("line %d: cannot parse entry line: %w", line, err)
		}
		e, err := rec.entry()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		ledger.Append(e)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return ledger, nil
}

// entry validates the decoded record and converts it to an Entry.
func (rec entryRecord) entry() (Entry, error) {
	if rec.Date.IsZero() {
		return Entry{}, fmt.Errorf("entry without a date")
	}
	if rec.Platform == "" {
		return Entry{}, fmt.Errorf("entry without a platform")
	}

	txType := Snapshot
	if rec.Type != "" {
		var err error
		if txType, err = ParseTransactionType(rec.Type); err != nil {
			return Entry{}, err
		}
	}
	hint := HintNone
	if rec.Quality != "" {
		var err error
		if hint, err = ParseQualityHint(rec.Quality); err != nil {
			return Entry{}, err
		}
	}
	return newEntry(rec.Date, rec.Platform, rec.Amount, Percent(rec.Rate), txType, rec.Contribution, hint, rec.Notes), nil
}

// EncodeEntry marshals a single entry and writes it to the writer followed by
// a newline, in JSONL format.
func EncodeEntry(w io.Writer, e Entry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal entry: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write entry: %w", err)
	}
	return nil
}

// EncodeLedger persists a ledger to an io.Writer in JSONL format: entries in
// chronological order first, then the platform tag assignments in
// alphabetical platform order, for canonical output.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for _, e := range ledger.entries {
		if err := EncodeEntry(w, e); err != nil {
			return err
		}
	}
	tags := ledger.Tags()
	platforms := make([]string, 0, len(tags))
	for platform := range tags {
		platforms = append(platforms, platform)
	}
	sort.Strings(platforms)
	for _, platform := range platforms {
		data, err := json.Marshal(tagRecord{Platform: platform, Tag: tags[platform]})
		if err != nil {
			return fmt.Errorf("failed to marshal tag for %q: %w", platform, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write tag: %w", err)
		}
	}
	return nil
}
