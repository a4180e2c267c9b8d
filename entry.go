package networth

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes a plain balance snapshot from a period where
// money was deliberately added or removed.
type TransactionType string

const (
	Snapshot     TransactionType = "snapshot"
	Contribution TransactionType = "contribution"
)

// ParseTransactionType parses a string into a TransactionType.
// The empty string defaults to Snapshot.
func ParseTransactionType(s string) (TransactionType, error) {
	switch s {
	case "", string(Snapshot):
		return Snapshot, nil
	case string(Contribution):
		return Contribution, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// QualityHint is a user- or import-supplied hint on a single entry.
// When absent, the enhancement state is inferred from the presence of
// contribution data.
type QualityHint string

const (
	HintNone         QualityHint = ""
	HintEnhanced     QualityHint = "enhanced"
	HintSnapshotOnly QualityHint = "snapshot_only"
)

// ParseQualityHint parses a string into a QualityHint.
func ParseQualityHint(s string) (QualityHint, error) {
	switch QualityHint(s) {
	case HintNone, HintEnhanced, HintSnapshotOnly:
		return QualityHint(s), nil
	default:
		return HintNone, fmt.Errorf("unknown data quality hint: %q", s)
	}
}

// Entry is the atomic record: the balance of one platform on one date,
// optionally annotated with the cash contributed or withdrawn since the
// previous entry. Entries are immutable once created; all derived
// structures are newly allocated.
type Entry struct {
	date         Date
	platform     string
	amount       decimal.Decimal
	rate         Percent // expected annualized return for the platform
	txType       TransactionType
	contribution *decimal.Decimal // nil when no contribution tracking
	hint         QualityHint
	notes        string

	// The three contribution signals collapse into one state, derived once
	// here so call sites cannot disagree about it.
	enhanced bool
}

// NewEntry creates a snapshot-only entry.
func NewEntry(on Date, platform string, amount, rate float64) Entry {
	return newEntry(on, platform, decimal.NewFromFloat(amount), Percent(rate), Snapshot, nil, HintNone, "")
}

// NewContribution creates an entry that carries contribution data.
// A negative contribution is a withdrawal.
func NewContribution(on Date, platform string, amount, rate, contribution float64) Entry {
	c := decimal.NewFromFloat(contribution)
	return newEntry(on, platform, decimal.NewFromFloat(amount), Percent(rate), Contribution, &c, HintNone, "")
}

func newEntry(on Date, platform string, amount decimal.Decimal, rate Percent, txType TransactionType, contribution *decimal.Decimal, hint QualityHint, notes string) Entry {
	if txType == "" {
		txType = Snapshot
	}
	e := Entry{
		date:         on,
		platform:     platform,
		amount:       amount,
		rate:         rate,
		txType:       txType,
		contribution: contribution,
		hint:         hint,
		notes:        notes,
	}
	e.enhanced = contribution != nil || hint == HintEnhanced || txType == Contribution
	return e
}

func (e Entry) Date() Date                       { return e.date }
func (e Entry) Platform() string                 { return e.platform }
func (e Entry) Rate() Percent                    { return e.rate }
func (e Entry) TransactionType() TransactionType { return e.txType }
func (e Entry) QualityHint() QualityHint         { return e.hint }
func (e Entry) Notes() string                    { return e.notes }

// Amount returns the balance as a float for the analytics engine.
func (e Entry) Amount() float64 { return e.amount.InexactFloat64() }

// Money returns the balance as a display value in the given currency.
func (e Entry) Money(currency string) Money { return Money{value: e.amount, cur: currency} }

// Contribution returns the contribution amount and whether the entry carries
// contribution data at all. A recorded zero is distinct from "not tracked".
func (e Entry) Contribution() (float64, bool) {
	if e.contribution == nil {
		return 0, false
	}
	return e.contribution.InexactFloat64(), true
}

// Enhanced reports whether this entry carries the enhancement signal:
// a contribution amount, a contribution transaction type, or an explicit
// enhanced quality hint.
func (e Entry) Enhanced() bool { return e.enhanced }

// WithNotes returns a copy of the entry with the given notes attached.
func (e Entry) WithNotes(notes string) Entry {
	e.notes = notes
	return e
}

// WithHint returns a copy of the entry with the given quality hint, with the
// enhancement state re-derived.
func (e Entry) WithHint(hint QualityHint) Entry {
	return newEntry(e.date, e.platform, e.amount, e.rate, e.txType, e.contribution, hint, e.notes)
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %s %s", e.date, e.platform, e.amount)
}

// MarshalJSON writes the entry with a stable key order for canonical JSONL files.
func (e Entry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", e.date)
	w.Append("platform", e.platform)
	w.Append("amount", e.amount)
	w.Append("rate", float64(e.rate))
	if e.txType != Snapshot {
		w.Append("transactionType", string(e.txType))
	}
	if e.contribution != nil {
		w.Append("contributionAmount", *e.contribution)
	}
	w.Optional("dataQuality", string(e.hint))
	w.Optional("notes", e.notes)
	return w.MarshalJSON()
}
