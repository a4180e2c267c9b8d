// Package networth provides the analytics engine of a personal net-worth
// tracker. It is designed to be local-first and honest about data quality:
// every metric that cannot be computed from the recorded history is withheld
// rather than estimated.
//
// The core functionalities include:
//   - Ledger Management: recording dated per-platform balance entries,
//     optionally annotated with the cash contributed or withdrawn, in a
//     chronological, human-readable JSONL file.
//   - Summary Calculation: point-in-time portfolio overviews with
//     previous-entry, month-over-month, year-over-year, and year-to-date
//     comparisons.
//   - Data-Quality Classification: grading a history by how much
//     contribution data it carries, which gates the downstream analytics.
//   - Performance Analytics: contribution-adjusted time-weighted returns,
//     simplified money-weighted returns, CAGR, and volatility, with an
//     explicit confidence level and methodology tag on every result.
//   - Cash-Flow Attribution: separating deposited cash from market-driven
//     value change.
//   - Risk Analysis: diversification scoring on any history, plus drawdowns,
//     value-at-risk, and Sharpe/Sortino ratios when the data supports them.
//
// This package serves as the foundational logic for the `nwt` command-line
// tool. All calculations are pure functions over in-memory histories:
// deterministic, free of I/O, and safe to run concurrently.
package networth
