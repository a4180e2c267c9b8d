package agent

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/oxal/networth"
	"github.com/oxal/networth/docs"
	"github.com/oxal/networth/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:        "Facilitator",
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his net worth: how much he has, how it moved,
			whether his returns come from saving or from investing, and how reliable those numbers are.

			Devise a plan of questions to ask each expert and come up with the best response to the
			user's request.

			The user will assume you know about his platforms, check the ledger first to understand
			what they are. When a report says its figures are gated by data quality, relay that
			honestly instead of inventing numbers.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewCoach returns a search-grounded expert for general financial questions.
func NewCoach() *Expert {
	return &Expert{
		Name: "Coach",
		Description: `This is a personal finance coach,
		well aware of savings products, investment platforms, and market context.
		Ask the Coach whenever you need recent or grounding information from outside the ledger.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are a personal finance coach. You can search and find about anything related to
			savings accounts, brokers, funds, interest rates and markets. You leverage Google
			Search to ground your assertions in a solid truth.
			You never see the user's ledger, the Analyst does. Stick to general context.
				`}}},
		},
	}
}

// NewAnalyst returns the expert in charge of reading the user's ledger and
// computing the reports. ledgerFile is the path to the JSONL ledger.
func NewAnalyst(ledgerFile string) *Expert {

	lib := []Function{
		summaryFunc(ledgerFile),
		performanceFunc(ledgerFile),
		riskFunc(ledgerFile),
		cashFlowFunc(ledgerFile),
		qualityFunc(ledgerFile),
	}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of reading the user's net worth ledger.
		He can compute the summary, performance, risk, cash-flow and data-quality reports.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's net worth ledger.
				You know how to use the Tools to extract the relevant reports. You are part of a
				team of experts, yours is everything recorded in the ledger. They might ask you
				questions in approximate language, figure out what they meant.

				Use the available tools to get
				  - the current summary and per-platform breakdown
				  - performance metrics, with their confidence level
				  - risk and diversification figures
				  - where the growth came from, contributions or investments
				  - the data quality classification that gates the other reports

				Always report the confidence or quality tier alongside the figures.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func errorResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func outputResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func summaryFunc(ledgerFile string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary computes the total net worth on a given date with a per-platform
			breakdown and a comparison against a historical snapshot.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"date": {
						Type: genai.TypeString,
						Description: `The date of the summary. The newest entry date is the default.
						Otherwise it uses a flexible date format based on YYYY-MM-DD:

						` + must(docs.GetTopic("dates")),
					},
					"compare": {
						Type:        genai.TypeString,
						Description: "The comparison snapshot: prev, mom, yoy or ytd. Default is prev.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted net worth summary with the per-platform table.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ledger, err := decodeLedger(ledgerFile)
			if err != nil {
				return errorResponse(id, "Summary", err)
			}
			if ledger.Len() == 0 {
				return outputResponse(id, "Summary", "The ledger is empty.")
			}

			comparison := networth.PreviousEntry
			if s, ok := args["compare"].(string); ok && s != "" {
				if comparison, ok = networth.ParseComparison(s); !ok {
					return errorResponse(id, "Summary", fmt.Errorf("unknown comparison %q, want prev, mom, yoy or ytd", s))
				}
			}

			on := ledger.NewestEntryDate()
			if s, ok := args["date"].(string); ok && s != "" {
				if on, err = networth.ParseDate(s); err != nil {
					return errorResponse(id, "Summary", err)
				}
			}

			byDate := networth.GroupByDate(ledger.Entries())
			dates := networth.SortedDatesDesc(byDate)
			current := ledger.On(on)
			previous := networth.HistoricalSnapshot(on, comparison, dates, byDate)

			s := networth.NewSummary(current, previous)
			return outputResponse(id, "Summary", renderer.SummaryMarkdown(s, comparison))
		},
	}
}

func performanceFunc(ledgerFile string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Performance",
			Description: `Performance computes the return metrics for the whole ledger or one platform:
			time-weighted return, money-weighted return, CAGR, total return and volatility, with a
			confidence level and the methodology that produced them.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"platform": {
						Type:        genai.TypeString,
						Description: "Restrict to one platform. All platforms by default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted performance report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			entries, err := loadEntries(ledgerFile, args)
			if err != nil {
				return errorResponse(id, "Performance", err)
			}
			return outputResponse(id, "Performance", renderer.PerformanceMarkdown(networth.NewPerformance(entries)))
		},
	}
}

func riskFunc(ledgerFile string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Risk",
			Description: `Risk computes the diversification score and, when the data quality allows,
			the investment risk metrics: volatility, drawdowns, value at risk, Sharpe and Sortino.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"platform": {
						Type:        genai.TypeString,
						Description: "Restrict to one platform. All platforms by default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted risk report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			entries, err := loadEntries(ledgerFile, args)
			if err != nil {
				return errorResponse(id, "Risk", err)
			}
			return outputResponse(id, "Risk", renderer.RiskMarkdown(networth.NewRisk(entries)))
		},
	}
}

func cashFlowFunc(ledgerFile string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "CashFlow",
			Description: `CashFlow attributes the growth of the net worth between contributions and
			investment gains, and summarizes the contribution habits.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"platform": {
						Type:        genai.TypeString,
						Description: "Restrict to one platform. All platforms by default.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted cash-flow report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			entries, err := loadEntries(ledgerFile, args)
			if err != nil {
				return errorResponse(id, "CashFlow", err)
			}
			return outputResponse(id, "CashFlow", renderer.CashFlowMarkdown(networth.NewCashFlow(entries)))
		},
	}
}

func qualityFunc(ledgerFile string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Quality",
			Description: `Quality classifies the ledger as enhanced, mixed or snapshot-only and
			explains which analyses that classification unlocks.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted data quality report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ledger, err := decodeLedger(ledgerFile)
			if err != nil {
				return errorResponse(id, "Quality", err)
			}
			return outputResponse(id, "Quality", renderer.QualityMarkdown(networth.Classify(ledger.Entries())))
		},
	}
}

// loadEntries reads the ledger and applies the optional platform argument.
func loadEntries(ledgerFile string, args map[string]any) ([]networth.Entry, error) {
	ledger, err := decodeLedger(ledgerFile)
	if err != nil {
		return nil, err
	}
	if p, ok := args["platform"].(string); ok && p != "" {
		entries := ledger.Filter(networth.ByPlatform(p))
		if len(entries) == 0 {
			return nil, fmt.Errorf("no entries for platform %q", p)
		}
		return entries, nil
	}
	return ledger.Entries(), nil
}

// decodeLedger decodes the ledger from the given file. If the file does not
// exist, it returns a new empty ledger.
func decodeLedger(ledgerFile string) (*networth.Ledger, error) {
	f, err := os.Open(ledgerFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return networth.NewLedger(), nil
		}
		return nil, fmt.Errorf("could not open ledger file %q: %w", ledgerFile, err)
	}
	defer f.Close()

	ledger, err := networth.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", ledgerFile, err)
	}
	return ledger, nil
}
