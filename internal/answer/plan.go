package answer

import "context"

// Outcome classifies a single strategy attempt.
type Outcome int

const (
	// OutcomeSuccess means the strategy produced a usable answer.
	OutcomeSuccess Outcome = iota
	// OutcomeEmpty means the strategy ran but found nothing; the next
	// strategy in the plan is tried.
	OutcomeEmpty
	// OutcomeError means the strategy failed outright; the plan stops.
	OutcomeError
)

// Strategy is one way of producing an answer. An empty outcome may carry
// explanatory text ("no results found for ...") for plans that want to
// surface it.
type Strategy struct {
	Name string
	Run  func(ctx context.Context) (string, Outcome)
}

// Plan is an ordered fallback sequence with terminal messages for the two
// ways the sequence can end without a usable answer.
type Plan struct {
	Strategies []Strategy
	// OnEmpty is returned when every strategy came back empty. A plan
	// with no OnEmpty falls back to the text supplied by the last empty
	// strategy.
	OnEmpty string
	// OnError is returned as soon as any strategy fails outright.
	OnError string
}

// Resolve tries the strategies in order and returns the final answer
// text. It never fails; the terminal messages cover the failure ends.
func (p Plan) Resolve(ctx context.Context) string {
	lastEmpty := ""
	for _, st := range p.Strategies {
		text, outcome := st.Run(ctx)
		switch outcome {
		case OutcomeSuccess:
			return text
		case OutcomeError:
			return p.OnError
		}
		lastEmpty = text
	}
	if p.OnEmpty != "" {
		return p.OnEmpty
	}
	return lastEmpty
}
