package policy

import (
	"context"
	"errors"

	"github.com/Cyclone1070/vlf/internal/mode"
)

var errExplainOnly = errors.New("explain only")

// Explanation describes how Decide would treat a file, without prompting.
type Explanation struct {
	// Action is the outcome; meaningless when Rule is "ask".
	Action Action
	Rule   string
	Mode   mode.ID // empty when unresolved
	// Prompt is the question that would be asked when Rule is "ask".
	Prompt string
}

// Explain runs the decision rules for fd under cfg, stopping short of the
// prompt.
func (p *Policy) Explain(fd FileDescriptor, cfg Config) Explanation {
	var prompt string
	probe := &Policy{
		resolver: p.resolver,
		keys: KeyReaderFunc(func(_ context.Context, message string) (rune, error) {
			prompt = message
			return 0, errExplainOnly
		}),
		logger: p.logger,
	}

	action, rule, _ := probe.decide(context.Background(), fd, cfg)
	exp := Explanation{Action: action, Rule: rule, Prompt: prompt}
	if fd.Path != "" {
		if id, ok := p.modeOf(fd); ok {
			exp.Mode = id
		}
	}
	return exp
}
