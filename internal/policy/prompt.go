package policy

import (
	"context"
	"fmt"
	"path/filepath"
	"unicode"

	"github.com/dustin/go-humanize"
)

// KeyReader is the interactive prompt channel. ReadKey shows prompt and
// blocks until the user presses one key.
type KeyReader interface {
	ReadKey(ctx context.Context, prompt string) (rune, error)
}

// KeyReaderFunc adapts a function to KeyReader.
type KeyReaderFunc func(ctx context.Context, prompt string) (rune, error)

// ReadKey calls f.
func (f KeyReaderFunc) ReadKey(ctx context.Context, prompt string) (rune, error) {
	return f(ctx, prompt)
}

// Prompt keys. Matching is case-insensitive.
const (
	KeyProceed    = 'o'
	KeySubstitute = 'v'
	KeyAbort      = 'a'
)

const retryHint = "Please answer o, v or a. "

// PromptMessage builds the question shown when the policy asks.
func PromptMessage(path string, size int64, operation string) string {
	if operation == "" {
		operation = "open"
	}
	return fmt.Sprintf("File %s is large (%s): %s normally (o), open with viewer (v) or abort (a)",
		filepath.Base(path), HumanSize(size), operation)
}

// HumanSize formats a byte count with binary unit suffixes.
func HumanSize(size int64) string {
	if size < 0 {
		size = 0
	}
	return humanize.IBytes(uint64(size))
}

// ParseResponse maps a key to an action.
func ParseResponse(key rune) (Action, error) {
	switch unicode.ToLower(key) {
	case KeyProceed:
		return ActionProceed, nil
	case KeySubstitute:
		return ActionSubstitute, nil
	case KeyAbort:
		return ActionAbort, nil
	default:
		return ActionProceed, errInvalidPromptInput
	}
}

// ask prompts until a recognised key arrives.
func ask(ctx context.Context, keys KeyReader, path, message string) (Action, error) {
	prompt := message
	for {
		key, err := keys.ReadKey(ctx, prompt)
		if err != nil {
			return ActionAbort, &PromptError{Path: path, Cause: err}
		}
		action, err := ParseResponse(key)
		if err == nil {
			return action, nil
		}
		prompt = retryHint + message
	}
}
