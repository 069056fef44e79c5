// Package speech converts reply text to playable audio via an external
// text-to-speech provider.
package speech

import (
	"context"
	"errors"
)

// ErrSpeech marks a text-to-speech provider failure. Callers degrade
// to text-only output; synthesis failure is never fatal.
var ErrSpeech = errors.New("speech synthesis failure")

// Synthesizer produces playable audio for reply text.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
