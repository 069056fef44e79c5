package speech

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// OpenAISynthesizer renders text to MP3 audio via the OpenAI speech
// endpoint.
type OpenAISynthesizer struct {
	client *openai.Client
	model  string
	voice  string
}

// NewOpenAISynthesizer returns a synthesizer. Empty model and voice
// fall back to tts-1 with the alloy voice.
func NewOpenAISynthesizer(apiKey, model, voice string) (*OpenAISynthesizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = "tts-1"
	}
	if voice == "" {
		voice = "alloy"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAISynthesizer{
		client: &client,
		model:  model,
		voice:  voice,
	}, nil
}

// Synthesize returns MP3 bytes for text.
func (s *OpenAISynthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text cannot be empty", ErrSpeech)
	}

	resp, err := s.client.Audio.Speech.New(ctx, openai.AudioSpeechNewParams{
		Model:          openai.SpeechModel(s.model),
		Input:          text,
		Voice:          openai.AudioSpeechNewParamsVoice(s.voice),
		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	})
	if err != nil {
		slog.Error("failed to call speech API", "model", s.model, "error", err.Error())
		return nil, fmt.Errorf("%w: %v", ErrSpeech, err)
	}
	defer resp.Body.Close()

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read audio body: %v", ErrSpeech, err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("%w: empty audio response", ErrSpeech)
	}
	return audio, nil
}
