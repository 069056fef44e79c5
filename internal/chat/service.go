// Package chat orchestrates one assistant turn: mood detection and
// logging, the wellbeing check-in flow, and policy questions answered
// by the completion provider with optional speech output.
package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/konantech/hr-assistant/internal/llm"
	"github.com/konantech/hr-assistant/internal/mood"
	"github.com/konantech/hr-assistant/internal/prompt"
	"github.com/konantech/hr-assistant/internal/speech"
)

const (
	greetingReply = "Hello. Ask me about leave, HR policy, or upload your CV for feedback."
	checkinPrompt = "On a scale of 1-10, how are you feeling today?"
	checkinRetry  = "Please enter a number between 1 and 10."
	apologyReply  = "Sorry, I could not reach the assistant service right now. Please try again in a moment."
	emptyReply    = "Please type a message."
)

// supportiveReplies are the canned responses for detected moods. A
// detection short-circuits the turn; the completion provider is not
// called.
var supportiveReplies = map[mood.Label]string{
	mood.LabelStressed:  "I'm sorry you're feeling stressed. Consider taking a short break or speaking with your manager or HR.",
	mood.LabelSad:       "I'm sorry you're feeling this way. You're not alone; support is available.",
	mood.LabelTired:     "It sounds like you've been working hard. Rest and recovery are important.",
	mood.LabelMotivated: "Love the energy. Pick one clear goal for today and keep the momentum going.",
	mood.LabelHappy:     "Glad to hear it. Keep it up!",
}

var greetings = map[string]bool{"hi": true, "hello": true, "hey": true}

// Mood keywords in the classifier table win over a check-in request
// because classification runs first.
var checkinKeywords = []string{"check in", "check-in", "mood", "how am i doing"}

// Reply is the outcome of one turn.
type Reply struct {
	Text   string
	Audio  []byte // MP3, empty when synthesis was skipped or failed
	Mood   mood.Label
	Logged bool // a mood or check-in record was persisted this turn
	Spoken bool
}

// Service runs the synchronous per-interaction pipeline. One instance
// serves all sessions; per-session state is the pending check-in flag
// and the uploaded resume text.
type Service struct {
	classifier *mood.Classifier
	moods      mood.Log
	checkins   mood.CheckinStore
	history    HistoryStore
	builder    *prompt.Builder
	completer  llm.Client
	tts        speech.Synthesizer // nil disables speech output
	now        func() time.Time

	mu             sync.Mutex
	pendingCheckin map[string]bool
	resumeTexts    map[string]string
}

// NewService wires the pipeline. tts may be nil for text-only
// deployments.
func NewService(
	classifier *mood.Classifier,
	moods mood.Log,
	checkins mood.CheckinStore,
	history HistoryStore,
	builder *prompt.Builder,
	completer llm.Client,
	tts speech.Synthesizer,
) *Service {
	return &Service{
		classifier:     classifier,
		moods:          moods,
		checkins:       checkins,
		history:        history,
		builder:        builder,
		completer:      completer,
		tts:            tts,
		now:            time.Now,
		pendingCheckin: make(map[string]bool),
		resumeTexts:    make(map[string]string),
	}
}

// SetResume stores extracted resume text for a session. Later policy
// questions from that session include it in the composed prompt.
func (s *Service) SetResume(sessionID, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resumeTexts[sessionID] = text
}

// Handle runs one turn for a session. Provider and storage failures
// degrade the reply; they never propagate as errors.
func (s *Service) Handle(ctx context.Context, sessionID, text string) (Reply, error) {
	if err := ctx.Err(); err != nil {
		return Reply{}, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Reply{Text: emptyReply, Mood: mood.LabelNeutral}, nil
	}
	lowered := strings.ToLower(text)

	if s.takePendingCheckin(sessionID) {
		return s.handleCheckinScore(ctx, sessionID, text), nil
	}

	if greetings[lowered] {
		s.record(ctx, sessionID, text, greetingReply)
		return Reply{Text: greetingReply, Mood: mood.LabelNeutral}, nil
	}

	if label := s.classifier.Classify(text); label != mood.LabelNeutral {
		return s.handleMood(ctx, sessionID, text, label), nil
	}

	if isCheckinRequest(lowered) {
		s.setPendingCheckin(sessionID)
		s.record(ctx, sessionID, text, checkinPrompt)
		return Reply{Text: checkinPrompt, Mood: mood.LabelNeutral}, nil
	}

	return s.handleQuestion(ctx, sessionID, text), nil
}

// handleMood appends the detection to the mood log and returns the
// supportive reply without calling the completion provider.
func (s *Service) handleMood(ctx context.Context, sessionID, text string, label mood.Label) Reply {
	logged := true
	if err := s.moods.Append(ctx, label, s.now()); err != nil {
		slog.Warn("failed to persist mood record, continuing without it",
			"session_id", sessionID, "label", label, "error", err.Error())
		logged = false
	}

	reply := supportiveReplies[label]
	s.record(ctx, sessionID, text, reply)
	return Reply{Text: reply, Mood: label, Logged: logged}
}

// handleCheckinScore parses the 1-10 answer to a pending check-in.
func (s *Service) handleCheckinScore(ctx context.Context, sessionID, text string) Reply {
	score, err := strconv.Atoi(text)
	if err != nil || score < 1 || score > 10 {
		s.setPendingCheckin(sessionID)
		s.record(ctx, sessionID, text, checkinRetry)
		return Reply{Text: checkinRetry, Mood: mood.LabelNeutral}
	}

	logged := true
	reply := fmt.Sprintf("Thanks, I've logged your mood as %d/10.", score)
	if err := s.checkins.Append(ctx, score, s.now()); err != nil {
		slog.Warn("failed to persist check-in score, continuing without it",
			"session_id", sessionID, "score", score, "error", err.Error())
		logged = false
		reply = "Thanks for sharing. I couldn't save your check-in right now, but your answer was noted."
	}

	s.record(ctx, sessionID, text, reply)
	return Reply{Text: reply, Mood: mood.LabelNeutral, Logged: logged}
}

// handleQuestion composes the prompt and calls the completion
// provider, then synthesizes speech for the reply.
func (s *Service) handleQuestion(ctx context.Context, sessionID, text string) Reply {
	req, err := s.builder.Compose(text, s.resumeText(sessionID))
	if err != nil {
		slog.Error("failed to compose prompt", "session_id", sessionID, "error", err.Error())
		return Reply{Text: apologyReply, Mood: mood.LabelNeutral}
	}

	replyText, err := s.completer.Complete(ctx, req)
	if err != nil {
		slog.Error("completion failed", "session_id", sessionID, "error", err.Error())
		// Chat history and the mood log stay untouched.
		return Reply{Text: apologyReply, Mood: mood.LabelNeutral}
	}

	var audio []byte
	if s.tts != nil {
		audio, err = s.tts.Synthesize(ctx, replyText)
		if err != nil {
			slog.Warn("speech synthesis failed, degrading to text only",
				"session_id", sessionID, "error", err.Error())
			audio = nil
		}
	}

	s.record(ctx, sessionID, text, replyText)
	return Reply{Text: replyText, Audio: audio, Mood: mood.LabelNeutral, Spoken: len(audio) > 0}
}

// record appends the user and assistant turns to chat history. History
// failures are logged and swallowed.
func (s *Service) record(ctx context.Context, sessionID, userText, assistantText string) {
	now := s.now()
	turns := []Message{
		{SessionID: sessionID, Role: "user", Content: userText, CreatedAt: now},
		{SessionID: sessionID, Role: "assistant", Content: assistantText, CreatedAt: now},
	}
	for _, msg := range turns {
		if err := s.history.AppendMessage(ctx, msg); err != nil {
			slog.Warn("failed to persist chat message", "session_id", sessionID, "error", err.Error())
			return
		}
	}
}

func (s *Service) resumeText(sessionID string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.resumeTexts[sessionID]
}

func (s *Service) setPendingCheckin(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingCheckin[sessionID] = true
}

// takePendingCheckin reports and clears the pending flag in one step
// so a score answer is consumed exactly once.
func (s *Service) takePendingCheckin(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	pending := s.pendingCheckin[sessionID]
	delete(s.pendingCheckin, sessionID)
	return pending
}

func isCheckinRequest(lowered string) bool {
	for _, keyword := range checkinKeywords {
		if strings.Contains(lowered, keyword) {
			return true
		}
	}
	return false
}
