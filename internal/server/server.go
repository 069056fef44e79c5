// Package server exposes the assistant over HTTP for the web UI.
package server

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/konantech/hr-assistant/internal/chat"
	"github.com/konantech/hr-assistant/internal/mood"
	"github.com/konantech/hr-assistant/internal/resume"
)

// maxResumeUpload bounds resume uploads to 10 MiB.
const maxResumeUpload = 10 << 20

// Assistant is the chat pipeline the server drives.
type Assistant interface {
	Handle(ctx context.Context, sessionID, text string) (chat.Reply, error)
	SetResume(sessionID, text string)
}

// Config wraps the knobs that affect request handling.
type Config struct {
	Addr           string
	RequestTimeout time.Duration
}

// Server routes API requests to the assistant and the mood stores.
type Server struct {
	echo      *echo.Echo
	assistant Assistant
	moods     mood.Log
	checkins  mood.CheckinStore
	cfg       Config
}

// New wires routes and middleware.
func New(cfg Config, assistant Assistant, moods mood.Log, checkins mood.CheckinStore) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(), middleware.Recover(), middleware.CORS())

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 60 * time.Second
	}

	s := &Server{
		echo:      e,
		assistant: assistant,
		moods:     moods,
		checkins:  checkins,
		cfg:       cfg,
	}
	s.setupRoutes()
	return s
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	return s.echo.Start(s.cfg.Addr)
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")
	api.POST("/chat", s.postChat)
	api.POST("/resume", s.postResume)
	api.GET("/moods", s.getMoods)
	api.GET("/checkins", s.getCheckins)
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type chatResponse struct {
	Reply  string `json:"reply"`
	Mood   string `json:"mood"`
	Logged bool   `json:"logged"`
	Spoken bool   `json:"spoken"`
	Audio  string `json:"audio,omitempty"` // base64 MP3
}

func (s *Server) postChat(c echo.Context) error {
	req := new(chatRequest)
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.SessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session_id is required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), s.cfg.RequestTimeout)
	defer cancel()

	reply, err := s.assistant.Handle(ctx, req.SessionID, req.Message)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return echo.NewHTTPError(http.StatusGatewayTimeout, "the assistant took too long to respond")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := chatResponse{
		Reply:  reply.Text,
		Mood:   string(reply.Mood),
		Logged: reply.Logged,
		Spoken: reply.Spoken,
	}
	if len(reply.Audio) > 0 {
		resp.Audio = base64.StdEncoding.EncodeToString(reply.Audio)
	}
	return c.JSON(http.StatusOK, resp)
}

type resumeResponse struct {
	Chars int `json:"chars"`
}

func (s *Server) postResume(c echo.Context) error {
	sessionID := c.FormValue("session_id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session_id is required")
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "resume file is required")
	}
	if fileHeader.Size > maxResumeUpload {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "resume file is too large")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	text, err := resume.ExtractText(fileHeader.Filename, data)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	s.assistant.SetResume(sessionID, text)
	return c.JSON(http.StatusOK, resumeResponse{Chars: len(text)})
}

type moodEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Mood      string    `json:"mood"`
}

func (s *Server) getMoods(c echo.Context) error {
	records, err := s.moods.ReadAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	entries := make([]moodEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, moodEntry{Timestamp: record.Timestamp, Mood: string(record.Label)})
	}
	return c.JSON(http.StatusOK, entries)
}

type checkinEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Score     int       `json:"score"`
}

func (s *Server) getCheckins(c echo.Context) error {
	records, err := s.checkins.ReadAll(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	entries := make([]checkinEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, checkinEntry{Timestamp: record.Timestamp, Score: record.Score})
	}
	return c.JSON(http.StatusOK, entries)
}
