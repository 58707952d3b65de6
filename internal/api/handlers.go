package api

import (
	"context"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Reshmasriram29/AudioProcessor/internal/models"
	"github.com/Reshmasriram29/AudioProcessor/internal/speech"
)

// Responder produces the answer text for a search query. It never fails;
// retrieval problems are absorbed into substitute messages.
type Responder interface {
	Answer(ctx context.Context, query string) string
}

// SpeechService converts between audio and text.
type SpeechService interface {
	Transcribe(ctx context.Context, upload io.Reader, filename string) (string, error)
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Handler wires HTTP routes to the responder and speech services.
type Handler struct {
	responder Responder
	speech    SpeechService
	staticDir string
	logger    *zap.Logger
}

// NewHandler constructs a Handler instance.
func NewHandler(responder Responder, speechService SpeechService, staticDir string, logger *zap.Logger) *Handler {
	return &Handler{
		responder: responder,
		speech:    speechService,
		staticDir: staticDir,
		logger:    logger,
	}
}

// RegisterRoutes attaches all HTTP routes to the router.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.serveIndex)
	router.GET("/app.js", h.serveScript)
	router.Static("/static", h.staticDir)
	api := router.Group("/api")
	api.POST("/offer", h.handleOffer)
	api.POST("/ice-candidate", h.handleIceCandidate)
	api.POST("/transcribe", h.transcribeAudio)
	api.POST("/search", h.handleSearch)
}

func (h *Handler) serveIndex(c *gin.Context) {
	c.File(filepath.Join(h.staticDir, "index.html"))
}

func (h *Handler) serveScript(c *gin.Context) {
	c.File(filepath.Join(h.staticDir, "app.js"))
}

// handleOffer is a stub; no real signaling exchange takes place.
func (h *Handler) handleOffer(c *gin.Context) {
	var req models.OfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"type": "answer",
		"sdp":  "mock-sdp",
	})
}

// handleIceCandidate is a stub; the candidate is accepted and dropped.
func (h *Handler) handleIceCandidate(c *gin.Context) {
	var req models.IceCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// transcribeAudio reports failures to the caller instead of substituting a
// placeholder answer; the search endpoint deliberately behaves the other
// way around.
func (h *Handler) transcribeAudio(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error saving file: " + err.Error()})
		return
	}
	defer f.Close()

	h.logger.Info("received audio file for transcription", zap.String("filename", file.Filename), zap.Int64("size", file.Size))
	text, err := h.speech.Transcribe(c.Request.Context(), f, file.Filename)
	if err != nil {
		if errors.Is(err, speech.ErrEmptyUpload) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "empty file received"})
			return
		}
		h.logger.Error("transcription failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}

// handleSearch resolves the query to an answer text and attempts to attach
// synthesized audio. A synthesis failure still returns the text.
func (h *Handler) handleSearch(c *gin.Context) {
	var req models.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	text := h.responder.Answer(c.Request.Context(), req.Query)

	audio, err := h.speech.Synthesize(c.Request.Context(), text)
	if err != nil {
		h.logger.Warn("text to speech failed", zap.Error(err))
		c.JSON(http.StatusOK, models.Answer{
			Text:  text,
			Error: "Failed to generate audio response",
		})
		return
	}

	c.JSON(http.StatusOK, models.Answer{
		Text:  text,
		Audio: base64.StdEncoding.EncodeToString(audio),
	})
}
