package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// ErrEmptyUpload is returned when an uploaded audio payload contains no
// bytes. The upload is rejected before any provider call.
var ErrEmptyUpload = errors.New("empty file received")

// Service transcribes uploaded audio and synthesizes speech through the
// OpenAI audio APIs. Every call owns one transient on-disk asset which is
// deleted before the call returns, success or failure.
type Service struct {
	client  *openai.Client
	tempDir string
	logger  *zap.Logger
}

// NewService constructs a speech service backed by the OpenAI API.
func NewService(apiKey, tempDir string, logger *zap.Logger) *Service {
	return NewServiceWithBaseURL(apiKey, "", tempDir, logger)
}

// NewServiceWithBaseURL is NewService with an API endpoint override, used
// by tests.
func NewServiceWithBaseURL(apiKey, baseURL, tempDir string, logger *zap.Logger) *Service {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Service{
		client:  openai.NewClientWithConfig(cfg),
		tempDir: tempDir,
		logger:  logger,
	}
}

// Transcribe saves the uploaded audio to a transient asset, submits it to
// the transcription API and returns the transcript text.
func (s *Service) Transcribe(ctx context.Context, upload io.Reader, filename string) (string, error) {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".wav"
	}
	path := filepath.Join(s.tempDir, fmt.Sprintf("temp_audio_%s%s", uuid.NewString(), ext))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	defer s.removeAsset(path)

	written, err := io.Copy(f, upload)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}
	if written == 0 {
		return "", ErrEmptyUpload
	}
	s.logger.Debug("audio file saved", zap.String("path", path), zap.Int64("size", written))

	resp, err := s.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: path,
	})
	if err != nil {
		return "", fmt.Errorf("error during transcription: %w", err)
	}
	return resp.Text, nil
}

// Synthesize converts the answer text to speech and returns the raw audio
// bytes. Transport encoding is the caller's concern.
func (s *Service) Synthesize(ctx context.Context, text string) ([]byte, error) {
	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.TTSModel1,
		Voice: openai.VoiceAlloy,
		Input: text,
	})
	if err != nil {
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}
	defer resp.Close()

	path := filepath.Join(s.tempDir, fmt.Sprintf("response_%s.mp3", uuid.NewString()))
	out, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create audio asset: %w", err)
	}
	defer s.removeAsset(path)

	_, err = io.Copy(out, resp)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("write audio asset: %w", err)
	}

	audio, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read audio asset: %w", err)
	}
	return audio, nil
}

func (s *Service) removeAsset(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("remove transient asset failed", zap.String("path", path), zap.Error(err))
	}
}
