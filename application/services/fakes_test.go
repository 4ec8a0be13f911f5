package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rsantos2032/Storymaker-AI-App/application/ports/outbound"
	"github.com/rsantos2032/Storymaker-AI-App/domain"
)

type fakeImageGenerator struct {
	mu         sync.Mutex
	calls      int
	failSubstr string
}

func (f *fakeImageGenerator) Generate(_ context.Context, prompt string) ([]byte, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.failSubstr != "" && strings.Contains(prompt, f.failSubstr) {
		return nil, fmt.Errorf("image backend rejected prompt")
	}
	return []byte("png-bytes"), nil
}

func (f *fakeImageGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeAudioGenerator struct {
	mu         sync.Mutex
	calls      int
	failSubstr string
}

func (f *fakeAudioGenerator) Generate(_ context.Context, req outbound.GenerateAudioRequest) ([]byte, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.failSubstr != "" && strings.Contains(req.Text, f.failSubstr) {
		return nil, fmt.Errorf("tts backend rejected text")
	}
	return []byte("mp3-bytes"), nil
}

func (f *fakeAudioGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeClipCreator struct {
	mu         sync.Mutex
	imagePaths []string
	err        error
}

func (f *fakeClipCreator) Create(_ context.Context, imagePath string, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.imagePaths = append(f.imagePaths, imagePath)
	return imagePath + ".clip.mp4", nil
}

type fakeConcatenator struct {
	mu        sync.Mutex
	clipPaths []string
	err       error
}

func (f *fakeConcatenator) Concatenate(_ context.Context, clipPaths []string, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.clipPaths = append([]string(nil), clipPaths...)
	return nil
}

var errGenerationDown = fmt.Errorf("%w: text backend unreachable", domain.ErrGenerationUnavailable)

// fakeTextGenerator scripts the five pipeline stages by prompt shape.
type fakeTextGenerator struct {
	idea       string
	validation string
	title      string
	sceneText  string
	promptText string
	err        error
}

func (f *fakeTextGenerator) Generate(_ context.Context, prompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	switch {
	case strings.HasPrefix(prompt, "Give me one unique"):
		return f.idea, nil
	case strings.HasPrefix(prompt, "Rate this"):
		return f.validation, nil
	case strings.HasPrefix(prompt, "Based on this story idea"):
		return f.title, nil
	case strings.HasPrefix(prompt, "Break the following"):
		return f.sceneText, nil
	case strings.HasPrefix(prompt, "Convert the following"):
		return f.promptText, nil
	}
	return "", fmt.Errorf("unexpected prompt: %s", prompt)
}

type memoryStoryStore struct {
	mu      sync.Mutex
	records map[string]domain.StoryRecord
}

func newMemoryStoryStore() *memoryStoryStore {
	return &memoryStoryStore{records: make(map[string]domain.StoryRecord)}
}

func (m *memoryStoryStore) Save(_ context.Context, record domain.StoryRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.records[record.StoryID]; exists {
		return fmt.Errorf("%w: duplicate story id", domain.ErrPersistenceFailure)
	}
	m.records[record.StoryID] = record
	return nil
}

func (m *memoryStoryStore) FindByID(_ context.Context, storyID string) (*domain.StoryRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	record, ok := m.records[storyID]
	if !ok {
		return nil, nil
	}
	return &record, nil
}
