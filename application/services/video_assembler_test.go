package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rsantos2032/Storymaker-AI-App/infrastructure/adapters"
)

func writeSceneFile(t *testing.T, dir string, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("fixture"), 0o644); err != nil {
		t.Fatal("Failed to write fixture file:", err)
	}
}

func TestVideoAssembler_OrdersScenesNumerically(t *testing.T) {
	logger := adapters.NewZerologWrapper()
	clipCreator := &fakeClipCreator{}
	concatenator := &fakeConcatenator{}
	assembler := NewVideoAssembler(logger, clipCreator, concatenator)

	projectPath := t.TempDir()
	for _, name := range []string{"scene_2.png", "scene_10.png", "scene_1.png"} {
		writeSceneFile(t, projectPath, name)
	}
	for _, name := range []string{"scene_2.mp3", "scene_10.mp3", "scene_1.mp3"} {
		writeSceneFile(t, projectPath, name)
	}

	outputPath := filepath.Join(projectPath, "story.mp4")
	videoPath, err := assembler.Assemble(context.Background(), projectPath, outputPath)
	if err != nil {
		t.Fatal("Assemble returned an error:", err)
	}
	if videoPath != outputPath {
		t.Fatalf("expected %q, got %q", outputPath, videoPath)
	}

	want := []string{
		filepath.Join(projectPath, "scene_1.png"),
		filepath.Join(projectPath, "scene_2.png"),
		filepath.Join(projectPath, "scene_10.png"),
	}
	if len(clipCreator.imagePaths) != len(want) {
		t.Fatalf("expected %d clips, got %d", len(want), len(clipCreator.imagePaths))
	}
	for i, imagePath := range want {
		if clipCreator.imagePaths[i] != imagePath {
			t.Fatalf("clip %d: expected %q, got %q", i, imagePath, clipCreator.imagePaths[i])
		}
	}
}

func TestVideoAssembler_SkipsScenesMissingNarration(t *testing.T) {
	logger := adapters.NewZerologWrapper()
	clipCreator := &fakeClipCreator{}
	concatenator := &fakeConcatenator{}
	assembler := NewVideoAssembler(logger, clipCreator, concatenator)

	projectPath := t.TempDir()
	for _, name := range []string{"scene_1.png", "scene_2.png", "scene_3.png"} {
		writeSceneFile(t, projectPath, name)
	}
	// Scene 2 has no narration and must be excluded.
	writeSceneFile(t, projectPath, "scene_1.mp3")
	writeSceneFile(t, projectPath, "scene_3.mp3")

	videoPath, err := assembler.Assemble(context.Background(), projectPath, filepath.Join(projectPath, "story.mp4"))
	if err != nil {
		t.Fatal("Assemble returned an error:", err)
	}
	if videoPath == "" {
		t.Fatal("expected a video path")
	}

	if len(clipCreator.imagePaths) != 2 {
		t.Fatalf("expected 2 clips, got %d", len(clipCreator.imagePaths))
	}
	if filepath.Base(clipCreator.imagePaths[0]) != "scene_1.png" || filepath.Base(clipCreator.imagePaths[1]) != "scene_3.png" {
		t.Fatalf("unexpected clip inputs: %v", clipCreator.imagePaths)
	}
}

func TestVideoAssembler_NothingToAssemble(t *testing.T) {
	logger := adapters.NewZerologWrapper()
	clipCreator := &fakeClipCreator{}
	concatenator := &fakeConcatenator{}
	assembler := NewVideoAssembler(logger, clipCreator, concatenator)

	projectPath := t.TempDir()
	// Images without any narration counterpart.
	writeSceneFile(t, projectPath, "scene_1.png")
	writeSceneFile(t, projectPath, "scene_2.png")

	videoPath, err := assembler.Assemble(context.Background(), projectPath, filepath.Join(projectPath, "story.mp4"))
	if err != nil {
		t.Fatal("Assemble returned an error:", err)
	}
	if videoPath != "" {
		t.Fatalf("expected empty video path, got %q", videoPath)
	}
	if len(concatenator.clipPaths) != 0 {
		t.Fatal("concatenation should not run with zero clips")
	}
}
