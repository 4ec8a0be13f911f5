package services

import "testing"

func TestSceneParser_ParseScenes(t *testing.T) {
	parser := NewSceneParser()

	text := "Sure! Here is your story broken into scenes:\n" +
		"Scene 1: The arrival\n" +
		"Description: A lone ship drifts into the harbor under a blood-red sky.\n" +
		"Some rambling the model added in between that matches nothing.\n" +
		"Scene 2: The warning\n" +
		"Description: An old fisherman warns the crew about the lighthouse keeper.\n" +
		"Scene 3: this block has no description line and must be dropped\n" +
		"Scene 10: The escape\n" +
		"Description: The crew flees as the tide turns against them.\n"

	scenes := parser.ParseScenes(text)
	if len(scenes) != 3 {
		t.Fatalf("expected 3 scenes, got %d", len(scenes))
	}

	if scenes[0].Number != 1 || scenes[1].Number != 2 || scenes[2].Number != 10 {
		t.Fatalf("unexpected scene numbers: %d, %d, %d", scenes[0].Number, scenes[1].Number, scenes[2].Number)
	}
	if scenes[0].Summary != "The arrival" {
		t.Fatalf("unexpected summary: %q", scenes[0].Summary)
	}
	if scenes[1].Description != "An old fisherman warns the crew about the lighthouse keeper." {
		t.Fatalf("unexpected description: %q", scenes[1].Description)
	}
}

func TestSceneParser_ParseScenes_TrimsWhitespace(t *testing.T) {
	parser := NewSceneParser()

	text := "Scene  4:   The calm before the storm   \nDescription:   Waves settle while the crew waits.  \n\n"

	scenes := parser.ParseScenes(text)
	if len(scenes) != 1 {
		t.Fatalf("expected 1 scene, got %d", len(scenes))
	}
	if scenes[0].Number != 4 {
		t.Fatalf("expected scene number 4, got %d", scenes[0].Number)
	}
	if scenes[0].Summary != "The calm before the storm" {
		t.Fatalf("summary not trimmed: %q", scenes[0].Summary)
	}
	if scenes[0].Description != "Waves settle while the crew waits." {
		t.Fatalf("description not trimmed: %q", scenes[0].Description)
	}
}

func TestSceneParser_ParseScenes_MidLineMarkerStaysInBody(t *testing.T) {
	parser := NewSceneParser()

	text := "Scene 1: The arrival\n" +
		"Description: The captain recalls Scene 2: of the prophecy and sails on.\n"

	scenes := parser.ParseScenes(text)
	if len(scenes) != 1 {
		t.Fatalf("expected 1 scene, got %d", len(scenes))
	}
	if scenes[0].Description != "The captain recalls Scene 2: of the prophecy and sails on." {
		t.Fatalf("mid-line marker truncated the description: %q", scenes[0].Description)
	}

	// A marker at the start of a line still ends the running block.
	text += "Scene 2: The warning\nDescription: An old fisherman warns the crew.\n"
	scenes = parser.ParseScenes(text)
	if len(scenes) != 2 {
		t.Fatalf("expected 2 scenes, got %d", len(scenes))
	}
	if scenes[1].Number != 2 || scenes[1].Description != "An old fisherman warns the crew." {
		t.Fatalf("unexpected second scene: %+v", scenes[1])
	}
}

func TestSceneParser_ParseScenes_EmptyInput(t *testing.T) {
	parser := NewSceneParser()

	if scenes := parser.ParseScenes(""); len(scenes) != 0 {
		t.Fatalf("expected no scenes for empty input, got %d", len(scenes))
	}
	if scenes := parser.ParseScenes("no markers anywhere in this text"); len(scenes) != 0 {
		t.Fatalf("expected no scenes for markerless input, got %d", len(scenes))
	}
}

func TestSceneParser_ParseImagePrompts(t *testing.T) {
	parser := NewSceneParser()

	text := "Scene 1: ultra-detailed harbor at dusk, cinematic lighting\n" +
		"Scene 2: concept art style lighthouse, 8K\n" +
		"Scene 2: revised lighthouse prompt that wins\n"

	prompts := parser.ParseImagePrompts(text)
	if len(prompts) != 2 {
		t.Fatalf("expected 2 prompts, got %d", len(prompts))
	}
	if prompts[1] != "ultra-detailed harbor at dusk, cinematic lighting" {
		t.Fatalf("unexpected prompt for scene 1: %q", prompts[1])
	}
	if prompts[2] != "revised lighthouse prompt that wins" {
		t.Fatalf("expected last occurrence to win for scene 2, got %q", prompts[2])
	}
}

func TestSceneParser_ParseImagePrompts_EmptyInput(t *testing.T) {
	parser := NewSceneParser()

	if prompts := parser.ParseImagePrompts(""); len(prompts) != 0 {
		t.Fatalf("expected no prompts for empty input, got %d", len(prompts))
	}
}
