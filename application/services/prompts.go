package services

import (
	"fmt"
	"strings"

	"github.com/rsantos2032/Storymaker-AI-App/domain"
)

func storyIdeaPrompt(genre string) string {
	return fmt.Sprintf("Give me one unique, original short story idea in the %s genre. "+
		"Keep it 2-3 sentences and strongly reflect the tone of %s.", genre, genre)
}

func validateStoryPrompt(genre string, idea string) string {
	return fmt.Sprintf("Rate this %s story idea for creativity and relevance (1-10 each) and explain why:\n\n%s", genre, idea)
}

func titlePrompt(genre string, idea string) string {
	return fmt.Sprintf("Based on this story idea from the %s genre, give me a compelling title. "+
		"Return only the title:\n\n%s", genre, idea)
}

func scenesPrompt(genre string, sceneCount int, idea string) string {
	return fmt.Sprintf("Break the following %s story into %d detailed scenes.\n"+
		"Format each like this:\nScene 1: <one-sentence summary>\n"+
		"Description: <a few sentences describing the setting and events>\n"+
		"Keep each description within 50 words.\n"+
		"Reflect the tone and aesthetic of %s.\n\n%s", genre, sceneCount, genre, idea)
}

func imagePromptsPrompt(genre string, scenes []domain.Scene) string {
	descriptions := make([]string, 0, len(scenes))
	for _, scene := range scenes {
		descriptions = append(descriptions, fmt.Sprintf("Scene %d: %s", scene.Number, scene.Description))
	}
	return fmt.Sprintf("Convert the following %s scene descriptions into highly detailed, cinematic prompts for AI art generation. "+
		"Use terms like 'ultra-detailed', '8K', 'cinematic lighting', 'concept art style'. "+
		"Return one prompt per scene, in the format:\nScene X: <prompt>\n\n%s", genre, strings.Join(descriptions, "\n"))
}
