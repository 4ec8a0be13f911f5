package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/rsantos2032/Storymaker-AI-App/application/ports/inbound"
	"github.com/rsantos2032/Storymaker-AI-App/domain"
)

// sceneParser extracts structured scenes from free-form model output. The
// upstream generator is unreliable, so parsing is best-effort: blocks that
// do not match the expected shape are dropped and the pipeline proceeds
// with whatever was recovered.
type sceneParser struct {
	markerRegexp    *regexp.Regexp
	sceneBodyRegexp *regexp.Regexp
}

func NewSceneParser() inbound.SceneParserPort {
	return &sceneParser{
		markerRegexp:    regexp.MustCompile(`Scene\s*(\d+):`),
		sceneBodyRegexp: regexp.MustCompile(`(?s)\A(.*?)\r?\nDescription:(.*)\z`),
	}
}

// rawBlock is the text between one "Scene <N>:" marker and the next marker
// or end of input.
type rawBlock struct {
	number int
	body   string
}

func (p *sceneParser) splitBlocks(text string) []rawBlock {
	all := p.markerRegexp.FindAllStringSubmatchIndex(text, -1)

	// A marker only delimits a block at the start of a line. A "Scene N:"
	// occurring mid-sentence belongs to the surrounding block body.
	matches := all[:0]
	for _, match := range all {
		if match[0] == 0 || text[match[0]-1] == '\n' {
			matches = append(matches, match)
		}
	}

	blocks := make([]rawBlock, 0, len(matches))
	for i, match := range matches {
		number, err := strconv.Atoi(text[match[2]:match[3]])
		if err != nil {
			continue
		}
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		blocks = append(blocks, rawBlock{
			number: number,
			body:   text[match[1]:end],
		})
	}
	return blocks
}

func (p *sceneParser) ParseScenes(text string) []domain.Scene {
	blocks := p.splitBlocks(text)
	scenes := make([]domain.Scene, 0, len(blocks))
	for _, block := range blocks {
		match := p.sceneBodyRegexp.FindStringSubmatch(block.body)
		if match == nil {
			continue
		}
		summary := strings.TrimSpace(match[1])
		description := strings.TrimSpace(match[2])
		if summary == "" || description == "" {
			continue
		}
		scenes = append(scenes, domain.Scene{
			Number:      block.number,
			Summary:     summary,
			Description: description,
		})
	}
	return scenes
}

func (p *sceneParser) ParseImagePrompts(text string) map[int]string {
	blocks := p.splitBlocks(text)
	prompts := make(map[int]string, len(blocks))
	for _, block := range blocks {
		// Duplicate scene numbers: the later occurrence wins.
		prompts[block.number] = strings.TrimSpace(block.body)
	}
	return prompts
}
