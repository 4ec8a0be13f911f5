package inbound

import "context"

// VideoAssemblerPort concatenates a project's per-scene artifacts into one
// video. It returns the output path, or "" without error when no scene has
// both required assets.
type VideoAssemblerPort interface {
	Assemble(ctx context.Context, projectPath string, outputPath string) (string, error)
}
