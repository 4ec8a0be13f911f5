package controllers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rsantos2032/Storymaker-AI-App/application/ports/inbound"
	"github.com/rsantos2032/Storymaker-AI-App/application/ports/outbound"
	"github.com/rsantos2032/Storymaker-AI-App/domain"
	"github.com/rsantos2032/Storymaker-AI-App/infrastructure/gin_interface/dto"
)

const (
	defaultGenre      = "fantasy"
	defaultSceneCount = 5
)

type StoryController interface {
	GenerateStory(c *gin.Context)
	GetStory(c *gin.Context)
	DownloadFile(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type storyController struct {
	logger        outbound.LoggerPort
	storyPipeline inbound.StoryPipelinePort
	storyStore    outbound.StoryStorePort
	outputDir     string
}

func NewStoryController(logger outbound.LoggerPort, storyPipeline inbound.StoryPipelinePort,
	storyStore outbound.StoryStorePort, outputDir string) StoryController {
	return &storyController{
		logger:        logger,
		storyPipeline: storyPipeline,
		storyStore:    storyStore,
		outputDir:     outputDir,
	}
}

func (s *storyController) GenerateStory(c *gin.Context) {
	var req dto.GenerateStoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Genre == "" {
		req.Genre = defaultGenre
	}
	if req.NumScenes == 0 {
		req.NumScenes = defaultSceneCount
	}
	if req.NumScenes < 1 {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "num_scenes must be at least 1"})
		return
	}

	res, err := s.storyPipeline.Run(c.Request.Context(), inbound.StoryPipelineParams{
		Genre:      req.Genre,
		SceneCount: req.NumScenes,
		Voice:      req.Voice,
	})
	if err != nil {
		s.logger.Error(err, "story pipeline run failed")
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrGenerationUnavailable) {
			status = http.StatusBadGateway
		}
		c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.GenerateStoryResponse{
		Metadata: toMetadataResponse(res),
		Message:  "Story in '" + req.Genre + "' generated successfully!",
	})
}

func (s *storyController) GetStory(c *gin.Context) {
	record, err := s.storyStore.FindByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.logger.Error(err, "failed to fetch story record")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch story"})
		return
	}
	if record == nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "story not found"})
		return
	}

	c.JSON(http.StatusOK, record)
}

// DownloadFile serves generated artifacts. Only paths inside the output
// directory are reachable.
func (s *storyController) DownloadFile(c *gin.Context) {
	requested := c.Query("path")
	if requested == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "path query parameter is required"})
		return
	}

	absPath, err := filepath.Abs(requested)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid path"})
		return
	}
	absOutputDir, err := filepath.Abs(s.outputDir)
	if err != nil {
		s.logger.Error(err, "failed to resolve output directory")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if !strings.HasPrefix(absPath, absOutputDir+string(os.PathSeparator)) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "file not found: " + requested})
		return
	}

	if info, err := os.Stat(absPath); err != nil || info.IsDir() {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "file not found: " + requested})
		return
	}

	c.FileAttachment(absPath, filepath.Base(absPath))
}

func (s *storyController) RegisterRoutes(g *gin.Engine) {
	g.POST("/generate_story", s.GenerateStory)
	g.GET("/stories/:id", s.GetStory)
	g.GET("/download_file", s.DownloadFile)
}

func toMetadataResponse(res *inbound.StoryPipelineResult) dto.StoryMetadataResponse {
	scenes := make([]dto.SceneResponse, 0, len(res.Scenes))
	for _, scene := range res.Scenes {
		scenes = append(scenes, dto.SceneResponse{
			Scene:       scene.Number,
			Summary:     scene.Summary,
			Description: scene.Description,
		})
	}

	imagePrompts := make(map[string]string, len(res.ImagePrompts))
	for num, prompt := range res.ImagePrompts {
		imagePrompts[strconv.Itoa(num)] = prompt
	}

	return dto.StoryMetadataResponse{
		StoryID:      res.StoryID,
		Title:        res.Title,
		Genre:        res.Genre,
		StoryIdea:    res.StoryIdea,
		Validation:   res.Validation,
		Scenes:       scenes,
		ImagePrompts: imagePrompts,
		Folder:       res.ProjectPath,
		VideoFile:    res.VideoPath,
		VideoKey:     res.VideoKey,
	}
}
