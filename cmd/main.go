package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"github.com/rsantos2032/Storymaker-AI-App/application/ports/outbound"
	"github.com/rsantos2032/Storymaker-AI-App/application/services"
	"github.com/rsantos2032/Storymaker-AI-App/config"
	"github.com/rsantos2032/Storymaker-AI-App/infrastructure/adapters"
	"github.com/rsantos2032/Storymaker-AI-App/infrastructure/gin_interface/controllers"
	"github.com/rsantos2032/Storymaker-AI-App/middleware"
)

func main() {
	// Local development convenience; in deployment the environment is set
	// by the platform.
	_ = godotenv.Load()

	pipelineConfig, err := config.GetPipelineConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get pipeline config")
	}

	ollamaConfig, err := config.GetOllamaConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get ollama config")
	}

	diffusionConfig, err := config.GetDiffusionConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get diffusion config")
	}

	ttsConfig, err := config.GetTtsConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get tts config")
	}

	dynamoConfig, err := config.GetDynamoConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get dynamo config")
	}

	s3Config, err := config.GetS3Config()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get s3 config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(pipelineConfig.WorkerPoolSize, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		SharedConfigState: session.SharedConfigEnable,
	}))
	dynamoClient := dynamodb.New(sess)

	contentFetcher := adapters.NewContentFetcher(zeroLogger)

	textGenerator := adapters.NewOllamaTextGenerator(contentFetcher, ollamaConfig, zeroLogger)
	imageGenerator := adapters.NewDiffusionImageGenerator(contentFetcher, diffusionConfig, zeroLogger)
	audioGenerator := adapters.NewTtsAudioGenerator(contentFetcher, ttsConfig, zeroLogger)

	clipCreator := adapters.NewFFmpegClipCreator(zeroLogger, pipelineConfig.FrameRate)
	clipConcatenator := adapters.NewFFmpegConcatenate(zeroLogger)

	storyStore := adapters.NewDynamoStoryStore(zeroLogger, dynamoClient, dynamoConfig)

	var videoPublisher outbound.VideoPublisherPort
	if s3Config != nil {
		videoPublisher = adapters.NewS3VideoPublisher(zeroLogger, s3.New(sess), s3Config)
	}

	sceneParser := services.NewSceneParser()
	mediaSynthesizer := services.NewMediaSynthesizer(zeroLogger, imageGenerator, audioGenerator, workerPool)
	videoAssembler := services.NewVideoAssembler(zeroLogger, clipCreator, clipConcatenator)

	storyPipeline := services.NewStoryPipeline(zeroLogger, textGenerator, sceneParser, mediaSynthesizer,
		videoAssembler, storyStore, videoPublisher, pipelineConfig.OutputDir)

	storyController := controllers.NewStoryController(zeroLogger, storyPipeline, storyStore, pipelineConfig.OutputDir)

	router := gin.Default()
	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	allowedOrigin := os.Getenv("ALLOWED_ORIGIN")
	if allowedOrigin == "" {
		allowedOrigin = "http://localhost:3000"
	}
	router.Use(middleware.CORSMiddleware(allowedOrigin))

	if jwksUrl := os.Getenv("JWKS_URL"); jwksUrl != "" {
		authHandler, err := middleware.NewAuthHandler(jwksUrl, zeroLogger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create auth handler!")
		}
		router.Use(authHandler.AuthMiddleware())
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	storyController.RegisterRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
