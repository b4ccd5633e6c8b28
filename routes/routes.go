package routes

import (
	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"go-moodlens/engine"
	"go-moodlens/handlers"
)

func SetupRouter(eng *engine.Engine, firestoreClient *firestore.Client, openaiClient *openai.Client) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to MoodLens!",
		})
	})

	// api routes, with the engine and clients injected into the handlers
	api := r.Group("/api/moodlens")
	{
		api.POST("/analyze", func(c *gin.Context) {
			handlers.AnalyzeText(c, eng, firestoreClient)
		})
		api.POST("/batch", func(c *gin.Context) {
			handlers.AnalyzeBatch(c, eng)
		})
		api.POST("/emotions", func(c *gin.Context) {
			handlers.DetectEmotions(c, eng)
		})
		api.POST("/summarize", func(c *gin.Context) {
			handlers.SummarizeBatch(c, eng, openaiClient)
		})
		api.GET("/trends", func(c *gin.Context) {
			handlers.GetTrends(c, firestoreClient, openaiClient)
		})
		api.GET("/recent", func(c *gin.Context) {
			handlers.GetRecent(c, firestoreClient)
		})
	}

	return r
}
