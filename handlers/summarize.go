package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"

	"go-moodlens/batch"
	"go-moodlens/engine"
	"go-moodlens/summarization"
)

// SummarizeBatch analyzes a set of texts and returns the aggregate summary
// together with a short OpenAI-written narrative of the overall mood.
func SummarizeBatch(c *gin.Context, eng *engine.Engine, openaiClient *openai.Client) {
	var req struct {
		Texts []string `json:"texts" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "texts array is required"})
		return
	}
	if openaiClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "summarization is not configured"})
		return
	}

	items, summary := batch.Run(c.Request.Context(), eng, req.Texts)

	narrative, err := summarization.SummarizeBatch(c.Request.Context(), openaiClient, items, summary)
	if err != nil {
		log.Printf("Error generating batch narrative: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to generate summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":   summary,
		"narrative": narrative,
	})
}
