package handlers

import (
	"net/http"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/sashabaranov/go-openai"

	"go-moodlens/batch"
	"go-moodlens/db"
	"go-moodlens/summarization"
)

const defaultTrendLimit = 500

// GetTrends buckets recently stored analyses by the requested time window.
// With summarize=true each bucket also gets an OpenAI-written narrative.
func GetTrends(c *gin.Context, firestoreClient *firestore.Client, openaiClient *openai.Client) {
	window := c.DefaultQuery("window", batch.WindowHourly)
	switch window {
	case batch.WindowHourly, batch.WindowDaily, batch.WindowMinute:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "window must be hourly, daily or minute"})
		return
	}

	limit := defaultTrendLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	analyses, err := db.GetRecentAnalyses(firestoreClient, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	trends := batch.Trends(analyses, window, clockwork.NewRealClock())

	if c.Query("summarize") == "true" && openaiClient != nil {
		summarization.GenerateBucketSummaries(c.Request.Context(), trends, openaiClient)
	}

	c.JSON(http.StatusOK, gin.H{
		"window": window,
		"trends": trends,
	})
}

// GetRecent returns the most recently stored analyses for the dashboard feed.
func GetRecent(c *gin.Context, firestoreClient *firestore.Client) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	analyses, err := db.GetRecentAnalyses(firestoreClient, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"analyses": analyses, "count": len(analyses)})
}
