package handlers

import (
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-moodlens/batch"
	"go-moodlens/db"
	"go-moodlens/engine"
	"go-moodlens/normalize"
)

// AnalyzeText runs single-text analysis and stores the finished result.
func AnalyzeText(c *gin.Context, eng *engine.Engine, firestoreClient *firestore.Client) {
	var request struct {
		Text            string `json:"text" binding:"required"`
		IncludeEmotions *bool  `json:"include_emotions"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	includeEmotions := true
	if request.IncludeEmotions != nil {
		includeEmotions = *request.IncludeEmotions
	}

	result := eng.Analyze(c.Request.Context(), request.Text, includeEmotions)

	if firestoreClient != nil {
		record := db.StoredAnalysis{
			Source:      "api",
			TextPreview: preview(request.Text),
			Analysis:    result,
		}
		if err := db.SaveAnalysis(firestoreClient, request.Text, record); err != nil {
			// Storage is best-effort for the API path; the analysis still returns.
			c.JSON(http.StatusOK, gin.H{"analysis": result, "stored": false})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"analysis": result, "stored": firestoreClient != nil})
}

// AnalyzeBatch runs the pipeline over a list of texts and returns per-item
// results plus the batch summary.
func AnalyzeBatch(c *gin.Context, eng *engine.Engine) {
	var request struct {
		Texts []string `json:"texts" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items, summary := batch.Run(c.Request.Context(), eng, request.Texts)
	c.JSON(http.StatusOK, gin.H{
		"analyses": items,
		"summary":  summary,
	})
}

// DetectEmotions exposes emotion-only scoring.
func DetectEmotions(c *gin.Context, eng *engine.Engine) {
	var request struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	emotions := eng.DetectEmotions(normalize.Text(request.Text))
	c.JSON(http.StatusOK, gin.H{"emotions": emotions})
}

func preview(text string) string {
	if len(text) > 100 {
		return text[:100] + "..."
	}
	return text
}
