package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-moodlens/engine"
)

func newTestContext(t *testing.T, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, rec
}

func newHandlerEngine(t *testing.T) *engine.Engine {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
	return engine.New("", clock)
}

func TestAnalyzeTextWithoutStorage(t *testing.T) {
	eng := newHandlerEngine(t)
	c, rec := newTestContext(t, `{"text": "this is wonderful"}`)

	AnalyzeText(c, eng, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Analysis struct {
			Sentiment struct {
				Compound float64 `json:"compound"`
			} `json:"sentiment"`
		} `json:"analysis"`
		Stored bool `json:"stored"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Stored)
	assert.Positive(t, resp.Analysis.Sentiment.Compound)
}

func TestAnalyzeTextRequiresText(t *testing.T) {
	eng := newHandlerEngine(t)
	c, rec := newTestContext(t, `{}`)

	AnalyzeText(c, eng, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeBatchReturnsSummary(t *testing.T) {
	eng := newHandlerEngine(t)
	c, rec := newTestContext(t, `{"texts": ["great stuff", "awful stuff"]}`)

	AnalyzeBatch(c, eng)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Analyses []json.RawMessage `json:"analyses"`
		Summary  struct {
			TotalTexts int `json:"total_texts"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Analyses, 2)
	assert.Equal(t, 2, resp.Summary.TotalTexts)
}

func TestAnalyzeBatchRequiresTexts(t *testing.T) {
	eng := newHandlerEngine(t)
	c, rec := newTestContext(t, `{"wrong": true}`)

	AnalyzeBatch(c, eng)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDetectEmotionsEndpoint(t *testing.T) {
	eng := newHandlerEngine(t)
	c, rec := newTestContext(t, `{"text": "I am so happy and excited"}`)

	DetectEmotions(c, eng)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Emotions map[string]float64 `json:"emotions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Emotions, 8)
	assert.Positive(t, resp.Emotions["joy"])
}
