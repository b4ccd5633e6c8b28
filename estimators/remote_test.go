package estimators

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemoteEstimatorWithoutURL(t *testing.T) {
	t.Parallel()
	assert.Nil(t, NewRemoteEstimator(""))
}

func TestRemoteScoreMapsLabels(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"label": "LABEL_2", "score": 0.7},
			{"label": "LABEL_0", "score": 0.1},
			{"label": "LABEL_1", "score": 0.2}
		]`))
	}))
	defer srv.Close()

	est := NewRemoteEstimator(srv.URL)
	require.NotNil(t, est)

	dist, err := est.Score(context.Background(), "some text", "some text")
	require.NoError(t, err)
	assert.InDelta(t, 0.7, dist.Positive, 1e-9)
	assert.InDelta(t, 0.1, dist.Negative, 1e-9)
	assert.InDelta(t, 0.2, dist.Neutral, 1e-9)
}

func TestRemoteScoreWordLabels(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"label": "POSITIVE", "score": 0.95}]`))
	}))
	defer srv.Close()

	dist, err := NewRemoteEstimator(srv.URL).Score(context.Background(), "x", "x")
	require.NoError(t, err)
	assert.InDelta(t, 0.95, dist.Positive, 1e-9)
}

func TestRemoteScoreErrorStatus(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewRemoteEstimator(srv.URL).Score(context.Background(), "x", "x")
	assert.Error(t, err)
}

func TestRemoteScoreUnreachable(t *testing.T) {
	t.Parallel()
	est := NewRemoteEstimator("http://127.0.0.1:1/unreachable")
	_, err := est.Score(context.Background(), "x", "x")
	assert.Error(t, err)
}
