package estimators

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go-moodlens/types"
)

const defaultRemoteTimeout = 5 * time.Second

// remoteRequest and remoteResponse follow the hosted-classifier wire shape:
// a text in, a label/score list out.
type remoteRequest struct {
	Inputs string `json:"inputs"`
}

type remoteScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// RemoteEstimator calls a network-hosted sentiment model. It is best-effort:
// any timeout, transport error or non-200 response makes it absent from
// fusion, and the local estimators carry the result alone.
type RemoteEstimator struct {
	url    string
	client *http.Client
}

// NewRemoteEstimator returns nil when no model URL is configured, which the
// engine treats as "estimator not installed".
func NewRemoteEstimator(url string) *RemoteEstimator {
	if url == "" {
		return nil
	}
	return &RemoteEstimator{
		url:    url,
		client: &http.Client{Timeout: defaultRemoteTimeout},
	}
}

func (r *RemoteEstimator) Name() string { return "remote" }

func (r *RemoteEstimator) Weight() float64 { return 0.3 }

func (r *RemoteEstimator) Score(ctx context.Context, original, _ string) (types.SentimentDistribution, error) {
	payload, err := json.Marshal(remoteRequest{Inputs: original})
	if err != nil {
		return types.SentimentDistribution{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewBuffer(payload))
	if err != nil {
		return types.SentimentDistribution{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return types.SentimentDistribution{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.SentimentDistribution{}, errors.New("remote model returned status: " + resp.Status)
	}

	var scores []remoteScore
	if err := json.NewDecoder(resp.Body).Decode(&scores); err != nil {
		return types.SentimentDistribution{}, err
	}

	var dist types.SentimentDistribution
	for _, s := range scores {
		switch s.Label {
		case "LABEL_2", "POSITIVE", "positive":
			dist.Positive = s.Score
		case "LABEL_0", "NEGATIVE", "negative":
			dist.Negative = s.Score
		case "LABEL_1", "NEUTRAL", "neutral":
			dist.Neutral = s.Score
		}
	}
	return dist, nil
}
