package cronjobs

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/bluesky-social/indigo/xrpc"
	"github.com/robfig/cron/v3"

	"go-moodlens/batch"
	"go-moodlens/db"
	"go-moodlens/engine"
	"go-moodlens/types"
)

type FeedCallParameters struct {
	uri   string
	limit int
}

const (
	feedMethod = "app.bsky.feed.getFeed"

	// Bluesky "What's Hot", used as a general-mood sample when no feed
	// override is configured.
	defaultFeedURI = "at://did:plc:z72i7hdynmk6r22z27h6tvur/app.bsky.feed.generator/whats-hot"
)

// fetches a hydrated feed from the public Bluesky API, analyzes every post
// text and stores the results.
func analyzeFeed(p FeedCallParameters, eng *engine.Engine, firestoreClient *firestore.Client) {
	// Initialize the xrpc client to use the public API endpoint.
	client := &xrpc.Client{
		Client:    &http.Client{Timeout: 10 * time.Second},
		Host:      "https://public.api.bsky.app", // public endpoint for unauthenticated requests.
		UserAgent: nil,
	}

	limit := 25
	if p.limit != 0 {
		limit = p.limit
	}

	// The limit can be adjusted (min 1, max 100, default 50).
	params := map[string]interface{}{
		"feed":  p.uri,
		"limit": limit,
	}

	log.Printf("Fetching feed with params: %+v", params)

	var out types.FeedResponse

	ctx := context.Background()
	err := client.Do(ctx, xrpc.Query, "json", feedMethod, params, nil, &out)
	if err != nil {
		log.Printf("Error fetching feed via xrpc: %v", err)
		return
	}

	texts := make([]string, 0, len(out.Feed))
	for _, entry := range out.Feed {
		text := entry.Post.Record.Text
		if text == "" {
			continue
		}
		// Skip posts analyzed on a previous run.
		if _, ok, err := db.GetAnalysis(firestoreClient, text); err == nil && ok {
			continue
		}
		texts = append(texts, text)
	}
	if len(texts) == 0 {
		log.Println("Feed returned no new post texts, nothing to analyze")
		return
	}

	items, summary := batch.Run(ctx, eng, texts)
	log.Printf("Analyzed %d feed posts, dominant sentiment: %s", summary.TotalTexts, summary.DominantSentiment)

	stored := 0
	for i, item := range items {
		if !item.Ok() {
			continue
		}
		record := db.StoredAnalysis{
			Source:      "bluesky",
			TextPreview: item.TextPreview,
			Analysis:    item.Analysis,
		}
		if err := db.SaveAnalysis(firestoreClient, texts[i], record); err != nil {
			log.Printf("Error storing feed analysis %d: %v", i, err)
			continue
		}
		stored++
	}
	log.Printf("Stored %d of %d feed analyses", stored, len(items))
}

func InitCronJobs(eng *engine.Engine, firestoreClient *firestore.Client) {
	log.Println("\nStarting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	feedURI := os.Getenv("BLUESKY_FEED_URI")
	if feedURI == "" {
		feedURI = defaultFeedURI
	}

	// Mood Feed: Run every 10 minutes
	_, err := c.AddFunc("*/10 * * * *", func() {
		log.Println("\nCronJob: Mood Feed Running")
		analyzeFeed(FeedCallParameters{uri: feedURI, limit: 25}, eng, firestoreClient)
	})
	if err != nil {
		log.Println("Error scheduling Mood Feed:", err)
	}

	c.Start()
}
