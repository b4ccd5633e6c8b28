// Package batch applies the single-text pipeline over collections of texts
// and aggregates the results, isolating per-item failures.
package batch

import (
	"context"
	"fmt"
	"log"
	"runtime"
	"sync"

	"go-moodlens/engine"
	"go-moodlens/types"
)

const previewLength = 100

// Run analyzes every text concurrently on a worker pool bounded by the
// available CPUs. A failing item is logged with its index and replaced by the
// empty analysis plus an error marker; one bad item never aborts the batch.
// Cancelling the context stops scheduling new items while in-flight items
// finish on their own.
func Run(ctx context.Context, eng *engine.Engine, texts []string) ([]types.BatchItem, types.BatchSummary) {
	items := make([]types.BatchItem, len(texts))
	if len(texts) == 0 {
		return items, summarize(items)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	workers := runtime.GOMAXPROCS(0)
	if workers > len(texts) {
		workers = len(texts)
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				items[i] = analyzeItem(ctx, eng, i, texts[i])
			}
		}()
	}

	for i := range texts {
		select {
		case <-ctx.Done():
			// Stop scheduling; unscheduled items become error markers below.
		case jobs <- i:
			continue
		}
		break
	}
	close(jobs)
	wg.Wait()

	// Items never scheduled due to cancellation still need a result.
	for i := range items {
		if items[i].TextPreview == "" && items[i].Analysis.ID == "" {
			items[i] = types.BatchItem{
				Index:       i,
				TextPreview: preview(texts[i]),
				Analysis:    eng.Analyze(context.Background(), "", true),
				Error:       "batch cancelled before item was scheduled",
			}
		}
	}

	return items, summarize(items)
}

// analyzeItem runs one text through the pipeline, converting a panic into an
// error-marked item so the rest of the batch continues.
func analyzeItem(ctx context.Context, eng *engine.Engine, index int, text string) (item types.BatchItem) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("failed to analyze text %d: %v", index, r)
			item = types.BatchItem{
				Index:       index,
				TextPreview: preview(text),
				Analysis:    eng.Analyze(context.Background(), "", true),
				Error:       fmt.Sprintf("%v", r),
			}
		}
	}()

	return types.BatchItem{
		Index:       index,
		TextPreview: preview(text),
		Analysis:    eng.Analyze(ctx, text, true),
	}
}

func preview(text string) string {
	if len(text) > previewLength {
		return text[:previewLength] + "..."
	}
	return text
}

// summarize reduces a batch to its label distribution, dominant label,
// per-emotion averages and the most prominent emotion. Failed items carry the
// neutral empty analysis, so the label fractions always sum to 1 over N items.
func summarize(items []types.BatchItem) types.BatchSummary {
	summary := types.BatchSummary{
		TotalTexts:            len(items),
		SentimentDistribution: make(map[types.SentimentLabel]float64, len(types.Labels)),
		AverageEmotions:       types.NewEmotionProfile(),
		DominantSentiment:     types.Neutral,
		MostProminentEmotion:  "neutral",
	}
	if len(items) == 0 {
		return summary
	}

	counts := make(map[types.SentimentLabel]int, len(types.Labels))
	emotionTotals := types.NewEmotionProfile()
	for _, item := range items {
		counts[item.Analysis.Sentiment.Label]++
		for category, score := range item.Analysis.Emotions {
			emotionTotals[category] += score
		}
	}

	total := float64(len(items))
	for _, label := range types.Labels {
		summary.SentimentDistribution[label] = float64(counts[label]) / total
	}

	best := -1
	for _, label := range types.Labels {
		if counts[label] > best {
			best = counts[label]
			summary.DominantSentiment = label
		}
	}

	var prominentScore float64
	for _, category := range types.EmotionCategories {
		avg := emotionTotals[category] / total
		summary.AverageEmotions[category] = avg
		if avg > prominentScore {
			prominentScore = avg
			summary.MostProminentEmotion = category
		}
	}

	return summary
}
