package summarization

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/sashabaranov/go-openai"

	"go-moodlens/types"
)

const maxTextsForSummary = 40
const maxPromptLength = 15000 // rough character limit for the prompt

// generates a one-line narrative for each trend bucket and writes it back
// into the map. Buckets that fail are logged and left without a summary.
func GenerateBucketSummaries(
	ctx context.Context,
	buckets map[string]types.BucketSummary,
	openaiClient *openai.Client,
) {
	if openaiClient == nil {
		return
	}
	log.Printf("Starting summary generation for %d buckets...", len(buckets))

	var wg sync.WaitGroup
	var mu sync.Mutex

	for key := range buckets {
		wg.Add(1)
		go func(bucketKey string) {
			defer wg.Done()

			mu.Lock()
			bucket := buckets[bucketKey]
			mu.Unlock()

			prompt := fmt.Sprintf(
				"Time window %s: %d posts, dominant sentiment %s, counts positive=%d negative=%d neutral=%d mixed=%d. Write one sentence describing the mood in this window.",
				bucketKey,
				bucket.TotalCount,
				bucket.DominantSentiment,
				bucket.SentimentCounts[types.Positive],
				bucket.SentimentCounts[types.Negative],
				bucket.SentimentCounts[types.Neutral],
				bucket.SentimentCounts[types.Mixed],
			)

			resp, err := openaiClient.CreateChatCompletion(
				ctx,
				openai.ChatCompletionRequest{
					Model: openai.GPT3Dot5Turbo,
					Messages: []openai.ChatCompletionMessage{
						{
							Role:    openai.ChatMessageRoleSystem,
							Content: "You describe the public mood in a time window of social media posts in exactly one sentence.",
						},
						{
							Role:    openai.ChatMessageRoleUser,
							Content: prompt,
						},
					},
					MaxTokens: 60,
				},
			)
			if err != nil {
				log.Printf("Error getting summary from OpenAI for bucket %s: %v. Skipping summary.", bucketKey, err)
				return
			}
			if len(resp.Choices) == 0 {
				log.Printf("OpenAI returned no choices for bucket %s. Skipping summary.", bucketKey)
				return
			}

			mu.Lock()
			bucket.Summary = resp.Choices[0].Message.Content
			buckets[bucketKey] = bucket
			mu.Unlock()
		}(key)
	}

	wg.Wait()
	log.Println("Finished bucket summary generation.")
}

// SummarizeBatch asks OpenAI for a short narrative of an analyzed batch: what
// the overall mood is and which emotions drive it. The computed distribution
// is handed to the model so the narrative matches the numbers.
func SummarizeBatch(
	ctx context.Context,
	openaiClient *openai.Client,
	items []types.BatchItem,
	summary types.BatchSummary,
) (string, error) {
	if openaiClient == nil {
		return "", fmt.Errorf("no OpenAI client configured")
	}
	if len(items) == 0 {
		return "", fmt.Errorf("nothing to summarize")
	}

	var sampleTexts []string
	for _, item := range items {
		if !item.Ok() || item.TextPreview == "" {
			continue
		}
		sampleTexts = append(sampleTexts, "- "+item.TextPreview)
		if len(sampleTexts) >= maxTextsForSummary {
			break
		}
	}

	prompt := fmt.Sprintf(
		"Overall sentiment: %s. Label fractions: positive %.2f, negative %.2f, neutral %.2f, mixed %.2f. Most prominent emotion: %s.\n\nTexts:\n%s",
		summary.DominantSentiment,
		summary.SentimentDistribution[types.Positive],
		summary.SentimentDistribution[types.Negative],
		summary.SentimentDistribution[types.Neutral],
		summary.SentimentDistribution[types.Mixed],
		summary.MostProminentEmotion,
		strings.Join(sampleTexts, "\n"),
	)
	if len(prompt) > maxPromptLength {
		prompt = prompt[:maxPromptLength]
	}

	log.Printf("Requesting batch summary from OpenAI for %d texts...", len(sampleTexts))

	resp, err := openaiClient.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT3Dot5Turbo,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are an assistant that writes short, factual summaries of the public mood in collections of social media posts. Two or three sentences, no bullet points.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens: 200,
		},
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI summary request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
