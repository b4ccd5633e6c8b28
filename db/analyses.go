package db

import (
	"context"
	"fmt"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go-moodlens/types"
)

const analysesCollection = "analyses"

// StoredAnalysis is an AnalysisResult plus the source text metadata kept for
// the dashboard. The engine never sees this type; records are written only
// after analysis is finished.
type StoredAnalysis struct {
	Source      string               `firestore:"source" json:"source"`
	TextPreview string               `firestore:"textPreview" json:"text_preview"`
	Analysis    types.AnalysisResult `firestore:"analysis" json:"analysis"`
}

// SaveAnalysis writes one finished result, keyed by the hash of the source
// text so re-analyzing the same content overwrites instead of duplicating.
func SaveAnalysis(client *firestore.Client, text string, record StoredAnalysis) error {
	ctx := context.Background()
	docID := HashString(text)

	_, err := client.Collection(analysesCollection).Doc(docID).Set(ctx, record, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to save analysis %s: %w", docID, err)
	}
	return nil
}

// GetAnalysis fetches one stored result by its source text. Returns ok=false
// when the document does not exist.
func GetAnalysis(client *firestore.Client, text string) (StoredAnalysis, bool, error) {
	ctx := context.Background()
	docID := HashString(text)

	doc, err := client.Collection(analysesCollection).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return StoredAnalysis{}, false, nil
		}
		return StoredAnalysis{}, false, fmt.Errorf("error getting analysis %s: %w", docID, err)
	}

	var stored StoredAnalysis
	if err := doc.DataTo(&stored); err != nil {
		return StoredAnalysis{}, false, fmt.Errorf("error converting analysis %s: %w", docID, err)
	}
	return stored, true, nil
}

// GetRecentAnalyses returns up to limit stored results ordered most recent
// first, for the trends endpoint.
func GetRecentAnalyses(client *firestore.Client, limit int) ([]types.AnalysisResult, error) {
	ctx := context.Background()

	iter := client.Collection(analysesCollection).
		OrderBy("analysis.timestamp", firestore.Desc).
		Limit(limit).
		Documents(ctx)

	var results []types.AnalysisResult
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating analyses: %w", err)
		}

		var stored StoredAnalysis
		if err := doc.DataTo(&stored); err != nil {
			log.Printf("Skipping malformed analysis doc %s: %v", doc.Ref.ID, err)
			continue
		}
		results = append(results, stored.Analysis)
	}

	return results, nil
}
