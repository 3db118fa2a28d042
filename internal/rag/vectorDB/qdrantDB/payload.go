package qdrantDB

import (
	"sort"

	"github.com/qdrant/go-client/qdrant"
	"github.com/startup-advisor/backend/internal/domain/advice"
)

// BuildPayload flattens a chunk into the point payload: the chunk text under
// "content" plus every metadata field, so search hits can be displayed and
// filtered without a second lookup.
func BuildPayload(chunk advice.Chunk) map[string]*qdrant.Value {
	meta := chunk.Metadata
	payload := qdrant.NewValueMap(map[string]any{
		"content": chunk.Content,
		"stage":   meta.Stage,
		"book":    meta.Book,
		"path":    meta.Path,
	})

	if meta.AdviceID != "" {
		payload["advice_id"] = stringValue(meta.AdviceID)
	}
	if meta.StageLabel != "" {
		payload["stage_label"] = stringValue(meta.StageLabel)
	}
	if meta.Topic != "" {
		payload["topic"] = stringValue(meta.Topic)
	}
	if meta.Complexity != "" {
		payload["complexity"] = stringValue(meta.Complexity)
	}
	if len(meta.Tags) > 0 {
		payload["tags"] = listValue(meta.Tags)
	}
	return payload
}

// RankHits maps scored points to retrieval results, re-sorted by descending
// score. The sort is stable, so equal scores keep the index-defined order.
func RankHits(hits []*qdrant.ScoredPoint, limit int) []advice.RetrievedContext {
	results := make([]advice.RetrievedContext, 0, len(hits))
	for _, hit := range hits {
		payload := hit.GetPayload()
		source := payload["book"].GetStringValue()
		if source == "" {
			source = "unknown"
		}
		results = append(results, advice.RetrievedContext{
			Content:  payload["content"].GetStringValue(),
			Source:   source,
			Score:    hit.GetScore(),
			Metadata: metadataFromPayload(payload),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

func metadataFromPayload(payload map[string]*qdrant.Value) advice.Metadata {
	meta := advice.Metadata{
		Stage:      payload["stage"].GetStringValue(),
		Book:       payload["book"].GetStringValue(),
		Path:       payload["path"].GetStringValue(),
		AdviceID:   payload["advice_id"].GetStringValue(),
		StageLabel: payload["stage_label"].GetStringValue(),
		Topic:      payload["topic"].GetStringValue(),
		Complexity: payload["complexity"].GetStringValue(),
	}
	for _, v := range payload["tags"].GetListValue().GetValues() {
		if tag := v.GetStringValue(); tag != "" {
			meta.Tags = append(meta.Tags, tag)
		}
	}
	return meta
}

func stringValue(s string) *qdrant.Value {
	return &qdrant.Value{Kind: &qdrant.Value_StringValue{StringValue: s}}
}

func listValue(items []string) *qdrant.Value {
	values := make([]*qdrant.Value, 0, len(items))
	for _, item := range items {
		values = append(values, stringValue(item))
	}
	return &qdrant.Value{Kind: &qdrant.Value_ListValue{ListValue: &qdrant.ListValue{Values: values}}}
}
