package newsrank

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
)

// Scored is a typed item with its ranking annotation.
type Scored[T any] struct {
	Item     T
	Score    float64 // set only when HasScore
	HasScore bool
}

// RankAs ranks JSON-encodable structs. Fields are read through their JSON
// names, so T needs `json:"title"`, `json:"description"` and
// `json:"publishedAt"` tags for them to count.
func RankAs[T any](ctx context.Context, c *Client, items []T, interests string) ([]Scored[T], string, error) {
	if err := checkStruct[T](); err != nil {
		return nil, "", err
	}

	articles := make([]Article, len(items))
	for i, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, "", fmt.Errorf("newsrank: encode item %d: %w", i, err)
		}
		if err := json.Unmarshal(raw, &articles[i]); err != nil {
			return nil, "", fmt.Errorf("newsrank: item %d: %w", i, ErrInvalidArticle)
		}
	}

	res, err := c.Rank(ctx, articles, interests)
	if err != nil {
		return nil, "", err
	}

	out := make([]Scored[T], len(res.Articles))
	for i, a := range res.Articles {
		score, hasScore := a[ScoreField].(float64)
		raw, err := json.Marshal(a)
		if err != nil {
			return nil, "", fmt.Errorf("newsrank: encode ranked item: %w", err)
		}
		var item T
		if err := json.Unmarshal(raw, &item); err != nil {
			return nil, "", fmt.Errorf("newsrank: decode ranked item: %w", err)
		}
		out[i] = Scored[T]{Item: item, Score: score, HasScore: hasScore}
	}
	return out, res.Method, nil
}

func checkStruct[T any]() error {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct && t.Kind() != reflect.Map {
		return fmt.Errorf("newsrank: type %s is not a struct or map", t)
	}
	return nil
}
