package rank

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"github.com/kailas-cloud/newsrank/internal/domain"
	"github.com/kailas-cloud/newsrank/internal/domain/article"
	"github.com/kailas-cloud/newsrank/internal/domain/capability"
)

func TestStatisticalScorer_RanksByRelevance(t *testing.T) {
	arts := decodeArticles(t, `[
		{"title":"weather today","description":"sunny skies"},
		{"title":"AI startups raise funding","description":"venture capital flows into AI"},
		{"title":"sports roundup"}
	]`)

	ranked, err := NewStatisticalScorer(english(), "").Score(context.Background(), arts, "AI startups")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}

	if got := titles(ranked); got[0] != "AI startups raise funding" {
		t.Errorf("best article = %q", got[0])
	}
	for i, a := range ranked {
		raw, ok := a.Raw(article.FieldScore)
		if !ok {
			t.Fatalf("article %d has no _score", i)
		}
		if i > 0 && string(raw) != "0" {
			t.Errorf("non-overlapping article %d score = %s, want 0", i, raw)
		}
		if _, ok := a.Raw(article.FieldModel); ok {
			t.Errorf("article %d must not carry _model", i)
		}
	}
	// Ties keep input order.
	if got := titles(ranked); got[1] != "weather today" || got[2] != "sports roundup" {
		t.Errorf("tie order = %v", got)
	}
}

func TestStatisticalScorer_ScoresInUnitInterval(t *testing.T) {
	arts := decodeArticles(t, `[
		{"title":"AI","description":"AI"},
		{"title":"AI chips","description":"new AI chips from startups"},
		{"description":"funding round"}
	]`)
	ranked, err := NewStatisticalScorer(english(), "").Score(context.Background(), arts, "AI funding")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	for _, a := range ranked {
		var score float64
		raw, _ := a.Raw(article.FieldScore)
		if err := json.Unmarshal(raw, &score); err != nil {
			t.Fatalf("decode score: %v", err)
		}
		if score < 0 || score > 1 {
			t.Errorf("score %f out of [0,1]", score)
		}
	}
}

func TestStatisticalScorer_EmptyInterestsUseNews(t *testing.T) {
	arts := decodeArticles(t, `[
		{"title":"AI startups raise funding"},
		{"title":"weather today"},
		{"title":"breaking news"}
	]`)

	for _, interests := range []string{"", "   \t\n"} {
		ranked, err := NewStatisticalScorer(english(), "").Score(context.Background(), arts, interests)
		if err != nil {
			t.Fatalf("Score(%q): %v", interests, err)
		}
		want := []string{"breaking news", "AI startups raise funding", "weather today"}
		if got := titles(ranked); !slices.Equal(got, want) {
			t.Errorf("Score(%q) order = %v, want %v", interests, got, want)
		}
	}
}

func TestStatisticalScorer_CustomFallbackQuery(t *testing.T) {
	arts := decodeArticles(t, `[{"title":"weather today"},{"title":"AI startups"}]`)
	ranked, err := NewStatisticalScorer(english(), "startups").Score(context.Background(), arts, "")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if got := titles(ranked); got[0] != "AI startups" {
		t.Errorf("order = %v", got)
	}
}

func TestStatisticalScorer_EmptyVocabulary(t *testing.T) {
	arts := decodeArticles(t, `[{"title":"the"},{}]`)
	_, err := NewStatisticalScorer(english(), "").Score(context.Background(), arts, "and")
	if !errors.Is(err, domain.ErrEmptyVocabulary) {
		t.Fatalf("expected ErrEmptyVocabulary, got %v", err)
	}
}

func TestStatisticalScorer_DoesNotMutateInput(t *testing.T) {
	arts := decodeArticles(t, `[{"title":"b"},{"title":"AI news"}]`)
	_, err := NewStatisticalScorer(english(), "").Score(context.Background(), arts, "AI")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if _, ok := arts[0].Raw(article.FieldScore); ok {
		t.Error("input article gained _score")
	}
	if arts[0].Title() != "b" {
		t.Error("input order changed")
	}
}

func TestModelScorer_PreservesOrderAndTags(t *testing.T) {
	arts := decodeArticles(t, `[{"title":"z"},{"title":"a"},{"title":"m","_score":0.3}]`)
	s := NewModelScorer(&capability.Model{Name: "ranker", ID: "ranker-v1"})

	ranked, err := s.Score(context.Background(), arts, "a")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if got := titles(ranked); !slices.Equal(got, []string{"z", "a", "m"}) {
		t.Errorf("order = %v", got)
	}
	for i, a := range ranked {
		if a.Text(article.FieldModel) != "pytorch" {
			t.Errorf("article %d _model = %q", i, a.Text(article.FieldModel))
		}
	}
	if _, ok := ranked[0].Raw(article.FieldScore); ok {
		t.Error("model placeholder must not add _score")
	}
}

func TestRecencyScorer(t *testing.T) {
	arts := decodeArticles(t, `[
		{"title":"a","publishedAt":"2024-01-01"},
		{"title":"b","publishedAt":"2024-06-01"},
		{"title":"c","publishedAt":""}
	]`)
	ranked, err := NewRecencyScorer().Score(context.Background(), arts, "ignored")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	want := []string{"2024-06-01", "2024-01-01", ""}
	for i, a := range ranked {
		if a.PublishedAt() != want[i] {
			t.Errorf("position %d publishedAt = %q, want %q", i, a.PublishedAt(), want[i])
		}
		if a.Len() != 2 {
			t.Errorf("position %d gained fields: %v", i, a.Names())
		}
	}
	if arts[0].Title() != "a" {
		t.Error("input slice reordered")
	}
}

func TestRecencyScorer_StableAndMissingLast(t *testing.T) {
	arts := decodeArticles(t, `[
		{"title":"no-date"},
		{"title":"first","publishedAt":"2024-03-01T10:00:00Z"},
		{"title":"second","publishedAt":"2024-03-01T10:00:00Z"},
		{"title":"null-date","publishedAt":null},
		{"title":"newest","publishedAt":"2025-01-01T00:00:00Z"}
	]`)
	ranked, err := NewRecencyScorer().Score(context.Background(), arts, "")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	want := []string{"newest", "first", "second", "no-date", "null-date"}
	if got := titles(ranked); !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}
