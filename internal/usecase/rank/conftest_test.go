package rank

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"github.com/kailas-cloud/newsrank/internal/domain/article"
	"github.com/kailas-cloud/newsrank/internal/textsim"
)

func decodeArticles(t *testing.T, s string) []article.Article {
	t.Helper()
	var out []article.Article
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		t.Fatalf("decode articles: %v", err)
	}
	return out
}

func titles(arts []article.Article) []string {
	out := make([]string, len(arts))
	for i, a := range arts {
		out[i] = a.Title()
	}
	return out
}

// stripped returns the sorted JSON of every article without annotation fields.
func stripped(t *testing.T, arts []article.Article) []string {
	t.Helper()
	out := make([]string, len(arts))
	for i, a := range arts {
		b, err := json.Marshal(a.Without(article.FieldScore).Without(article.FieldModel))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		out[i] = string(b)
	}
	slices.Sort(out)
	return out
}

func english() SimilarityBackend { return textsim.NewEnglishVectorizer() }

type failingBackend struct{ err error }

func (f failingBackend) Scores(string, []string) ([]float64, error) { return nil, f.err }

type mockScorer struct {
	calls int
	fn    func([]article.Article) ([]article.Article, error)
}

func (m *mockScorer) Score(_ context.Context, arts []article.Article, _ string) ([]article.Article, error) {
	m.calls++
	if m.fn != nil {
		return m.fn(arts)
	}
	return arts, nil
}

var errBoom = errors.New("boom")
