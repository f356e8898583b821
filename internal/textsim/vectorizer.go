package textsim

import (
	"fmt"
	"math"
	"slices"

	"github.com/kailas-cloud/newsrank/internal/domain"
)

// ErrEmptyVocabulary is returned when no document yields a single term.
var ErrEmptyVocabulary = fmt.Errorf("tfidf: %w", domain.ErrEmptyVocabulary)

// Vector is a sparse TF-IDF vector. Indices are vocabulary positions in
// ascending order; Weights[i] belongs to Indices[i].
type Vector struct {
	Indices []int
	Weights []float64
}

// Len returns the number of non-zero entries.
func (vec Vector) Len() int { return len(vec.Indices) }

// Norm returns the Euclidean length of the vector.
func (vec Vector) Norm() float64 {
	var sum float64
	for _, x := range vec.Weights {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Vectorizer builds L2-normalised TF-IDF vectors with smoothed idf:
// idf(t) = ln((1+n)/(1+df(t))) + 1.
type Vectorizer struct {
	tokenizer *Tokenizer
}

// NewVectorizer creates a vectorizer over the given tokenizer.
func NewVectorizer(tokenizer *Tokenizer) *Vectorizer {
	return &Vectorizer{tokenizer: tokenizer}
}

// NewEnglishVectorizer creates a vectorizer excluding EnglishStopWords.
func NewEnglishVectorizer() *Vectorizer {
	return NewVectorizer(NewTokenizer(EnglishStopWords))
}

// FitTransform learns the vocabulary of docs and returns one vector per doc,
// in input order. Vocabulary positions follow sorted term order.
// Work and memory are proportional to the number of tokens, not to
// documents times vocabulary.
func (v *Vectorizer) FitTransform(docs []string) ([]Vector, []string, error) {
	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tf := make(map[string]int)
		for _, tok := range v.tokenizer.Tokenize(doc) {
			tf[tok]++
		}
		for term := range tf {
			df[term]++
		}
		counts[i] = tf
	}
	if len(df) == 0 {
		return nil, nil, ErrEmptyVocabulary
	}

	vocab := make([]string, 0, len(df))
	for term := range df {
		vocab = append(vocab, term)
	}
	slices.Sort(vocab)

	n := float64(len(docs))
	index := make(map[string]int, len(vocab))
	idf := make([]float64, len(vocab))
	for j, term := range vocab {
		index[term] = j
		idf[j] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	vectors := make([]Vector, len(docs))
	for i, tf := range counts {
		indices := make([]int, 0, len(tf))
		for term := range tf {
			indices = append(indices, index[term])
		}
		slices.Sort(indices)

		weights := make([]float64, len(indices))
		for k, j := range indices {
			weights[k] = float64(tf[vocab[j]]) * idf[j]
		}
		vec := Vector{Indices: indices, Weights: weights}
		normalize(vec)
		vectors[i] = vec
	}
	return vectors, vocab, nil
}

func normalize(vec Vector) {
	norm := vec.Norm()
	if norm == 0 {
		return
	}
	for i := range vec.Weights {
		vec.Weights[i] /= norm
	}
}
