package textsim

// Cosine returns the cosine similarity of a and b, clamped to [0, 1].
// The dot product is a merge over both index lists. Zero vectors score 0.
func Cosine(a, b Vector) float64 {
	na, nb := a.Norm(), b.Norm()
	if na == 0 || nb == 0 {
		return 0
	}

	var dot float64
	i, j := 0, 0
	for i < len(a.Indices) && j < len(b.Indices) {
		switch {
		case a.Indices[i] < b.Indices[j]:
			i++
		case a.Indices[i] > b.Indices[j]:
			j++
		default:
			dot += a.Weights[i] * b.Weights[j]
			i++
			j++
		}
	}

	sim := dot / (na * nb)
	switch {
	case sim < 0:
		return 0
	case sim > 1:
		return 1
	default:
		return sim
	}
}

// Scores vectorizes {query} ∪ docs and returns the similarity of each doc
// to the query, in input order.
func (v *Vectorizer) Scores(query string, docs []string) ([]float64, error) {
	corpus := make([]string, 0, len(docs)+1)
	corpus = append(corpus, query)
	corpus = append(corpus, docs...)

	vectors, _, err := v.FitTransform(corpus)
	if err != nil {
		return nil, err
	}

	q := vectors[0]
	scores := make([]float64, len(docs))
	for i, vec := range vectors[1:] {
		scores[i] = Cosine(q, vec)
	}
	return scores, nil
}
