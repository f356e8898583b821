package strategy

// Strategy is the ranking strategy reported to callers as "method".
type Strategy string

// Strategy constants. Values are the wire identifiers.
const (
	// Model ranks with the loaded model backend.
	Model Strategy = "pytorch"
	// Statistical ranks by TF-IDF cosine similarity to the interests.
	Statistical Strategy = "tfidf"
	// Recency orders by publication timestamp, newest first.
	Recency Strategy = "date_sort"
)

// All lists every strategy in selection priority order.
func All() []Strategy {
	return []Strategy{Model, Statistical, Recency}
}

// IsValid checks if the strategy is one of the supported values.
func (s Strategy) IsValid() bool {
	return s == Model || s == Statistical || s == Recency
}

func (s Strategy) String() string { return string(s) }
