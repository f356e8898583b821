package newsrank

// Article is an open-ended set of article fields. title, description and
// publishedAt are read; every other field is carried through unchanged.
type Article map[string]any

// Method constants identify the strategy that ranked a request.
const (
	MethodModel       = "pytorch"
	MethodStatistical = "tfidf"
	MethodDate        = "date_sort"
)

// Annotation fields added to ranked articles.
const (
	ScoreField = "_score"
	ModelField = "_model"
)

// Ranking is a ranked article list.
type Ranking struct {
	Articles []Article
	Method   string
}

// Capabilities reports which optional backends the client detected.
type Capabilities struct {
	Statistical  bool
	ModelBackend bool
	ModelLoaded  bool
	Model        string // manifest name, empty when no model is loaded
}
