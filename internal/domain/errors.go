package domain

import "errors"

var (
	// ErrNoArticles signals a rank request without articles.
	ErrNoArticles = errors.New("no articles provided")
	// ErrScoring signals a failure inside the selected scorer.
	ErrScoring = errors.New("scoring failed")
	// ErrEmptyVocabulary signals that no document produced a usable term.
	ErrEmptyVocabulary = errors.New("empty vocabulary; perhaps the documents only contain stop words")
	// ErrInvalidArticle signals an article that is not a JSON object.
	ErrInvalidArticle = errors.New("invalid article")
	// ErrModelManifest signals an unreadable or incomplete model manifest.
	ErrModelManifest = errors.New("invalid model manifest")
	// ErrModelBackend signals a model backend failure.
	ErrModelBackend = errors.New("model backend error")
	// ErrUnknownStrategy signals a strategy outside the closed enumeration.
	ErrUnknownStrategy = errors.New("unknown ranking strategy")
)
