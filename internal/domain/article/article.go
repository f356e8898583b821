// Package article holds the caller-supplied news article record.
package article

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/kailas-cloud/newsrank/internal/domain"
)

// Field names read by the rankers.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPublishedAt = "publishedAt"
)

// Annotation fields added to ranked copies.
const (
	FieldScore = "_score"
	FieldModel = "_model"
)

// Article is an open-ended set of fields. Raw values are kept as received.
type Article struct {
	fields map[string]json.RawMessage
}

// New creates an article from raw fields. The map is copied.
func New(fields map[string]json.RawMessage) Article {
	cp := make(map[string]json.RawMessage, len(fields))
	for k, v := range fields {
		cp[k] = slices.Clone(v)
	}
	return Article{fields: cp}
}

// FromValues builds an article from arbitrary JSON-encodable values.
func FromValues(values map[string]any) (Article, error) {
	fields := make(map[string]json.RawMessage, len(values))
	for k, v := range values {
		raw, err := json.Marshal(v)
		if err != nil {
			return Article{}, fmt.Errorf("%w: field %q: %w", domain.ErrInvalidArticle, k, err)
		}
		fields[k] = raw
	}
	return Article{fields: fields}, nil
}

// Text returns the textual value of a field.
// Missing and null fields read as "", strings as their decoded value,
// anything else as its compact JSON text.
func (a Article) Text(name string) string {
	raw, ok := a.fields[name]
	if !ok {
		return ""
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

// Title returns the title field text.
func (a Article) Title() string { return a.Text(FieldTitle) }

// Description returns the description field text.
func (a Article) Description() string { return a.Text(FieldDescription) }

// PublishedAt returns the publishedAt field text.
func (a Article) PublishedAt() string { return a.Text(FieldPublishedAt) }

// Raw returns the raw value of a field.
func (a Article) Raw(name string) (json.RawMessage, bool) {
	v, ok := a.fields[name]
	return v, ok
}

// Len returns the number of fields.
func (a Article) Len() int { return len(a.fields) }

// Names returns the field names in sorted order.
func (a Article) Names() []string {
	return slices.Sorted(maps.Keys(a.fields))
}

// With returns a copy of the article with one field set.
func (a Article) With(name string, value any) (Article, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return Article{}, fmt.Errorf("encode field %q: %w", name, err)
	}
	cp := make(map[string]json.RawMessage, len(a.fields)+1)
	maps.Copy(cp, a.fields)
	cp[name] = raw
	return Article{fields: cp}, nil
}

// Without returns a copy of the article with one field removed.
func (a Article) Without(name string) Article {
	cp := maps.Clone(a.fields)
	delete(cp, name)
	if cp == nil {
		cp = map[string]json.RawMessage{}
	}
	return Article{fields: cp}
}

// MarshalJSON encodes the article as a JSON object.
func (a Article) MarshalJSON() ([]byte, error) {
	if a.fields == nil {
		return []byte("{}"), nil
	}
	b, err := json.Marshal(a.fields)
	if err != nil {
		return nil, fmt.Errorf("marshal article: %w", err)
	}
	return b, nil
}

// UnmarshalJSON decodes a JSON object. Anything else is ErrInvalidArticle.
func (a *Article) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return fmt.Errorf("%w: expected JSON object", domain.ErrInvalidArticle)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidArticle, err)
	}
	a.fields = fields
	return nil
}
