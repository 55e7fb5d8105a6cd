// Package corpus implements an ordered, mutable collection of text documents
// and the bulk operations used to clean and prune it.
//
// Mutating operations rewrite documents in place and return the receiver so
// calls can be chained:
//
//	c := corpus.New(texts...)
//	c.RemoveNewlines().RemoveDigits().ToLower().Clean()
//
// Map and Filter derive a new Corpus and leave the receiver untouched.
// A Corpus is not safe for concurrent use.
package corpus

import (
	"fmt"

	"textcorpus/internal/domain"
)

// Corpus is an ordered collection of documents.
type Corpus struct {
	documents []*domain.Document
}

// New creates a corpus holding one document per text, in order.
func New(texts ...string) *Corpus {
	c := &Corpus{documents: make([]*domain.Document, 0, len(texts))}
	for _, t := range texts {
		c.documents = append(c.documents, domain.NewDocument(t, nil))
	}
	return c
}

// NDocs returns the number of documents.
func (c *Corpus) NDocs() int { return len(c.documents) }

// Documents returns the documents in order. The slice is a copy; the
// documents themselves are shared with the corpus.
func (c *Corpus) Documents() []*domain.Document {
	out := make([]*domain.Document, len(c.documents))
	copy(out, c.documents)
	return out
}

// Doc returns the document at index i, or nil when i is out of range.
func (c *Corpus) Doc(i int) *domain.Document {
	if i < 0 || i >= len(c.documents) {
		return nil
	}
	return c.documents[i]
}

// Texts returns the text of every document, in order.
func (c *Corpus) Texts() []string {
	out := make([]string, len(c.documents))
	for i, d := range c.documents {
		out[i] = d.Text
	}
	return out
}

// AddDoc appends a document. A domain.Text is wrapped into a new document,
// a *domain.Document is appended as is. Anything else, including a nil
// document, fails with ErrInvalidArgument.
func (c *Corpus) AddDoc(in domain.Input) (*Corpus, error) {
	doc, err := toDocument(in)
	if err != nil {
		return c, err
	}
	c.documents = append(c.documents, doc)
	return c, nil
}

// AddDocs appends all inputs in order. The inputs must be either all texts
// or all documents; a mixed or invalid list is rejected before anything is
// appended.
func (c *Corpus) AddDocs(in []domain.Input) (*Corpus, error) {
	docs := make([]*domain.Document, 0, len(in))
	var first domain.Input
	for i, item := range in {
		doc, err := toDocument(item)
		if err != nil {
			return c, fmt.Errorf("element %d: %w", i, err)
		}
		if i == 0 {
			first = item
		} else if !sameKind(first, item) {
			return c, fmt.Errorf("%w: element %d mixes strings and documents", ErrInvalidArgument, i)
		}
		docs = append(docs, doc)
	}
	c.documents = append(c.documents, docs...)
	return c, nil
}

// SetAttributes replaces the attributes of every document positionally.
// It fails with ErrInvalidArgument if an entry is nil and with
// ErrLengthMismatch if len(attrs) != NDocs(); in both cases nothing changes.
func (c *Corpus) SetAttributes(attrs []domain.Attributes) (*Corpus, error) {
	for i, a := range attrs {
		if a == nil {
			return c, fmt.Errorf("%w: attributes at index %d must be a mapping", ErrInvalidArgument, i)
		}
	}
	if len(attrs) != len(c.documents) {
		return c, fmt.Errorf("%w: got %d attribute sets for %d documents", ErrLengthMismatch, len(attrs), len(c.documents))
	}
	for i, a := range attrs {
		c.documents[i].Attributes = a
	}
	return c, nil
}

// Apply replaces the text of every document with fn's result, in index
// order. A panic in fn propagates; documents already visited keep their new
// text.
func (c *Corpus) Apply(fn domain.TransformFunc) *Corpus {
	for i, d := range c.documents {
		d.Text = fn(d.Text, d.Attributes, i)
	}
	return c
}

// TryApply is Apply for transforms that can fail. It stops at the first
// error and returns it annotated with the document index. Earlier documents
// are not rolled back.
func (c *Corpus) TryApply(fn func(text string, attrs domain.Attributes, index int) (string, error)) (*Corpus, error) {
	for i, d := range c.documents {
		text, err := fn(d.Text, d.Attributes, i)
		if err != nil {
			return c, fmt.Errorf("document %d: %w", i, err)
		}
		d.Text = text
	}
	return c, nil
}

// Map returns a new corpus whose documents carry fn's result as text. Every
// mapped document is a fresh copy with its own attribute map, so the
// receiver and its documents are never modified.
func (c *Corpus) Map(fn domain.TransformFunc) *Corpus {
	out := &Corpus{documents: make([]*domain.Document, 0, len(c.documents))}
	for i, d := range c.documents {
		mapped := d.Clone()
		mapped.Text = fn(d.Text, d.Attributes, i)
		out.documents = append(out.documents, mapped)
	}
	return out
}

// Filter returns a new corpus with the documents for which fn is true, in
// their original order. The documents are shared by reference with the
// receiver: mutating one through either corpus is visible in both.
func (c *Corpus) Filter(fn domain.PredicateFunc) *Corpus {
	out := &Corpus{}
	for i, d := range c.documents {
		if fn(d.Text, d.Attributes, i) {
			out.documents = append(out.documents, d)
		}
	}
	return out
}

func toDocument(in domain.Input) (*domain.Document, error) {
	switch v := in.(type) {
	case domain.Text:
		return domain.NewDocument(string(v), nil), nil
	case *domain.Document:
		if v == nil {
			return nil, fmt.Errorf("%w: nil document", ErrInvalidArgument)
		}
		if v.Attributes == nil {
			v.Attributes = domain.Attributes{}
		}
		return v, nil
	}
	return nil, fmt.Errorf("%w: expected a string or a document, got %T", ErrInvalidArgument, in)
}

func sameKind(a, b domain.Input) bool {
	_, aText := a.(domain.Text)
	_, bText := b.(domain.Text)
	return aText == bText
}
