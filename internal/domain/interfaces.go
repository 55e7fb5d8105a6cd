package domain

// Attributes holds caller-defined metadata attached to one document.
type Attributes map[string]any

// Document pairs a text body with its attributes.
type Document struct {
	Text       string
	Attributes Attributes
}

// NewDocument creates a document; nil attributes become an empty map.
func NewDocument(text string, attrs Attributes) *Document {
	if attrs == nil {
		attrs = Attributes{}
	}
	return &Document{Text: text, Attributes: attrs}
}

// Clone returns a new document with the same text and a shallow copy of the attributes.
func (d *Document) Clone() *Document {
	attrs := make(Attributes, len(d.Attributes))
	for k, v := range d.Attributes {
		attrs[k] = v
	}
	return &Document{Text: d.Text, Attributes: attrs}
}

// Input is what a corpus accepts when adding documents: either a raw
// Text or an already built *Document.
type Input interface {
	input()
}

// Text is a raw string to be wrapped into a new Document.
type Text string

func (Text) input()      {}
func (*Document) input() {}

// TransformFunc computes the new text of the document at index.
type TransformFunc func(text string, attrs Attributes, index int) string

// PredicateFunc reports whether the document at index is kept.
type PredicateFunc func(text string, attrs Attributes, index int) bool

// Stemmer reduces every word of a text to its stem.
type Stemmer interface {
	Name() string
	Stem(text string) string
}
