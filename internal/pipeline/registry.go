package pipeline

import (
	"errors"
	"fmt"
	"sort"

	"textcorpus/internal/config"
	"textcorpus/internal/corpus"
	"textcorpus/internal/stemmer"
	"textcorpus/internal/stopwords"
)

// ErrUnknownStep is returned when a config names a step that is not registered.
var ErrUnknownStep = errors.New("unknown step")

// Step is one named corpus transformation.
type Step interface {
	Name() string
	Apply(c *corpus.Corpus) *corpus.Corpus
}

// StepFunc adapts a function to the Step interface.
type StepFunc struct {
	name string
	fn   func(*corpus.Corpus) *corpus.Corpus
}

// NewStep creates a step from a function.
func NewStep(name string, fn func(*corpus.Corpus) *corpus.Corpus) StepFunc {
	return StepFunc{name: name, fn: fn}
}

// Name returns the step name.
func (s StepFunc) Name() string { return s.name }

// Apply runs the step on c.
func (s StepFunc) Apply(c *corpus.Corpus) *corpus.Corpus { return s.fn(c) }

// BuilderFunc creates a Step from its config entry.
type BuilderFunc func(cfg config.StepConfig) (Step, error)

// Registry maps step names to their builders.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{builders: make(map[string]BuilderFunc)}
}

// DefaultRegistry returns a registry holding every built-in normalization step.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	simple := map[string]func(*corpus.Corpus) *corpus.Corpus{
		"clean":                     (*corpus.Corpus).Clean,
		"trim":                      (*corpus.Corpus).Trim,
		"to_lower":                  (*corpus.Corpus).ToLower,
		"to_upper":                  (*corpus.Corpus).ToUpper,
		"remove_interpunctuation":   (*corpus.Corpus).RemoveInterpunctuation,
		"remove_newlines":           (*corpus.Corpus).RemoveNewlines,
		"remove_digits":             (*corpus.Corpus).RemoveDigits,
		"remove_invalid_characters": (*corpus.Corpus).RemoveInvalidCharacters,
		"normalize_unicode":         (*corpus.Corpus).NormalizeUnicode,
	}
	for name, fn := range simple {
		step := NewStep(name, fn)
		r.Register(name, func(config.StepConfig) (Step, error) { return step, nil })
	}
	r.Register("stem", buildStem)
	r.Register("remove_words", buildRemoveWords)
	r.Register("remove_stopwords", buildRemoveStopwords)
	return r
}

// Register adds a builder, replacing any previous one with the same name.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates the step described by cfg.
func (r *Registry) Build(cfg config.StepConfig) (Step, error) {
	builder, ok := r.builders[cfg.Name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStep, cfg.Name)
	}
	return builder(cfg)
}

// Has returns true if a step with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered step names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func buildStem(cfg config.StepConfig) (Step, error) {
	s := stemmer.ForName(cfg.Algorithm)
	return NewStep("stem:"+s.Name(), func(c *corpus.Corpus) *corpus.Corpus {
		return c.StemWith(s)
	}), nil
}

func buildRemoveWords(cfg config.StepConfig) (Step, error) {
	if len(cfg.Words) == 0 {
		return nil, fmt.Errorf("%w: remove_words needs at least one word", corpus.ErrInvalidArgument)
	}
	words := append([]string(nil), cfg.Words...)
	return NewStep(cfg.Name, func(c *corpus.Corpus) *corpus.Corpus {
		return c.RemoveWords(words, cfg.CaseInsensitive)
	}), nil
}

func buildRemoveStopwords(cfg config.StepConfig) (Step, error) {
	list := cfg.Words
	if len(list) == 0 {
		list = stopwords.ForLanguage(cfg.Language)
		if list == nil {
			return nil, fmt.Errorf("%w: no stopword list for language %q", corpus.ErrInvalidArgument, cfg.Language)
		}
	}
	return NewStep(cfg.Name, func(c *corpus.Corpus) *corpus.Corpus {
		return c.RemoveStopwords(list)
	}), nil
}
