package service

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"textcorpus/internal/config"
	"textcorpus/internal/corpus"
	"textcorpus/internal/domain"
	"textcorpus/internal/pipeline"
	"textcorpus/internal/textclean"
)

// ErrNotLoaded is returned by Process before Load succeeded.
var ErrNotLoaded = errors.New("corpus not loaded")

// Attribute keys set on documents read from files.
const (
	AttrID    = "id"
	AttrPath  = "path"
	AttrBytes = "bytes"
)

type CorpusService struct {
	input    config.InputConfig
	pipeline *pipeline.Pipeline
	log      zerolog.Logger
	corpus   *corpus.Corpus
}

func NewCorpusService(input config.InputConfig, p *pipeline.Pipeline, log zerolog.Logger) *CorpusService {
	return &CorpusService{input: input, pipeline: p, log: log}
}

// Load reads every file matching paths (globs allowed) with a configured
// extension, then appends the inline documents from the config and applies
// the configured attributes.
func (s *CorpusService) Load(paths []string) (*corpus.Corpus, error) {
	var inputs []domain.Input
	for _, p := range paths {
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("pattern %q: %w", p, err)
		}
		if matches == nil {
			if strings.ContainsAny(p, "*?[") {
				continue
			}
			matches = []string{p}
		}
		for _, m := range matches {
			if !s.input.HasExtension(m) {
				s.log.Debug().Str("path", m).Msg("skipping file with unsupported extension")
				continue
			}
			data, err := os.ReadFile(m)
			if err != nil {
				return nil, err
			}
			inputs = append(inputs, domain.NewDocument(string(data), domain.Attributes{
				AttrID:    hashString(m),
				AttrPath:  m,
				AttrBytes: len(data),
			}))
		}
	}
	c := corpus.New()
	if _, err := c.AddDocs(inputs); err != nil {
		return nil, err
	}

	inline, err := corpus.FromValue(s.input.Documents)
	if err != nil {
		return nil, fmt.Errorf("input.documents: %w", err)
	}
	for _, d := range inline.Documents() {
		if _, err := c.AddDoc(d); err != nil {
			return nil, err
		}
	}
	if c.NDocs() == 0 {
		return nil, fmt.Errorf("no documents found")
	}

	if s.input.Attributes != nil {
		attrs, err := corpus.AttributesFromValue(s.input.Attributes)
		if err != nil {
			return nil, fmt.Errorf("input.attributes: %w", err)
		}
		if _, err := c.SetAttributes(attrs); err != nil {
			return nil, fmt.Errorf("input.attributes: %w", err)
		}
	}

	s.log.Info().Int("documents", c.NDocs()).Int("files", len(inputs)).Msg("corpus loaded")
	s.corpus = c
	return c, nil
}

// Process runs the pipeline over the loaded corpus.
func (s *CorpusService) Process(ctx context.Context) (*corpus.Corpus, error) {
	if s.corpus == nil {
		return nil, ErrNotLoaded
	}
	c, err := s.pipeline.Run(ctx, s.corpus)
	if err != nil {
		return nil, err
	}
	s.log.Info().Strs("steps", s.pipeline.Names()).Msg("pipeline finished")
	return c, nil
}

// Corpus returns the loaded corpus, or nil before Load.
func (s *CorpusService) Corpus() *corpus.Corpus { return s.corpus }

var unicodeWordRe = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*|\p{N}+`)

// Search returns the documents containing every word of query, ignoring
// case. An empty query matches every document.
func (s *CorpusService) Search(query string) (*corpus.Corpus, error) {
	if s.corpus == nil {
		return nil, ErrNotLoaded
	}
	terms := QueryTerms(query)
	return s.corpus.Filter(func(text string, _ domain.Attributes, _ int) bool {
		lower := textclean.Lower(text)
		for _, t := range terms {
			if !strings.Contains(lower, t) {
				return false
			}
		}
		return true
	}), nil
}

// QueryTerms splits a query into lower-cased words.
func QueryTerms(query string) []string {
	return unicodeWordRe.FindAllString(textclean.Lower(query), -1)
}

func hashString(s string) string {
	h := sha1.Sum([]byte(s))
	return hex.EncodeToString(h[:8])
}
