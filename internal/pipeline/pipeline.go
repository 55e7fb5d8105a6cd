// Package pipeline builds an ordered list of normalization steps from
// configuration and runs it over a corpus.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"textcorpus/internal/config"
	"textcorpus/internal/corpus"
)

// Pipeline runs steps in order.
type Pipeline struct {
	steps []Step
	log   zerolog.Logger
}

// New creates a pipeline with the given steps.
func New(log zerolog.Logger, steps ...Step) *Pipeline {
	return &Pipeline{steps: steps, log: log}
}

// Build creates a pipeline from config entries using reg.
func Build(reg *Registry, cfgs []config.StepConfig, log zerolog.Logger) (*Pipeline, error) {
	steps := make([]Step, 0, len(cfgs))
	for i, cfg := range cfgs {
		step, err := reg.Build(cfg)
		if err != nil {
			return nil, fmt.Errorf("pipeline step %d: %w", i, err)
		}
		steps = append(steps, step)
	}
	return New(log, steps...), nil
}

// Run applies every step to c. The context is checked between steps; a
// step that already started runs to completion.
func (p *Pipeline) Run(ctx context.Context, c *corpus.Corpus) (*corpus.Corpus, error) {
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return c, fmt.Errorf("step %s: %w", step.Name(), err)
		}
		start := time.Now()
		c = step.Apply(c)
		p.log.Debug().
			Str("step", step.Name()).
			Int("documents", c.NDocs()).
			Dur("took", time.Since(start)).
			Msg("step applied")
	}
	return c, nil
}

// Len returns the number of steps.
func (p *Pipeline) Len() int { return len(p.steps) }

// Names returns the step names in order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.steps))
	for i, s := range p.steps {
		names[i] = s.Name()
	}
	return names
}
