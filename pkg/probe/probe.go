// Package probe tries a fixed list of resource candidates in order and
// remembers the first one that works. Deployments name the same table or
// collection inconsistently across environments, so callers list every
// known variant and let the prober settle on the live one.
package probe

import (
	"context"
	"errors"
	"sync"
)

// ErrNoCandidate is returned when every candidate fails with a
// missing-resource error.
var ErrNoCandidate = errors.New("no candidate resource found")

// MissingFunc reports whether an error means the candidate does not exist,
// as opposed to a real failure that should abort the probe.
type MissingFunc func(err error) bool

// Prober resolves one of several candidate resource names, caching the
// winner after the first successful probe.
type Prober struct {
	candidates []string
	isMissing  MissingFunc

	mu       sync.Mutex
	resolved string
}

// New creates a Prober over the given candidates, tried in order.
func New(candidates []string, isMissing MissingFunc) *Prober {
	return &Prober{
		candidates: candidates,
		isMissing:  isMissing,
	}
}

// Do runs fn against each candidate in order until one succeeds. A candidate
// whose error is reported missing by the MissingFunc is skipped; any other
// error aborts and is returned as-is. Once a candidate succeeds it is cached
// and used directly on later calls, falling back to a full probe if the
// cached candidate starts reporting missing.
func (p *Prober) Do(ctx context.Context, fn func(ctx context.Context, candidate string) error) error {
	p.mu.Lock()
	resolved := p.resolved
	p.mu.Unlock()

	if resolved != "" {
		err := fn(ctx, resolved)
		if err == nil || !p.isMissing(err) {
			return err
		}
		p.mu.Lock()
		if p.resolved == resolved {
			p.resolved = ""
		}
		p.mu.Unlock()
	}

	for _, candidate := range p.candidates {
		err := fn(ctx, candidate)
		if err == nil {
			p.mu.Lock()
			p.resolved = candidate
			p.mu.Unlock()
			return nil
		}
		if !p.isMissing(err) {
			return err
		}
	}

	return ErrNoCandidate
}
