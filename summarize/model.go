package summarize

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fwojciec/skim"
	"golang.org/x/sync/singleflight"
)

// DefaultLoadTimeout bounds one model load.
const DefaultLoadTimeout = 60 * time.Second

// LoadFunc initializes a generator. It is called at most once per
// successful load.
type LoadFunc func(ctx context.Context) (skim.Generator, error)

// Model is a lazily initialized handle to the process's text-generation
// model. The first Get loads the model; concurrent callers wait for that
// same load and then share the generator. A failed load is not
// remembered, so a later Get retries.
//
// The load runs detached from any single caller and is bounded by
// LoadTimeout. Each caller stops waiting when its own context ends.
type Model struct {
	Provider string
	Name     string
	Device   string

	// LoadTimeout bounds each load attempt. Zero means DefaultLoadTimeout.
	LoadTimeout time.Duration

	load  LoadFunc
	group singleflight.Group

	mu  sync.Mutex
	gen skim.Generator
}

// NewModel creates a handle that loads its generator with load on first use.
func NewModel(provider, name, device string, load LoadFunc) *Model {
	return &Model{
		Provider: provider,
		Name:     name,
		Device:   device,
		load:     load,
	}
}

// Get returns the loaded generator, loading it if necessary.
// Returns EGENERATE if the model cannot be loaded or ctx ends first.
func (m *Model) Get(ctx context.Context) (skim.Generator, error) {
	if gen := m.loaded(); gen != nil {
		return gen, nil
	}
	if m.load == nil {
		return nil, skim.Errorf(skim.EGENERATE, "model unavailable: no loader configured")
	}

	ch := m.group.DoChan("load", func() (any, error) {
		return m.loadOnce(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(skim.Generator), nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, skim.WrapError(skim.EGENERATE, ctx.Err(), "model unavailable: %s: load timed out", m.Name)
		}
		return nil, skim.WrapError(skim.EGENERATE, ctx.Err(), "model unavailable: %s: load canceled", m.Name)
	}
}

func (m *Model) loadOnce(ctx context.Context) (skim.Generator, error) {
	if gen := m.loaded(); gen != nil {
		return gen, nil
	}

	timeout := m.LoadTimeout
	if timeout <= 0 {
		timeout = DefaultLoadTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	gen, err := m.load(ctx)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, skim.WrapError(skim.EGENERATE, err, "model unavailable: %s: load timed out after %s", m.Name, timeout)
		}
		return nil, skim.WrapError(skim.EGENERATE, err, "model unavailable: %s: %s", m.Name, skim.ErrorMessage(err))
	}
	if gen == nil {
		return nil, skim.Errorf(skim.EGENERATE, "model unavailable: %s", m.Name)
	}

	m.mu.Lock()
	m.gen = gen
	m.mu.Unlock()
	return gen, nil
}

func (m *Model) loaded() skim.Generator {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gen
}

// Loaded reports whether the generator has been loaded.
func (m *Model) Loaded() bool {
	return m.loaded() != nil
}
