package fixture

import (
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/compozy/fixturegen/pkg/config"
	"github.com/compozy/fixturegen/pkg/logger"
	"github.com/compozy/fixturegen/pkg/synth"
	"github.com/compozy/fixturegen/pkg/typeinfo"
)

// Engine generates fixtures. It is immutable once built and safe for
// concurrent use; every call owns its own traversal state.
type Engine struct {
	cfg          *config.Config
	log          logger.Logger
	synth        *synth.Synthesizer
	now          func() time.Time
	classifier   *typeinfo.Classifier
	constructors map[reflect.Type][]constructor
}

// New builds an Engine from options.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		cfg:          config.Default(),
		log:          logger.GetDefault(),
		classifier:   typeinfo.NewClassifier(),
		constructors: make(map[reflect.Type][]constructor),
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, NewErrorf(ErrCodeInvalidArgument, "Invalid engine option: %s", err.Error()).at(nil, "", err)
		}
	}
	var synthOpts []synth.Option
	if e.now != nil {
		synthOpts = append(synthOpts, synth.WithClock(e.now))
	}
	e.synth = synth.New(e.cfg, synthOpts...)
	return e, nil
}

var defaultEngine = sync.OnceValue(func() *Engine {
	e, err := New()
	if err != nil {
		panic(fmt.Sprintf("failed to build default fixture engine: %v", err))
	}
	return e
})

// Default returns a shared Engine with the default configuration.
func Default() *Engine {
	return defaultEngine()
}

// Config returns the engine configuration.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// Generate returns a new, populated value of type t.
func (e *Engine) Generate(t reflect.Type, opts ...GenerateOption) (reflect.Value, error) {
	g, err := e.begin(t, opts)
	if err != nil {
		return reflect.Value{}, e.fail(t, err)
	}
	return g.run(t)
}

// GenerateMany returns count independent values of type t. The first failure
// aborts the batch.
func (e *Engine) GenerateMany(t reflect.Type, count int, opts ...GenerateOption) ([]reflect.Value, error) {
	if count < 0 {
		return nil, e.fail(t, NewErrorf(ErrCodeInvalidArgument, "Count must not be negative, got %d", count))
	}
	out := make([]reflect.Value, 0, count)
	for range count {
		v, err := e.Generate(t, opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (e *Engine) begin(t reflect.Type, opts []GenerateOption) (*generation, error) {
	if t == nil {
		return nil, NewError(ErrCodeInvalidArgument, "Type must not be nil")
	}
	var call callOptions
	for _, opt := range opts {
		opt(&call)
	}
	itemCount := e.cfg.Generation.ItemCount
	if call.itemCount != nil {
		itemCount = *call.itemCount
	}
	if itemCount < 0 {
		return nil, NewErrorf(ErrCodeInvalidArgument, "Item count must not be negative, got %d", itemCount)
	}
	return &generation{
		engine:    e,
		overrides: call.overrides,
		itemCount: itemCount,
		visited:   make(map[reflect.Type]struct{}),
		log:       e.log.With("fixture", t.String()),
	}, nil
}

func (e *Engine) fail(t reflect.Type, cause error) error {
	err := newGenerationError(t, cause)
	e.log.Error("fixture generation failed", "type", typeName(t), "path", err.Path.String(), "error", cause)
	return err
}

// Generate returns a populated T built by the default engine.
func Generate[T any](opts ...GenerateOption) (T, error) {
	return GenerateWith[T](Default(), opts...)
}

// GenerateWith returns a populated T built by e.
func GenerateWith[T any](e *Engine, opts ...GenerateOption) (T, error) {
	var zero T
	v, err := e.Generate(reflect.TypeFor[T](), opts...)
	if err != nil {
		return zero, err
	}
	out, _ := v.Interface().(T)
	return out, nil
}

// GenerateMany returns count populated values built by the default engine.
func GenerateMany[T any](count int, opts ...GenerateOption) ([]T, error) {
	return GenerateManyWith[T](Default(), count, opts...)
}

// GenerateManyWith returns count populated values built by e.
func GenerateManyWith[T any](e *Engine, count int, opts ...GenerateOption) ([]T, error) {
	values, err := e.GenerateMany(reflect.TypeFor[T](), count, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(values))
	for i, v := range values {
		out[i], _ = v.Interface().(T)
	}
	return out, nil
}
