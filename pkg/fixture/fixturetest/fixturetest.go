// Package fixturetest wraps the fixture engine for use inside tests: failures
// stop the test instead of returning errors.
package fixturetest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/compozy/fixturegen/pkg/fixture"
	"github.com/compozy/fixturegen/pkg/logger"
)

// Engine builds an engine that logs nothing, failing the test on invalid options.
func Engine(t testing.TB, opts ...fixture.Option) *fixture.Engine {
	t.Helper()
	opts = append([]fixture.Option{fixture.WithLogger(logger.NewForTests())}, opts...)
	e, err := fixture.New(opts...)
	require.NoError(t, err, "failed to build fixture engine")
	return e
}

// New returns a populated T from the default engine.
func New[T any](t testing.TB, opts ...fixture.GenerateOption) T {
	t.Helper()
	v, err := fixture.Generate[T](opts...)
	require.NoError(t, err, "failed to generate fixture")
	return v
}

// NewWith returns a populated T from e.
func NewWith[T any](t testing.TB, e *fixture.Engine, opts ...fixture.GenerateOption) T {
	t.Helper()
	v, err := fixture.GenerateWith[T](e, opts...)
	require.NoError(t, err, "failed to generate fixture")
	return v
}

// Many returns n populated values of T from the default engine.
func Many[T any](t testing.TB, n int, opts ...fixture.GenerateOption) []T {
	t.Helper()
	v, err := fixture.GenerateMany[T](n, opts...)
	require.NoError(t, err, "failed to generate fixtures")
	return v
}
