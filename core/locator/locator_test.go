package locator_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"service-locator/core/loader"
	"service-locator/core/locator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type item struct{ name string }

func newLocator(t *testing.T) *locator.ServiceLocator {
	t.Helper()
	return locator.New(loader.NewRegistry(zap.NewNop()), locator.Config{}, zap.NewNop())
}

func factory(name string) loader.Factory {
	return func(ctx context.Context, l loader.Locator) (any, error) {
		return &item{name: name}, nil
	}
}

func TestServiceLocator_Define(t *testing.T) {
	loc := newLocator(t)

	t.Run("DefaultsLoader", func(t *testing.T) {
		require.NoError(t, loc.Define(loader.Definition{Name: "Plain", Factory: factory("plain")}))
		def, ok := loc.Definition("plain")
		require.True(t, ok)
		assert.Equal(t, loader.NameDefault, def.Loader)
	})

	t.Run("Duplicate", func(t *testing.T) {
		err := loc.Define(loader.Definition{Name: "PLAIN", Factory: factory("again")})
		assert.ErrorIs(t, err, locator.ErrServiceExists)
	})

	t.Run("Invalid", func(t *testing.T) {
		assert.ErrorIs(t, loc.Define(loader.Definition{Name: "nofactory"}), locator.ErrInvalidDefinition)
		assert.ErrorIs(t, loc.Define(loader.Definition{Factory: factory("noname")}), locator.ErrInvalidDefinition)
	})
}

func TestServiceLocator_ConfiguredDefaultLoader(t *testing.T) {
	loc := locator.New(loader.NewRegistry(nil), locator.Config{DefaultLoader: "singleton"}, nil)
	require.NoError(t, loc.Define(loader.Definition{Name: "shared", Factory: factory("shared")}))

	a, err := loc.Get(context.Background(), "shared")
	require.NoError(t, err)
	b, err := loc.Get(context.Background(), "shared")
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestServiceLocator_Get(t *testing.T) {
	ctx := context.Background()
	loc := newLocator(t)
	require.NoError(t, loc.Define(loader.Definition{Name: "fresh", Loader: "default", Factory: factory("fresh")}))
	require.NoError(t, loc.Define(loader.Definition{Name: "shared", Loader: "Singleton", Factory: factory("shared")}))

	t.Run("DefaultLoader", func(t *testing.T) {
		a, err := loc.Get(ctx, "fresh")
		require.NoError(t, err)
		b, err := loc.Get(ctx, "FRESH")
		require.NoError(t, err)
		assert.NotSame(t, a, b)
		assert.Equal(t, "fresh", a.(*item).name)
	})

	t.Run("SingletonLoader", func(t *testing.T) {
		a, err := loc.Get(ctx, "shared")
		require.NoError(t, err)
		b, err := loc.Get(ctx, "Shared")
		require.NoError(t, err)
		assert.Same(t, a, b)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := loc.Get(ctx, "missing")
		assert.ErrorIs(t, err, locator.ErrServiceNotFound)
	})

	t.Run("LoadersAreCachedInRegistry", func(t *testing.T) {
		assert.True(t, loc.Registry().Cached("default"))
		assert.True(t, loc.Registry().Cached("singleton"))
	})
}

func TestServiceLocator_Get_UnknownLoader(t *testing.T) {
	loc := newLocator(t)
	require.NoError(t, loc.Define(loader.Definition{Name: "orphan", Loader: "Pooled", Factory: factory("orphan")}))

	_, err := loc.Get(context.Background(), "orphan")
	assert.ErrorIs(t, err, loader.ErrNameNotFound)
	assert.Contains(t, err.Error(), "'Pooled'")
}

func TestServiceLocator_Get_FactoryError(t *testing.T) {
	loc := newLocator(t)
	boom := errors.New("boom")
	require.NoError(t, loc.Define(loader.Definition{
		Name: "broken",
		Factory: func(ctx context.Context, l loader.Locator) (any, error) {
			return nil, boom
		},
	}))

	_, err := loc.Get(context.Background(), "broken")
	assert.ErrorIs(t, err, boom)
}

func TestServiceLocator_FactoryUsesLocator(t *testing.T) {
	ctx := context.Background()
	loc := newLocator(t)
	require.NoError(t, loc.Define(loader.Definition{Name: "base", Loader: "singleton", Factory: factory("base")}))
	require.NoError(t, loc.Define(loader.Definition{
		Name: "wrapper",
		Factory: func(ctx context.Context, l loader.Locator) (any, error) {
			return l.Get(ctx, "base")
		},
	}))

	base, err := loc.Get(ctx, "base")
	require.NoError(t, err)
	wrapped, err := loc.Get(ctx, "wrapper")
	require.NoError(t, err)
	assert.Same(t, base, wrapped)
}

func TestServiceLocator_Definitions_Sorted(t *testing.T) {
	loc := newLocator(t)
	for _, n := range []string{"zeta", "Alpha", "mid"} {
		require.NoError(t, loc.Define(loader.Definition{Name: n, Factory: factory(n)}))
	}

	var names []string
	for _, d := range loc.Definitions() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Alpha", "mid", "zeta"}, names)
}

func TestDefineBuiltins(t *testing.T) {
	ctx := context.Background()
	logg := zap.NewNop()
	loc := newLocator(t)
	require.NoError(t, locator.DefineBuiltins(loc, logg))

	a, err := loc.Get(ctx, locator.ServiceRequestID)
	require.NoError(t, err)
	b, err := loc.Get(ctx, locator.ServiceRequestID)
	require.NoError(t, err)
	_, parseErr := uuid.Parse(a.(string))
	assert.NoError(t, parseErr)
	assert.NotEqual(t, a, b)

	l, err := loc.Get(ctx, locator.ServiceLogger)
	require.NoError(t, err)
	assert.Same(t, logg, l)

	s1, err := loc.Get(ctx, locator.ServiceStartedAt)
	require.NoError(t, err)
	s2, err := loc.Get(ctx, locator.ServiceStartedAt)
	require.NoError(t, err)
	assert.Equal(t, s1.(time.Time), s2.(time.Time))

	assert.ErrorIs(t, locator.DefineBuiltins(loc, logg), locator.ErrServiceExists)
}
