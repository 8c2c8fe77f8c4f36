package menu

import (
	"errors"
	"testing"
	"time"

	"menu-builder/feature/menu/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeCache_HitAndInvalidate(t *testing.T) {
	cache := newTreeCache(time.Minute)
	loads := 0
	load := func() (*models.Restaurant, error) {
		loads++
		return &models.Restaurant{Name: "Burger"}, nil
	}

	first, err := cache.Get(1, load)
	require.NoError(t, err)
	second, err := cache.Get(1, load)
	require.NoError(t, err)

	assert.Equal(t, 1, loads, "second read must be served from cache")
	assert.Same(t, first, second)

	cache.Invalidate(1)
	_, err = cache.Get(1, load)
	require.NoError(t, err)
	assert.Equal(t, 2, loads)
}

func TestTreeCache_EntriesAreIndependent(t *testing.T) {
	cache := newTreeCache(time.Minute)
	load := func(name string) func() (*models.Restaurant, error) {
		return func() (*models.Restaurant, error) {
			return &models.Restaurant{Name: name}, nil
		}
	}

	a, err := cache.Get(1, load("A"))
	require.NoError(t, err)
	b, err := cache.Get(2, load("B"))
	require.NoError(t, err)
	assert.Equal(t, "A", a.Name)
	assert.Equal(t, "B", b.Name)

	cache.Invalidate(1)
	b2, err := cache.Get(2, load("fresh"))
	require.NoError(t, err)
	assert.Equal(t, "B", b2.Name, "invalidating one restaurant must not evict another")
}

func TestTreeCache_ZeroTTLDisablesCaching(t *testing.T) {
	cache := newTreeCache(0)
	loads := 0
	load := func() (*models.Restaurant, error) {
		loads++
		return &models.Restaurant{}, nil
	}

	_, err := cache.Get(1, load)
	require.NoError(t, err)
	_, err = cache.Get(1, load)
	require.NoError(t, err)
	assert.Equal(t, 2, loads)
}

func TestTreeCache_LoadErrorIsNotCached(t *testing.T) {
	cache := newTreeCache(time.Minute)
	calls := 0
	flaky := func() (*models.Restaurant, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("store down")
		}
		return &models.Restaurant{Name: "Recovered"}, nil
	}

	_, err := cache.Get(1, flaky)
	require.Error(t, err)

	tree, err := cache.Get(1, flaky)
	require.NoError(t, err)
	assert.Equal(t, "Recovered", tree.Name)
}
