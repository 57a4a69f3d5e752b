package cats

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog_RejectsDuplicateIDs(t *testing.T) {
	_, err := NewCatalog([]Cat{{ID: 1, Name: "a"}, {ID: 1, Name: "b"}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateID))
}

func TestCatalog_AllIsStableAndIsolated(t *testing.T) {
	c, err := NewCatalog(fixtureCats())
	require.NoError(t, err)

	first := c.All()
	first[0].Name = "changed"
	first[0].Personality[0] = "changed"

	second := c.All()
	assert.Equal(t, fixtureCats(), second)
	assert.Equal(t, 6, c.Len())
}

func TestCatalog_SourceMutationDoesNotLeak(t *testing.T) {
	src := fixtureCats()
	c, err := NewCatalog(src)
	require.NoError(t, err)

	src[1].Personality[0] = "changed"

	got, ok := c.ByID(2)
	require.True(t, ok)
	assert.Equal(t, "спокойный", got.Personality[0])
}

func TestService_Search(t *testing.T) {
	c, err := NewCatalog(fixtureCats())
	require.NoError(t, err)
	svc := NewService(c)
	ctx := context.Background()

	res := svc.Search(ctx, Query{Text: "рыж"})
	assert.Equal(t, 1, res.Count)
	assert.False(t, res.Empty)
	assert.Equal(t, "Рыжик", res.Cats[0].Name)

	res = svc.Search(ctx, Query{Text: "рыж", Trait: "игривый"})
	assert.Equal(t, 0, res.Count)
	assert.True(t, res.Empty)
	assert.NotNil(t, res.Cats)

	res = svc.Search(ctx, Query{Trait: "величественный"})
	assert.Equal(t, []int{2}, ids(res.Cats))

	res = svc.Search(ctx, Query{Text: "zzz"})
	assert.True(t, res.Empty)
	assert.Equal(t, Query{Text: "zzz"}, res.Query)
}

func TestService_GetAndTraits(t *testing.T) {
	c, err := NewCatalog(fixtureCats())
	require.NoError(t, err)
	svc := NewService(c)
	ctx := context.Background()

	got, err := svc.Get(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "Соня", got.Name)

	_, err = svc.Get(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	traits := svc.Traits(ctx)
	traits[0] = "changed"
	assert.Equal(t, "игривый", svc.Traits(ctx)[0])
}
