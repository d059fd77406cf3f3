package pagination

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cineflow/catalogd/internal/models"
)

func videos(ids ...string) []models.Video {
	out := make([]models.Video, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Video{ID: id, Type: models.VideoTypeMovie, Title: "video-" + id})
	}
	return out
}

func page(n int) []models.Video {
	out := make([]models.Video, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.Video{ID: strconv.Itoa(i), Type: models.VideoTypeMovie})
	}
	return out
}

func TestResetState(t *testing.T) {
	a := New(50)
	token := a.Begin()
	a.Apply(token, 1, videos("1", "2"), nil)

	a.Reset()

	assert.Equal(t, 1, a.CurrentPage())
	assert.Empty(t, a.Items())
	assert.True(t, a.HasMore())
}

func TestMergeDeduplicatesAcrossPages(t *testing.T) {
	a := New(2)

	a.Apply(a.Begin(), 1, videos("1", "2"), nil)
	a.Apply(a.Begin(), 2, videos("2", "3"), nil)

	items := a.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "1", items[0].ID)
	assert.Equal(t, "2", items[1].ID)
	assert.Equal(t, "3", items[2].ID)
	assert.Equal(t, 2, a.CurrentPage())
}

func TestFirstOccurrenceWins(t *testing.T) {
	a := New(2)

	a.Apply(a.Begin(), 1, []models.Video{{ID: "2", Title: "original"}, {ID: "9"}}, nil)
	a.Apply(a.Begin(), 2, []models.Video{{ID: "2", Title: "replacement"}}, nil)

	items := a.Items()
	assert.Equal(t, "original", items[0].Title)
}

func TestPageOneReplacesItems(t *testing.T) {
	a := New(50)
	a.Apply(a.Begin(), 1, videos("1", "2"), nil)

	a.Apply(a.Begin(), 1, videos("7"), nil)

	items := a.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "7", items[0].ID)
	assert.Equal(t, 1, a.CurrentPage())
}

func TestHasMoreWithExplicitTotalPages(t *testing.T) {
	a := New(50)
	pg := &models.Pagination{TotalPages: 3}

	a.Apply(a.Begin(), 1, videos("1"), pg)
	assert.True(t, a.HasMore())

	a.Apply(a.Begin(), 2, videos("2"), pg)
	assert.True(t, a.HasMore())

	a.Apply(a.Begin(), 3, videos("3"), pg)
	assert.False(t, a.HasMore())
	assert.Equal(t, 3, a.TotalPages())
}

func TestHasMoreHeuristicWithoutPagination(t *testing.T) {
	a := New(50)

	a.Apply(a.Begin(), 1, page(50), nil)
	assert.True(t, a.HasMore())

	a.Apply(a.Begin(), 2, page(37), nil)
	assert.False(t, a.HasMore())
}

func TestNextPage(t *testing.T) {
	a := New(50)
	assert.Equal(t, 1, a.NextPage())

	a.Apply(a.Begin(), 1, videos("1"), nil)
	assert.Equal(t, 2, a.NextPage())

	a.Apply(a.Begin(), 2, videos("2"), nil)
	assert.Equal(t, 3, a.NextPage())
}

func TestStaleCompletionDiscarded(t *testing.T) {
	a := New(50)

	stale := a.Begin()
	latest := a.Begin()

	require.True(t, a.Apply(latest, 1, videos("fresh"), nil))
	assert.False(t, a.Apply(stale, 1, videos("stale"), nil))

	items := a.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "fresh", items[0].ID)
}

func TestResetInvalidatesInFlightFetch(t *testing.T) {
	a := New(50)

	token := a.Begin()
	a.Reset()

	assert.False(t, a.Apply(token, 1, videos("late"), nil))
	assert.Empty(t, a.Items())
}

func TestHasMoreHelper(t *testing.T) {
	assert.True(t, HasMore(2, 10, &models.Pagination{TotalPages: 3}, 50))
	assert.False(t, HasMore(3, 10, &models.Pagination{TotalPages: 3}, 50))
	assert.True(t, HasMore(1, 50, nil, 50))
	assert.False(t, HasMore(1, 37, nil, 50))
}
