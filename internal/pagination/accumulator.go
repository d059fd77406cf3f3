// Package pagination implements the page-merge state machine shared by
// every listing screen (search results, category contents). It folds
// successive pages of normalized videos into one de-duplicated sequence and
// tracks whether more pages exist.
package pagination

import (
	"sync"

	"github.com/cineflow/catalogd/internal/models"
)

// Accumulator owns the pagination state of one active listing. Pages are
// applied only after a successful fetch and normalization, so a failed
// fetch never disturbs the accumulated state; the caller simply retries the
// same page.
//
// Completions of superseded fetches are discarded via sequence numbers: the
// caller obtains a token from Begin before fetching and passes it back to
// Apply, which ignores anything but the latest token.
type Accumulator struct {
	mu sync.Mutex

	items       []models.Video
	ids         map[string]struct{}
	currentPage int
	hasMore     bool
	totalPages  int

	pageSize int
	seq      uint64
}

// New creates an accumulator in the reset state. pageSize is the item count
// requested per page, used by the full-page heuristic when the upstream
// omits pagination info.
func New(pageSize int) *Accumulator {
	a := &Accumulator{pageSize: pageSize}
	a.reset()
	return a
}

func (a *Accumulator) reset() {
	a.items = nil
	a.ids = make(map[string]struct{})
	a.currentPage = 1
	a.hasMore = true
	a.totalPages = 0
}

// Reset returns the accumulator to its fresh state: page 1, no items, more
// data assumed. Pending fetches begun earlier are invalidated.
func (a *Accumulator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.seq++
	a.reset()
}

// Begin issues a fetch token. Only the most recently issued token is
// accepted by Apply; earlier in-flight fetches that complete late are
// silently dropped.
func (a *Accumulator) Begin() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.seq++
	return a.seq
}

// NextPage returns the page number a continuation fetch should request:
// 1 for a fresh listing, otherwise the page after the last applied one.
func (a *Accumulator) NextPage() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.items) == 0 {
		return 1
	}
	return a.currentPage + 1
}

// Apply folds one successfully fetched page into the accumulated state.
// Page 1 replaces the items; any later page appends only videos whose id
// has not been seen, first occurrence winning. hasMore comes from the
// explicit totalPages when the upstream supplies it, otherwise from the
// full-page heuristic. It reports whether the page was accepted.
func (a *Accumulator) Apply(token uint64, page int, videos []models.Video, pg *models.Pagination) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if token != a.seq {
		return false
	}

	if page <= 1 {
		a.items = nil
		a.ids = make(map[string]struct{})
		a.currentPage = 1
		for _, v := range videos {
			if _, ok := a.ids[v.ID]; ok {
				continue
			}
			a.ids[v.ID] = struct{}{}
			a.items = append(a.items, v)
		}
	} else {
		for _, v := range videos {
			if _, ok := a.ids[v.ID]; ok {
				continue
			}
			a.ids[v.ID] = struct{}{}
			a.items = append(a.items, v)
		}
		a.currentPage = page
	}

	if pg != nil && pg.TotalPages > 0 {
		a.totalPages = pg.TotalPages
	}
	a.hasMore = HasMore(page, len(videos), pg, a.pageSize)

	return true
}

// HasMore decides whether pages remain after fetching page. An explicit
// upstream totalPages wins; without one, a full page is assumed to imply
// more data and an undersized page exhaustion.
func HasMore(page, count int, pg *models.Pagination, pageSize int) bool {
	if pg != nil && pg.TotalPages > 0 {
		return page < pg.TotalPages
	}
	return count == pageSize
}

// Items returns a copy of the accumulated videos in order.
func (a *Accumulator) Items() []models.Video {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]models.Video, len(a.items))
	copy(out, a.items)
	return out
}

// CurrentPage returns the last applied page number (1 when fresh).
func (a *Accumulator) CurrentPage() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currentPage
}

// HasMore reports whether a continuation fetch may yield further items.
func (a *Accumulator) HasMore() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.hasMore
}

// TotalPages returns the upstream-reported page count, 0 when unknown.
func (a *Accumulator) TotalPages() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.totalPages
}

// Len returns the number of accumulated videos.
func (a *Accumulator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.items)
}
