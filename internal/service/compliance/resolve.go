package compliance

import (
	"github.com/rbrd/isleep-backend-go/internal/domain/entry"
	"github.com/rbrd/isleep-backend-go/internal/pkg/validator"
)

// better reports whether a ranks strictly before b: a usable duration beats
// none, a longer duration beats a shorter one, a later submission beats an
// earlier one, and finally the greater ID wins.
func better(a, b entry.Entry) bool {
	if (a.DurationMin == nil) != (b.DurationMin == nil) {
		return a.DurationMin != nil
	}
	if a.DurationMin != nil && *a.DurationMin != *b.DurationMin {
		return *a.DurationMin > *b.DurationMin
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

// Resolve picks the canonical entry among raw entries of one worker and
// day. ok is false for an empty slice.
func Resolve(entries []entry.Entry) (best entry.Entry, ok bool) {
	for i, e := range entries {
		if i == 0 || better(e, best) {
			best = e
		}
	}
	return best, len(entries) > 0
}

type groupKey struct {
	workerKey string
	date      string
}

// Consolidate reduces raw entries to one canonical entry per (worker, date).
// Output order follows the first appearance of each group.
func Consolidate(entries []entry.Entry) []entry.Entry {
	index := make(map[groupKey]int)
	var out []entry.Entry

	for _, e := range entries {
		k := groupKey{workerKey: e.WorkerKey, date: e.Date.Format(validator.DateLayout)}
		i, seen := index[k]
		if !seen {
			index[k] = len(out)
			out = append(out, e)
			continue
		}
		if better(e, out[i]) {
			out[i] = e
		}
	}
	return out
}
