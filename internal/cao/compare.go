package cao

import (
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants"
	"github.com/pkg/errors"

	"github.com/rabitt1ove/jholiday"
)

// Diff is a date on which the official list and the computed calendar
// disagree about whether it is a holiday. The side that lacks the date has
// an empty name.
type Diff struct {
	Date     time.Time
	Official string
	Computed string
}

// Span returns the first and last year covered by holidays.
func Span(holidays []Holiday) (from, to int, ok bool) {
	if len(holidays) == 0 {
		return 0, 0, false
	}
	from, to = holidays[0].Date.Year(), holidays[0].Date.Year()
	for _, h := range holidays[1:] {
		y := h.Date.Year()
		if y < from {
			from = y
		}
		if y > to {
			to = y
		}
	}
	return from, to, true
}

// Compare reports every date in the years [from, to] that is a holiday on
// exactly one side. Years are compared concurrently on a pool of workers.
// Names are not compared: the official list labels substitute and national
// holidays "休日".
func Compare(official []Holiday, cal *jpholiday.Calendar, from, to, workers int) ([]Diff, error) {
	if from > to {
		return nil, errors.Errorf("invalid year range %d-%d", from, to)
	}
	if workers <= 0 {
		workers = 1
	}

	byYear := make(map[int]map[string]Holiday)
	for _, h := range official {
		y := h.Date.Year()
		if byYear[y] == nil {
			byYear[y] = make(map[string]Holiday)
		}
		byYear[y][h.Date.Format(jpholiday.DateLayout)] = h
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, errors.Wrap(err, "worker pool")
	}
	defer pool.Release()

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		diffs     []Diff
		submitErr error
	)
	for year := from; year <= to; year++ {
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			d := compareYear(byYear[year], cal.HolidaysInYear(year))
			mu.Lock()
			diffs = append(diffs, d...)
			mu.Unlock()
		})
		if err != nil {
			wg.Done()
			submitErr = errors.Wrapf(err, "submit %d", year)
			break
		}
	}
	wg.Wait()
	if submitErr != nil {
		return nil, submitErr
	}

	sort.Slice(diffs, func(i, j int) bool {
		return diffs[i].Date.Before(diffs[j].Date)
	})
	return diffs, nil
}

func compareYear(official map[string]Holiday, computed []jpholiday.Holiday) []Diff {
	var diffs []Diff
	seen := make(map[string]bool, len(computed))
	for _, h := range computed {
		key := h.DateString()
		seen[key] = true
		if _, ok := official[key]; !ok {
			diffs = append(diffs, Diff{Date: h.Date, Computed: h.Name})
		}
	}
	for key, h := range official {
		if !seen[key] {
			diffs = append(diffs, Diff{Date: h.Date, Official: h.Name})
		}
	}
	return diffs
}
