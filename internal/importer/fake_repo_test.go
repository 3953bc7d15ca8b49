package importer

import (
	"context"
	"sync"
	"time"

	"github.com/guttosm/sharedesk/internal/domain/models"
	"github.com/guttosm/sharedesk/internal/storage"
)

// fakeRepo is an in-memory PricesRepository shared by the importer tests.
// ImportDay stages its batches and only publishes them once every step of
// the day succeeded, like the transaction it stands in for.
type fakeRepo struct {
	mu sync.Mutex

	symbols  map[string]int64
	imported map[time.Time]bool
	deleted  map[time.Time]bool
	stored   map[time.Time][]models.PriceSnapshot
	batches  [][]models.PriceSnapshot
	logged   map[time.Time]int

	hasErr    error
	failBatch int // 1-based batch that fails; 0 never fails
	insertErr error
	upsertErr error
}

var _ storage.PricesRepository = (*fakeRepo)(nil)

func newFakeRepo(symbols map[string]int64) *fakeRepo {
	return &fakeRepo{
		symbols:  symbols,
		imported: map[time.Time]bool{},
		deleted:  map[time.Time]bool{},
		stored:   map[time.Time][]models.PriceSnapshot{},
		logged:   map[time.Time]int{},
	}
}

func (f *fakeRepo) CompanyIDsBySymbol(_ context.Context, symbols []string) (map[string]int64, error) {
	out := map[string]int64{}
	for _, s := range symbols {
		if id, ok := f.symbols[s]; ok {
			out[s] = id
		}
	}
	return out, nil
}

func (f *fakeRepo) HasImportForDate(_ context.Context, date time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.imported[date], f.hasErr
}

func (f *fakeRepo) ImportDay(_ context.Context, day storage.DayImport) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	size := day.BatchSize
	if size <= 0 {
		size = len(day.Snapshots)
	}
	var staged [][]models.PriceSnapshot
	for start, n := 0, 1; start < len(day.Snapshots); start, n = start+size, n+1 {
		if n == f.failBatch {
			return f.insertErr
		}
		end := min(start+size, len(day.Snapshots))
		staged = append(staged, append([]models.PriceSnapshot(nil), day.Snapshots[start:end]...))
	}
	if f.upsertErr != nil {
		return f.upsertErr
	}

	if day.Replace {
		f.deleted[day.Date] = true
		delete(f.stored, day.Date)
	}
	for _, b := range staged {
		f.stored[day.Date] = append(f.stored[day.Date], b...)
	}
	f.batches = append(f.batches, staged...)
	f.imported[day.Date] = true
	f.logged[day.Date] = len(day.Snapshots)
	return nil
}

func (f *fakeRepo) rows() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, s := range f.stored {
		n += len(s)
	}
	return n
}
