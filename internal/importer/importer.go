package importer

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/sharedesk/internal/logger"
	"github.com/guttosm/sharedesk/internal/storage"
)

const (
	fileDateLayout   = "2006-01-02"
	fileSuffix       = "_prices.csv"
	defaultBatchSize = 1000
	maxParallelFiles = 8
)

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.PricesRepository {
	return storage.NewPricesRepository(db)
}

// batchSize is the number of rows per COPY within a file's transaction.
var batchSize = defaultBatchSize

// ProcessDirectory imports every "YYYY-MM-DD_prices.csv" file found in dir.
//
//   - dir: directory containing the daily price files.
//   - db:  open *sql.DB (PostgreSQL).
//
// Behavior:
//   - One file per trade date; the date is taken from the filename.
//   - A date already present in import_log is skipped unless force is set,
//     in which case that date's snapshots are replaced by the file's.
//   - Each file is written in one transaction together with its import_log
//     entry, so a failed file leaves its date as it was.
//   - Files run concurrently (parallel, or min(NumCPU, 8) when parallel <= 0).
//   - The first failing file cancels the rest and its error is returned.
func ProcessDirectory(ctx context.Context, dir string, db *sql.DB, parallel int, force bool) error {
	repo := repoCtor(db)

	files, err := filepath.Glob(filepath.Join(dir, "*"+fileSuffix))
	if err != nil {
		return fmt.Errorf("list %s: %w", dir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no *%s files found in %s", fileSuffix, dir)
	}
	sort.Strings(files)

	maxParallel := maxParallelFiles
	if parallel > 0 {
		if parallel < maxParallel {
			maxParallel = parallel
		}
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	logger.L().Info().
		Int("files", len(files)).
		Str("dir", dir).
		Int("max_parallel", maxParallel).
		Bool("force", force).
		Msg("import start")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for i, file := range files {
		g.Go(func() error {
			return importFile(gctx, repo, file, i+1, len(files), force)
		})
	}

	return g.Wait()
}

func importFile(ctx context.Context, repo storage.PricesRepository, path string, idx, total int, force bool) error {
	start := time.Now()
	base := filepath.Base(path)
	log := logger.L().With().Str("file", base).Int("idx", idx).Int("total", total).Logger()

	d, err := tradeDateFromName(base)
	if err != nil {
		log.Error().Err(err).Msg("invalid date in filename")
		return fmt.Errorf("file %s: %w", base, err)
	}

	exists, err := repo.HasImportForDate(ctx, d)
	if err != nil {
		log.Error().Err(err).Msg("check import log failed")
		return fmt.Errorf("file %s: check import log: %w", base, err)
	}
	if exists && !force {
		log.Info().Bool("skipped", true).Msg("already imported")
		return nil
	}

	snapshots, err := loadFile(ctx, path, d, repo)
	if err != nil {
		log.Error().Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
		return fmt.Errorf("file %s: %w", base, err)
	}

	err = repo.ImportDay(ctx, storage.DayImport{
		Date:      d,
		Filename:  base,
		Snapshots: snapshots,
		Replace:   exists,
		BatchSize: batchSize,
	})
	if err != nil {
		log.Error().Dur("elapsed", time.Since(start)).Err(err).Msg("write failed")
		return fmt.Errorf("file %s: %w", base, err)
	}

	log.Info().Int("rows", len(snapshots)).Dur("elapsed", time.Since(start)).Msg("file done")
	return nil
}

// tradeDateFromName extracts the UTC trade date from "YYYY-MM-DD_prices.csv".
func tradeDateFromName(base string) (time.Time, error) {
	d, err := time.Parse(fileDateLayout, strings.TrimSuffix(base, fileSuffix))
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date from filename: %w", err)
	}
	return d, nil
}
