package processor

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"

	"filecredit/internal/domain"
	"filecredit/internal/logger"
	"filecredit/internal/measure"
	"filecredit/pkg/docutil"
)

var errSymlinkDir = errors.New("symlinked directory not followed")

// Run scans root, measures and scores every PDF, DGN and DWG file below it
// and returns the aggregated result. Per-file failures are logged and
// recorded in ScanResult.Skipped; an unusable root or a measurement error
// that domain.Fatal rejects is returned. updates may be nil.
func Run(ctx context.Context, root string, opts Options, updates chan<- ProgressUpdate) (domain.ScanResult, error) {
	fsys := opts.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	absRoot, err := ResolveRoot(fsys, root)
	if err != nil {
		return domain.ScanResult{}, err
	}

	jobs, skipped := collect(fsys, absRoot)
	send(updates, ProgressUpdate{FoundDelta: len(jobs)})

	var measurer Measurer = measure.New(fsys)
	if opts.Measurer != nil {
		measurer = opts.Measurer
	}
	records := make([]domain.FileRecord, 0, len(jobs))

	for _, job := range jobs {
		if ctx != nil {
			if err := ctx.Err(); err != nil {
				return domain.NewScanResult(absRoot, records, skipped), err
			}
		}

		m, err := measurer.Measure(job.Path, job.Kind)
		if domain.Fatal(err) {
			return domain.NewScanResult(absRoot, records, skipped), err
		}
		if err != nil {
			logger.Get().Warn().Err(err).Str("path", job.Path).Msg("skipping file")
			skipped = append(skipped, domain.Skipped{Path: job.Path, Reason: err})
			send(updates, ProgressUpdate{SkippedDelta: 1, Current: job.Path})
			continue
		}

		res := m.Result()
		records = append(records, domain.FileRecord{
			Path:    job.Path,
			Name:    job.Name,
			Kind:    job.Kind,
			Size:    job.Size,
			Pages:   res.Pages,
			A4Pages: res.A4Pages,
			Score:   res.Score,
		})
		logger.Get().Debug().Str("path", job.Path).Int("pages", res.Pages).Int("a4_pages", res.A4Pages).Int("score", res.Score).Msg("scored")
		send(updates, ProgressUpdate{ScannedDelta: 1, ScoreDelta: res.Score, Current: job.Path})
	}

	return domain.NewScanResult(absRoot, records, skipped), nil
}

// ResolveRoot returns the absolute, cleaned form of root after checking that
// it is a directory.
func ResolveRoot(fsys afero.Fs, root string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", &domain.Error{Code: domain.ErrCodeInvalidDirectory, Path: root, Err: err}
	}

	info, err := fsys.Stat(absRoot)
	if err != nil {
		return "", &domain.Error{Code: domain.ErrCodeInvalidDirectory, Path: root, Err: err}
	}
	if !info.IsDir() {
		return "", &domain.Error{Code: domain.ErrCodeInvalidDirectory, Path: root, Err: errors.New("not a directory")}
	}
	return absRoot, nil
}

// collect walks root without following directory symlinks and returns the
// candidate files sorted by path.
func collect(fsys afero.Fs, root string) ([]Job, []domain.Skipped) {
	var jobs []Job
	var skipped []domain.Skipped

	skip := func(path string, err error) {
		if errors.Is(err, fs.ErrPermission) {
			err = &domain.Error{Code: domain.ErrCodeAccessDenied, Path: path, Err: err}
		}
		logger.Get().Warn().Err(err).Str("path", path).Msg("skipping path")
		skipped = append(skipped, domain.Skipped{Path: path, Reason: err})
	}

	_ = afero.Walk(fsys, root, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			skip(path, walkErr)
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			return nil
		}

		kind := docutil.FromPath(path)
		if info.Mode()&os.ModeSymlink != 0 {
			target, err := fsys.Stat(path)
			switch {
			case err == nil && target.IsDir():
				skip(path, errSymlinkDir)
				return nil
			case kind == docutil.KindUnknown:
				// Broken links to non-candidates are not worth a warning.
				return nil
			case err != nil:
				skip(path, err)
				return nil
			}
			info = target
		}

		if kind == docutil.KindUnknown || !info.Mode().IsRegular() {
			return nil
		}

		jobs = append(jobs, Job{
			Path: path,
			Name: filepath.Base(path),
			Kind: kind,
			Size: info.Size(),
		})
		return nil
	})

	sort.Slice(jobs, func(i, j int) bool { return jobs[i].Path < jobs[j].Path })
	return jobs, skipped
}

func send(updates chan<- ProgressUpdate, u ProgressUpdate) {
	if updates != nil {
		updates <- u
	}
}
