package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/gloss-flow/internal/media"
)

// ProcessAll runs Process for each supported file in dir, at most
// performance.max_concurrent at a time. Every file is attempted; the
// failures are joined into the returned error.
func (p *implProcessor) ProcessAll(ctx context.Context, dir string) error {
	files, err := discoverInputs(dir)
	if err != nil {
		return fmt.Errorf("discover inputs: %w", err)
	}
	if len(files) == 0 {
		p.logger.Info(ctx, "No supported files found in %s", dir)
		return nil
	}

	p.logger.Info(ctx, "Found %d files to process", len(files))

	var (
		g       errgroup.Group
		mu      sync.Mutex
		errs    []error
		started int
	)
	g.SetLimit(max(p.cfg.Performance.MaxConcurrent, 1))

	for _, path := range files {
		if ctx.Err() != nil {
			break
		}
		started++
		g.Go(func() error {
			if err := p.Process(ctx, path); err != nil {
				p.logger.Error(ctx, "Failed to process %s: %v", path, err)
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", filepath.Base(path), err))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	p.logger.Info(ctx, "Batch complete: %d success, %d failed, %d skipped", started-len(errs), len(errs), len(files)-started)
	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func discoverInputs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !media.IsSupported(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}

	sort.Strings(files)
	return files, nil
}
