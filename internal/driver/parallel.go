package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"tscheck/internal/diag"
	"tscheck/internal/project"
	"tscheck/internal/source"
)

// listTSFiles returns all *.ts files under dir, sorted for a
// deterministic result order.
func listTSFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".ts") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// CheckDir checks every *.ts file under dir in parallel. Results come
// back in path order regardless of completion order. When cache is
// non-nil, unchanged files are answered from it.
func CheckDir(ctx context.Context, dir string, cfg project.CheckConfig, cache *DiskCache) (*source.FileSet, []CheckFileResult, error) {
	files, err := listTSFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	fileIDs := make(map[string]source.FileID, len(files))
	loadErrors := make(map[string]error, len(files))
	for _, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[path] = err
			continue
		}
		fileIDs[path] = id
	}

	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Worker i owns results[i]; no mutex needed.
	results := make([]CheckFileResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr, failed := loadErrors[path]; failed {
				bag := diag.NewBag(1)
				bag.Add(diag.NewError(diag.SemaMalformedInput, source.Span{},
					"failed to load file: "+loadErr.Error()))
				results[i] = CheckFileResult{Path: path, Bag: bag}
				return nil
			}

			fileID := fileIDs[path]
			file := fileSet.Get(fileID)

			if cache != nil {
				if cached, ok := cache.Lookup(file.Hash, fileID); ok {
					results[i] = CheckFileResult{
						Path:   path,
						FileID: fileID,
						Bag:    cached,
						Cached: true,
					}
					return nil
				}
			}

			res := CheckFile(fileSet, fileID, cfg)
			results[i] = res

			if cache != nil {
				// Best effort: a failed write only costs a re-check.
				_ = cache.Store(file.Hash, res.Bag)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}
