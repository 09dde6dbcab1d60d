package main

import (
	"runtime"

	"github.com/dhruvmanila/remove-print-statements"
	"github.com/dhruvmanila/remove-print-statements/osutil"
	"golang.org/x/sync/errgroup"
)

// failureKind tells apart where processing a file went wrong.
type failureKind int

const (
	failureNone failureKind = iota
	failureRead
	failureParse
	failureWrite
)

// result is the outcome of one file. Workers print nothing themselves; the
// driver reports all results in input order once every file is done.
type result struct {
	path    string
	removed []rmprint.RemovedCall
	kind    failureKind
	err     error
}

func (r result) transformed() bool {
	return r.kind == failureNone && len(r.removed) > 0
}

// processFiles runs the remover over every file, at most Jobs files at a
// time. The returned slice is indexed by input position.
func processFiles(config *Config, files []string) []result {
	jobs := config.Jobs
	if jobs < 1 {
		jobs = runtime.NumCPU()
	}

	remover := rmprint.New(config.Targets)
	results := make([]result, len(files))

	var g errgroup.Group
	g.SetLimit(jobs)

	for i, path := range files {
		i, path := i, path

		g.Go(func() error {
			results[i] = processFile(remover, path, config)
			return nil
		})
	}

	// Workers record failures per file instead of returning errors.
	_ = g.Wait()

	return results
}

func processFile(remover *rmprint.Remover, path string, config *Config) result {
	src, err := rmprint.LoadFile(path)
	if err != nil {
		return result{path: path, kind: failureRead, err: err}
	}

	out, removed, err := remover.Process(path, src)
	if err != nil {
		return result{path: path, kind: failureParse, err: err}
	}

	if len(removed) == 0 || config.DryRun {
		return result{path: path, removed: removed}
	}

	if config.Backup {
		if err := osutil.CopyFile(FS, path, path+".orig"); err != nil {
			return result{path: path, kind: failureWrite, err: err}
		}
	}

	if err := osutil.WriteFile(FS, path, out); err != nil {
		return result{path: path, kind: failureWrite, err: err}
	}

	return result{path: path, removed: removed}
}
