package main

import (
	"fmt"
	"strings"

	"github.com/dhruvmanila/remove-print-statements"
	log "github.com/sirupsen/logrus"
)

// Report accumulates counts over all processed files and turns them into
// the closing summary line and the process exit code.
type Report struct {
	DryRun  bool
	Verbose bool

	// Total number of transformed files.
	FileCount int

	// Total number of print statements in all files combined.
	PrintCount int

	// Total number of files where a failure occurred, whether reading,
	// transforming or writing back.
	FailureCount int
}

// Add folds one file result into the report.
func (r *Report) Add(res result) {
	if res.kind != failureNone {
		r.FailureCount++
		return
	}

	if res.transformed() {
		r.FileCount++
		r.PrintCount += len(res.removed)
	}
}

// ReturnCode is the exit code matching the counts: any failure wins, then a
// dry run that found work, then plain success.
func (r *Report) ReturnCode() int {
	if r.FailureCount > 0 {
		return returnError
	}
	if r.FileCount > 0 && r.DryRun {
		return returnChanged
	}
	return returnOk
}

// String returns the one-line summary of the report: the number of files
// changed, the number of print statements removed and the number of files
// that failed, with the wording adjusted under a dry run.
func (r *Report) String() string {
	transformed := "transformed"
	removed := "removed"
	failed := "failed to transform"
	if r.DryRun {
		transformed = "would be transformed"
		removed = "would be removed"
		failed = "would fail to transform"
	}

	var parts []string
	if r.FileCount > 0 {
		parts = append(parts, fmt.Sprintf("%d file%s %s", r.FileCount, plural(r.FileCount), transformed))
	}
	if r.PrintCount > 0 {
		parts = append(parts, fmt.Sprintf("%d print statement%s %s", r.PrintCount, plural(r.PrintCount), removed))
	}
	if r.FailureCount > 0 {
		parts = append(parts, fmt.Sprintf("%d file%s %s", r.FailureCount, plural(r.FailureCount), failed))
	}

	summary := strings.Join(parts, ", ")
	// In verbose mode the summary moves below the listed statements.
	if r.Verbose && r.FileCount > 0 {
		return "\n" + summary
	}
	return summary
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}

// formatVerbose renders the removed calls of one file, one line each, in the
// path:line:column: text form editors understand.
func formatVerbose(path string, removed []rmprint.RemovedCall) string {
	var b strings.Builder
	for _, call := range removed {
		fmt.Fprintf(&b, "%s:%d:%d: %s\n", path, call.Line, call.Col, call.Text)
	}
	return b.String()
}

// reportResults prints per-file output in input order plus the closing
// summary and returns the exit code for the whole run.
func reportResults(config *Config, results []result) int {
	report := &Report{DryRun: config.DryRun, Verbose: config.Verbose}

	for _, res := range results {
		report.Add(res)

		switch res.kind {
		case failureRead:
			log.WithField("file", res.path).Errorf("could not read file, skipping: %v", res.err)
		case failureParse:
			log.WithField("file", res.path).Errorf("failed to transform the file: %v", res.err)
		case failureWrite:
			log.WithField("file", res.path).Errorf("failed to write back the file: %v", res.err)
		default:
			if config.Verbose && len(res.removed) > 0 {
				fmt.Print(formatVerbose(res.path, res.removed))
			}
		}
	}

	if report.FileCount == 0 && report.FailureCount == 0 {
		fmt.Println("No print statements found. All good to go.")
		return returnOk
	}

	fmt.Println(report)
	return report.ReturnCode()
}
