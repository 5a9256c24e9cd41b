package ingest

import (
	"context"
	"log/slog"
	"sync"
)

// Job is one document URL to ingest.
type Job struct {
	URL string
}

// Result holds the outcome of ingesting one document. Failures are recorded
// per document instead of aborting the run.
type Result struct {
	URL          string   `json:"url"`
	Requirements []string `json:"requirements,omitempty"`
	Error        string   `json:"error,omitempty"`
	ErrorType    string   `json:"error_type,omitempty"`
}

// Run fetches and extracts requirements from each URL across a bounded
// worker pool. Results come back in input order.
func Run(ctx context.Context, logger *slog.Logger, urls []string, workerCount int) []Result {
	if workerCount < 1 {
		workerCount = 4
	}
	if workerCount > len(urls) {
		workerCount = len(urls)
	}

	logger.Info("Starting concurrent ingest phase", "url_count", len(urls), "workers", workerCount)

	type indexedJob struct {
		idx int
		job Job
	}
	type indexedResult struct {
		idx    int
		result Result
	}

	f := NewFetcher()

	var wg sync.WaitGroup
	jobs := make(chan indexedJob, len(urls))
	results := make(chan indexedResult, len(urls))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for job := range jobs {
				results <- indexedResult{idx: job.idx, result: ingestOne(ctx, id, logger, f, job.job.URL)}
			}
		}(w)
	}

	for i, rawURL := range urls {
		jobs <- indexedJob{idx: i, job: Job{URL: rawURL}}
	}
	close(jobs)

	wg.Wait()
	close(results)
	logger.Info("All ingest workers finished")

	ordered := make([]Result, len(urls))
	for r := range results {
		ordered[r.idx] = r.result
	}
	return ordered
}

func ingestOne(ctx context.Context, id int, logger *slog.Logger, f *Fetcher, rawURL string) Result {
	result := Result{URL: rawURL}

	logger.Info("Fetching document", "worker_id", id, "url", rawURL)
	html, err := f.GetHTML(ctx, rawURL)
	if err != nil {
		logger.Error("Error fetching document", "worker_id", id, "url", rawURL, "error", err)
		result.Error = err.Error()
		result.ErrorType = "fetch_error"
		return result
	}

	requirements, err := ExtractRequirements(html, rawURL)
	if err != nil {
		logger.Error("Error extracting requirements", "worker_id", id, "url", rawURL, "error", err)
		result.Error = err.Error()
		result.ErrorType = "extract_error"
		return result
	}

	logger.Info("Extracted requirements", "worker_id", id, "url", rawURL, "count", len(requirements))
	result.Requirements = requirements
	return result
}
