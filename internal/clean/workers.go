package clean

import (
	"log/slog"
	"sync"

	"github.com/corpustools/ocrclean/models"
	"github.com/corpustools/ocrclean/pkg/cleanup"
	"github.com/corpustools/ocrclean/pkg/langid"
	"github.com/corpustools/ocrclean/pkg/rules"
)

// Job is one work to clean.
type Job struct {
	Work models.Work
}

// Result holds the outcome of cleaning one work.
type Result struct {
	WorkID   string
	Language string
	Pages    []models.CleanedPage
}

// run fans the works out over a worker pool. Each work is cleaned in a
// single job, so header detection always completes before any of that
// work's pages is stripped; across works there is no shared mutable state
// beyond the read-only rule registry.
func run(logger *slog.Logger, works []models.Work, reg *rules.Registry, detector *langid.Detector, workerCount int, opts cleanup.Options) []Result {
	if workerCount < 1 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	jobs := make(chan Job, len(works))
	results := make(chan Result, len(works))

	for w := 1; w <= workerCount; w++ {
		wg.Add(1)
		go worker(w, logger, reg, detector, &wg, jobs, results, opts)
	}

	for _, work := range works {
		jobs <- Job{Work: work}
	}
	close(jobs)

	wg.Wait()
	close(results)

	// Re-establish input order; workers finish in arbitrary order.
	byID := make(map[string]Result, len(works))
	for result := range results {
		byID[result.WorkID] = result
	}
	ordered := make([]Result, 0, len(works))
	for _, work := range works {
		ordered = append(ordered, byID[work.ID])
	}
	return ordered
}

func worker(id int, logger *slog.Logger, reg *rules.Registry, detector *langid.Detector, wg *sync.WaitGroup, jobs <-chan Job, results chan<- Result, opts cleanup.Options) {
	defer wg.Done()
	for job := range jobs {
		logger.Info("Cleaning work", "worker_id", id, "work_id", job.Work.ID, "pages", len(job.Work.Pages))

		lang, _ := detector.DetectWork(job.Work.Pages)
		if lang != "" && lang != "en" {
			logger.Warn("Work is not dominantly English; f/s tables may misfire",
				"work_id", job.Work.ID, "language", lang)
		}

		cleaned := cleanup.CleanPages(job.Work.Pages, reg, opts)

		results <- Result{
			WorkID:   job.Work.ID,
			Language: lang,
			Pages:    cleaned,
		}
	}
}
