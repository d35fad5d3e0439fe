package harvest

import (
	"context"
	"sync"

	"cin7export/internal/logger"
	"cin7export/internal/window"
)

// harvestJob assigns one account harvester to a worker.
type harvestJob struct {
	harvester *Harvester
	index     int
}

// HarvestAll runs one harvester per tenant account on a fixed-size worker
// pool and waits for all of them. Every account is filtered against the same
// window. One account's failure never affects another's result; per-account
// record order is preserved and results come back in harvester order.
func HarvestAll(ctx context.Context, harvesters []*Harvester, win window.Window, numWorkers int) []Result {
	log := logger.WithComponent("orchestrator")

	if numWorkers <= 0 || numWorkers > len(harvesters) {
		numWorkers = len(harvesters)
	}

	log.Info().
		Int("accounts", len(harvesters)).
		Int("workers", numWorkers).
		Time("window_start", win.Start).
		Time("window_end", win.End).
		Msg("Starting harvest across accounts")

	jobs := make(chan harvestJob, len(harvesters))
	results := make([]Result, len(harvesters))

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			for job := range jobs {
				log.Debug().
					Int("worker", workerID).
					Str("account", job.harvester.fetcher.Account()).
					Msg("Worker harvesting account")

				results[job.index] = job.harvester.Run(ctx, win)
			}
		}(w)
	}

	for i, harvester := range harvesters {
		jobs <- harvestJob{harvester: harvester, index: i}
	}
	close(jobs)

	wg.Wait()

	failed := 0
	total := 0
	for _, result := range results {
		total += len(result.Records)
		if result.Err != nil {
			failed++
		}
	}
	log.Info().
		Int("records", total).
		Int("accounts", len(results)).
		Int("failed_accounts", failed).
		Msg("Harvest completed")

	return results
}

// Merge concatenates per-account records into the final report set. Order
// within each account is preserved; partial results from failed accounts are
// included.
func Merge(results []Result) []FlatRecord {
	var records []FlatRecord
	for _, result := range results {
		records = append(records, result.Records...)
	}
	return records
}
