// Package render implements the concurrent placeholder rendering stage.
package render

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/user/imageplaceholder/pkg/pipeline"
	"github.com/user/imageplaceholder/pkg/placeholder"
	"github.com/user/imageplaceholder/pkg/ports"
)

// Stage renders a batch of jobs with a pool of workers.
type Stage struct {
	renderer   *placeholder.Renderer
	logger     ports.Logger
	numWorkers int
}

// NewStage creates a new render stage. numWorkers <= 0 uses one worker per CPU.
func NewStage(renderer *placeholder.Renderer, logger ports.Logger, numWorkers int) *Stage {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &Stage{
		renderer:   renderer,
		logger:     logger.WithComponent("render"),
		numWorkers: numWorkers,
	}
}

// Execute renders all jobs. Results are returned in job order.
func (s *Stage) Execute(ctx context.Context, input pipeline.RenderInput) (pipeline.RenderResult, error) {
	if len(input.Jobs) == 0 {
		return pipeline.RenderResult{Items: []pipeline.Rendered{}}, nil
	}

	workers := s.numWorkers
	if workers > len(input.Jobs) {
		workers = len(input.Jobs)
	}
	s.logger.Debug("Rendering %d placeholders with %d workers", len(input.Jobs), workers)

	result, err := s.executeParallel(ctx, input.Jobs, workers)
	if err != nil {
		return result, err
	}

	s.logger.Debug("Rendering completed")
	return result, nil
}

// indexedItem holds a rendered item with its original index for sorting.
type indexedItem struct {
	index int
	item  pipeline.Rendered
}

func (s *Stage) executeParallel(ctx context.Context, jobs []pipeline.Job, workers int) (pipeline.RenderResult, error) {
	indexes := make(chan int, len(jobs))
	results := make(chan indexedItem, len(jobs))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go s.worker(ctx, &wg, jobs, indexes, results)
	}

	for i := range jobs {
		indexes <- i
	}
	close(indexes)

	go func() {
		wg.Wait()
		close(results)
	}()

	items := make([]indexedItem, 0, len(jobs))
	for result := range results {
		items = append(items, result)
	}

	if err := ctx.Err(); err != nil {
		return pipeline.RenderResult{}, fmt.Errorf("render cancelled after %d of %d jobs: %w", len(items), len(jobs), err)
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].index < items[j].index
	})

	rendered := make([]pipeline.Rendered, len(items))
	for i, it := range items {
		rendered[i] = it.item
	}
	return pipeline.RenderResult{Items: rendered}, nil
}

func (s *Stage) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs []pipeline.Job,
	indexes <-chan int,
	results chan<- indexedItem,
) {
	defer wg.Done()

	for idx := range indexes {
		select {
		case <-ctx.Done():
			return
		default:
		}

		job := jobs[idx]
		img, layout := s.renderer.RenderWithLayout(job.Request)
		results <- indexedItem{
			index: idx,
			item: pipeline.Rendered{
				Name:   job.Name,
				Theme:  themeName(job.Request),
				Image:  img,
				Layout: layout,
			},
		}
	}
}

func themeName(req placeholder.Request) string {
	if req.Theme == nil {
		return placeholder.Gray.Name
	}
	return req.Theme.Name
}
