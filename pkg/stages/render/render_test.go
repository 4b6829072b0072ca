package render

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/user/imageplaceholder/pkg/adapters/logger"
	"github.com/user/imageplaceholder/pkg/mocks"
	"github.com/user/imageplaceholder/pkg/pipeline"
	"github.com/user/imageplaceholder/pkg/placeholder"
)

func newTestStage(workers int) (*Stage, *mocks.Renderer) {
	backend := &mocks.Renderer{}
	renderer := placeholder.New(backend, logger.NewNoop())
	return NewStage(renderer, logger.NewNoop(), workers), backend
}

func makeJobs(n int) []pipeline.Job {
	jobs := make([]pipeline.Job, n)
	for i := range jobs {
		size := placeholder.Size{Width: float64(50 + i), Height: float64(60 + i)}
		jobs[i] = pipeline.Job{
			Name:    fmt.Sprintf("job-%02d", i),
			Request: placeholder.Request{Size: size},
		}
	}
	return jobs
}

func TestStage_Execute(t *testing.T) {
	stage, backend := newTestStage(4)
	jobs := makeJobs(12)

	result, err := stage.Execute(context.Background(), pipeline.RenderInput{Jobs: jobs})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Items) != len(jobs) {
		t.Fatalf("expected %d items, got %d", len(jobs), len(result.Items))
	}

	// Check items are in job order
	for i, item := range result.Items {
		if item.Name != jobs[i].Name {
			t.Errorf("item %d: expected name %s, got %s", i, jobs[i].Name, item.Name)
		}
		if item.Image == nil {
			t.Fatalf("item %d: image is nil", i)
		}
		b := item.Image.Bounds()
		if b.Dx() != 50+i || b.Dy() != 60+i {
			t.Errorf("item %d: expected %dx%d, got %dx%d", i, 50+i, 60+i, b.Dx(), b.Dy())
		}
		if item.Theme != "gray" {
			t.Errorf("item %d: expected default gray theme, got %s", i, item.Theme)
		}
		if item.Layout.Caption != placeholder.DefaultText(jobs[i].Request.Size) {
			t.Errorf("item %d: unexpected caption %q", i, item.Layout.Caption)
		}
	}

	if len(backend.Canvases) != len(jobs) {
		t.Errorf("expected %d canvases, got %d", len(jobs), len(backend.Canvases))
	}
}

func TestStage_Execute_ThemeName(t *testing.T) {
	stage, _ := newTestStage(1)
	theme := placeholder.Lava
	jobs := []pipeline.Job{{
		Name:    "lava",
		Request: placeholder.Request{Size: placeholder.Size{Width: 100, Height: 100}, Theme: &theme},
	}}

	result, err := stage.Execute(context.Background(), pipeline.RenderInput{Jobs: jobs})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Items[0].Theme != "lava" {
		t.Errorf("expected lava, got %s", result.Items[0].Theme)
	}
}

func TestStage_Execute_EmptyJobs(t *testing.T) {
	stage, _ := newTestStage(2)

	result, err := stage.Execute(context.Background(), pipeline.RenderInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Items == nil || len(result.Items) != 0 {
		t.Errorf("expected empty non-nil items, got %v", result.Items)
	}
}

func TestStage_Execute_Cancelled(t *testing.T) {
	stage, _ := newTestStage(2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stage.Execute(ctx, pipeline.RenderInput{Jobs: makeJobs(8)})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestNewStage_DefaultWorkers(t *testing.T) {
	stage, _ := newTestStage(0)
	if stage.numWorkers <= 0 {
		t.Errorf("expected positive worker count, got %d", stage.numWorkers)
	}
}
