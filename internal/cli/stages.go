package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/plannerkit/pkg/canvas"
	"github.com/matzehuels/plannerkit/pkg/observability"
)

// stageHooks mirrors pipeline progress into a spinner and forwards every
// event to the hooks that were registered before it.
type stageHooks struct {
	next    observability.PipelineHooks
	spinner *Spinner
}

// followStages registers stageHooks for s and returns a func restoring the
// previous pipeline hooks.
func followStages(s *Spinner) (restore func()) {
	prev := observability.Pipeline()
	observability.SetPipelineHooks(stageHooks{next: prev, spinner: s})
	return func() { observability.SetPipelineHooks(prev) }
}

func (h stageHooks) OnStyleStart(ctx context.Context, prompt string) {
	if prompt == "" {
		h.spinner.SetMessage("Dreaming up a surprise style")
	} else {
		h.spinner.SetMessage("Designing style")
	}
	h.next.OnStyleStart(ctx, prompt)
}

func (h stageHooks) OnStyleComplete(ctx context.Context, source string, d time.Duration, err error) {
	h.next.OnStyleComplete(ctx, source, d, err)
}

func (h stageHooks) OnRenderStart(ctx context.Context, size string, pages int) {
	label := size
	if p, err := canvas.ParsePageSize(size); err == nil {
		label = p.Label()
	}
	h.spinner.SetMessage(fmt.Sprintf("Rendering %d %s page(s)", pages, label))
	h.next.OnRenderStart(ctx, size, pages)
}

func (h stageHooks) OnRenderComplete(ctx context.Context, size string, d time.Duration, err error) {
	if err == nil {
		h.spinner.SetMessage("Writing PDF and preview")
	}
	h.next.OnRenderComplete(ctx, size, d, err)
}

func (h stageHooks) OnSaveComplete(ctx context.Context, size string, files int, d time.Duration, err error) {
	h.next.OnSaveComplete(ctx, size, files, d, err)
}
