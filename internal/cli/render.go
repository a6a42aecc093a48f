package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plannerkit/pkg/canvas"
	perrors "github.com/matzehuels/plannerkit/pkg/errors"
	"github.com/matzehuels/plannerkit/pkg/pages"
	"github.com/matzehuels/plannerkit/pkg/pipeline"
	"github.com/matzehuels/plannerkit/pkg/presets"
	"github.com/matzehuels/plannerkit/pkg/sink"
	"github.com/matzehuels/plannerkit/pkg/style"
	"github.com/matzehuels/plannerkit/pkg/stylegen"
)

type renderOpts struct {
	size      string
	output    string
	preset    string
	styleFile string
	noCache   bool
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <page> [prompt...]",
		Short: "Render one page to a PNG",
		Long: `Render draws a single page (` + strings.Join(pages.KindNames(), ", ") + `)
at print resolution and writes it as a PNG. Nothing is added to the history.`,
		Example: `  plannerkit render weekly --preset retro
  plannerkit render single "minimal black and white" -o week.png
  plannerkit render cover --style mystyle.json --size us_letter`,
		Args:      cobra.MinimumNArgs(1),
		ValidArgs: pages.KindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], strings.Join(args[1:], " "), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.size, "size", canvas.A4.String(), "page size: a4 or us_letter")
	f.StringVarP(&opts.output, "output", "o", "", "output file (default <page>_<size>.png)")
	f.StringVar(&opts.preset, "preset", "", "render a built-in preset")
	f.StringVar(&opts.styleFile, "style", "", "render the style in this JSON file")
	f.BoolVar(&opts.noCache, "no-cache", false, "do not read or write the style cache")
	cmd.MarkFlagsMutuallyExclusive("style", "preset")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, kindName, prompt string, opts renderOpts) error {
	kind, err := pages.ParseKind(kindName)
	if err != nil {
		return err
	}
	size, err := canvas.ParsePageSize(opts.size)
	if err != nil {
		return err
	}

	variant := style.VariantBundle
	if kind == pages.SinglePage {
		variant = style.VariantSingle
	}

	var gen stylegen.Generator
	if opts.preset != "" {
		p, err := presets.Get(opts.preset)
		if err != nil {
			return err
		}
		gen = p.Generator()
	}
	req := pipeline.Options{Prompt: prompt, Variant: variant.String()}
	if opts.styleFile != "" {
		if req.Style, err = readStyleFile(opts.styleFile); err != nil {
			return err
		}
	}

	comp, err := c.wire(ctx, wireOpts{noCache: opts.noCache, generator: gen, variant: variant})
	if err != nil {
		return err
	}
	defer comp.Close()

	spinner := newSpinner(ctx, "Starting")
	restore := followStages(spinner)
	spinner.Start()
	page, err := renderPage(ctx, comp.runner, &req, kind, size)
	restore()
	if err != nil {
		spinner.StopWithError("%s", perrors.UserMessage(err))
		return err
	}
	spinner.Stop()

	out := opts.output
	if out == "" {
		out = fmt.Sprintf("%s_%s.png", kind, size)
	}
	if err := writePNG(out, page); err != nil {
		return err
	}
	printSuccess("Rendered %s page", StyleHighlight.Render(kind.String()))
	printFile(out)
	return nil
}

// renderPage runs the style stage and draws one page with the runner's
// renderer.
func renderPage(ctx context.Context, r *pipeline.Runner, req *pipeline.Options, kind pages.Kind, size canvas.PageSize) (*pages.Page, error) {
	var result pipeline.Result
	desc, err := r.Style(ctx, req, &result)
	if err != nil {
		return nil, err
	}
	switch d := desc.(type) {
	case style.Single:
		return r.Renderer.Single(d, size)
	case style.Bundle:
		return r.Renderer.Render(kind, d, size)
	default:
		return nil, perrors.New(perrors.ErrCodeInvalidStyle, "unsupported style descriptor %T", desc)
	}
}

func writePNG(path string, p *pages.Page) error {
	f, err := os.Create(path)
	if err != nil {
		return perrors.Wrap(perrors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := sink.EncodePNG(f, p); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return perrors.Wrap(perrors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
