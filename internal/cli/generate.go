package cli

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/plannerkit/pkg/errors"
	"github.com/matzehuels/plannerkit/pkg/pipeline"
	"github.com/matzehuels/plannerkit/pkg/presets"
	"github.com/matzehuels/plannerkit/pkg/style"
	"github.com/matzehuels/plannerkit/pkg/stylegen"
)

type generateOpts struct {
	styleFile string
	preset    string
	pick      bool
	variant   string
	sizes     []string
	pages     []string
	out       string
	noCache   bool
	json      bool
}

func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate [prompt...]",
		Short: "Design a planner bundle and write PDFs and previews",
		Long: `Generate asks the configured AI model for a style matching the prompt,
renders every planner page and writes one PDF and one PNG preview per page
size. Without a prompt the model is asked to surprise you.

Use --preset or --pick to render a built-in style, or --style to render a
style JSON file, without calling the model.`,
		Example: `  plannerkit generate "cozy autumn, warm browns, little leaves"
  plannerkit generate --preset boho --size a4
  plannerkit generate --pick --pages cover,weekly
  plannerkit generate --style mystyle.json --variant single`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), strings.Join(args, " "), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.styleFile, "style", "", "render the style in this JSON file")
	f.StringVar(&opts.preset, "preset", "", "render a built-in preset ("+strings.Join(presets.Names(), ", ")+")")
	f.BoolVar(&opts.pick, "pick", false, "choose a preset interactively")
	f.StringVar(&opts.variant, "variant", "", "force bundle or single (default: detect from the style)")
	f.StringSliceVar(&opts.sizes, "size", nil, "page sizes: a4, us_letter (default from config)")
	f.StringSliceVar(&opts.pages, "pages", nil, "bundle pages to include (default all six)")
	f.StringVarP(&opts.out, "out", "o", "", "output directory (default from config)")
	f.BoolVar(&opts.noCache, "no-cache", false, "do not read or write the style cache")
	f.BoolVar(&opts.json, "json", false, "print the result as JSON")
	cmd.MarkFlagsMutuallyExclusive("style", "preset", "pick")

	_ = cmd.RegisterFlagCompletionFunc("preset", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return presets.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("size", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return pipeline.DefaultSizes, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, prompt string, opts generateOpts) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	variant := style.VariantBundle
	if opts.variant != "" {
		if variant, err = style.ParseVariant(opts.variant); err != nil {
			return err
		}
	}

	if opts.pick {
		name, err := pickPreset()
		if err != nil {
			return err
		}
		if name == "" {
			printInfo("No preset selected")
			return nil
		}
		opts.preset = name
	}

	var gen stylegen.Generator
	if opts.preset != "" {
		p, err := presets.Get(opts.preset)
		if err != nil {
			return err
		}
		gen = p.Generator()
	}

	var inline style.Raw
	if opts.styleFile != "" {
		if inline, err = readStyleFile(opts.styleFile); err != nil {
			return err
		}
	}

	comp, err := c.wire(ctx, wireOpts{noCache: opts.noCache, outDir: opts.out, generator: gen, variant: variant})
	if err != nil {
		return err
	}
	defer comp.Close()

	sizes := opts.sizes
	if len(sizes) == 0 {
		sizes = cfg.Output.PageSizes
	}
	req := pipeline.Options{
		Prompt:  prompt,
		Style:   inline,
		Variant: opts.variant,
		Sizes:   sizes,
		Pages:   opts.pages,
	}

	spinner := newSpinner(ctx, "Starting")
	restore := followStages(spinner)
	spinner.Start()
	result, err := comp.runner.Execute(ctx, req)
	restore()
	if err != nil {
		spinner.StopWithError("%s", perrors.UserMessage(err))
		return err
	}
	spinner.StopWithSuccess("%s %s", StyleTitle.Render(resultHeading(result)), StyleDim.Render("("+result.Source+")"))

	if opts.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	printResult(comp.writer.Dir(), result)
	printNewline()
	printNextStep("Browse past generations", appName+" history")
	return nil
}

func readStyleFile(path string) (style.Raw, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidPath, err, "read style file")
	}
	return style.Decode(data)
}

// resultHeading picks the most descriptive name the style carries.
func resultHeading(r *pipeline.Result) string {
	for _, key := range []string{style.KeyCollectionName, style.KeyTitle, style.KeyStyleName} {
		if s, ok := r.Style[key].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return "Planner"
}

func printResult(dir string, r *pipeline.Result) {
	if name, ok := r.Style[style.KeyStyleName].(string); ok {
		printKeyValue("Style", name+"  "+swatches(styleColors(r.Style)...))
	}
	printKeyValue("Variant", r.Variant)
	if r.Prompt != "" {
		printKeyValue("Prompt", r.Prompt)
	}
	if n := len(r.Diagnostics); n > 0 {
		printDetail("%d style field(s) replaced by defaults, run with -v for details", n)
	}
	for _, a := range r.Artifacts {
		printInfo("%s", StyleHighlight.Render(a.Size))
		printFile(filepath.Join(dir, a.PDF))
		printFile(filepath.Join(dir, a.Preview))
		for _, p := range a.Pages {
			printFile(filepath.Join(dir, p))
		}
	}
	printStats(r.Stats)
}

func styleColors(raw style.Raw) []string {
	var out []string
	for _, key := range []string{style.KeyBackgroundColor, style.KeyAccentColor, style.KeyAccentColor2, style.KeyTextColor} {
		if s, ok := raw[key].(string); ok {
			out = append(out, s)
		}
	}
	return out
}
