package pipeline_test

import (
	"context"
	"fmt"
	"os"

	"github.com/matzehuels/plannerkit/pkg/pipeline"
	"github.com/matzehuels/plannerkit/pkg/sink"
	"github.com/matzehuels/plannerkit/pkg/style"
	"github.com/matzehuels/plannerkit/pkg/stylegen"
)

func ExampleRunner_Execute() {
	dir, err := os.MkdirTemp("", "plannerkit-example")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	defer os.RemoveAll(dir)

	gen := stylegen.NewStatic("example", style.DefaultBundle.Raw())
	runner := pipeline.NewRunner(gen, sink.NewWriter(dir))

	result, err := runner.Execute(context.Background(), pipeline.Options{
		Prompt: "soft pastel",
		Sizes:  []string{"us_letter"},
		Pages:  []string{"cover", "notes"},
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(result.Source, result.Variant, result.Stats.Pages)
	for _, a := range result.Artifacts {
		fmt.Println(a.Size)
	}
	// Output:
	// example bundle 2
	// us_letter
}
