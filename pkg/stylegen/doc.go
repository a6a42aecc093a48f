// Package stylegen produces raw planner styles from free-text prompts.
//
// Every source implements [Generator]. The pipeline only sees that
// interface, so an AI backend, a fixed preset and a cached wrapper are
// interchangeable:
//
//	ai, err := stylegen.NewOpenAI(apiKey)
//	gen := stylegen.NewFallback(
//	    stylegen.NewCached(ai, c, stylegen.WithTTL(24*time.Hour)),
//	    stylegen.NewStatic("default", style.DefaultBundle.Raw()),
//	)
//	raw, err := gen.Generate(ctx, "cozy autumn, warm browns")
//
// Generators return unvalidated [style.Raw] values. Resolution into a
// renderable descriptor (and all per-field defaulting) happens in package
// style.
package stylegen
