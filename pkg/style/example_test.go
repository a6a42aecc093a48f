package style_test

import (
	"fmt"

	"github.com/matzehuels/plannerkit/pkg/style"
)

func ExampleResolveBundle() {
	raw, _ := style.Decode([]byte(`{
		"style_name": "Boho",
		"accent_color": "pink",
		"background_color": "#f5ebe0",
		"weekly_sections": ["Mo", "Tu"]
	}`))

	b, diags := style.ResolveBundle(raw)
	fmt.Println(b.StyleName)
	fmt.Println(b.Background.Hex())
	fmt.Println(b.Accent == style.DefaultBundle.Accent)
	fmt.Println(len(b.WeeklySections))
	fmt.Println(diags.Has(style.InvalidColor, style.KeyAccentColor))
	// Output:
	// Boho
	// #F5EBE0
	// true
	// 7
	// true
}

func ExampleDetect() {
	single := style.Raw{"title": "My Week", "days": []any{"Mon", "Tue"}}
	bundle := style.Raw{"collection_name": "Autumn", "days": []any{"Mon"}}

	fmt.Println(style.Detect(single))
	fmt.Println(style.Detect(bundle))
	// Output:
	// single
	// bundle
}
