package pages

import (
	"strings"

	perrors "github.com/matzehuels/plannerkit/pkg/errors"
)

// Kind identifies a page archetype.
type Kind int

const (
	Cover Kind = iota
	Daily
	Weekly
	Monthly
	Yearly
	Notes
	// SinglePage is the standalone weekly planner. It is not part of a
	// bundle.
	SinglePage
)

// BundleOrder is the fixed page order of a planner bundle.
var BundleOrder = []Kind{Cover, Daily, Weekly, Monthly, Yearly, Notes}

var kindNames = map[Kind]string{
	Cover:      "cover",
	Daily:      "daily",
	Weekly:     "weekly",
	Monthly:    "monthly",
	Yearly:     "yearly",
	Notes:      "notes",
	SinglePage: "single",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind resolves a page kind by name, ignoring case.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, perrors.New(perrors.ErrCodeInvalidInput, "unknown page kind %q", s)
}

// KindNames returns the names of every kind in bundle order followed by
// the single page.
func KindNames() []string {
	names := make([]string, 0, len(kindNames))
	for _, k := range BundleOrder {
		names = append(names, k.String())
	}
	return append(names, SinglePage.String())
}
