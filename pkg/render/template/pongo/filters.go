package pongo

import (
	"fmt"
	"math"
	"strings"

	"github.com/flosch/pongo2/v6"
)

func registerBuiltinFilters() {
	if !pongo2.FilterExists("trim") {
		_ = pongo2.RegisterFilter("trim", filterTrim)
	}
	if !pongo2.FilterExists("percent") {
		_ = pongo2.RegisterFilter("percent", filterPercent)
	}
}

func filterTrim(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(strings.TrimSpace(in.String())), nil
}

// filterPercent formats a number as a whole percentage, "67%".
func filterPercent(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	if !in.IsNumber() {
		return pongo2.AsValue(""), nil
	}
	return pongo2.AsValue(fmt.Sprintf("%d%%", int(math.Round(in.Float())))), nil
}
