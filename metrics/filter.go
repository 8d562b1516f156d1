package metrics

import "strings"

// GlobalSetupSuffix identifies fixture-only setup files.
const GlobalSetupSuffix = "global.setup.ts"

// FilterOptions ...
type FilterOptions struct {
	ExcludeGlobalSetup bool
	ExcludeSkipped     bool
}

// IsGlobalSetup reports whether the item comes from a global setup file, either by its
// resolved file path or by a title on its path.
func IsGlobalSetup(item Item) bool {
	if strings.HasSuffix(strings.ToLower(item.File), GlobalSetupSuffix) {
		return true
	}
	titles := strings.ToLower(strings.Join(item.TitlePath, " / "))
	return strings.Contains(titles, GlobalSetupSuffix)
}

// IsSkipped ...
func IsSkipped(item Item) bool {
	return strings.ToLower(item.Test.RawOutcome()) == "skipped"
}

// Filter returns the items that survive the enabled predicates. The input is not modified.
func Filter(items []Item, opts FilterOptions) []Item {
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if opts.ExcludeGlobalSetup && IsGlobalSetup(item) {
			continue
		}
		if opts.ExcludeSkipped && IsSkipped(item) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}
