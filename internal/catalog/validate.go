package catalog

import (
	"fmt"
	"strings"
)

// validateEntries performs all structural checks on the given operation table.
// Returns a combined error describing all problems found, or nil if valid.
func validateEntries(entries []entry) error {
	var errs []string

	known := make(map[Category]bool)
	for _, c := range AllCategories() {
		known[c] = true
	}

	seen := make(map[Operation]bool, len(entries))
	populated := make(map[Category]bool)

	for _, e := range entries {
		if e.Op == "" {
			errs = append(errs, "empty operation key")
			continue
		}
		if seen[e.Op] {
			errs = append(errs, fmt.Sprintf("duplicate operation: %q", e.Op))
		}
		seen[e.Op] = true

		if !known[e.Meta.Category] {
			errs = append(errs, fmt.Sprintf("operation %q has unknown category %q", e.Op, e.Meta.Category))
		}
		populated[e.Meta.Category] = true

		// Grades must be known labels in ascending order
		if len(e.Meta.Grades) == 0 {
			errs = append(errs, fmt.Sprintf("operation %q has no grades", e.Op))
		}
		prev := -1
		for _, g := range e.Meta.Grades {
			idx := gradeIndex(g)
			if idx < 0 {
				errs = append(errs, fmt.Sprintf("operation %q has unknown grade %q", e.Op, g))
				continue
			}
			if idx <= prev {
				errs = append(errs, fmt.Sprintf("operation %q grades are not strictly ascending", e.Op))
			}
			prev = idx
		}

		for _, t := range e.Meta.Tags {
			if strings.TrimSpace(t) == "" {
				errs = append(errs, fmt.Sprintf("operation %q has an empty tag", e.Op))
			}
		}
	}

	// Check all declared categories are populated
	for _, c := range AllCategories() {
		if !populated[c] {
			errs = append(errs, fmt.Sprintf("category %q has no operations", c))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("operation catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
