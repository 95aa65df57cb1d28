package tagql

import (
	"fmt"
	"strings"
)

// Helpers for the hierarchical lineage encoding used by the tagging system.
// A lineage is the tab-joined path of tag values from the root to a tag,
// e.g. "Earth\tNorth America\tMexico\tMexico City".

// JoinLineage encodes a path of tag values as a lineage string. Every level
// must pass ValidateTagValue.
func JoinLineage(levels ...string) (string, error) {
	if len(levels) == 0 {
		return "", fmt.Errorf("lineage requires at least one level")
	}
	for _, level := range levels {
		if level == "" {
			return "", fmt.Errorf("lineage levels must not be empty")
		}
		if err := ValidateTagValue(level); err != nil {
			return "", err
		}
	}
	return strings.Join(levels, LineageSeparator), nil
}

// SplitLineage decodes a lineage string into its tag values, root first.
func SplitLineage(lineage string) []string {
	if lineage == "" {
		return nil
	}
	return strings.Split(lineage, LineageSeparator)
}

// Breadcrumb converts a lineage string to its display form,
// e.g. "Earth > North America > Mexico > Mexico City".
func Breadcrumb(lineage string) string {
	return strings.ReplaceAll(lineage, LineageSeparator, BreadcrumbSeparator)
}

// LineageDepth returns the number of levels encoded in a lineage string.
func LineageDepth(lineage string) int {
	if lineage == "" {
		return 0
	}
	return strings.Count(lineage, LineageSeparator) + 1
}
