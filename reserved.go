package tagql

import (
	"fmt"
	"strings"
)

// Separator strings reserved by the tagging system. Tag display text must
// never contain any of them; ValidateTagValue is the enforcement point.
const (
	// LineageSeparator separates tag levels in the stored lineage encoding,
	// e.g. lineage="Earth\tNorth America\tMexico\tMexico City".
	LineageSeparator = "\t"

	// BreadcrumbSeparator separates tag levels in search indexes and
	// frontend display, e.g. tags_level3="Earth > North America > Mexico".
	BreadcrumbSeparator = " > "

	// TagsCSVSeparator separates multiple tags from the same taxonomy in
	// CSV exports, e.g. languages-v1: en;es;fr.
	TagsCSVSeparator = ";"
)

// ReservedTagChars lists every separator reserved by the tagging system, in
// the order: lineage, breadcrumb, CSV.
var ReservedTagChars = []string{
	LineageSeparator,
	BreadcrumbSeparator,
	TagsCSVSeparator,
}

// ValidateTagValue checks that a tag's display text contains none of the
// reserved separator sequences.
func ValidateTagValue(value string) error {
	for _, reserved := range ReservedTagChars {
		if strings.Contains(value, reserved) {
			return fmt.Errorf("tag value %q contains reserved sequence %q", value, reserved)
		}
	}
	return nil
}
