package tagql_test

import (
	"testing"

	"github.com/tagforge/tagql"
)

func TestJoinLineage(t *testing.T) {
	lineage, err := tagql.JoinLineage("Earth", "North America", "Mexico", "Mexico City")
	if err != nil {
		t.Fatalf("JoinLineage failed: %v", err)
	}

	expected := "Earth\tNorth America\tMexico\tMexico City"
	if lineage != expected {
		t.Errorf("Expected %q, got %q", expected, lineage)
	}
}

func TestJoinLineage_EmptyPath(t *testing.T) {
	if _, err := tagql.JoinLineage(); err == nil {
		t.Fatal("Expected error for empty path")
	}
}

func TestJoinLineage_EmptyLevel(t *testing.T) {
	if _, err := tagql.JoinLineage("Earth", ""); err == nil {
		t.Fatal("Expected error for empty level")
	}
}

func TestJoinLineage_ReservedSequence(t *testing.T) {
	if _, err := tagql.JoinLineage("Earth", "en;es"); err == nil {
		t.Fatal("Expected error for level containing reserved sequence")
	}
}

func TestSplitLineage(t *testing.T) {
	levels := tagql.SplitLineage("Earth\tNorth America\tMexico")
	if len(levels) != 3 {
		t.Fatalf("Expected 3 levels, got %d", len(levels))
	}
	if levels[0] != "Earth" || levels[2] != "Mexico" {
		t.Errorf("Unexpected levels: %v", levels)
	}
}

func TestSplitLineage_Empty(t *testing.T) {
	if levels := tagql.SplitLineage(""); levels != nil {
		t.Errorf("Expected nil for empty lineage, got %v", levels)
	}
}

func TestBreadcrumb(t *testing.T) {
	crumb := tagql.Breadcrumb("Earth\tNorth America\tMexico")
	expected := "Earth > North America > Mexico"
	if crumb != expected {
		t.Errorf("Expected %q, got %q", expected, crumb)
	}
}

func TestLineageDepth(t *testing.T) {
	cases := map[string]int{
		"":                            0,
		"Earth":                       1,
		"Earth\tNorth America":        2,
		"Earth\tNorth America\tMexico": 3,
	}
	for lineage, want := range cases {
		if got := tagql.LineageDepth(lineage); got != want {
			t.Errorf("LineageDepth(%q): expected %d, got %d", lineage, want, got)
		}
	}
}
