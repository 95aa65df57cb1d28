package tagql_test

import (
	"testing"

	"github.com/tagforge/tagql"
	"github.com/tagforge/tagql/postgres"
	"github.com/zoobzio/dbml"
)

func createTestInstance(t *testing.T) *tagql.TagQL {
	t.Helper()

	project := dbml.NewProject("tagforge")

	taxonomies := dbml.NewTable("taxonomies")
	taxonomies.AddColumn(dbml.NewColumn("id", "bigint"))
	taxonomies.AddColumn(dbml.NewColumn("slug", "varchar"))
	project.AddTable(taxonomies)

	tags := dbml.NewTable("tags")
	tags.AddColumn(dbml.NewColumn("id", "bigint"))
	tags.AddColumn(dbml.NewColumn("taxonomy_id", "bigint"))
	tags.AddColumn(dbml.NewColumn("value", "varchar"))
	tags.AddColumn(dbml.NewColumn("parent_value", "varchar"))
	tags.AddColumn(dbml.NewColumn("lang", "varchar"))
	project.AddTable(tags)

	instance, err := tagql.NewFromDBML(project)
	if err != nil {
		t.Fatalf("Failed to create test instance: %v", err)
	}

	return instance
}

func TestNewFromDBML(t *testing.T) {
	instance := createTestInstance(t)
	if instance == nil {
		t.Fatal("Expected instance, got nil")
	}
}

func TestNewFromDBML_NilProject(t *testing.T) {
	if _, err := tagql.NewFromDBML(nil); err == nil {
		t.Fatal("Expected error for nil project")
	}
}

func TestInstanceTryF_ValidField(t *testing.T) {
	instance := createTestInstance(t)

	field, err := instance.TryF("parent_value")
	if err != nil {
		t.Fatalf("Expected no error for valid field, got: %v", err)
	}
	if field.Name != "parent_value" {
		t.Errorf("Expected field name 'parent_value', got %q", field.Name)
	}
}

func TestInstanceTryF_UnknownField(t *testing.T) {
	instance := createTestInstance(t)

	if _, err := instance.TryF("nonexistent"); err == nil {
		t.Fatal("Expected error for unknown field")
	}
}

func TestInstanceF_UnknownField_Panics(t *testing.T) {
	instance := createTestInstance(t)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for unknown field")
		}
	}()

	instance.F("nonexistent")
}

func TestInstanceTryT(t *testing.T) {
	instance := createTestInstance(t)

	table, err := instance.TryT("tags")
	if err != nil {
		t.Fatalf("Expected no error for valid table, got: %v", err)
	}
	if table != "tags" {
		t.Errorf("Expected table 'tags', got %q", table)
	}

	if _, err := instance.TryT("nonexistent"); err == nil {
		t.Fatal("Expected error for unknown table")
	}
}

func TestInstanceWithTable(t *testing.T) {
	instance := createTestInstance(t)

	field := instance.WithTable(instance.F("value"), "tags")
	if field.Table != "tags" {
		t.Errorf("Expected table 'tags', got %q", field.Table)
	}

	// Single-letter aliases need no schema entry
	aliased := instance.WithTable(instance.F("value"), "t")
	if aliased.Table != "t" {
		t.Errorf("Expected table 't', got %q", aliased.Table)
	}
}

func TestInstanceTryWithTable_UnknownTable(t *testing.T) {
	instance := createTestInstance(t)

	if _, err := instance.TryWithTable(instance.F("value"), "sessions"); err == nil {
		t.Fatal("Expected error for table not in schema")
	}
}

func TestInstanceFieldsRenderAcrossDialects(t *testing.T) {
	instance := createTestInstance(t)

	expr := tagql.As(tagql.StringAgg(
		tagql.ConcatNull(
			instance.WithTable(instance.F("parent_value"), "t"),
			instance.WithTable(instance.F("value"), "t"),
		),
		tagql.Delimiter("\t"),
	), "lineage")

	frag, err := postgres.New().Render(expr)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	expected := "STRING_AGG(((t.\"parent_value\" || t.\"value\"))::TEXT, '\t') AS \"lineage\""
	if frag.SQL != expected {
		t.Errorf("Expected %s, got %s", expected, frag.SQL)
	}
}
