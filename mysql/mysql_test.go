package mysql_test

import (
	"testing"

	"github.com/tagforge/tagql"
	"github.com/tagforge/tagql/mysql"
)

func TestNew(t *testing.T) {
	r := mysql.New()
	if r == nil {
		t.Fatal("New returned nil")
	}
}

func TestConcatNullFields(t *testing.T) {
	r := mysql.New()

	expr := tagql.ConcatNull(tagql.F("parent_value"), tagql.F("value"))
	frag, err := r.Render(expr)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	expected := "CONCAT(`parent_value`, `value`)"
	if frag.SQL != expected {
		t.Errorf("expected %s, got %s", expected, frag.SQL)
	}
}

func TestConcatNullWithParam(t *testing.T) {
	r := mysql.New()

	expr := tagql.ConcatNull(tagql.F("value"), tagql.P("suffix"))
	frag, err := r.Render(expr)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	expected := "CONCAT(`value`, :suffix)"
	if frag.SQL != expected {
		t.Errorf("expected %s, got %s", expected, frag.SQL)
	}
	if len(frag.RequiredParams) != 1 || frag.RequiredParams[0] != "suffix" {
		t.Errorf("expected [suffix], got %v", frag.RequiredParams)
	}
}

func TestConcatNullWithAlias(t *testing.T) {
	r := mysql.New()

	expr := tagql.As(tagql.ConcatNull(tagql.F("parent_value"), tagql.F("value")), "full_path")
	frag, err := r.Render(expr)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	expected := "CONCAT(`parent_value`, `value`) AS `full_path`"
	if frag.SQL != expected {
		t.Errorf("expected %s, got %s", expected, frag.SQL)
	}
}

func TestStringAggDefault(t *testing.T) {
	r := mysql.New()

	expr := tagql.StringAgg(tagql.F("value"))
	frag, err := r.Render(expr)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	expected := "GROUP_CONCAT(`value` SEPARATOR ',')"
	if frag.SQL != expected {
		t.Errorf("expected %s, got %s", expected, frag.SQL)
	}
}

func TestStringAggDistinctDelimiter(t *testing.T) {
	r := mysql.New()

	expr := tagql.StringAgg(tagql.F("value"), tagql.Distinct(), tagql.Delimiter(";"))
	frag, err := r.Render(expr)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	expected := "GROUP_CONCAT(DISTINCT `value` SEPARATOR ';')"
	if frag.SQL != expected {
		t.Errorf("expected %s, got %s", expected, frag.SQL)
	}
}

func TestStringAggDelimiterEscaped(t *testing.T) {
	r := mysql.New()

	// Backslash is an escape character in MySQL string literals
	expr := tagql.StringAgg(tagql.F("value"), tagql.Delimiter(`\'`))
	frag, err := r.Render(expr)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	expected := "GROUP_CONCAT(`value` SEPARATOR '\\\\''')"
	if frag.SQL != expected {
		t.Errorf("expected %s, got %s", expected, frag.SQL)
	}
	if len(frag.RequiredParams) != 0 {
		t.Errorf("delimiter must be inlined, not bound; got params %v", frag.RequiredParams)
	}
}

func TestFieldWithTablePrefix(t *testing.T) {
	r := mysql.New()

	expr := tagql.StringAgg(tagql.WithTable(tagql.F("value"), "t"), tagql.Delimiter(" > "))
	frag, err := r.Render(expr)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	expected := "GROUP_CONCAT(t.`value` SEPARATOR ' > ')"
	if frag.SQL != expected {
		t.Errorf("expected %s, got %s", expected, frag.SQL)
	}
}

func TestRenderNilExpression(t *testing.T) {
	r := mysql.New()

	if _, err := r.Render(nil); err == nil {
		t.Fatal("expected error for nil expression")
	}
}

func TestCapabilities(t *testing.T) {
	caps := mysql.New().Capabilities()
	if !caps.ConcatFunction {
		t.Error("mysql CONCAT() propagates NULL and should be used")
	}
	if !caps.DistinctAggregate || !caps.DistinctWithDelimiter {
		t.Error("mysql supports DISTINCT aggregation with any delimiter")
	}
	if caps.TextCast {
		t.Error("mysql needs no text cast for aggregation")
	}
}
