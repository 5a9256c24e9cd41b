package db

import (
	"testing"
)

func TestParseFilter_Empty(t *testing.T) {
	result, err := ParseFilter("")
	if err != nil {
		t.Fatalf("ParseFilter(\"\") error = %v", err)
	}
	if result.WhereClause != "1=1" {
		t.Errorf("WhereClause = %q, want \"1=1\"", result.WhereClause)
	}
	if len(result.Args) != 0 {
		t.Errorf("Args = %v, want empty", result.Args)
	}
}

func TestParseFilter_Simple(t *testing.T) {
	tests := []struct {
		name       string
		filter     string
		wantClause string
		wantArgs   []interface{}
	}{
		{"boolean field", "in_scope", "in_scope = 1", []interface{}{}},
		{"equality", "type=NFR", "type = ?", []interface{}{"NFR"}},
		{"quoted string", `sub_category="Security"`, "sub_category = ?", []interface{}{"Security"}},
		{"float comparison", "scope_confidence>0.5", "scope_confidence > ?", []interface{}{0.5}},
		{"greater or equal", "similarity>=1", "similarity >= ?", []interface{}{1}},
		{"not equal", "status!=ANALYZED", "status != ?", []interface{}{"ANALYZED"}},
		{"text search", "requirement:login", "requirement LIKE ?", []interface{}{"%login%"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseFilter(tt.filter)
			if err != nil {
				t.Fatalf("ParseFilter(%q) error = %v", tt.filter, err)
			}
			if result.WhereClause != tt.wantClause {
				t.Errorf("WhereClause = %q, want %q", result.WhereClause, tt.wantClause)
			}
			if len(result.Args) != len(tt.wantArgs) {
				t.Fatalf("Args = %v, want %v", result.Args, tt.wantArgs)
			}
			for i := range tt.wantArgs {
				if result.Args[i] != tt.wantArgs[i] {
					t.Errorf("Args[%d] = %v, want %v", i, result.Args[i], tt.wantArgs[i])
				}
			}
		})
	}
}

func TestParseFilter_And(t *testing.T) {
	result, err := ParseFilter("in_scope AND type=FR")
	if err != nil {
		t.Fatalf("ParseFilter() error = %v", err)
	}
	if result.WhereClause != "in_scope = 1 AND type = ?" {
		t.Errorf("WhereClause = %q", result.WhereClause)
	}
	if len(result.Args) != 1 || result.Args[0] != "FR" {
		t.Errorf("Args = %v, want [FR]", result.Args)
	}
}

func TestParseFilter_Or(t *testing.T) {
	result, err := ParseFilter("type=UNKNOWN OR type=ERROR")
	if err != nil {
		t.Fatalf("ParseFilter() error = %v", err)
	}
	if result.WhereClause != "(type = ?) OR (type = ?)" {
		t.Errorf("WhereClause = %q", result.WhereClause)
	}
	if len(result.Args) != 2 {
		t.Errorf("Args = %v, want two values", result.Args)
	}
}

func TestParseFilter_InvalidField(t *testing.T) {
	invalid := []string{
		"nonsense",
		"requirement=abc", // only requirement: search is supported
		"project_id=x",    // scoping is a parameter, not a filter
	}
	for _, filter := range invalid {
		if _, err := ParseFilter(filter); err == nil {
			t.Errorf("ParseFilter(%q) should fail", filter)
		}
	}
}

func TestParseFilter_InvalidSyntax(t *testing.T) {
	if _, err := ParseFilter("in_scope AND bogus_field>3"); err == nil {
		t.Error("invalid field inside AND expression should fail")
	}
}
