package pathparse

import (
	"reflect"
	"testing"
)

func TestParsePath_DelimiterEquivalence(t *testing.T) {
	want := []string{"Home", "Products", "Electronics"}
	inputs := []string{
		"Home->Products->Electronics",
		"Home -> Products -> Electronics",
		"Home > Products > Electronics",
		"Home/Products/Electronics",
		"Home / Products / Electronics",
		"  Home/Products > Electronics  ",
	}
	for _, input := range inputs {
		if got := ParsePath(input); !reflect.DeepEqual(got, want) {
			t.Errorf("ParsePath(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"whitespace_only", "   ", []string{}},
		{"delimiters_only", "///", []string{}},
		{"single_node", "Home", []string{"Home"}},
		{"double_delimiter", "Home//Products/", []string{"Home", "Products"}},
		{"inner_whitespace", "Home /  Products ", []string{"Home", "Products"}},
		{"mixed_delimiters", "Home -> Products/Electronics > Sale", []string{"Home", "Products", "Electronics", "Sale"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParsePath(tt.input); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParsePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParsePath_Idempotent(t *testing.T) {
	raw := "Home -> Products > Electronics/Sale"
	first := ParsePath(raw)
	second := ParsePath(raw)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("ParsePath not idempotent: %v vs %v", first, second)
	}
}

func TestNodeAtLevel(t *testing.T) {
	path := []string{"Home", "Products", "Electronics", "Sale"}
	tests := []struct {
		name   string
		level  int
		want   string
		wantOK bool
	}{
		{"level1", 1, "Products", true},
		{"level2", 2, "Electronics", true},
		{"level3", 3, "Sale", true},
		{"too_deep", 4, "", false},
		{"zero_is_root", 0, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NodeAtLevel(path, tt.level)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("NodeAtLevel(%d) = (%q, %v), want (%q, %v)", tt.level, got, ok, tt.want, tt.wantOK)
			}
		})
	}

	if _, ok := NodeAtLevel(nil, 1); ok {
		t.Error("NodeAtLevel on empty path should not be ok")
	}
}

func TestPathUpToLevel(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		level int
		want  string
	}{
		{"level2", "Home -> Products -> Electronics -> Sale", 2, "Home -> Products -> Electronics"},
		{"level1", "Home/Products/Electronics", 1, "Home -> Products"},
		{"level_beyond_path", "Home/Products", 3, "Home -> Products"},
		{"empty", "", 2, ""},
		{"unparseable", " /// ", 2, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PathUpToLevel(tt.raw, tt.level); got != tt.want {
				t.Errorf("PathUpToLevel(%q, %d) = %q, want %q", tt.raw, tt.level, got, tt.want)
			}
		})
	}
}

func TestPathContainsNode(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		target string
		want   bool
	}{
		{"present", "Home/Products/Electronics", "Products", true},
		{"case_insensitive", "Home/Products/Electronics", "eLeCtRoNiCs", true},
		{"absent", "Home/Products/Electronics", "Deals", false},
		{"anywhere_not_just_prefix", "Home/Deals/Electronics/Back/Products", "Products", true},
		{"empty_path", "", "Products", false},
		{"no_partial_segment_match", "Home/Products", "Product", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PathContainsNode(tt.path, tt.target); got != tt.want {
				t.Errorf("PathContainsNode(%q, %q) = %v, want %v", tt.path, tt.target, got, tt.want)
			}
		})
	}
}

func TestFinalSegment(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Home/Products/Electronics", "Electronics"},
		{"Home", "Home"},
		{"", ""},
		{"  > ", ""},
	}
	for _, tt := range tests {
		if got := FinalSegment(tt.raw); got != tt.want {
			t.Errorf("FinalSegment(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Home -> Products", "Home/Products"},
		{"Home > Products", "Home/Products"},
		{"Home/Products", "Home/Products"},
		{"  Home  ", "Home"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
