package registry

import (
	"errors"
	"testing"
)

func testCatalog() []Tool {
	return []Tool{
		seed("chat", "Indomind Chat", "Engage in intelligent conversations.", CategoryChatKnowledge, Implemented(HandlerChat)),
		seed("image_generator", "Image Generator", "Create stunning visuals from text.", CategoryCreativeMedia, Implemented(HandlerImage)),
		seed("video_generator", "AI Video Generator", "Create stunning videos from text prompts.", CategoryVideo, Implemented(HandlerVideo)),
	}
}

func TestListAllReturnsFullCatalog(t *testing.T) {
	r := New(testCatalog())
	for _, filter := range []string{"", "All", "all"} {
		if got := len(r.List(filter, "")); got != 3 {
			t.Fatalf("List(%q): expected 3 tools, got %d", filter, got)
		}
	}
}

func TestListFiltersByCategoryAndQuery(t *testing.T) {
	r := New(testCatalog())

	cases := []struct {
		name     string
		category string
		query    string
		want     []string
	}{
		{"category only", CategoryVideo, "", []string{"video_generator"}},
		{"query only", "", "stunning", []string{"image_generator", "video_generator"}},
		{"query is case-insensitive", "", "STUNNING", []string{"image_generator", "video_generator"}},
		{"predicates are ANDed", CategoryCreativeMedia, "stunning", []string{"image_generator"}},
		{"query matches description", "", "conversations", []string{"chat"}},
		{"no match", CategoryVideo, "conversations", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := r.List(tc.category, tc.query)
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d tools, got %d", len(tc.want), len(got))
			}
			for i, tool := range got {
				if tool.ID != tc.want[i] {
					t.Fatalf("expected tool %q at %d, got %q", tc.want[i], i, tool.ID)
				}
			}
		})
	}
}

func TestToggleFlipsEnabledOnly(t *testing.T) {
	r := New(testCatalog())

	tool, err := r.Toggle("chat")
	if err != nil {
		t.Fatalf("Toggle returned error: %v", err)
	}
	if tool.Enabled {
		t.Fatalf("expected tool to be disabled after toggle")
	}
	if !tool.Implemented {
		t.Fatalf("toggle must not touch the implemented flag")
	}

	// Toggling twice restores the original state.
	tool, err = r.Toggle("chat")
	if err != nil {
		t.Fatalf("second Toggle returned error: %v", err)
	}
	if !tool.Enabled {
		t.Fatalf("expected tool to be enabled after double toggle")
	}
}

func TestToggleUnknownIDFails(t *testing.T) {
	r := New(testCatalog())
	if _, err := r.Toggle("nope"); !errors.Is(err, ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound, got %v", err)
	}
}

func TestAddAppendsEnabledPlaceholder(t *testing.T) {
	r := New(testCatalog())

	tool := r.Add("Foo", "Bar")
	if tool.Implemented {
		t.Fatalf("added tools must be unimplemented placeholders")
	}
	if !tool.Enabled {
		t.Fatalf("added tools must start enabled")
	}
	if tool.Selectable() {
		t.Fatalf("placeholder tools must not be selectable")
	}

	listed := r.List("Bar", "")
	if len(listed) != 1 || listed[0].Name != "Foo" {
		t.Fatalf("expected Foo under category Bar, got %+v", listed)
	}
}

func TestAddDuplicateNamesGetDistinctIDs(t *testing.T) {
	r := New(testCatalog())

	first := r.Add("Foo", "Bar")
	second := r.Add("Foo", "Bar")
	if first.ID == second.ID {
		t.Fatalf("expected distinct ids for duplicate names, got %q twice", first.ID)
	}
	if got := len(r.List("Bar", "")); got != 2 {
		t.Fatalf("expected both duplicates listed, got %d", got)
	}
}

func TestCategoriesAndNamesPreserveOrder(t *testing.T) {
	r := New(testCatalog())

	cats := r.Categories()
	want := []string{CategoryChatKnowledge, CategoryCreativeMedia, CategoryVideo}
	if len(cats) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(cats))
	}
	for i := range want {
		if cats[i] != want[i] {
			t.Fatalf("expected category %q at %d, got %q", want[i], i, cats[i])
		}
	}

	names := r.Names()
	if len(names) != 3 || names[0] != "Indomind Chat" {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestDefaultCatalogIsWellFormed(t *testing.T) {
	r := NewDefault()
	if r.Len() < 90 {
		t.Fatalf("expected the built-in catalog to carry at least 90 tools, got %d", r.Len())
	}
	seen := make(map[string]bool)
	for _, tool := range r.List("All", "") {
		if tool.ID == "" || tool.Name == "" || tool.Category == "" {
			t.Fatalf("malformed catalog entry: %+v", tool)
		}
		if seen[tool.ID] {
			t.Fatalf("duplicate catalog id %q", tool.ID)
		}
		seen[tool.ID] = true
		if !tool.Implemented || !tool.Enabled {
			t.Fatalf("seed tools must ship implemented and enabled: %+v", tool)
		}
	}
}
