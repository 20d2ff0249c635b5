package doctree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleDocument() *Document {
	return &Document{Children: []Node{
		&Text{Body: "intro"},
		&Section{Title: " ", Children: []Node{
			&List{Items: []*Item{
				nil,
				{Text: "a", Children: []Node{&Section{Title: "Nested in item"}}},
			}},
		}},
		(*Section)(nil),
		&Unknown{Tag: "widget", Children: []Node{&Diagram{Format: "svg"}}},
		&Section{Title: "Second"},
	}}
}

func TestKindOf(t *testing.T) {
	cases := map[Kind]Node{
		KindSection: &Section{},
		KindText:    &Text{},
		KindCode:    &Code{},
		KindList:    &List{},
		KindTable:   &Table{},
		KindDiagram: &Diagram{},
		KindUnknown: &Unknown{},
	}
	for want, n := range cases {
		if got := KindOf(n); got != want {
			t.Fatalf("KindOf(%T): expected %s, got %s", n, want, got)
		}
	}
	if KindOf(nil) != KindUnknown {
		t.Fatal("expected nil node to report unknown kind")
	}
}

func TestWalkDocumentVisitsNestedNodes(t *testing.T) {
	var kinds []Kind
	WalkDocument(sampleDocument(), func(n Node) bool {
		kinds = append(kinds, KindOf(n))
		return true
	})

	want := []Kind{KindText, KindSection, KindList, KindSection, KindUnknown, KindDiagram, KindSection}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("unexpected visit order (-want +got):\n%s", diff)
	}
}

func TestWalkSkipsChildren(t *testing.T) {
	count := 0
	WalkDocument(sampleDocument(), func(n Node) bool {
		count++
		return KindOf(n) != KindSection
	})
	if count != 5 {
		t.Fatalf("expected 5 visits when sections are pruned, got %d", count)
	}
}

func TestFirstSectionSkipsBlankTitles(t *testing.T) {
	s := FirstSection(sampleDocument())
	if s == nil || s.Title != "Nested in item" {
		t.Fatalf("expected first titled section, got %+v", s)
	}
	if FirstSection(nil) != nil || FirstSection(&Document{}) != nil {
		t.Fatal("expected nil for empty documents")
	}
}

func TestTopLevelSections(t *testing.T) {
	sections := TopLevelSections(sampleDocument())
	if len(sections) != 2 || sections[1].Title != "Second" {
		t.Fatalf("expected two direct sections, got %+v", sections)
	}
}

func TestIsNil(t *testing.T) {
	if !IsNil(nil) || !IsNil((*Table)(nil)) || IsNil(&Table{}) {
		t.Fatal("unexpected IsNil result")
	}
}
