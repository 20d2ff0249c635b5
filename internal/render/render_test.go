package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-doc2md/internal/doctree"
)

func doc(children ...doctree.Node) *doctree.Document {
	return &doctree.Document{Children: children}
}

func mustRender(t *testing.T, d *doctree.Document) string {
	t.Helper()
	out, err := Document(d)
	if err != nil {
		t.Fatalf("Document: %v", err)
	}
	return out
}

func countLines(out, line string) int {
	count := 0
	for _, l := range strings.Split(out, "\n") {
		if l == line {
			count++
		}
	}
	return count
}

func TestDocumentWorkedExample(t *testing.T) {
	got := mustRender(t, doc(
		&doctree.Section{Title: "First", Level: "2", Children: []doctree.Node{
			&doctree.Text{Body: "Hello"},
		}},
		&doctree.Section{Title: "Next", Level: "1"},
	))

	want := "\n## First\n\nHello\n\n---\n\n# Next\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected markdown (-want +got):\n%s", diff)
	}
}

func TestDocumentIsDeterministic(t *testing.T) {
	tree := doc(
		&doctree.Section{Title: "A", Level: "2", Children: []doctree.Node{
			&doctree.List{Ordered: "true", Items: []*doctree.Item{
				{Text: "one", Children: []doctree.Node{&doctree.Code{Source: "x"}}},
			}},
			&doctree.Table{Rows: []*doctree.Row{{Cells: []string{"h"}}, {Cells: []string{"v"}}}},
		}},
		&doctree.Section{Title: "B", Level: "2"},
	)

	first := mustRender(t, tree)
	second := mustRender(t, tree)
	if first != second {
		t.Fatalf("expected identical output, diff:\n%s", cmp.Diff(first, second))
	}
}

func TestDividerSkipsInterveningNonSections(t *testing.T) {
	got := mustRender(t, doc(
		&doctree.Section{Title: "A", Level: "2"},
		&doctree.Diagram{Source: "<svg/>"},
		&doctree.Section{Title: "B", Level: "2"},
	))

	want := strings.Join([]string{
		"",
		"## A",
		"",
		"---",
		"",
		"<!-- svg-diagram start -->",
		`<div class="diagram-block" align="center">`,
		"<svg/>",
		"</div>",
		"<!-- svg-diagram end -->",
		"",
		"## B",
		"",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected markdown (-want +got):\n%s", diff)
	}
}

func TestDividerLaw(t *testing.T) {
	cases := []struct {
		name     string
		tree     *doctree.Document
		dividers int
	}{
		{
			name: "level two followed by section",
			tree: doc(
				&doctree.Section{Title: "A", Level: "2"},
				&doctree.Section{Title: "B", Level: "3"},
			),
			dividers: 1,
		},
		{
			name: "last level two section",
			tree: doc(
				&doctree.Section{Title: "A", Level: "1"},
				&doctree.Section{Title: "B", Level: "2"},
			),
			dividers: 0,
		},
		{
			name: "level two followed by text only",
			tree: doc(
				&doctree.Section{Title: "A", Level: "2"},
				&doctree.Text{Body: "tail"},
			),
			dividers: 0,
		},
		{
			name: "other levels never divide",
			tree: doc(
				&doctree.Section{Title: "A", Level: "1"},
				&doctree.Section{Title: "B", Level: "3"},
				&doctree.Section{Title: "C", Level: "6"},
			),
			dividers: 0,
		},
		{
			name: "nested siblings decide inside their parent",
			tree: doc(
				&doctree.Section{Title: "Root", Level: "1", Children: []doctree.Node{
					&doctree.Section{Title: "A", Level: "2"},
					&doctree.Text{Body: "between"},
					&doctree.Section{Title: "B", Level: "2"},
				}},
			),
			dividers: 1,
		},
		{
			name: "clamped level does not divide",
			tree: doc(
				&doctree.Section{Title: "A", Level: "x"},
				&doctree.Section{Title: "B", Level: "2"},
			),
			dividers: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := mustRender(t, tc.tree)
			if got := countLines(out, dividerRule); got != tc.dividers {
				t.Fatalf("expected %d dividers, got %d in:\n%s", tc.dividers, got, out)
			}
		})
	}
}

func TestDividerPrecedesNextHeading(t *testing.T) {
	out := mustRender(t, doc(
		&doctree.Section{Title: "A", Level: "2", Children: []doctree.Node{&doctree.Text{Body: "body"}}},
		&doctree.Section{Title: "B", Level: "2"},
	))

	body := strings.Index(out, "body")
	divider := strings.Index(out, "\n---\n")
	next := strings.Index(out, "## B")
	if !(body < divider && divider < next) {
		t.Fatalf("expected divider between section content and next heading:\n%s", out)
	}
}

func TestNodeRootSectionHasNoDivider(t *testing.T) {
	out, err := Node(&doctree.Section{Title: "Only", Level: "2", Children: []doctree.Node{
		&doctree.Text{Body: "text"},
	}})
	if err != nil {
		t.Fatalf("Node: %v", err)
	}
	if want := "\n## Only\n\ntext\n"; out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestSectionWithoutChildrenRendersHeadingOnly(t *testing.T) {
	out := mustRender(t, doc(&doctree.Section{Title: "  Lonely \n title ", Level: "4"}))
	if want := "\n#### Lonely title\n"; out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestEmptyTextEmitsNothing(t *testing.T) {
	out := mustRender(t, doc(
		&doctree.Text{Body: "a"},
		&doctree.Text{Body: "  \n\t "},
		&doctree.Text{Body: "b"},
	))
	if want := "a\n\nb\n"; out != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestUnknownKindResilience(t *testing.T) {
	out := mustRender(t, doc(
		&doctree.Section{Title: "Parent", Level: "1", Children: []doctree.Node{
			&doctree.Text{Body: "before"},
			&doctree.Unknown{Tag: "video", Children: []doctree.Node{&doctree.Text{Body: "hidden"}}},
			&doctree.Text{Body: "after"},
		}},
		&doctree.Section{Title: "Sibling", Level: "1"},
	))

	for _, fragment := range []string{"# Parent", "before", "after", "# Sibling"} {
		if !strings.Contains(out, fragment) {
			t.Fatalf("expected %q in output:\n%s", fragment, out)
		}
	}
	if got := strings.Count(out, "<!-- unknown element: video -->"); got != 1 {
		t.Fatalf("expected one marker, got %d:\n%s", got, out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected unknown subtree to be skipped:\n%s", out)
	}
}

func TestNilChildrenAreSkipped(t *testing.T) {
	var section *doctree.Section
	out := mustRender(t, doc(nil, section, &doctree.Text{Body: "kept"}))
	if out != "kept\n" {
		t.Fatalf("expected nil children to render nothing, got %q", out)
	}
}

func TestNilRootIsFatal(t *testing.T) {
	if _, err := Document(nil); err == nil || !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation error for nil document, got %v", err)
	}
	if _, err := Node(nil); err == nil || !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation error for nil node, got %v", err)
	}

	typedNil := []doctree.Node{
		(*doctree.Section)(nil),
		(*doctree.Text)(nil),
		(*doctree.List)(nil),
		(*doctree.Unknown)(nil),
	}
	for _, root := range typedNil {
		out, err := Node(root)
		if !errors.Is(err, ErrNilRoot) {
			t.Fatalf("Node(%T): expected ErrNilRoot, got %q, %v", root, out, err)
		}
	}
}

func TestMaxDepthAbortsPass(t *testing.T) {
	tree := doc(&doctree.Section{Title: "1", Children: []doctree.Node{
		&doctree.Section{Title: "2", Children: []doctree.Node{
			&doctree.Section{Title: "3"},
		}},
	}})

	if _, err := New(Options{MaxDepth: 2}).Document(tree); err == nil {
		t.Fatal("expected depth error")
	} else if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}

	if _, err := New(Options{MaxDepth: 3}).Document(tree); err != nil {
		t.Fatalf("expected tree within limit to render, got %v", err)
	}
}

func TestMaxDepthCountsListNesting(t *testing.T) {
	tree := doc(&doctree.List{Items: []*doctree.Item{
		{Text: "a", Children: []doctree.Node{
			&doctree.List{Items: []*doctree.Item{{Text: "b"}}},
		}},
	}})

	if _, err := New(Options{MaxDepth: 1}).Document(tree); err == nil {
		t.Fatal("expected nested list to exceed depth 1")
	}
}
