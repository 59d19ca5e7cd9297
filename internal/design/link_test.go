package design

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLink_NoPartsIsNoop(t *testing.T) {
	tree := &Node{Class: "Scene_Title", Kind: KindScene}
	tree.Append(
		window("Window_TitleCommand", text("New Game"), text("Continue")),
		window("Window_Version", text("Ver 0.1.0")),
	)
	tree.Children[0].Style.Width = Lit(240)
	before := tree.Clone()

	reg := mustRegistry(t, window("Unused"))
	if err := Link(tree, reg); err != nil {
		t.Fatalf("Link() error = %v", err)
	}
	if diff := cmp.Diff(before, tree, allowUnexported); diff != "" {
		t.Errorf("Link() changed a tree without parts (-before +after):\n%s", diff)
	}

	if err := Link(tree, reg); err != nil {
		t.Fatalf("second Link() error = %v", err)
	}
	if diff := cmp.Diff(before, tree, allowUnexported); diff != "" {
		t.Errorf("second Link() changed the tree (-before +after):\n%s", diff)
	}
}

func TestLink_ReplacesPartsTransitively(t *testing.T) {
	header := window("Header", text("Title"))
	body := window("Body", NewPart("Header"), text("content"))
	reg := mustRegistry(t, header, body)

	tree := (&Node{Class: "Scene_Menu", Kind: KindScene}).Append(NewPart("Body"), text("footer"))
	if err := Link(tree, reg); err != nil {
		t.Fatalf("Link() error = %v", err)
	}

	want := (&Node{Class: "Scene_Menu", Kind: KindScene}).Append(
		window("Body", window("Header", text("Title")), text("content")),
		text("footer"),
	)
	if diff := cmp.Diff(want, tree, allowUnexported); diff != "" {
		t.Errorf("linked tree mismatch (-want +got):\n%s", diff)
	}
	if tree.HasParts() {
		t.Error("HasParts() = true after linking")
	}
}

func TestLink_ClonesAreIndependent(t *testing.T) {
	reg := mustRegistry(t, window("Shared", text("a")))
	tree := (&Node{Kind: KindScene}).Append(NewPart("Shared"), NewPart("Shared"))

	if err := Link(tree, reg); err != nil {
		t.Fatalf("Link() error = %v", err)
	}
	if tree.Children[0] == tree.Children[1] {
		t.Fatal("two parts of the same class share one node")
	}

	tree.Children[0].Children[0].Text = "changed"
	master, _ := reg.Resolve("Shared")
	if master.Children[0].Text != "a" {
		t.Errorf("registry master mutated through linked clone: %q", master.Children[0].Text)
	}
	if tree.Children[1].Children[0].Text != "a" {
		t.Errorf("sibling clone mutated: %q", tree.Children[1].Children[0].Text)
	}
}

func TestLink_MasterWithPartsStaysUnlinked(t *testing.T) {
	reg := mustRegistry(t, window("Leaf"), window("Outer", NewPart("Leaf")))
	tree := (&Node{Kind: KindScene}).Append(NewPart("Outer"))

	if err := Link(tree, reg); err != nil {
		t.Fatalf("Link() error = %v", err)
	}
	master, _ := reg.Resolve("Outer")
	if !master.Children[0].IsPart() {
		t.Error("registry master was linked in place")
	}
}

func TestLink_Errors(t *testing.T) {
	type tc struct {
		registry  []*Node
		tree      *Node
		wantErr   error
		wantClass string
	}

	tests := map[string]tc{
		"unknown class": {
			registry:  []*Node{window("Known")},
			tree:      (&Node{Kind: KindScene}).Append(NewPart("Missing")),
			wantErr:   ErrUnknownClass,
			wantClass: "Missing",
		},
		"unknown class nested in a resolved part": {
			registry:  []*Node{window("Outer", NewPart("Missing"))},
			tree:      (&Node{Kind: KindScene}).Append(NewPart("Outer")),
			wantErr:   ErrUnknownClass,
			wantClass: "Missing",
		},
		"direct cycle": {
			registry:  []*Node{window("Loop", NewPart("Loop"))},
			tree:      (&Node{Kind: KindScene}).Append(NewPart("Loop")),
			wantErr:   ErrCycle,
			wantClass: "Loop",
		},
		"transitive cycle": {
			registry: []*Node{
				window("A", NewPart("B")),
				window("B", window("Inner", NewPart("A"))),
			},
			tree:      (&Node{Kind: KindScene}).Append(NewPart("A")),
			wantErr:   ErrCycle,
			wantClass: "A",
		},
		"part root": {
			registry:  []*Node{window("A")},
			tree:      NewPart("A"),
			wantErr:   ErrInvalidRoot,
			wantClass: "A",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			reg := mustRegistry(t, tt.registry...)
			err := Link(tt.tree, reg)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Link() error = %v, want %v", err, tt.wantErr)
			}
			var re *ResolutionError
			if !errors.As(err, &re) {
				t.Fatalf("Link() error %T is not a *ResolutionError", err)
			}
			if re.Class != tt.wantClass {
				t.Errorf("ResolutionError.Class = %q, want %q", re.Class, tt.wantClass)
			}
		})
	}
}

func TestLink_SameClassInSiblingsIsNotACycle(t *testing.T) {
	reg := mustRegistry(t, window("Item"), window("List", NewPart("Item"), NewPart("Item")))
	tree := (&Node{Kind: KindScene}).Append(NewPart("List"), NewPart("Item"))

	if err := Link(tree, reg); err != nil {
		t.Fatalf("Link() error = %v", err)
	}
}

func TestResolve(t *testing.T) {
	reg := mustRegistry(t, window("Header"), window("Page", NewPart("Header")))

	n, err := Resolve("Page", reg)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if n.Children[0].IsPart() || n.Children[0].Class != "Header" {
		t.Errorf("Resolve() child = %+v, want linked Header", n.Children[0])
	}

	if _, err := Resolve("Nope", reg); !errors.Is(err, ErrUnknownClass) {
		t.Errorf("Resolve(unknown) error = %v, want ErrUnknownClass", err)
	}

	self := mustRegistry(t, window("Self", NewPart("Self")))
	if _, err := Resolve("Self", self); !errors.Is(err, ErrCycle) {
		t.Errorf("Resolve(self-referencing) error = %v, want ErrCycle", err)
	}
}
