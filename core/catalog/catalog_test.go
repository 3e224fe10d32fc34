package catalog

import (
	"reflect"
	"testing"
)

func TestFindByID(t *testing.T) {
	cat := Default()

	item, ok := cat.FindByID("terra_trench")
	if !ok {
		t.Fatal("expected terra_trench to exist")
	}
	if item.Kind != FormulaEarthwork {
		t.Errorf("expected earthwork kind, got %s", item.Kind)
	}
	if item.Group != "토공사" {
		t.Errorf("expected group 토공사, got %s", item.Group)
	}

	// A miss is a needs-mapping state, not an error.
	if _, ok := cat.FindByID("no_such_item"); ok {
		t.Error("expected lookup miss for unknown ID")
	}
}

func TestGroupOrderIsInsertionOrder(t *testing.T) {
	cat := New(
		StandardItem{ID: "b1", Group: "B"},
		StandardItem{ID: "a1", Group: "A"},
		StandardItem{ID: "b2", Group: "B"},
		StandardItem{ID: "c1", Group: "C"},
	)

	got := cat.Groups()
	want := []string{"B", "A", "C"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected groups %v, got %v", want, got)
	}

	inB := cat.ItemsInGroup("B")
	if len(inB) != 2 || inB[0].ID != "b1" || inB[1].ID != "b2" {
		t.Errorf("expected [b1 b2] in group B, got %v", inB)
	}
}

func TestDuplicateIDsIgnored(t *testing.T) {
	cat := New(
		StandardItem{ID: "x", Name: "first"},
		StandardItem{ID: "x", Name: "second"},
	)

	if cat.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", cat.Len())
	}
	item, _ := cat.FindByID("x")
	if item.Name != "first" {
		t.Errorf("expected first registration to win, got %s", item.Name)
	}
}

func TestDefaultCatalogContent(t *testing.T) {
	cat := Default()

	manual, ok := cat.FindByID(ManualInputID)
	if !ok {
		t.Fatal("expected manual_input item")
	}
	if manual.Kind != FormulaManual {
		t.Errorf("expected manual kind, got %s", manual.Kind)
	}

	// Every item declares unique requirement IDs.
	for _, item := range cat.Items() {
		seen := map[string]bool{}
		for _, r := range item.Requirements {
			if seen[r.ID] {
				t.Errorf("item %s declares duplicate requirement %s", item.ID, r.ID)
			}
			seen[r.ID] = true
		}
	}

	// The zero-requirement item exists for the passthrough branch.
	misc, ok := cat.FindByID("misc_fitting")
	if !ok {
		t.Fatal("expected misc_fitting item")
	}
	if len(misc.Requirements) != 0 {
		t.Errorf("expected zero requirements, got %d", len(misc.Requirements))
	}
}

func TestRequirementLookup(t *testing.T) {
	cat := Default()
	item, _ := cat.FindByID("terra_trench")

	r, ok := item.Requirement("slope")
	if !ok {
		t.Fatal("expected slope requirement")
	}
	if r.Default != 0 {
		t.Errorf("expected slope default 0, got %v", r.Default)
	}

	if _, ok := item.Requirement("unknown"); ok {
		t.Error("expected miss for undeclared requirement")
	}
}
