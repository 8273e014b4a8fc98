package catalog

import "testing"

func TestFilter_EmptyTermAllCategoryReturnsEverything(t *testing.T) {
	items := Seed()
	got := Filter(items, "", CategoryAll)
	if len(got) != len(items) {
		t.Fatalf("Filter returned %d items, want %d", len(got), len(items))
	}
	for i := range got {
		if got[i].ID != items[i].ID {
			t.Fatalf("order changed at %d: got %s want %s", i, got[i].ID, items[i].ID)
		}
	}
}

func TestFilter_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	got := Filter(Seed(), "APPLE", CategoryAll)
	if len(got) != 1 || got[0].Title != "Fresh Apples" {
		t.Fatalf("Filter(APPLE, all) = %+v, want only Fresh Apples", got)
	}
}

func TestFilter_SearchMatchesDescription(t *testing.T) {
	got := Filter(Seed(), "sourdough", CategoryAll)
	if len(got) != 1 || got[0].Title != "Day-old Bread" {
		t.Fatalf("Filter(sourdough, all) = %+v, want only Day-old Bread", got)
	}
}

func TestFilter_ConstraintsAreConjunctive(t *testing.T) {
	// "bread" matches Day-old Bread by text, but the fruits category
	// excludes it; both constraints must hold.
	got := Filter(Seed(), "bread", CategoryFruits)
	if len(got) != 0 {
		t.Fatalf("Filter(bread, fruits) = %+v, want empty", got)
	}
}

func TestFilter_CategoryExactMatch(t *testing.T) {
	got := Filter(Seed(), "", CategoryBakery)
	if len(got) != 1 || got[0].Category != CategoryBakery {
		t.Fatalf("Filter(\"\", bakery) = %+v, want only the bakery item", got)
	}
}

func TestFilter_IsPure(t *testing.T) {
	items := Seed()
	first := Filter(items, "apple", CategoryFruits)
	second := Filter(items, "apple", CategoryFruits)
	if len(first) != len(second) {
		t.Fatalf("repeated Filter calls differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("repeated Filter calls differ at %d", i)
		}
	}
	if len(items) != 2 {
		t.Fatalf("Filter mutated its input: %d items", len(items))
	}
}

func TestFilter_TermIsTrimmed(t *testing.T) {
	got := Filter(Seed(), "  apples  ", CategoryAll)
	if len(got) != 1 || got[0].Title != "Fresh Apples" {
		t.Fatalf("Filter with padded term = %+v, want only Fresh Apples", got)
	}
}
