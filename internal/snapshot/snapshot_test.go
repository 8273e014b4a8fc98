package snapshot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/foodshare/foodshare/internal/catalog"
)

func TestLoad_MissingFileFallsBackToSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	items := Load(path)
	seed := catalog.Seed()
	if len(items) != len(seed) {
		t.Fatalf("Load returned %d items, want seed of %d", len(items), len(seed))
	}
	if items[0].Title != "Fresh Apples" || items[1].Title != "Day-old Bread" {
		t.Fatalf("Load did not return the seed catalog: %+v", items)
	}
}

func TestLoad_CorruptFileFallsBackToSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	items := Load(path)
	if len(items) != 2 || items[0].Title != "Fresh Apples" {
		t.Fatalf("Load of corrupt file = %+v, want seed catalog", items)
	}
}

func TestLoad_EmptyArrayStaysEmpty(t *testing.T) {
	// An explicitly stored empty catalog is valid data, not a fallback case.
	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte("[]"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	items := Load(path)
	if len(items) != 0 {
		t.Fatalf("Load of empty array = %+v, want empty", items)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "catalog.json")

	want := catalog.Seed()
	want = append(want, catalog.New(catalog.Draft{
		Title:       "Goat Cheese",
		Description: "Two wheels of fresh goat cheese.",
		Category:    catalog.CategoryDairy,
		Quantity:    "2 wheels",
		ExpiryDate:  "2024-03-08",
		Location:    "Hillside Farm",
	}, "Hillside Farm", time.Now()))

	if err := Save(path, want); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got := Load(path)
	if len(got) != len(want) {
		t.Fatalf("round trip returned %d items, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID ||
			got[i].Title != want[i].Title ||
			got[i].Description != want[i].Description ||
			got[i].Category != want[i].Category ||
			got[i].Quantity != want[i].Quantity ||
			got[i].ExpiryDate != want[i].ExpiryDate ||
			got[i].Location != want[i].Location ||
			got[i].PostedBy != want[i].PostedBy {
			t.Fatalf("item %d differs after round trip:\ngot  %+v\nwant %+v", i, got[i], want[i])
		}
		if !got[i].PostedAt.Equal(want[i].PostedAt) {
			t.Fatalf("item %d PostedAt = %v, want %v", i, got[i].PostedAt, want[i].PostedAt)
		}
	}
}

func TestSave_OverwritesPreviousSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

	if err := Save(path, catalog.Seed()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := Save(path, nil); err != nil {
		t.Fatalf("Save of empty catalog: %v", err)
	}

	items := Load(path)
	if len(items) != 0 {
		t.Fatalf("Load after overwrite = %+v, want empty", items)
	}
}
