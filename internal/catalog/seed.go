package catalog

import "time"

// Seed returns the fixed catalog used when no persisted snapshot exists.
// Each call returns fresh copies so callers can mutate freely.
func Seed() []FoodItem {
	posted := time.Date(2024, time.March, 2, 10, 30, 0, 0, time.UTC)
	return []FoodItem{
		{
			ID:          "seed-1",
			Title:       "Fresh Apples",
			Description: "A crate of crisp red apples from the weekend market, more than we can sell.",
			Category:    CategoryFruits,
			Quantity:    "5 kg",
			ExpiryDate:  "2024-03-10",
			Location:    "Green Market, Stall 12",
			PostedBy:    "Sarah's Kitchen",
			PostedAt:    posted,
		},
		{
			ID:          "seed-2",
			Title:       "Day-old Bread",
			Description: "Baguettes and sourdough loaves baked yesterday, still perfectly good.",
			Category:    CategoryBakery,
			Quantity:    "12 loaves",
			ExpiryDate:  "2024-03-04",
			Location:    "Corner Bakery, Elm Street",
			PostedBy:    "Corner Bakery",
			PostedAt:    posted.Add(45 * time.Minute),
		},
	}
}
