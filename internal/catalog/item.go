package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/foodshare/foodshare/internal/session"
)

// Category is the closed set of food categories an item can belong to.
type Category string

const (
	CategoryFruits     Category = "fruits"
	CategoryVegetables Category = "vegetables"
	CategoryDairy      Category = "dairy"
	CategoryBakery     Category = "bakery"
	CategoryMeals      Category = "meals"
	CategoryOther      Category = "other"
)

// CategoryAll is the listings filter value that matches every category.
// It is never a valid item category.
const CategoryAll Category = "all"

// Categories returns the valid item categories in display order.
func Categories() []Category {
	return []Category{
		CategoryFruits,
		CategoryVegetables,
		CategoryDairy,
		CategoryBakery,
		CategoryMeals,
		CategoryOther,
	}
}

// ParseCategory normalizes and validates a category string.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, valid := range Categories() {
		if c == valid {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// String returns the wire form of the category.
func (c Category) String() string { return string(c) }

// Label returns the human-facing name of the category.
func (c Category) Label() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}

// FoodItem is a single donation record. PostedBy is a denormalized copy of
// the posting profile's name; it is not a live reference.
type FoodItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Quantity    string    `json:"quantity"`
	ExpiryDate  string    `json:"expiryDate"`
	Location    string    `json:"location"`
	PostedBy    string    `json:"postedBy"`
	PostedAt    time.Time `json:"postedAt"`
}

// Draft holds the in-progress, unsaved values of the item form. All fields
// are required; quantity and expiry date are free text by design.
type Draft struct {
	Title       string   `validate:"required"`
	Description string   `validate:"required"`
	Category    Category `validate:"required"`
	Quantity    string   `validate:"required"`
	ExpiryDate  string   `validate:"required"`
	Location    string   `validate:"required"`
}

var validate = validator.New()

// draftLabels maps Draft field names to the labels shown in validation
// messages.
var draftLabels = map[string]string{
	"Title":       "title",
	"Description": "description",
	"Category":    "category",
	"Quantity":    "quantity",
	"ExpiryDate":  "expiry date",
	"Location":    "location",
}

// Validate checks required-field presence. Deeper validation (well-formed
// dates, numeric quantities) is intentionally not performed.
func (d Draft) Validate() error {
	trimmed := d
	trimmed.Title = strings.TrimSpace(d.Title)
	trimmed.Description = strings.TrimSpace(d.Description)
	trimmed.Quantity = strings.TrimSpace(d.Quantity)
	trimmed.ExpiryDate = strings.TrimSpace(d.ExpiryDate)
	trimmed.Location = strings.TrimSpace(d.Location)

	err := validate.Struct(trimmed)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		label := draftLabels[errs[0].Field()]
		if label == "" {
			label = strings.ToLower(errs[0].Field())
		}
		return fmt.Errorf("%s is required", label)
	}
	return err
}

// New builds a FoodItem from a draft, stamping identity and provenance.
// An empty postedBy is recorded as Anonymous.
func New(d Draft, postedBy string, now time.Time) FoodItem {
	if strings.TrimSpace(postedBy) == "" {
		postedBy = session.AnonymousName
	}
	return FoodItem{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
		Category:    d.Category,
		Quantity:    strings.TrimSpace(d.Quantity),
		ExpiryDate:  strings.TrimSpace(d.ExpiryDate),
		Location:    strings.TrimSpace(d.Location),
		PostedBy:    postedBy,
		PostedAt:    now,
	}
}
