package cart

import (
	"strings"

	"shoppinglist/internal/models"
)

// Line is one (product, category) pairing with an aggregated quantity.
// A line's quantity is always at least 1; a line dropped to zero is
// removed rather than retained.
type Line struct {
	Name     string
	Category models.Category
	Quantity int
}

// Cart is the pre-commit working set of lines. It belongs to a single
// session and expects a single writer; callers serialize access.
// Derived values are recomputed on demand, never cached.
type Cart struct {
	lines []Line
}

// New creates an empty cart
func New() *Cart {
	return &Cart{}
}

// Add inserts productName under the given category, merging into an
// existing line on an exact (name, category id) match. The name is
// trimmed; an empty name after trimming is ignored. Category
// membership in the catalog is the caller's contract, validated
// upstream by the classification flow.
func (c *Cart) Add(productName string, category models.Category) {
	name := strings.TrimSpace(productName)
	if name == "" {
		return
	}

	for i := range c.lines {
		if c.lines[i].Name == name && c.lines[i].Category.ID == category.ID {
			c.lines[i].Quantity++
			return
		}
	}

	c.lines = append(c.lines, Line{Name: name, Category: category, Quantity: 1})
}

// Remove drops every line matching (productName, categoryID).
// Removing a key that is not present is a no-op.
func (c *Cart) Remove(productName, categoryID string) {
	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.Name == productName && line.Category.ID == categoryID {
			continue
		}
		kept = append(kept, line)
	}
	c.lines = kept
}

// Clear empties the cart unconditionally. Used after a successful
// commit or an explicit cancel.
func (c *Cart) Clear() {
	c.lines = nil
}

// TotalItemsCount is the sum of all line quantities
func (c *Cart) TotalItemsCount() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// Lines returns a copy of the current lines in insertion order
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Items converts the cart content into the order submission shape
func (c *Cart) Items() []models.OrderItemInput {
	items := make([]models.OrderItemInput, 0, len(c.lines))
	for _, line := range c.lines {
		items = append(items, models.OrderItemInput{
			Name:       line.Name,
			CategoryID: line.Category.ID,
			Quantity:   line.Quantity,
		})
	}
	return items
}
