package inventory

import "fmt"

// DefaultItemName is the canonical template used when nothing else is
// configured.
const DefaultItemName = "Water"

// Item is a named single-use consumable. Dispensers hold items by
// pointer; Take hands the only reference to the caller.
type Item struct {
	Name     string
	consumed bool
}

func NewItem(name string) *Item { return &Item{Name: name} }

// NewWater returns a fresh default item, the usual refill template.
func NewWater() *Item { return NewItem(DefaultItemName) }

// Drink consumes the item. Drinking an already consumed item changes
// nothing.
func (self *Item) Drink() { self.consumed = true }

func (self *Item) Consumed() bool { return self.consumed }

func (self *Item) String() string {
	return fmt.Sprintf("item(name=%s consumed=%t)", self.Name, self.consumed)
}
