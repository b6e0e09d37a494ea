package inventory

// BrokenDispenser refuses to store anything. Useful in tests that need
// the Add path of a Dispensable to fail loudly.
type BrokenDispenser struct {
	capacity int
}

var _ Dispensable = &BrokenDispenser{}

func NewBrokenDispenser(capacity int) *BrokenDispenser {
	return &BrokenDispenser{capacity: capacity}
}

func (self *BrokenDispenser) Add(item *Item) error { return NewErrCantStore(item) }

func (self *BrokenDispenser) Take(name string) (*Item, error) { return nil, NewErrNoMore(name) }

func (self *BrokenDispenser) Count() int    { return 0 }
func (self *BrokenDispenser) Capacity() int { return self.capacity }
