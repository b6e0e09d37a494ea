// Package inventory models a bounded dispenser of named consumable
// items: items go in while there is room, and come out first-match by
// name in insertion order.
package inventory

import (
	"fmt"
	"strings"

	"github.com/juju/errors"

	"github.com/vendlab/dispense/helpers"
	"github.com/vendlab/dispense/log2"
)

const DefaultCapacity = 10

// Dispensable is the capability a store needs from a dispenser. The
// standard implementation is Dispenser; BrokenDispenser exists for
// failure-path tests.
type Dispensable interface {
	Add(item *Item) error
	Take(name string) (*Item, error)
	Count() int
	Capacity() int
}

// Dispenser holds up to capacity items in insertion order.
// Invariant: Count() <= Capacity() after every operation; Add rejects
// with ErrFull when Count() >= Capacity() before the append.
type Dispenser struct {
	log      *log2.Log
	items    []*Item
	capacity int
}

var _ Dispensable = &Dispenser{}

func NewDispenser(capacity int, log *log2.Log) (*Dispenser, error) {
	if capacity < 0 {
		return nil, errors.Errorf("dispenser capacity=%d is invalid", capacity)
	}
	return &Dispenser{
		log:      log,
		items:    make([]*Item, 0, capacity),
		capacity: capacity,
	}, nil
}

// NewDefault returns an empty dispenser of DefaultCapacity.
func NewDefault(log *log2.Log) *Dispenser {
	d, err := NewDispenser(DefaultCapacity, log)
	if err != nil {
		panic("code error NewDefault: " + err.Error())
	}
	return d
}

func (self *Dispenser) Add(item *Item) error {
	if item == nil {
		return errors.Errorf("dispenser add item=nil")
	}
	if len(self.items) >= self.capacity {
		return errors.Annotatef(ErrFull, "add item=%s count=%d capacity=%d", item.Name, len(self.items), self.capacity)
	}
	self.items = append(self.items, item)
	self.log.Debugf("dispenser add item=%s count=%d", item.Name, len(self.items))
	return nil
}

// Take removes and returns the first item, in insertion order, whose
// name matches exactly. The sequence is untouched on a miss.
func (self *Dispenser) Take(name string) (*Item, error) {
	for i, item := range self.items {
		if item.Name == name {
			self.items = append(self.items[:i], self.items[i+1:]...)
			self.log.Debugf("dispenser take item=%s count=%d", name, len(self.items))
			return item, nil
		}
	}
	return nil, NewErrNoMore(name)
}

// MustTake is Take for tests and tools that treat a miss as fatal.
func (self *Dispenser) MustTake(f helpers.Fataler, name string) *Item {
	item, err := self.Take(name)
	if err != nil {
		f.Fatal(err)
		return nil
	}
	return item
}

func (self *Dispenser) Count() int    { return len(self.items) }
func (self *Dispenser) Capacity() int { return self.capacity }

func (self *Dispenser) String() string {
	names := make([]string, 0, len(self.items))
	for _, item := range self.items {
		names = append(names, item.Name)
	}
	return fmt.Sprintf("dispenser(%d/%d %s)", len(self.items), self.capacity, strings.Join(names, ","))
}
