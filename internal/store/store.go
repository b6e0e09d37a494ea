// Package store is the facade over one dispenser: refill to capacity,
// get by name.
package store

import (
	"github.com/juju/errors"

	"github.com/vendlab/dispense/internal/inventory"
	"github.com/vendlab/dispense/log2"
)

// Store owns exactly one dispenser for its whole lifetime; the
// dispenser's capacity never changes through Store operations.
type Store struct {
	log *log2.Log
	d   inventory.Dispensable
}

// NewStore wraps d; nil d means a fresh dispenser of default capacity.
func NewStore(log *log2.Log, d inventory.Dispensable) *Store {
	if d == nil {
		d = inventory.NewDefault(log)
	}
	return &Store{log: log, d: d}
}

// Get removes the first item with the given name and returns it, or nil.
// Any underlying failure collapses to nil: callers of Get only learn
// presence or absence, never the error kind. Keep it that way.
func (self *Store) Get(name string) *inventory.Item {
	item, err := self.d.Take(name)
	if err != nil {
		self.log.Debugf("store get name=%s err=%v", name, err)
		return nil
	}
	self.log.Debugf("store get name=%s -> %s", name, item.String())
	return item
}

// Refill tops the dispenser up to capacity with fresh unconsumed items
// carrying the template's name. Refill of an already full dispenser
// fails with ErrFull and changes nothing. A failing add mid-way
// propagates unchanged; items added before it stay in.
func (self *Store) Refill(template *inventory.Item) error {
	if template == nil {
		return errors.Errorf("store refill template=nil")
	}
	count, capacity := self.d.Count(), self.d.Capacity()
	if count >= capacity {
		return errors.Annotatef(inventory.ErrFull, "refill item=%s count=%d", template.Name, count)
	}
	for i := count; i < capacity; i++ {
		if err := self.d.Add(inventory.NewItem(template.Name)); err != nil {
			return errors.Annotatef(err, "refill item=%s", template.Name)
		}
	}
	self.log.Infof("store refill item=%s count=%d", template.Name, self.d.Count())
	return nil
}

func (self *Store) Count() int    { return self.d.Count() }
func (self *Store) Capacity() int { return self.d.Capacity() }
