package inventory

import (
	"fmt"

	"github.com/juju/errors"
)

var (
	// ErrFull is returned by Add when the dispenser already holds
	// capacity items.
	ErrFull = errors.New("dispenser is full")

	// ErrEmpty is part of the taxonomy for implementations that report
	// exhaustion as a distinct condition. The standard Dispenser never
	// returns it: a miss is always NoMore, empty or not.
	ErrEmpty = errors.New("dispenser is empty")
)

func IsFull(e error) bool  { return errors.Cause(e) == ErrFull }
func IsEmpty(e error) bool { return errors.Cause(e) == ErrEmpty }

// ErrNoMore reports a Take for a name with no matching item left.
type ErrNoMore struct{ msg string }

func NewErrNoMore(name string) ErrNoMore {
	return ErrNoMore{msg: fmt.Sprintf("item=%s no more", name)}
}
func (e ErrNoMore) Error() string { return e.msg }

func IsNoMore(e error) bool {
	_, ok := errors.Cause(e).(ErrNoMore)
	return ok
}

// ErrCantStore reports a dispenser that categorically refuses an item.
// The standard Dispenser never produces it; see BrokenDispenser.
type ErrCantStore struct{ msg string }

func NewErrCantStore(item *Item) ErrCantStore {
	return ErrCantStore{msg: fmt.Sprintf("item=%s cannot be stored", item.Name)}
}
func (e ErrCantStore) Error() string { return e.msg }

func IsCantStore(e error) bool {
	_, ok := errors.Cause(e).(ErrCantStore)
	return ok
}
