package store

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendlab/dispense/helpers"
	"github.com/vendlab/dispense/internal/inventory"
	"github.com/vendlab/dispense/log2"
)

func newTestStore(t testing.TB, capacity int) *Store {
	log := log2.NewTest(t, log2.LDebug)
	d, err := inventory.NewDispenser(capacity, log)
	require.NoError(t, err)
	return NewStore(log, d)
}

func TestRefillFromEmpty(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, 10)
	require.NoError(t, s.Refill(inventory.NewWater()))
	require.Equal(t, 10, s.Count())

	// drain it all: every item carries the template name, unconsumed
	for i := 0; i < 10; i++ {
		item := s.Get("Water")
		require.NotNil(t, item, "i=%d", i)
		assert.Equal(t, "Water", item.Name)
		assert.False(t, item.Consumed())
	}
	assert.Equal(t, 0, s.Count())
}

func TestGetReducesCountByOne(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, 10)
	require.NoError(t, s.Refill(inventory.NewWater()))

	item := s.Get("Water")
	require.NotNil(t, item)
	assert.False(t, item.Consumed())
	assert.Equal(t, 9, s.Count())
}

func TestGetMissKeepsCount(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, 10)
	require.NoError(t, s.Refill(inventory.NewWater()))

	assert.Nil(t, s.Get("Soda"))
	assert.Equal(t, 10, s.Count())
}

// Refill of an already full store fails with Full and the count stays
// at capacity. That is the one boundary policy used throughout: a
// dispenser is full at count==capacity, never above.
func TestRefillTwice(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, 10)
	require.NoError(t, s.Refill(inventory.NewWater()))
	require.Equal(t, 10, s.Count())

	err := s.Refill(inventory.NewWater())
	require.Error(t, err)
	assert.True(t, inventory.IsFull(err), "err=%v", err)
	assert.Equal(t, 10, s.Count())
}

func TestRefillTopsUpPartial(t *testing.T) {
	t.Parallel()

	log := log2.NewTest(t, log2.LDebug)
	d, err := inventory.NewDispenser(5, log)
	require.NoError(t, err)
	require.NoError(t, d.Add(inventory.NewItem("Soda")))
	require.NoError(t, d.Add(inventory.NewItem("Soda")))

	s := NewStore(log, d)
	require.NoError(t, s.Refill(inventory.NewWater()))
	assert.Equal(t, 5, s.Count())

	// pre-existing items keep their place and name
	assert.NotNil(t, s.Get("Soda"))
	assert.NotNil(t, s.Get("Soda"))
	assert.Nil(t, s.Get("Soda"))
	assert.Equal(t, 3, s.Count())
}

func TestRefillTemplateNil(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, 10)
	require.Error(t, s.Refill(nil))
	assert.Equal(t, 0, s.Count())
}

func TestBrokenRefill(t *testing.T) {
	t.Parallel()

	log := log2.NewTest(t, log2.LDebug)
	s := NewStore(log, inventory.NewBrokenDispenser(5))

	err := s.Refill(inventory.NewWater())
	require.Error(t, err)
	assert.True(t, inventory.IsCantStore(err), "err=%v", err)
}

func TestBrokenGet(t *testing.T) {
	t.Parallel()

	log := log2.NewTest(t, log2.LDebug)
	s := NewStore(log, inventory.NewBrokenDispenser(5))

	// error detail is swallowed at the store boundary
	assert.Nil(t, s.Get("Water"))
}

// flakyDispenser fails every Add starting from the failAt-th call.
type flakyDispenser struct {
	*inventory.Dispenser
	adds   int
	failAt int
}

func (self *flakyDispenser) Add(item *inventory.Item) error {
	self.adds++
	if self.adds >= self.failAt {
		return inventory.NewErrCantStore(item)
	}
	return self.Dispenser.Add(item)
}

// A failing add mid-refill propagates and earlier additions stay in.
func TestRefillNoRollback(t *testing.T) {
	t.Parallel()

	log := log2.NewTest(t, log2.LDebug)
	d, err := inventory.NewDispenser(5, log)
	require.NoError(t, err)
	flaky := &flakyDispenser{Dispenser: d, failAt: 3}

	s := NewStore(log, flaky)
	err = s.Refill(inventory.NewWater())
	require.Error(t, err)
	assert.True(t, inventory.IsCantStore(err), "err=%v", err)
	assert.Equal(t, 2, s.Count())
}

// Refill lands on exactly capacity for any capacity and any starting
// fill level below it.
func TestRefillAnyCapacity(t *testing.T) {
	t.Parallel()

	log := log2.NewTest(t, log2.LDebug)
	rand := helpers.RandUnix()
	f := func(i int32) bool {
		capacity := int(uint32(i) % 64)
		d, err := inventory.NewDispenser(capacity, log)
		if !assert.NoError(t, err) {
			return false
		}
		pre := 0
		if capacity > 0 {
			pre = int(rand.Int31n(int32(capacity)))
		}
		for j := 0; j < pre; j++ {
			if !assert.NoError(t, d.Add(inventory.NewItem("Soda"))) {
				return false
			}
		}
		s := NewStore(log, d)
		err = s.Refill(inventory.NewWater())
		if capacity == 0 {
			return assert.True(t, inventory.IsFull(err), "err=%v", err)
		}
		return assert.NoError(t, err) &&
			assert.Equal(t, capacity, s.Count(), "capacity=%d pre=%d", capacity, pre)
	}
	assert.NoError(t, quick.Check(f, &quick.Config{MaxCount: 200}))
}

func TestDefaultDispenser(t *testing.T) {
	t.Parallel()

	s := NewStore(log2.NewTest(t, log2.LDebug), nil)
	assert.Equal(t, inventory.DefaultCapacity, s.Capacity())
	assert.Equal(t, 0, s.Count())
}

func TestScenario(t *testing.T) {
	t.Parallel()

	s := newTestStore(t, 10)

	require.NoError(t, s.Refill(inventory.NewWater()))
	require.Equal(t, 10, s.Count())

	water := s.Get("Water")
	require.NotNil(t, water)
	assert.Equal(t, "Water", water.Name)
	assert.False(t, water.Consumed())
	assert.Equal(t, 9, s.Count())

	assert.Nil(t, s.Get("Soda"))
	assert.Equal(t, 9, s.Count())
}
