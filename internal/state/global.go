package state

import (
	"context"
	"fmt"

	"github.com/juju/errors"

	"github.com/vendlab/dispense/internal/inventory"
	"github.com/vendlab/dispense/internal/store"
	"github.com/vendlab/dispense/log2"
)

const ContextKey = "run/state-global"

// Global ties the configured pieces together for binaries and tests.
type Global struct {
	Config *Config
	Log    *log2.Log
	Store  *store.Store
}

func NewContext(log *log2.Log) (context.Context, *Global) {
	if log == nil {
		panic("code error NewContext() log=nil")
	}
	g := &Global{Log: log}
	ctx := context.WithValue(context.Background(), ContextKey, g)
	return ctx, g
}

func GetGlobal(ctx context.Context) *Global {
	v := ctx.Value(ContextKey)
	if v == nil {
		panic(fmt.Sprintf("context['%s'] is nil", ContextKey))
	}
	if g, ok := v.(*Global); ok {
		return g
	}
	panic(fmt.Sprintf("context['%s'] expected type *Global", ContextKey))
}

func (g *Global) Init(ctx context.Context, config *Config) error {
	g.Config = config
	d, err := inventory.NewDispenser(config.Dispenser.Capacity, g.Log)
	if err != nil {
		return errors.Annotate(err, "init dispenser")
	}
	g.Store = store.NewStore(g.Log, d)
	g.Log.Debugf("init capacity=%d default_item=%s", config.Dispenser.Capacity, config.Store.DefaultItem)
	return nil
}

func (g *Global) MustInit(ctx context.Context, config *Config) {
	if err := g.Init(ctx, config); err != nil {
		g.Log.Fatal(errors.ErrorStack(err))
	}
}

// DefaultTemplate returns a fresh refill template per config.
func (g *Global) DefaultTemplate() *inventory.Item {
	return inventory.NewItem(g.Config.Store.DefaultItem)
}
