// dispense-cli is an interactive playground over one configured store.
package main

import (
	"context"
	"flag"
	"os"
	"strings"

	prompt "github.com/c-bata/go-prompt"

	"github.com/vendlab/dispense/helpers/cli"
	"github.com/vendlab/dispense/internal/state"
	"github.com/vendlab/dispense/log2"
)

const usage = `syntax: commands separated by whitespace
- refill        fill the dispenser to capacity with the default item
- get NAME      take first item named NAME, show it
- drink NAME    take item NAME and consume it
- status        show count/capacity
- log=yes       enable debug logging
- log=no        disable debug logging
- help          this text
`

var log = log2.NewStderr(log2.LInfo)

func main() {
	cmdline := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	configPath := cmdline.String("config", "dispense.hcl", "")
	cmdline.Parse(os.Args[1:])

	log.SetFlags(log2.LInteractiveFlags)

	ctx, g := state.NewContext(log)
	fs := state.NewOsFullReader()
	g.MustInit(ctx, state.MustReadConfig(log, fs, *configPath))
	log.Infof("store ready capacity=%d default_item=%s", g.Store.Capacity(), g.Config.Store.DefaultItem)

	cli.MainLoop("dispense", newExecutor(ctx), newCompleter(ctx))
}

func newExecutor(ctx context.Context) func(string) {
	g := state.GetGlobal(ctx)
	return func(line string) {
		line = strings.TrimSpace(line)
		if line == "" {
			return
		}
		words := strings.Fields(line)
		switch words[0] {
		case "help":
			log.Infof(usage)
		case "log=yes":
			log.SetLevel(log2.LDebug)
		case "log=no":
			log.SetLevel(log2.LInfo)
		case "status":
			log.Infof("count=%d capacity=%d", g.Store.Count(), g.Store.Capacity())
		case "refill":
			if err := g.Store.Refill(g.DefaultTemplate()); err != nil {
				log.Errorf("refill: %v", err)
				return
			}
			log.Infof("refilled count=%d", g.Store.Count())
		case "get", "drink":
			if len(words) != 2 {
				log.Errorf("%s requires item name, see help", words[0])
				return
			}
			item := g.Store.Get(words[1])
			if item == nil {
				log.Infof("no more %s", words[1])
				return
			}
			if words[0] == "drink" {
				item.Drink()
			}
			log.Infof("%s count=%d", item.String(), g.Store.Count())
		default:
			log.Errorf("unknown command=%s, see help", words[0])
		}
	}
}

func newCompleter(ctx context.Context) func(d prompt.Document) []prompt.Suggest {
	g := state.GetGlobal(ctx)
	suggests := []prompt.Suggest{
		{Text: "refill", Description: "fill dispenser to capacity"},
		{Text: "get " + g.Config.Store.DefaultItem, Description: "take item by name"},
		{Text: "drink " + g.Config.Store.DefaultItem, Description: "take and consume item"},
		{Text: "status", Description: "show count/capacity"},
		{Text: "log=yes", Description: "debug logging"},
		{Text: "log=no", Description: "quiet logging"},
		{Text: "help", Description: "usage"},
	}
	return func(d prompt.Document) []prompt.Suggest {
		return prompt.FilterFuzzy(suggests, d.GetWordBeforeCursor(), true)
	}
}
