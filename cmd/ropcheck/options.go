package main

import (
	"strings"

	"github.com/samber/lo"
)

type options struct {
	At       string `long:"at" short:"a" env:"ROPCHECK_AT" description:"Dot separated field path of the value to extract. Empty means the document root."`
	As       string `long:"as" env:"ROPCHECK_AS" default:"any" choice:"any" choice:"string" choice:"number" choice:"int" choice:"bool" choice:"date" description:"Expected type of the value."`
	Format   string `long:"format" short:"f" env:"ROPCHECK_FORMAT" default:"auto" choice:"auto" choice:"json" choice:"yaml" description:"Input format. auto picks YAML for .yaml/.yml files and JSON otherwise."`
	Optional bool   `long:"optional" description:"Report a missing or mistyped value as absent instead of failing."`
	Lines    int    `long:"lines" env:"ROPCHECK_LINES" description:"Documents parsed concurrently (default: number of CPUs)."`
	NoColor  bool   `long:"no-color" description:"Disable colored output."`
	Debug    bool   `long:"debug" description:"Enable debug logging to stderr."`

	Args struct {
		Files []string `positional-arg-name:"FILE" description:"Documents to check. Reads stdin when none or '-' is given."`
	} `positional-args:"yes"`
}

func (o options) path() []string {
	return lo.Compact(strings.Split(o.At, "."))
}

func (o options) files() []string {
	if len(o.Args.Files) == 0 {
		return []string{"-"}
	}
	return o.Args.Files
}
