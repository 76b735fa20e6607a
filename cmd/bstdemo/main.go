package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"
)

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&cmdTraverse{out: os.Stdout, logger: logger}, "")
	subcommands.Register(&cmdShape{out: os.Stdout, logger: logger}, "")
	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
