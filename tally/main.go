package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"path"

	"github.com/avigne/pocket/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	log.SetFlags(0)
	if !*cmd.Verbose {
		log.SetOutput(io.Discard)
	}

	os.Exit(int(commander.Execute(context.Background())))
}
