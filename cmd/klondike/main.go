package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"1" help:"Play solitaire in the terminal"`
	Serve   ServeCmd         `cmd:"" help:"Serve the browser version of the game"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("klondike"),
		kong.Description("Klondike solitaire for the terminal and the browser"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
