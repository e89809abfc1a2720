package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"calix/internal/cmd"
	"calix/internal/config"
	"calix/internal/theme"
	"calix/internal/version"
)

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		settings = &config.Settings{}
	}

	// Parse CLI arguments with Kong
	var cli cmd.CLI
	cli.SetSettings(settings)
	ctx := kong.Parse(&cli,
		kong.Name("calix"),
		kong.Description(version.Tagline),
		kong.UsageOnError(),
		kong.Vars{"version": version.Info()},
	)

	// Execute the selected command, then flush pending writes
	runErr := ctx.Run(&cli)
	closeErr := cli.Close()

	for _, err := range []error{runErr, closeErr} {
		if err != nil {
			fmt.Fprintln(os.Stderr, theme.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		}
	}
	if runErr != nil || closeErr != nil {
		os.Exit(1)
	}
}
