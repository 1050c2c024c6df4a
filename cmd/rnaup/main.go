package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

// main is the entry point for the rnaup command line utility. It is
// separated from run and application to keep each piece independently
// testable.
func main() {
	run(os.Args)
}

// run builds the application and executes it against args, logging and
// exiting non-zero on failure.
func run(args []string) {
	app := application()
	if err := app.Run(args); err != nil {
		log.Fatal(err)
	}
}

// application defines the rnaup CLI: a single "predict" command that
// reads two FASTA files and reports their minimum free energy
// interaction.
func application() *cli.App {
	return &cli.App{
		Name:  "rnaup",
		Usage: "predict the minimum free energy hybridization site between two RNA sequences",
		Commands: []*cli.Command{
			predictCommand(),
		},
	}
}
