package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
)

// Console colors
var red = color.New(color.FgRed, color.Bold)

func main() {
	if err := run(os.Stdout, outputFile); err != nil {
		red.Fprintf(os.Stderr, "✗ %v\n", err)
		os.Exit(1)
	}
}

// run renders the logo, writes it to path and reports success on out.
func run(out io.Writer, path string) error {
	img := renderLogo()

	if err := saveLogo(path, img); err != nil {
		return err
	}

	if _, err := fmt.Fprintln(out, "Test logo created successfully"); err != nil {
		return goerr.Wrap(err, "failed to report completion")
	}
	return nil
}
