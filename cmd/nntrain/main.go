// Package main provides the nntrain CLI.
package main

import (
	"fmt"
	"os"

	"github.com/nntrain-ml/nntrain/internal/config"
	"github.com/nntrain-ml/nntrain/internal/export"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "version":
		fmt.Printf("nntrain %s\n", version)
	case "validate":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: nntrain validate <config.yml>")
			os.Exit(2)
		}
		if err := validate(os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "nntrain: %v\n", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("nntrain - neural network training runtime")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version              Show version")
	fmt.Println("  validate <config>    Resolve and check a model configuration file")
}

// validate loads a configuration file and prints the resolved optimizer
// description.
func validate(path string) error {
	cfg, err := config.LoadFile(path)
	if err != nil {
		return err
	}

	e := export.NewExporter()
	e.BeginSection("optimizer")
	cfg.Optimizer.ExportTo(e, export.MethodINI)

	fmt.Printf("%s: ok (%d layers)\n", path, len(cfg.Layers))
	fmt.Print(e.Render(export.MethodINI))
	return nil
}
