package main

import (
	"fmt"
	"os"

	"roundrect/internal/cli"
	"roundrect/internal/gui"
)

func main() {
	if args, ok := cli.EditorArgs(os.Args[1:]); ok {
		if _, verbose := cli.SplitVerbose(os.Args[1:]); verbose {
			cli.EnableDebugLog(os.Stderr)
		}
		cmdGUI(args)
		return
	}

	if rest, _ := cli.SplitVerbose(os.Args[1:]); len(rest) > 0 {
		switch rest[0] {
		case "help", "-h", "--help":
			cli.PrintUsage(os.Stdout)
			fmt.Println(`  gui [scene.yaml]              Open the editor
  <scene.yaml>                  Open a scene in the editor (shortcut)`)
			return
		}
	}
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}

func cmdGUI(args []string) {
	app := gui.NewApp()

	if len(args) > 0 {
		app.RunWithFile(args[0])
	} else {
		app.Run()
	}
}
