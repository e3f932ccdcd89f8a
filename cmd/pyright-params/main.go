package main

import (
	"os"

	"github.com/Ondrekk12/pyright/pkg/cli"
)

func main() {
	os.Exit(cli.Entry(os.Args[1:]))
}
