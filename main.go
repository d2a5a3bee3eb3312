package main

import (
	"os"

	"github.com/voyomusic/voyo-ops/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
