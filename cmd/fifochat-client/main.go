package main

import (
	"os"

	"github.com/bnema/fifochat/cmd"
)

func main() {
	if err := cmd.ExecuteClient(); err != nil {
		os.Exit(1)
	}
}
