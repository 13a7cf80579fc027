package main

import (
	"os"

	"github.com/bnema/fifochat/cmd"
)

func main() {
	if err := cmd.ExecuteServer(); err != nil {
		os.Exit(1)
	}
}
