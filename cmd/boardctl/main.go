package main

import (
	"os"

	"github.com/changhyeonkim/tutor-board/go-api-server/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
