package main

import (
	"context"
	"log"
	"os"

	"github.com/OpticalFlyer/anchorgui/commands"
)

var version = "dev"

func main() {
	if err := commands.Root(version, runWindow).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
