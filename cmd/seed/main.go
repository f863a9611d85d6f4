// Package main seeds the local development database with a demo account so
// the login flow has something to authenticate against.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	seedcmd "github.com/duongpm13/cat-battle/internal/cmd/seed"
)

func main() {
	cfg, err := seedcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[SEED] ")

	if err := seedcmd.Run(context.Background(), cfg); err != nil {
		log.Fatalf("failed to seed: %v", err)
	}
}
