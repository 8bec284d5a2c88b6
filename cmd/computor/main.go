package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/midbel/computor/internal/angle"
	"github.com/midbel/computor/internal/history"
	"github.com/midbel/computor/internal/repl"
)

func main() {
	historyPath := flag.String("history", "computor_history.db", "persist (line, outcome) pairs to this bbolt file")
	degrees := flag.Bool("degrees", false, "start in degrees angle mode instead of radians")
	flag.Parse()

	var store *history.Store
	if *historyPath != "" {
		s, err := history.Open(*historyPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer s.Close()
		store = s
	}

	session := repl.New(store)
	if *degrees {
		session.AngleMode().Set(angle.Degrees)
	}

	if err := session.Run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
