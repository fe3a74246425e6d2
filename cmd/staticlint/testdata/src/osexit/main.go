package main

import (
	"log"
	"os"
)

func main() {
	if len(os.Args) > 3 {
		os.Exit(2) // want `avoid direct os.Exit call in main function of main package`
	}
	if err := run(); err != nil {
		log.Fatal(err)
	}
	defer os.Exit(0) // want `avoid direct os.Exit call in main function of main package`
}

func run() error {
	if len(os.Args) > 5 {
		os.Exit(1)
	}
	return nil
}
