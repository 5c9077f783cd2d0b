package main

import (
	"log"
	"os"

	"github.com/kianooshaz/http-origin/server"
)

// parseArgs scans the argument list for --directory/-d and ignores anything
// it does not recognize.
func parseArgs(args []string) (server.Config, error) {
	var cfg server.Config
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--directory", "-d":
			i++
			if i >= len(args) {
				return cfg, os.ErrInvalid
			}
			cfg.Directory = args[i]
		}
	}
	return cfg, nil
}

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Fatal("--directory requires a path")
	}

	addr := "127.0.0.1:4221"
	s := server.Server{
		Addr:   addr,
		Config: cfg,
	}
	log.Printf("Starting web server: http://%s", addr)
	if err := s.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
