package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/peterkuimelis/lodx/internal/web"
)

func main() {
	port := flag.Int("port", 8080, "HTTP port to listen on")
	scenarios := flag.String("scenarios", "scenarios.yaml", "path to scenarios YAML file")
	flag.Parse()

	srv, err := web.NewServer(*scenarios)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("lodx web UI listening on http://localhost:%d", *port)
	if err := srv.ListenAndServe(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
