package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	lodxmcp "github.com/peterkuimelis/lodx/internal/mcp"
)

func main() {
	port := flag.String("port", "9999", "TCP port for the optional human player connection")
	flag.Parse()

	lodxmcp.SetPort(*port)

	s := server.NewMCPServer("lodx", "1.0.0")
	lodxmcp.RegisterTools(s)

	if err := server.ServeStdio(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
