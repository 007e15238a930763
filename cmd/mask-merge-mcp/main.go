package main

import (
	"fmt"
	"log"
	"os"

	"github.com/masktools/mask-merge-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("mask-merge-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("mask-merge-mcp - MCP server for merging overlapping segmentation polygons")
			fmt.Println()
			fmt.Println("Usage: mask-merge-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  MASK_MERGE_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println()
			fmt.Println("The server speaks MCP (JSON-RPC 2.0) on stdin/stdout; point an MCP")
			fmt.Println("client at this binary and call the merge tools from there.")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv("MASK_MERGE_LOG_LEVEL") == "debug" {
		log.Printf("mask-merge-mcp %s starting (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New()
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
