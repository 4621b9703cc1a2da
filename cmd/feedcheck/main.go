// Package main provides the feedcheck CLI for validating and normalizing RSS
// feeds.
package main

import (
	"fmt"
	"io"
	"os"
)

const version = "1.0.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes a single command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	var err error
	switch args[0] {
	case "validate", "summary", "normalize":
		if len(args) < 2 {
			fmt.Fprintf(stderr, "Usage: feedcheck %s <file|->\n", args[0])
			return 1
		}
		err = runFeedCommand(args[0], args[1:], stdin, stdout, stderr)
	case "version", "--version", "-v":
		fmt.Fprintf(stdout, "feedcheck version %s\n", version)
	case "help", "--help", "-h":
		printUsage(stdout)
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", args[0])
		printUsage(stderr)
		return 1
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `feedcheck - Validate, summarise and normalize RSS 2.0 feeds

Usage:
  feedcheck <command> [arguments]

Commands:
  validate <file>             Import in strict mode and report the first invalid field
  summary [-metrics] <file>   Import leniently and report what was skipped
  normalize <file>            Import and write the feed back as canonical RSS
  version                     Print version information
  help                        Show this help message

Use "-" as the file to read from standard input.

Environment Variables:
  RSSFEED_STRICT            Fail on the first invalid element
  RSSFEED_SANITIZE          Sanitize description HTML
  RSSFEED_SANITIZE_POLICY   "default" or "strict"
  RSSFEED_GENERATE_GUIDS    Generate guids for items without one
  RSSFEED_DEBUG             Enable debug logging

Configuration:
  Create .feedcheck.yaml in the working directory or any parent.`)
}
