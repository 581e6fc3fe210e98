// Command tripmatch reconciles a driver data archive from the command
// line, without running the API server.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
