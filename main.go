package main

import (
	"context"
	"fmt"
	"os"

	"calc-app/cli"
)

func main() {
	// Logging and the TraceID are configured by the CLI once flags are parsed;
	// failures have already been logged by the time Run returns.
	if err := cli.New().Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
