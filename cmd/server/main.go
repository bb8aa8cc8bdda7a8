// Command server runs the lab sample HTTP API.
//
// Flags:
//
//	--config  path to the YAML config file (default: $CONFIG_PATH, then ./config.yaml)
//
// Environment variables override file values. Exit codes: 0 = clean
// shutdown, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/heartmarshall/labsample-backend/internal/app"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	if err := app.Run(context.Background(), *configFlag); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}
