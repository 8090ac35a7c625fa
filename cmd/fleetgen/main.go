// fleetgen CLI - generates random fleet fixtures for property-based tests
package main

import (
	"github.com/fleetgen/fleetgen/pkg/cli"
)

// Build-time variable set via ldflags
var Version = "dev"

func main() {
	cli.Execute(Version)
}
