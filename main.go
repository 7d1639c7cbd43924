package main

import "github.com/Rudrajiii/ClipBoard-Manager-Tool/cmd"

// Build-time variables (set by GoReleaser)
var (
	Version = "0.0.0-dev" // Will be replaced by -ldflags
)

func main() {
	cmd.Execute(Version)
}
