package cli

import "fmt"

// Version is overridden at build time with -ldflags "-X".
var Version = "v0.1.0"

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	_, err := fmt.Fprintf(ctx.stdout(), "vecloc %s\n", Version)
	return err
}
