// Command mcserver runs the protocol-335 server.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "mcserver",
		Short: "A Minecraft Java Edition protocol-335 server",
	}

	root.AddCommand(newServeCommand())
	return root
}
