package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inkstack-labs/inkwell/pkg/device"
)

// NewDevicesCommand creates the devices command.
func NewDevicesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List registered device backends",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range device.List() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
