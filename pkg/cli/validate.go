package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fleetgen/fleetgen/pkg/profile"
)

var validateCmd = &cobra.Command{
	Use:   "validate <profile>",
	Short: "Validate a generation profile without sampling",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := profile.Load(args[0])
		if err != nil {
			return err
		}
		if _, err := p.DeviceParams(); err != nil {
			return fmt.Errorf("profile %s: %w", args[0], err)
		}
		fmt.Printf("%s: valid\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
