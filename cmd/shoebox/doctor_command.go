package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"shoebox/internal/deps"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check external tool availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			statuses := deps.CheckBinaries(deps.Requirements(cfg))
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			missingRequired := false
			for _, status := range statuses {
				kind := statusOK
				message := status.Description
				if !status.Available {
					if status.Optional {
						kind = statusWarn
						message = status.Detail + " (optional)"
					} else {
						kind = statusError
						message = status.Detail
						missingRequired = true
					}
				}
				fmt.Fprintln(out, renderStatusLine(status.Name, kind, message, colorize))
			}

			if missingRequired {
				return fmt.Errorf("required external tools are missing")
			}
			return nil
		},
	}
}
