package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"wrapads/internal/lifecycle"
	"wrapads/internal/models"
)

func transitionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "transitions [status]",
		Short: "print the campaign status table, or the actions one status offers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				status, err := models.ParseCampaignStatus(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(out, formatActions(status))
				return nil
			}
			for _, row := range lifecycle.TransitionTable() {
				fmt.Fprintf(out, "%-10s %s\n", row.Status, formatActions(row.Status))
			}
			return nil
		},
	}
}

func formatActions(status models.CampaignStatus) string {
	actions := lifecycle.OfferedActions(status)
	if len(actions) == 0 {
		return "(terminal)"
	}
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		parts = append(parts, fmt.Sprintf("%s -> %s", a.Name, a.To))
	}
	return strings.Join(parts, ", ")
}
