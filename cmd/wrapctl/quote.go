package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wrapads/internal/models"
	"wrapads/internal/pricing"
	"wrapads/internal/validation"
)

func quoteCommand() *cobra.Command {
	var payment, start, end string
	var drivers int

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "preview the duration, driver earnings and total cost of a campaign",
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := models.ParseAmount(payment)
			if err != nil {
				return err
			}
			from, err := models.ParseDate(start)
			if err != nil {
				return err
			}
			to, err := models.ParseDate(end)
			if err != nil {
				return err
			}
			if err := validation.Quote(amount, from.Time, to.Time, drivers); err != nil {
				return err
			}

			q := pricing.NewQuote(amount, from.Time, to.Time, drivers)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Duration:        %s\n", q.Duration)
			fmt.Fprintf(out, "Days:            %d\n", q.Days)
			fmt.Fprintf(out, "Payment per day: %s\n", q.PaymentPerDay)
			fmt.Fprintf(out, "Drivers:         %d\n", q.RequiredDrivers)
			fmt.Fprintf(out, "Driver earnings: %s\n", q.DriverEarnings)
			fmt.Fprintf(out, "Total cost:      %s\n", q.TotalCost)
			return nil
		},
	}

	cmd.Flags().StringVar(&payment, "payment", "", "payment per day")
	cmd.Flags().StringVar(&start, "start", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "end date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&drivers, "drivers", 1, "required drivers")
	_ = cmd.MarkFlagRequired("payment")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}
