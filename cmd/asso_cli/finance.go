package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var cotisationsCmd = &cobra.Command{
	Use:   "cotisations",
	Short: "Membership dues",
}

var cotisationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cotisations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cotisations, err := a.finance.ListCotisations(cmd.Context())
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tMEMBER\tAMOUNT\tPERIOD\tSTATUS\tMETHOD")
		for _, c := range cotisations {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				c.ID, c.MemberName, c.Amount.StringFixed(0), c.Period, c.Status, c.PaymentMethod)
		}
		return w.Flush()
	},
}

var payMethod string

var cotisationsPayCmd = &cobra.Command{
	Use:   "pay <id>",
	Short: "Mark a cotisation as paid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := a.finance.MarkCotisationPaid(cmd.Context(), args[0], payMethod, time.Now())
		if err != nil {
			return err
		}
		fmt.Printf("Cotisation %s (%s) marked paid\n", c.ID, c.Period)
		return nil
	},
}

var donsCmd = &cobra.Command{
	Use:   "dons",
	Short: "List donations",
	RunE: func(cmd *cobra.Command, args []string) error {
		dons, err := a.finance.ListDons(cmd.Context())
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDONOR\tAMOUNT\tRECEIPT\tDESCRIPTION")
		for _, d := range dons {
			receipt := "-"
			if d.ReceiptGenerated {
				receipt = d.ReceiptURL
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				d.ID, d.DonorName, d.Amount.StringFixed(0), receipt, d.Description)
		}
		return w.Flush()
	},
}

var depensesCmd = &cobra.Command{
	Use:   "depenses",
	Short: "Expense approval workflow",
}

var depensesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List expenses",
	RunE: func(cmd *cobra.Command, args []string) error {
		depenses, err := a.finance.ListDepenses(cmd.Context())
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tAMOUNT\tCATEGORY\tSTATUS\tSUBMITTED BY")
		for _, d := range depenses {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				d.ID, d.Title, d.Amount.StringFixed(0), d.Category, d.Status, d.SubmittedBy)
		}
		return w.Flush()
	},
}

var depensesSubmitCmd = &cobra.Command{
	Use:   "submit <id>",
	Short: "Submit a draft expense for approval",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		actor := a.currentActor()
		d, err := a.finance.SubmitDepense(cmd.Context(), args[0], actor.ID)
		if err != nil {
			return err
		}
		fmt.Printf("Depense %q submitted\n", d.Title)
		return nil
	},
}

var depensesApproveCmd = &cobra.Command{
	Use:   "approve <id>",
	Short: "Approve a submitted expense",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		actor := a.currentActor()
		d, err := a.finance.ApproveDepense(cmd.Context(), args[0], actor.ID)
		if err != nil {
			return err
		}
		fmt.Printf("Depense %q approved\n", d.Title)
		return nil
	},
}

var rejectReason string

var depensesRejectCmd = &cobra.Command{
	Use:   "reject <id>",
	Short: "Reject a submitted expense",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		actor := a.currentActor()
		d, err := a.finance.RejectDepense(cmd.Context(), args[0], actor.ID, rejectReason)
		if err != nil {
			return err
		}
		fmt.Printf("Depense %q rejected: %s\n", d.Title, d.RejectionReason)
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Financial summary with monthly evolution",
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := a.finance.Summary(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("Cotisations:  %s\n", summary.TotalCotisations.StringFixed(0))
		fmt.Printf("Dons:         %s\n", summary.TotalDons.StringFixed(0))
		fmt.Printf("Depenses:     %s\n", summary.TotalDepenses.StringFixed(0))
		fmt.Printf("Solde:        %s\n", summary.Solde.StringFixed(0))
		fmt.Printf("Pending:      %d cotisations, %d depenses\n",
			summary.CotisationsPending, summary.DepensesPending)

		if len(summary.MonthlyFlows) > 0 {
			fmt.Println()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MONTH\tCOTISATIONS\tDONS\tDEPENSES")
			for _, f := range summary.MonthlyFlows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					f.Month, f.Cotisations.StringFixed(0), f.Dons.StringFixed(0), f.Depenses.StringFixed(0))
			}
			return w.Flush()
		}
		return nil
	},
}

func init() {
	cotisationsPayCmd.Flags().StringVar(&payMethod, "method", "Espèces", "payment method")
	depensesRejectCmd.Flags().StringVar(&rejectReason, "reason", "", "rejection reason")
	_ = depensesRejectCmd.MarkFlagRequired("reason")

	cotisationsCmd.AddCommand(cotisationsListCmd, cotisationsPayCmd)
	depensesCmd.AddCommand(depensesListCmd, depensesSubmitCmd, depensesApproveCmd, depensesRejectCmd)
}
