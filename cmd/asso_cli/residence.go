package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
	"github.com/AssoGestion/asso_gestion_app/internal/dto"
)

var residenceCmd = &cobra.Command{
	Use:   "residence",
	Short: "Browse the residence hierarchy",
}

var quartersCmd = &cobra.Command{
	Use:   "quarters",
	Short: "List quarters",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.requireSession(cmd); err != nil {
			return err
		}
		quarters, err := a.residence.ListQuarters(cmd.Context(), dto.ListParams{})
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCITY\tADDRESS")
		for _, q := range quarters {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", q.ID, q.Name, q.City, q.Address)
		}
		return w.Flush()
	},
}

var buildingQuarterFilter string

var buildingsCmd = &cobra.Command{
	Use:   "buildings",
	Short: "List buildings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.requireSession(cmd); err != nil {
			return err
		}
		buildings, err := a.residence.ListBuildings(cmd.Context(),
			dto.BuildingFilter{QuarterID: buildingQuarterFilter}, dto.ListParams{})
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tQUARTER\tADDRESS")
		for _, b := range buildings {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", b.ID, b.Name, b.QuarterID, b.Address)
		}
		return w.Flush()
	},
}

var (
	roomBuildingFilter string
	roomStatusFilter   string
)

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "List rooms with their derived occupancy",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.requireSession(cmd); err != nil {
			return err
		}
		ctx := cmd.Context()
		rooms, err := a.residence.ListRooms(ctx,
			dto.RoomFilter{BuildingID: roomBuildingFilter, Status: roomStatusFilter},
			dto.ListParams{})
		if err != nil {
			return err
		}
		occupations, err := a.residence.ActiveOccupations(ctx)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tROOM\tBUILDING\tCAPACITY\tOCCUPIED\tRENT\tSTATUS")
		for _, r := range rooms {
			occ := domain.ComputeRoomOccupancy(r, occupations)
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\t%s\n",
				r.ID, r.RoomNumber, r.BuildingID, r.Capacity, occ.ActiveCount,
				r.MonthlyRent.StringFixed(0), r.Status)
		}
		return w.Flush()
	},
}

var (
	occupationRoomFilter    string
	occupationStudentFilter string
	occupationActiveOnly    bool
)

var occupationsCmd = &cobra.Command{
	Use:   "occupations",
	Short: "List room occupations",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.requireSession(cmd); err != nil {
			return err
		}
		filter := dto.OccupationFilter{
			RoomID:    occupationRoomFilter,
			StudentID: occupationStudentFilter,
		}
		if occupationActiveOnly {
			active := true
			filter.IsActive = &active
		}
		occupations, err := a.residence.ListOccupations(cmd.Context(), filter, dto.ListParams{})
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tROOM\tSTUDENT\tSTART\tEND\tRENT\tACTIVE")
		for _, o := range occupations {
			end := "-"
			if o.EndDate != nil {
				end = o.EndDate.Format("2006-01-02")
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%t\n",
				o.ID, o.RoomID, o.StudentID, o.StartDate.Format("2006-01-02"), end,
				o.MonthlyRent.StringFixed(0), o.IsActive)
		}
		return w.Flush()
	},
}

var paymentOccupationFilter string

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "List rent payments",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.requireSession(cmd); err != nil {
			return err
		}
		payments, err := a.residence.ListRentPayments(cmd.Context(),
			dto.RentPaymentFilter{OccupationID: paymentOccupationFilter}, dto.ListParams{})
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tOCCUPATION\tSTUDENT\tAMOUNT\tPERIOD\tMETHOD")
		for _, p := range payments {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				p.ID, p.OccupationID, p.StudentID, p.Amount.StringFixed(0), p.Period, p.PaymentMethod)
		}
		return w.Flush()
	},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Occupancy rollup per quarter and building",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.requireSession(cmd); err != nil {
			return err
		}
		ctx := cmd.Context()
		quarters, err := a.residence.ListQuarters(ctx, dto.ListParams{})
		if err != nil {
			return err
		}
		buildings, err := a.residence.ListBuildings(ctx, dto.BuildingFilter{}, dto.ListParams{})
		if err != nil {
			return err
		}
		rooms, err := a.residence.ListRooms(ctx, dto.RoomFilter{}, dto.ListParams{})
		if err != nil {
			return err
		}
		occupations, err := a.residence.ListOccupations(ctx, dto.OccupationFilter{}, dto.ListParams{})
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "QUARTER\tBUILDINGS\tROOMS\tOCCUPIED\tAVAILABLE")
		for _, q := range quarters {
			s := domain.ComputeQuarterSummary(q, buildings, rooms, occupations)
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\n",
				q.Name, s.TotalBuildings, s.TotalRooms, s.OccupiedRooms, s.AvailableRooms)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "BUILDING\tROOMS\tOCCUPIED\tAVAILABLE")
		for _, b := range buildings {
			s := domain.ComputeBuildingSummary(b, rooms, occupations)
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\n",
				b.Name, s.TotalRooms, s.OccupiedRooms, s.AvailableRooms)
		}
		return w.Flush()
	},
}

func init() {
	buildingsCmd.Flags().StringVar(&buildingQuarterFilter, "quarter", "", "filter by quarter id")
	roomsCmd.Flags().StringVar(&roomBuildingFilter, "building", "", "filter by building id")
	roomsCmd.Flags().StringVar(&roomStatusFilter, "status", "", "filter by declared status")
	occupationsCmd.Flags().StringVar(&occupationRoomFilter, "room", "", "filter by room id")
	occupationsCmd.Flags().StringVar(&occupationStudentFilter, "student", "", "filter by student id")
	occupationsCmd.Flags().BoolVar(&occupationActiveOnly, "active", false, "only active occupations")
	paymentsCmd.Flags().StringVar(&paymentOccupationFilter, "occupation", "", "filter by occupation id")

	residenceCmd.AddCommand(quartersCmd, buildingsCmd, roomsCmd, occupationsCmd, paymentsCmd, summaryCmd)
}
