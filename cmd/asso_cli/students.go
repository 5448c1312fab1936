package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
	"github.com/AssoGestion/asso_gestion_app/internal/dto"
)

var studentsCmd = &cobra.Command{
	Use:   "students",
	Short: "Manage student profiles",
}

var (
	studentStatusFilter string
	studentLevelFilter  string
	studentPage         int
	studentLimit        int
)

var studentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List students",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.requireSession(cmd); err != nil {
			return err
		}
		students, err := a.students.ListStudents(cmd.Context(),
			dto.StudentFilter{Status: studentStatusFilter, Level: studentLevelFilter},
			dto.ListParams{Page: studentPage, Limit: studentLimit})
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tMATRICULE\tLEVEL\tFACULTY\tCITY\tSTATUS")
		for _, s := range students {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				s.ID, s.Matricule, s.Level, s.Faculty, s.City, s.Status)
		}
		return w.Flush()
	},
}

var studentsGetCmd = &cobra.Command{
	Use:   "get <id|matricule>",
	Short: "Show one student, by id or by matricule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.requireSession(cmd); err != nil {
			return err
		}
		s, err := a.students.GetStudent(cmd.Context(), args[0])
		if err != nil {
			// fall back to a matricule lookup
			s, err = a.students.GetStudentByMatricule(cmd.Context(), args[0])
			if err != nil {
				return err
			}
		}
		fmt.Printf("ID:         %s\n", s.ID)
		fmt.Printf("Matricule:  %s\n", s.Matricule)
		fmt.Printf("User ID:    %s\n", s.UserID)
		fmt.Printf("Level:      %s\n", s.Level)
		fmt.Printf("Faculty:    %s\n", s.Faculty)
		fmt.Printf("Field:      %s\n", s.FieldOfStudy)
		fmt.Printf("Country:    %s\n", s.Country)
		fmt.Printf("City:       %s\n", s.City)
		fmt.Printf("Status:     %s\n", s.Status)
		return nil
	},
}

var createStudentReq dto.CreateStudentRequest

var studentsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a student profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.requireSession(cmd); err != nil {
			return err
		}
		s, err := a.students.CreateStudent(cmd.Context(), createStudentReq)
		if err != nil {
			return err
		}
		fmt.Printf("Created student %s (%s)\n", s.Matricule, s.ID)
		return nil
	},
}

var (
	updateLevel  string
	updateCity   string
	updateStatus string
)

var studentsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a student; only the provided flags are sent",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.requireSession(cmd); err != nil {
			return err
		}
		var patch dto.StudentPatch
		if cmd.Flags().Changed("level") {
			patch.Level = &updateLevel
		}
		if cmd.Flags().Changed("city") {
			patch.City = &updateCity
		}
		if cmd.Flags().Changed("status") {
			status := domain.StudentStatus(updateStatus)
			patch.Status = &status
		}
		s, err := a.students.UpdateStudent(cmd.Context(), args[0], patch)
		if err != nil {
			return err
		}
		fmt.Printf("Updated student %s\n", s.Matricule)
		return nil
	},
}

var studentsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a student profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.requireSession(cmd); err != nil {
			return err
		}
		if _, err := a.students.DeleteStudent(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("Deleted", args[0])
		return nil
	},
}

var userRoleFilter string

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List association member accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := a.requireSession(cmd); err != nil {
			return err
		}
		users, err := a.students.ListUsers(cmd.Context(),
			dto.UserFilter{Role: userRoleFilter}, dto.ListParams{})
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tACTIVE")
		for _, u := range users {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%t\n", u.ID, u.Name, u.Email, u.Role, u.IsActive)
		}
		return w.Flush()
	},
}

func init() {
	studentsListCmd.Flags().StringVar(&studentStatusFilter, "status", "", "filter by status")
	studentsListCmd.Flags().StringVar(&studentLevelFilter, "level", "", "filter by study level (L1..M2)")
	studentsListCmd.Flags().IntVar(&studentPage, "page", 0, "page number")
	studentsListCmd.Flags().IntVar(&studentLimit, "limit", 0, "page size")

	studentsCreateCmd.Flags().StringVar(&createStudentReq.UserID, "user-id", "", "account id of the student")
	studentsCreateCmd.Flags().StringVar(&createStudentReq.RegistrationNumber, "matricule", "", "registration number")
	studentsCreateCmd.Flags().StringVar(&createStudentReq.LevelStudy, "level", "", "study level")
	studentsCreateCmd.Flags().StringVar(&createStudentReq.Faculty, "faculty", "", "faculty")
	studentsCreateCmd.Flags().StringVar(&createStudentReq.FieldOfStudy, "field", "", "field of study")
	studentsCreateCmd.Flags().StringVar(&createStudentReq.Country, "country", "", "country of origin")
	studentsCreateCmd.Flags().StringVar(&createStudentReq.City, "city", "", "city")
	_ = studentsCreateCmd.MarkFlagRequired("user-id")
	_ = studentsCreateCmd.MarkFlagRequired("matricule")

	studentsUpdateCmd.Flags().StringVar(&updateLevel, "level", "", "study level")
	studentsUpdateCmd.Flags().StringVar(&updateCity, "city", "", "city")
	studentsUpdateCmd.Flags().StringVar(&updateStatus, "status", "", "status")

	usersCmd.Flags().StringVar(&userRoleFilter, "role", "", "filter by role")

	studentsCmd.AddCommand(studentsListCmd, studentsGetCmd, studentsCreateCmd, studentsUpdateCmd, studentsDeleteCmd)
}
