package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errMockMode = errors.New("authentication is disabled in mock data mode (USE_MOCK_DATA=true)")

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the backend and persist the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if a.manager == nil {
			return errMockMode
		}
		if err := a.manager.Init(); err != nil {
			return err
		}
		if err := a.manager.Login(cmd.Context(), loginEmail, loginPassword); err != nil {
			return fmt.Errorf("login failed: %s", a.manager.State().Err)
		}
		state := a.manager.State()
		fmt.Printf("Logged in as %s (%s)\n", state.User.Name, state.User.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if a.manager == nil {
			return errMockMode
		}
		if err := a.manager.Init(); err != nil {
			return err
		}
		a.manager.Logout(cmd.Context())
		fmt.Println("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session's user",
	RunE: func(cmd *cobra.Command, args []string) error {
		if a.manager == nil {
			return errMockMode
		}
		if err := a.requireSession(cmd); err != nil {
			return err
		}
		u := a.manager.State().User
		fmt.Printf("%s <%s> role=%s id=%s\n", u.Name, u.Email, u.Role, u.ID)
		return nil
	},
}

var (
	signupName     string
	signupEmail    string
	signupPassword string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a new account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		if a.manager == nil {
			return errMockMode
		}
		if err := a.manager.Init(); err != nil {
			return err
		}
		if err := a.manager.Signup(cmd.Context(), signupName, signupEmail, signupPassword); err != nil {
			return fmt.Errorf("signup failed: %s", a.manager.State().Err)
		}
		state := a.manager.State()
		fmt.Printf("Account created; logged in as %s (%s)\n", state.User.Name, state.User.Role)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	signupCmd.Flags().StringVar(&signupName, "name", "", "full name")
	signupCmd.Flags().StringVar(&signupEmail, "email", "", "account email")
	signupCmd.Flags().StringVar(&signupPassword, "password", "", "account password")
	_ = signupCmd.MarkFlagRequired("name")
	_ = signupCmd.MarkFlagRequired("email")
	_ = signupCmd.MarkFlagRequired("password")
}
