package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/AssoGestion/asso_gestion_app/internal/adapters/memory"
	"github.com/AssoGestion/asso_gestion_app/internal/adapters/rest"
	"github.com/AssoGestion/asso_gestion_app/internal/apiclient"
	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
	"github.com/AssoGestion/asso_gestion_app/internal/core/ports"
	"github.com/AssoGestion/asso_gestion_app/internal/core/services"
	"github.com/AssoGestion/asso_gestion_app/internal/platform/config"
	"github.com/AssoGestion/asso_gestion_app/internal/session"
)

// app carries the wired service stack shared by every command. Population
// happens once in PersistentPreRunE, after flags and env are resolved.
type app struct {
	cfg    *config.Config
	logger *slog.Logger

	tokens    *apiclient.TokenHolder
	client    *apiclient.Client
	manager   *session.Manager
	auth      ports.AuthSvc
	residence ports.ResidenceSvc
	students  ports.StudentSvc
	finance   *services.FinanceService
	audit     *services.AuditRecorder
}

var a = &app{}

var rootCmd = &cobra.Command{
	Use:           "asso_cli",
	Short:         "Dashboard CLI of the student association",
	Long:          "asso_cli manages members, students, residences and association finances against the backend (or its in-memory mock).",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return a.setup()
	},
}

func (a *app) setup() error {
	a.logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(a.logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.tokens = &apiclient.TokenHolder{}
	a.client = apiclient.New(cfg.APIBaseURL, cfg.HTTPTimeout, a.tokens)

	if cfg.UseMockData {
		a.auth = nil // mock mode has no remote auth; session guard is skipped
		a.residence = memory.NewResidenceService()
		a.students = memory.NewStudentService()
	} else {
		a.auth = rest.NewAuthService(a.client)
		a.residence = rest.NewResidenceService(a.client)
		a.students = rest.NewStudentService(a.client)
	}

	store, err := session.NewFileStore(cfg.SessionDir)
	if err != nil {
		return err
	}
	if a.auth != nil {
		a.manager = session.NewManager(a.auth, store, a.tokens, a.logger)
	}

	// Finance records live locally: the backend carries no finance surface,
	// so the workflow runs over seeded in-memory stores.
	logs := memory.NewStore[domain.AuditLog, *domain.AuditLog](nil)
	a.audit = services.NewAuditRecorder(logs, a.currentActor)
	a.finance = services.NewFinanceService(
		memory.NewStore[domain.Cotisation, *domain.Cotisation](memory.CotisationFixtures()),
		memory.NewStore[domain.Don, *domain.Don](memory.DonFixtures()),
		memory.NewStore[domain.Depense, *domain.Depense](memory.DepenseFixtures()),
		a.audit,
		a.logger,
	)
	return nil
}

func (a *app) currentActor() services.Actor {
	if a.manager != nil {
		if state := a.manager.State(); state.User != nil {
			return services.Actor{ID: state.User.ID, Name: state.User.Name}
		}
	}
	return services.Actor{ID: "cli", Name: "cli"}
}

// requireSession guards protected commands; mock mode needs no session.
func (a *app) requireSession(cmd *cobra.Command) error {
	if a.manager == nil {
		return nil
	}
	_, err := session.RequireAuth(cmd.Context(), a.manager)
	return err
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd, signupCmd)
	rootCmd.AddCommand(studentsCmd, usersCmd, residenceCmd)
	rootCmd.AddCommand(cotisationsCmd, donsCmd, depensesCmd, reportCmd)
}
