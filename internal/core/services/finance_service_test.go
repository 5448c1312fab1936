package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AssoGestion/asso_gestion_app/internal/adapters/memory"
	"github.com/AssoGestion/asso_gestion_app/internal/apperrors"
	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
)

func newFinance(t *testing.T) (*FinanceService, *AuditRecorder) {
	t.Helper()
	cotisations := memory.NewStore[domain.Cotisation, *domain.Cotisation](nil)
	dons := memory.NewStore[domain.Don, *domain.Don](nil)
	depenses := memory.NewStore[domain.Depense, *domain.Depense](nil)
	logs := memory.NewStore[domain.AuditLog, *domain.AuditLog](nil)
	audit := NewAuditRecorder(logs, func() Actor { return Actor{ID: "u1", Name: "Alice"} })
	return NewFinanceService(cotisations, dons, depenses, audit, nil), audit
}

func money(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestDepenseWorkflow_HappyPath(t *testing.T) {
	svc, _ := newFinance(t)
	ctx := context.Background()

	created, err := svc.CreateDepense(ctx, domain.Depense{
		Title:    "Achat chaises",
		Amount:   money("150000"),
		Category: domain.CategorieEquipement,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DepenseDraft, created.Status)

	submitted, err := svc.SubmitDepense(ctx, created.ID, "u-member")
	require.NoError(t, err)
	assert.Equal(t, domain.DepenseSubmitted, submitted.Status)
	assert.Equal(t, "u-member", submitted.SubmittedBy)

	approved, err := svc.ApproveDepense(ctx, created.ID, "u-tresorier")
	require.NoError(t, err)
	assert.Equal(t, domain.DepenseApproved, approved.Status)
	assert.Equal(t, "u-tresorier", approved.ApprovedBy)
}

func TestDepenseWorkflow_InvalidTransitionsConflict(t *testing.T) {
	svc, _ := newFinance(t)
	ctx := context.Background()

	created, err := svc.CreateDepense(ctx, domain.Depense{Title: "X", Amount: money("100")})
	require.NoError(t, err)

	// approve without submit
	_, err = svc.ApproveDepense(ctx, created.ID, "u2")
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	_, err = svc.SubmitDepense(ctx, created.ID, "u1")
	require.NoError(t, err)

	// double submit
	_, err = svc.SubmitDepense(ctx, created.ID, "u1")
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	_, err = svc.ApproveDepense(ctx, created.ID, "u2")
	require.NoError(t, err)

	// reject after approve
	_, err = svc.RejectDepense(ctx, created.ID, "u2", "late")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestRejectDepense_RequiresReason(t *testing.T) {
	svc, _ := newFinance(t)
	ctx := context.Background()

	created, err := svc.CreateDepense(ctx, domain.Depense{Title: "X", Amount: money("100")})
	require.NoError(t, err)
	_, err = svc.SubmitDepense(ctx, created.ID, "u1")
	require.NoError(t, err)

	_, err = svc.RejectDepense(ctx, created.ID, "u2", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	rejected, err := svc.RejectDepense(ctx, created.ID, "u2", "missing receipt")
	require.NoError(t, err)
	assert.Equal(t, domain.DepenseRejected, rejected.Status)
	assert.Equal(t, "missing receipt", rejected.RejectionReason)
}

func TestDepenseWorkflow_UnknownIDNotFound(t *testing.T) {
	svc, _ := newFinance(t)
	_, err := svc.SubmitDepense(context.Background(), "nope", "u1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMarkCotisationPaid(t *testing.T) {
	svc, _ := newFinance(t)
	ctx := context.Background()

	created, err := svc.CreateCotisation(ctx, domain.Cotisation{
		MemberID:   "m1",
		MemberName: "Alice",
		Amount:     money("5000"),
		Period:     "Janvier 2026",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CotisationPending, created.Status)

	paidAt := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	paid, err := svc.MarkCotisationPaid(ctx, created.ID, "cash", paidAt)
	require.NoError(t, err)
	assert.Equal(t, domain.CotisationPaid, paid.Status)
	require.NotNil(t, paid.PaymentDate)
	assert.True(t, paid.PaymentDate.Equal(paidAt))

	_, err = svc.MarkCotisationPaid(ctx, created.ID, "cash", paidAt)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestGenerateDonReceipt_Once(t *testing.T) {
	svc, _ := newFinance(t)
	ctx := context.Background()

	don, err := svc.CreateDon(ctx, domain.Don{DonorName: "Entreprise X", Amount: money("200000")})
	require.NoError(t, err)

	withReceipt, err := svc.GenerateDonReceipt(ctx, don.ID, "https://receipts/d1.pdf")
	require.NoError(t, err)
	assert.True(t, withReceipt.ReceiptGenerated)

	_, err = svc.GenerateDonReceipt(ctx, don.ID, "https://receipts/d1-bis.pdf")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestSummary_CountsOnlyPaidAndApproved(t *testing.T) {
	svc, _ := newFinance(t)
	ctx := context.Background()

	paidAt := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	c1, err := svc.CreateCotisation(ctx, domain.Cotisation{MemberID: "m1", Amount: money("5000"), Period: "Février 2026"})
	require.NoError(t, err)
	_, err = svc.MarkCotisationPaid(ctx, c1.ID, "cash", paidAt)
	require.NoError(t, err)
	_, err = svc.CreateCotisation(ctx, domain.Cotisation{MemberID: "m2", Amount: money("5000"), Period: "Février 2026"})
	require.NoError(t, err)

	_, err = svc.CreateDon(ctx, domain.Don{DonorName: "X", Amount: money("20000")})
	require.NoError(t, err)

	d1, err := svc.CreateDepense(ctx, domain.Depense{Title: "A", Amount: money("8000")})
	require.NoError(t, err)
	_, err = svc.SubmitDepense(ctx, d1.ID, "u1")
	require.NoError(t, err)
	_, err = svc.ApproveDepense(ctx, d1.ID, "u2")
	require.NoError(t, err)

	d2, err := svc.CreateDepense(ctx, domain.Depense{Title: "B", Amount: money("999999")})
	require.NoError(t, err)
	_, err = svc.SubmitDepense(ctx, d2.ID, "u1")
	require.NoError(t, err)

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)

	assert.True(t, summary.TotalCotisations.Equal(money("5000")), summary.TotalCotisations.String())
	assert.True(t, summary.TotalDons.Equal(money("20000")))
	assert.True(t, summary.TotalDepenses.Equal(money("8000")), "submitted depense must not count")
	assert.True(t, summary.Solde.Equal(money("17000")))
	assert.Equal(t, 1, summary.CotisationsPending)
	assert.Equal(t, 1, summary.DepensesPending)
	assert.NotEmpty(t, summary.MonthlyFlows)
}

func TestWorkflow_AppendsAuditEntries(t *testing.T) {
	svc, audit := newFinance(t)
	ctx := context.Background()

	created, err := svc.CreateDepense(ctx, domain.Depense{Title: "Achat", Amount: money("100")})
	require.NoError(t, err)
	_, err = svc.SubmitDepense(ctx, created.ID, "u1")
	require.NoError(t, err)

	entries, err := audit.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "create", entries[0].Action)
	assert.Equal(t, "submit", entries[1].Action)
	assert.Equal(t, "depense", entries[1].EntityName)
	assert.Equal(t, created.ID, entries[1].TargetID)
	assert.Equal(t, "Alice", entries[1].UserName)
}
