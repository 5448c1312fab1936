// Package services holds the application services that sit above the data
// layer: the finance workflow and the audit trail.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AssoGestion/asso_gestion_app/internal/apperrors"
	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
	"github.com/AssoGestion/asso_gestion_app/internal/core/ports"
)

// FinanceService manages cotisations, dons and the depense approval
// workflow. Money never leaves decimal space here.
type FinanceService struct {
	cotisations ports.DataService[domain.Cotisation]
	dons        ports.DataService[domain.Don]
	depenses    ports.DataService[domain.Depense]
	audit       *AuditRecorder
	logger      *slog.Logger
}

func NewFinanceService(
	cotisations ports.DataService[domain.Cotisation],
	dons ports.DataService[domain.Don],
	depenses ports.DataService[domain.Depense],
	audit *AuditRecorder,
	logger *slog.Logger,
) *FinanceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FinanceService{
		cotisations: cotisations,
		dons:        dons,
		depenses:    depenses,
		audit:       audit,
		logger:      logger,
	}
}

// Cotisations

func (s *FinanceService) ListCotisations(ctx context.Context) ([]domain.Cotisation, error) {
	return s.cotisations.GetAll(ctx)
}

func (s *FinanceService) CreateCotisation(ctx context.Context, c domain.Cotisation) (domain.Cotisation, error) {
	if c.Status == "" {
		c.Status = domain.CotisationPending
	}
	created, err := s.cotisations.Create(ctx, c)
	if err != nil {
		return domain.Cotisation{}, err
	}
	s.record(ctx, "create", "cotisation", created.ID, created.MemberName)
	return created, nil
}

// MarkCotisationPaid flips a pending or overdue cotisation to paid and stamps
// the payment date. Paying an already paid cotisation is a conflict.
func (s *FinanceService) MarkCotisationPaid(ctx context.Context, id, method string, paidAt time.Time) (domain.Cotisation, error) {
	current, ok, err := s.cotisations.GetByID(ctx, id)
	if err != nil {
		return domain.Cotisation{}, err
	}
	if !ok {
		return domain.Cotisation{}, fmt.Errorf("cotisation %s: %w", id, apperrors.ErrNotFound)
	}
	if current.Status == domain.CotisationPaid {
		return domain.Cotisation{}, fmt.Errorf("cotisation %s already paid: %w", id, apperrors.ErrConflict)
	}
	updated, err := s.cotisations.Update(ctx, id, func(c *domain.Cotisation) {
		c.Status = domain.CotisationPaid
		c.PaymentMethod = method
		c.PaymentDate = &paidAt
	})
	if err != nil {
		return domain.Cotisation{}, err
	}
	s.record(ctx, "pay", "cotisation", id, updated.Period)
	return updated, nil
}

func (s *FinanceService) DeleteCotisation(ctx context.Context, id string) (bool, error) {
	deleted, err := s.cotisations.Delete(ctx, id)
	if err == nil && deleted {
		s.record(ctx, "delete", "cotisation", id, "")
	}
	return deleted, err
}

// Dons

func (s *FinanceService) ListDons(ctx context.Context) ([]domain.Don, error) {
	return s.dons.GetAll(ctx)
}

func (s *FinanceService) CreateDon(ctx context.Context, d domain.Don) (domain.Don, error) {
	created, err := s.dons.Create(ctx, d)
	if err != nil {
		return domain.Don{}, err
	}
	s.record(ctx, "create", "don", created.ID, created.DonorName)
	return created, nil
}

// GenerateDonReceipt marks the receipt generated exactly once.
func (s *FinanceService) GenerateDonReceipt(ctx context.Context, id, receiptURL string) (domain.Don, error) {
	current, ok, err := s.dons.GetByID(ctx, id)
	if err != nil {
		return domain.Don{}, err
	}
	if !ok {
		return domain.Don{}, fmt.Errorf("don %s: %w", id, apperrors.ErrNotFound)
	}
	if current.ReceiptGenerated {
		return domain.Don{}, fmt.Errorf("don %s receipt already generated: %w", id, apperrors.ErrConflict)
	}
	return s.dons.Update(ctx, id, func(d *domain.Don) {
		d.ReceiptGenerated = true
		d.ReceiptURL = receiptURL
	})
}

// Depenses

func (s *FinanceService) ListDepenses(ctx context.Context) ([]domain.Depense, error) {
	return s.depenses.GetAll(ctx)
}

func (s *FinanceService) GetDepense(ctx context.Context, id string) (domain.Depense, error) {
	d, ok, err := s.depenses.GetByID(ctx, id)
	if err != nil {
		return domain.Depense{}, err
	}
	if !ok {
		return domain.Depense{}, fmt.Errorf("depense %s: %w", id, apperrors.ErrNotFound)
	}
	return d, nil
}

func (s *FinanceService) CreateDepense(ctx context.Context, d domain.Depense) (domain.Depense, error) {
	if d.Status == "" {
		d.Status = domain.DepenseDraft
	}
	if d.Status != domain.DepenseDraft {
		return domain.Depense{}, fmt.Errorf("new depense must start as draft: %w", apperrors.ErrValidation)
	}
	created, err := s.depenses.Create(ctx, d)
	if err != nil {
		return domain.Depense{}, err
	}
	s.record(ctx, "create", "depense", created.ID, created.Title)
	return created, nil
}

// SubmitDepense moves a draft into the approval queue.
func (s *FinanceService) SubmitDepense(ctx context.Context, id, submitterID string) (domain.Depense, error) {
	return s.transition(ctx, id, domain.DepenseDraft, "submit", func(d *domain.Depense) {
		d.Status = domain.DepenseSubmitted
		d.SubmittedBy = submitterID
	})
}

// ApproveDepense accepts a submitted depense; it then counts toward totals.
func (s *FinanceService) ApproveDepense(ctx context.Context, id, approverID string) (domain.Depense, error) {
	return s.transition(ctx, id, domain.DepenseSubmitted, "approve", func(d *domain.Depense) {
		d.Status = domain.DepenseApproved
		d.ApprovedBy = approverID
	})
}

// RejectDepense refuses a submitted depense with a reason.
func (s *FinanceService) RejectDepense(ctx context.Context, id, approverID, reason string) (domain.Depense, error) {
	if reason == "" {
		return domain.Depense{}, fmt.Errorf("rejection requires a reason: %w", apperrors.ErrValidation)
	}
	return s.transition(ctx, id, domain.DepenseSubmitted, "reject", func(d *domain.Depense) {
		d.Status = domain.DepenseRejected
		d.ApprovedBy = approverID
		d.RejectionReason = reason
	})
}

func (s *FinanceService) transition(ctx context.Context, id string, from domain.DepenseStatus, action string, mutate func(*domain.Depense)) (domain.Depense, error) {
	current, ok, err := s.depenses.GetByID(ctx, id)
	if err != nil {
		return domain.Depense{}, err
	}
	if !ok {
		return domain.Depense{}, fmt.Errorf("depense %s: %w", id, apperrors.ErrNotFound)
	}
	if current.Status != from {
		return domain.Depense{}, fmt.Errorf("depense %s is %s, not %s: %w", id, current.Status, from, apperrors.ErrConflict)
	}
	updated, err := s.depenses.Update(ctx, id, mutate)
	if err != nil {
		return domain.Depense{}, err
	}
	s.record(ctx, action, "depense", id, updated.Title)
	return updated, nil
}

// Summary computes the dashboard aggregate: only paid cotisations and
// approved depenses count toward the totals and the balance.
func (s *FinanceService) Summary(ctx context.Context) (domain.FinancialSummary, error) {
	cotisations, err := s.cotisations.GetAll(ctx)
	if err != nil {
		return domain.FinancialSummary{}, err
	}
	dons, err := s.dons.GetAll(ctx)
	if err != nil {
		return domain.FinancialSummary{}, err
	}
	depenses, err := s.depenses.GetAll(ctx)
	if err != nil {
		return domain.FinancialSummary{}, err
	}

	summary := domain.FinancialSummary{
		TotalCotisations: decimal.Zero,
		TotalDons:        decimal.Zero,
		TotalDepenses:    decimal.Zero,
	}
	months := map[string]*domain.MonthlyFlow{}
	flow := func(month string) *domain.MonthlyFlow {
		if f, ok := months[month]; ok {
			return f
		}
		f := &domain.MonthlyFlow{
			Month:       month,
			Cotisations: decimal.Zero,
			Dons:        decimal.Zero,
			Depenses:    decimal.Zero,
		}
		months[month] = f
		return f
	}

	for _, c := range cotisations {
		switch c.Status {
		case domain.CotisationPaid:
			summary.TotalCotisations = summary.TotalCotisations.Add(c.Amount)
			at := c.CreatedAt
			if c.PaymentDate != nil {
				at = *c.PaymentDate
			}
			f := flow(monthKey(at))
			f.Cotisations = f.Cotisations.Add(c.Amount)
		case domain.CotisationPending, domain.CotisationOverdue:
			summary.CotisationsPending++
		}
	}

	for _, d := range dons {
		summary.TotalDons = summary.TotalDons.Add(d.Amount)
		f := flow(monthKey(d.CreatedAt))
		f.Dons = f.Dons.Add(d.Amount)
	}

	for _, d := range depenses {
		switch d.Status {
		case domain.DepenseApproved:
			summary.TotalDepenses = summary.TotalDepenses.Add(d.Amount)
			f := flow(monthKey(d.CreatedAt))
			f.Depenses = f.Depenses.Add(d.Amount)
		case domain.DepenseSubmitted:
			summary.DepensesPending++
		}
	}

	summary.Solde = summary.TotalCotisations.Add(summary.TotalDons).Sub(summary.TotalDepenses)

	keys := make([]string, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	summary.MonthlyFlows = make([]domain.MonthlyFlow, 0, len(keys))
	for _, k := range keys {
		summary.MonthlyFlows = append(summary.MonthlyFlows, *months[k])
	}
	return summary, nil
}

func (s *FinanceService) record(ctx context.Context, action, entity, targetID, details string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, action, entity, targetID, details); err != nil {
		s.logger.Warn("audit append failed", "action", action, "entity", entity, "error", err)
	}
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}
