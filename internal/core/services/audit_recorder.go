package services

import (
	"context"

	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
	"github.com/AssoGestion/asso_gestion_app/internal/core/ports"
)

// Actor identifies who performs audited actions; the session layer supplies
// it after login.
type Actor struct {
	ID   string
	Name string
}

// AuditRecorder appends entries to the audit trail. Entries are write-only
// from here; nothing in this service reads them back except List.
type AuditRecorder struct {
	logs  ports.DataService[domain.AuditLog]
	actor func() Actor
}

// NewAuditRecorder wires the log store and an actor resolver. A nil resolver
// records entries as "system".
func NewAuditRecorder(logs ports.DataService[domain.AuditLog], actor func() Actor) *AuditRecorder {
	if actor == nil {
		actor = func() Actor { return Actor{ID: "system", Name: "system"} }
	}
	return &AuditRecorder{logs: logs, actor: actor}
}

func (r *AuditRecorder) Record(ctx context.Context, action, entity, targetID, details string) error {
	who := r.actor()
	_, err := r.logs.Create(ctx, domain.AuditLog{
		UserID:     who.ID,
		UserName:   who.Name,
		Action:     action,
		EntityName: entity,
		TargetID:   targetID,
		Details:    details,
	})
	return err
}

func (r *AuditRecorder) List(ctx context.Context) ([]domain.AuditLog, error) {
	return r.logs.GetAll(ctx)
}
