package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CotisationStatus enumerates the states of a membership due.
type CotisationStatus string

const (
	CotisationPending CotisationStatus = "pending"
	CotisationPaid    CotisationStatus = "paid"
	CotisationOverdue CotisationStatus = "overdue"
)

// DepenseStatus enumerates the approval workflow states.
// Transitions: draft -> submitted -> approved | rejected.
type DepenseStatus string

const (
	DepenseDraft     DepenseStatus = "draft"
	DepenseSubmitted DepenseStatus = "submitted"
	DepenseApproved  DepenseStatus = "approved"
	DepenseRejected  DepenseStatus = "rejected"
)

// DepenseCategory enumerates expense categories.
type DepenseCategory string

const (
	CategorieFonctionnement DepenseCategory = "fonctionnement"
	CategorieActivite       DepenseCategory = "activite"
	CategorieEquipement     DepenseCategory = "equipement"
	CategorieAutre          DepenseCategory = "autre"
)

// Cotisation is a periodic membership due owed by a member.
type Cotisation struct {
	Entity
	MemberID      string           `json:"memberId"`
	MemberName    string           `json:"memberName"`
	Amount        decimal.Decimal  `json:"amount"`
	Period        string           `json:"period"`
	Status        CotisationStatus `json:"status"`
	PaymentMethod string           `json:"paymentMethod,omitempty"`
	PaymentDate   *time.Time       `json:"paymentDate,omitempty"`
}

// Don is a donation received, optionally with a generated receipt.
type Don struct {
	Entity
	DonorName        string          `json:"donorName"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description,omitempty"`
	ReceiptGenerated bool            `json:"receiptGenerated"`
	ReceiptURL       string          `json:"receiptUrl,omitempty"`
}

// Depense is an expense subject to the approval workflow.
type Depense struct {
	Entity
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Amount          decimal.Decimal `json:"amount"`
	Category        DepenseCategory `json:"category"`
	Status          DepenseStatus   `json:"status"`
	SubmittedBy     string          `json:"submittedBy"`
	ApprovedBy      string          `json:"approvedBy,omitempty"`
	Justificatifs   []string        `json:"justificatifs,omitempty"`
	RejectionReason string          `json:"rejectionReason,omitempty"`
}

// AuditLog is an append-only record of an action performed by a user against
// an entity. Write-only from the client's perspective.
type AuditLog struct {
	Entity
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	Action     string `json:"action"`
	EntityName string `json:"entity"`
	TargetID   string `json:"entityId"`
	Details    string `json:"details,omitempty"`
}
