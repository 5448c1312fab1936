package domain

import "github.com/shopspring/decimal"

// FinancialSummary is the derived dashboard aggregate over all financial
// records. Only paid cotisations and approved depenses count toward totals.
type FinancialSummary struct {
	TotalCotisations   decimal.Decimal `json:"totalCotisations"`
	TotalDons          decimal.Decimal `json:"totalDons"`
	TotalDepenses      decimal.Decimal `json:"totalDepenses"`
	Solde              decimal.Decimal `json:"solde"`
	CotisationsPending int             `json:"cotisationsPending"`
	DepensesPending    int             `json:"depensesPending"`
	MonthlyFlows       []MonthlyFlow   `json:"evolutionMensuelle"`
}

// MonthlyFlow is one month of recettes/depenses, keyed "2025-01".
type MonthlyFlow struct {
	Month       string          `json:"mois"`
	Cotisations decimal.Decimal `json:"cotisations"`
	Dons        decimal.Decimal `json:"dons"`
	Depenses    decimal.Decimal `json:"depenses"`
}
