package memory

import (
	"time"

	"github.com/AssoGestion/asso_gestion_app/internal/core/domain"
	"github.com/AssoGestion/asso_gestion_app/internal/core/ports"
	"github.com/shopspring/decimal"
)

// Compile-time check: the store satisfies the generic CRUD contract.
var _ ports.DataService[domain.Student] = (*Store[domain.Student, *domain.Student])(nil)

// Seed fixtures for the development fallback and the mock backend. Ids are
// the original dataset's short numeric ids; anything created at runtime gets
// a uuid.

func d(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func dp(value string) *time.Time {
	t := d(value)
	return &t
}

func money(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func entity(id, created, updated string) domain.Entity {
	return domain.Entity{ID: id, CreatedAt: d(created), UpdatedAt: d(updated)}
}

func UserFixtures() []domain.User {
	return []domain.User{
		{Entity: entity("1", "2024-01-01", "2024-01-01"), Name: "Jean Dupont", Email: "jean.dupont@email.com", Role: domain.RolePresident, IsActive: true},
		{Entity: entity("2", "2024-01-01", "2024-01-01"), Name: "Marie Martin", Email: "marie.martin@email.com", Role: domain.RoleTresorier, IsActive: true},
		{Entity: entity("3", "2024-01-15", "2024-01-15"), Name: "Pierre Durand", Email: "pierre.durand@email.com", Role: domain.RoleMembre, IsActive: true},
		{Entity: entity("4", "2024-09-01", "2024-09-01"), Name: "Alain Moukala", Email: "alain.moukala@email.com", Role: domain.RoleStudent, IsActive: true},
		{Entity: entity("5", "2024-09-01", "2024-09-01"), Name: "Grace Ondongo", Email: "grace.ondongo@email.com", Role: domain.RoleStudent, IsActive: true},
		{Entity: entity("6", "2024-09-01", "2024-09-01"), Name: "David Nkouka", Email: "david.nkouka@email.com", Role: domain.RoleStudent, IsActive: true},
		{Entity: entity("7", "2023-09-01", "2023-09-01"), Name: "Sarah Mabiala", Email: "sarah.mabiala@email.com", Role: domain.RoleStudent, IsActive: true},
		{Entity: entity("8", "2024-09-01", "2024-09-01"), Name: "Eric Samba", Email: "eric.samba@email.com", Role: domain.RoleStudent, IsActive: false},
	}
}

func StudentFixtures() []domain.Student {
	return []domain.Student{
		{Entity: entity("1", "2024-09-01", "2024-09-01"), UserID: "4", Matricule: "STU-2024-001", DateOfBirth: dp("2000-05-15"), Gender: "M", Level: "L3", Faculty: "Sciences et Technologies", FieldOfStudy: "Informatique", Country: "Congo", City: "Brazzaville", Status: domain.StudentActive},
		{Entity: entity("2", "2024-09-01", "2024-09-01"), UserID: "5", Matricule: "STU-2024-002", DateOfBirth: dp("2001-08-22"), Gender: "F", Level: "M1", Faculty: "Sciences Économiques", FieldOfStudy: "Gestion", Country: "Gabon", City: "Libreville", Status: domain.StudentActive},
		{Entity: entity("3", "2024-09-01", "2024-09-01"), UserID: "6", Matricule: "STU-2024-003", DateOfBirth: dp("1999-12-10"), Gender: "M", Level: "L2", Faculty: "Droit", FieldOfStudy: "Droit Public", Country: "Congo", City: "Pointe-Noire", Status: domain.StudentActive},
		{Entity: entity("4", "2023-09-01", "2024-06-30"), UserID: "7", Matricule: "STU-2023-045", DateOfBirth: dp("1998-03-18"), Gender: "F", Level: "M2", Faculty: "Sciences et Technologies", FieldOfStudy: "Mathématiques", Country: "Congo", City: "Brazzaville", Status: domain.StudentGraduated},
		{Entity: entity("5", "2024-09-01", "2024-11-15"), UserID: "8", Matricule: "STU-2024-004", DateOfBirth: dp("2002-07-05"), Gender: "M", Level: "L1", Faculty: "Lettres et Sciences Humaines", FieldOfStudy: "Philosophie", Country: "Congo", City: "Brazzaville", Status: domain.StudentOnLeave},
	}
}

func QuarterFixtures() []domain.Quarter {
	return []domain.Quarter{
		{Entity: entity("1", "2024-01-01", "2024-01-01"), Name: "Quartier Bacongo", City: "Brazzaville", Address: "Avenue de l'Indépendance", Description: "Quartier résidentiel proche de l'université"},
		{Entity: entity("2", "2024-01-01", "2024-01-01"), Name: "Quartier Poto-Poto", City: "Brazzaville", Address: "Boulevard Lumumba", Description: "Quartier central avec bon accès aux transports"},
		{Entity: entity("3", "2024-01-01", "2024-01-01"), Name: "Quartier Moungali", City: "Brazzaville", Address: "Rue de la Paix", Description: "Quartier calme et sécurisé"},
	}
}

func BuildingFixtures() []domain.Building {
	return []domain.Building{
		{Entity: entity("1", "2024-01-01", "2024-01-01"), Name: "Bloc A", QuarterID: "1", Address: "Avenue de l'Indépendance, Bacongo"},
		{Entity: entity("2", "2024-01-01", "2024-01-01"), Name: "Bloc B", QuarterID: "1", Address: "Avenue de l'Indépendance, Bacongo"},
		{Entity: entity("3", "2024-01-01", "2024-01-01"), Name: "Bloc C", QuarterID: "2", Address: "Boulevard Lumumba, Poto-Poto"},
		{Entity: entity("4", "2024-01-01", "2024-01-01"), Name: "Résidence Moungali", QuarterID: "3", Address: "Rue de la Paix, Moungali"},
	}
}

func RoomFixtures() []domain.Room {
	return []domain.Room{
		{Entity: entity("1", "2024-01-01", "2024-01-01"), RoomNumber: "A-101", BuildingID: "1", Capacity: 2, MonthlyRent: money(150000), Status: domain.RoomOccupied, Description: "Chambre double avec balcon"},
		{Entity: entity("2", "2024-01-01", "2024-01-01"), RoomNumber: "A-102", BuildingID: "1", Capacity: 2, MonthlyRent: money(150000), Status: domain.RoomOccupied, Description: "Chambre double"},
		{Entity: entity("3", "2024-01-01", "2024-01-01"), RoomNumber: "A-103", BuildingID: "1", Capacity: 1, MonthlyRent: money(100000), Status: domain.RoomAvailable, Description: "Chambre simple"},
		{Entity: entity("4", "2024-01-01", "2024-01-01"), RoomNumber: "B-201", BuildingID: "2", Capacity: 2, MonthlyRent: money(180000), Status: domain.RoomOccupied, Description: "Chambre double avec vue"},
		{Entity: entity("5", "2024-01-01", "2024-01-01"), RoomNumber: "B-202", BuildingID: "2", Capacity: 3, MonthlyRent: money(200000), Status: domain.RoomOccupied, Description: "Chambre triple"},
		{Entity: entity("6", "2024-01-01", "2024-01-01"), RoomNumber: "B-203", BuildingID: "2", Capacity: 2, MonthlyRent: money(150000), Status: domain.RoomMaintenance, Description: "Chambre double en rénovation"},
		{Entity: entity("7", "2024-01-01", "2024-01-01"), RoomNumber: "C-301", BuildingID: "3", Capacity: 2, MonthlyRent: money(160000), Status: domain.RoomAvailable, Description: "Chambre double"},
	}
}

func OccupationFixtures() []domain.RoomOccupation {
	return []domain.RoomOccupation{
		{Entity: entity("1", "2024-09-01", "2024-09-01"), RoomID: "1", StudentID: "1", StartDate: d("2024-09-01"), MonthlyRent: money(150000), IsActive: true},
		{Entity: entity("2", "2024-09-01", "2024-09-01"), RoomID: "1", StudentID: "2", StartDate: d("2024-09-01"), MonthlyRent: money(150000), IsActive: true},
		{Entity: entity("3", "2024-09-01", "2024-09-01"), RoomID: "4", StudentID: "3", StartDate: d("2024-09-01"), MonthlyRent: money(180000), IsActive: true},
		{Entity: entity("4", "2024-09-01", "2024-09-01"), RoomID: "5", StudentID: "4", StartDate: d("2024-09-01"), MonthlyRent: money(200000), IsActive: true},
		{Entity: entity("5", "2024-09-01", "2024-11-15"), RoomID: "7", StudentID: "5", StartDate: d("2024-09-01"), EndDate: dp("2024-11-15"), MonthlyRent: money(160000), IsActive: false},
	}
}

func RentPaymentFixtures() []domain.RentPayment {
	return []domain.RentPayment{
		{Entity: entity("1", "2025-01-05", "2025-01-05"), OccupationID: "1", StudentID: "1", Amount: money(150000), PaymentDate: d("2025-01-05"), Period: "Janvier 2025", PaymentMethod: "Mobile Money"},
		{Entity: entity("2", "2025-01-03", "2025-01-03"), OccupationID: "2", StudentID: "2", Amount: money(150000), PaymentDate: d("2025-01-03"), Period: "Janvier 2025", PaymentMethod: "Espèces"},
		{Entity: entity("3", "2025-01-10", "2025-01-10"), OccupationID: "3", StudentID: "3", Amount: money(180000), PaymentDate: d("2025-01-10"), Period: "Janvier 2025", PaymentMethod: "Virement"},
	}
}

func CotisationFixtures() []domain.Cotisation {
	return []domain.Cotisation{
		{Entity: entity("1", "2025-01-01", "2025-01-05"), MemberID: "1", MemberName: "Jean Dupont", Amount: money(50000), Period: "Janvier 2025", Status: domain.CotisationPaid, PaymentMethod: "Mobile Money", PaymentDate: dp("2025-01-05")},
		{Entity: entity("2", "2025-01-01", "2025-01-03"), MemberID: "2", MemberName: "Marie Martin", Amount: money(50000), Period: "Janvier 2025", Status: domain.CotisationPaid, PaymentMethod: "Espèces", PaymentDate: dp("2025-01-03")},
		{Entity: entity("3", "2025-01-01", "2025-01-01"), MemberID: "3", MemberName: "Pierre Durand", Amount: money(50000), Period: "Janvier 2025", Status: domain.CotisationPending},
	}
}

func DonFixtures() []domain.Don {
	return []domain.Don{
		{Entity: entity("1", "2025-01-10", "2025-01-10"), DonorName: "Entreprise ABC", Amount: money(500000), Description: "Don pour activités culturelles", ReceiptGenerated: true, ReceiptURL: "/receipts/don-001.pdf"},
		{Entity: entity("2", "2025-01-15", "2025-01-15"), DonorName: "Anonyme", Amount: money(100000), Description: "Don général", ReceiptGenerated: false},
	}
}

func DepenseFixtures() []domain.Depense {
	return []domain.Depense{
		{Entity: entity("1", "2025-01-08", "2025-01-09"), Title: "Achat matériel bureau", Description: "Ordinateur portable pour le secrétariat", Amount: money(450000), Category: domain.CategorieEquipement, Status: domain.DepenseApproved, SubmittedBy: "Marie Martin", ApprovedBy: "Jean Dupont", Justificatifs: []string{"/uploads/facture-001.pdf"}},
		{Entity: entity("2", "2025-01-18", "2025-01-18"), Title: "Loyer bureau", Description: "Loyer mensuel janvier 2025", Amount: money(200000), Category: domain.CategorieFonctionnement, Status: domain.DepenseSubmitted, SubmittedBy: "Pierre Durand"},
		{Entity: entity("3", "2025-01-20", "2025-01-20"), Title: "Sortie culturelle", Description: "Visite du musée national", Amount: money(120000), Category: domain.CategorieActivite, Status: domain.DepenseDraft, SubmittedBy: "Pierre Durand"},
	}
}
