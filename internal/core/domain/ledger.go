package domain

import "fmt"

// LedgerKind separates income from expense entries.
type LedgerKind string

// Ledger kinds.
const (
	LedgerIncome  LedgerKind = "income"
	LedgerExpense LedgerKind = "expense"
)

// IsValid reports whether k is a recognised kind.
func (k LedgerKind) IsValid() bool {
	return k == LedgerIncome || k == LedgerExpense
}

// LedgerCategory classifies a ledger entry. Accepted values depend on the kind.
type LedgerCategory string

// Income categories.
const (
	CategoryLocalRevenue     LedgerCategory = "Local Revenue"
	CategoryTaxRevenue       LedgerCategory = "Tax Revenue"
	CategoryGovernmentGrants LedgerCategory = "Government Grants"
	CategoryServiceRevenue   LedgerCategory = "Service Revenue"
	CategoryRentalIncome     LedgerCategory = "Rental Income"
	CategoryWaterSystem      LedgerCategory = "Water System"
)

// Expense categories.
const (
	CategoryInfrastructure LedgerCategory = "Infrastructure"
	CategoryHonoraria      LedgerCategory = "Honoraria"
	CategoryUtilities      LedgerCategory = "Utilities"
	CategoryLocalFunds     LedgerCategory = "Local Funds"
	CategoryFoods          LedgerCategory = "Foods"
	CategoryIRA            LedgerCategory = "IRA"
)

// CategoryOthers is accepted for both kinds.
const CategoryOthers LedgerCategory = "Others"

// LedgerCategories lists the categories accepted for kind.
func LedgerCategories(kind LedgerKind) []LedgerCategory {
	switch kind {
	case LedgerIncome:
		return []LedgerCategory{
			CategoryLocalRevenue, CategoryTaxRevenue, CategoryGovernmentGrants,
			CategoryServiceRevenue, CategoryRentalIncome, CategoryWaterSystem, CategoryOthers,
		}
	case LedgerExpense:
		return []LedgerCategory{
			CategoryInfrastructure, CategoryHonoraria, CategoryUtilities,
			CategoryLocalFunds, CategoryFoods, CategoryIRA, CategoryOthers,
		}
	default:
		return nil
	}
}

// LedgerEntry is a single dated income or expense transaction.
type LedgerEntry struct {
	ID       int64          `json:"id,omitempty"`
	Kind     LedgerKind     `json:"kind"`
	Type     string         `json:"type"`
	Category LedgerCategory `json:"category"`

	// AmountCentavos avoids floating point drift; 12.34 pesos is 1234.
	AmountCentavos int64 `json:"amount_centavos"`

	// ReferenceNumber is the official receipt number for income
	// or the voucher number for expenses.
	ReferenceNumber string `json:"reference_number,omitempty"`

	// Counterparty is who the money was received from or paid to.
	Counterparty string `json:"counterparty,omitempty"`

	// HandledBy is the official who received or released the money.
	HandledBy string `json:"handled_by,omitempty"`

	Date string `json:"date"`
}

// Validate checks required fields and the kind-specific category.
func (e *LedgerEntry) Validate() error {
	f := fieldErrors{op: "validate ledger entry"}
	if !e.Kind.IsValid() {
		f.add(fmt.Sprintf("kind must be %q or %q", LedgerIncome, LedgerExpense))
	} else if !oneOf(e.Category, LedgerCategories(e.Kind)) {
		f.add(fmt.Sprintf("%s category must be one of %s", e.Kind, joinValues(LedgerCategories(e.Kind))))
	}
	f.require("type", e.Type)
	if e.AmountCentavos <= 0 {
		f.add("amount_centavos must be positive")
	}
	f.date("date", e.Date, true)
	return f.err()
}

// CategoryTotal is the summed amount of one ledger category.
type CategoryTotal struct {
	Kind           LedgerKind     `json:"kind"`
	Category       LedgerCategory `json:"category"`
	AmountCentavos int64          `json:"amount_centavos"`
	Entries        int            `json:"entries"`
}

// FormatCentavos renders an amount as pesos with two decimals.
func FormatCentavos(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d", sign, amount/100, amount%100)
}
