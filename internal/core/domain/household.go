package domain

// HouseholdIncome is the summed monthly income of one household.
type HouseholdIncome struct {
	HouseholdNumber string `json:"household_number"`
	TotalIncome     int64  `json:"total_income"`
}

// DefaultLowIncomeThreshold is the monthly household income below which a household
// is reported as low income.
const DefaultLowIncomeThreshold int64 = 20000

// HouseholdSummary aggregates one household's members.
type HouseholdSummary struct {
	HouseholdNumber string        `json:"household_number"`
	Head            *ResidentHead `json:"head,omitempty"`
	Members         []Resident    `json:"members"`
	TotalIncome     int64         `json:"total_income"`
	HasPWD          bool          `json:"has_pwd"`
	HasSenior       bool          `json:"has_senior"`
}
