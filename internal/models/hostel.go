package models

// Gatepass is a permission to leave the hostel.
type Gatepass struct {
	ID        int    `json:"id"`
	Type      string `json:"type"`
	FromDate  string `json:"fromDate"`
	ToDate    string `json:"toDate"`
	Reason    string `json:"reason"`
	Status    Status `json:"status"`
	AppliedOn string `json:"appliedOn"`
}

// GymSubscription is a paid gym membership.
type GymSubscription struct {
	ID        int    `json:"id"`
	Plan      string `json:"plan"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Amount    int    `json:"amount"`
	Status    Status `json:"status"`
}

// GymPlan is a purchasable gym membership option. Amounts are in rupees.
type GymPlan struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Days    int    `json:"days"`
	Price   int    `json:"price"`
	Savings int    `json:"savings,omitempty"`
}

// HostelOverview carries the student's room and gym timings.
type HostelOverview struct {
	Room    string   `json:"room"`
	Timings []string `json:"timings"`
}
