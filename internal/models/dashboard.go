package models

type Dashboard struct {
	Members          int            `json:"members"`
	Visitors         int            `json:"visitors"`
	UpcomingEvents   []Event        `json:"upcoming_events"`
	OpenPrayers      int            `json:"open_prayer_requests"`
	PendingTestimony int            `json:"pending_testimonies"`
	ActiveVolunteers int            `json:"active_volunteers"`
	Finance          FinanceSummary `json:"finance"`
}
