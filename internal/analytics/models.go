package analytics

// Overview is the admin dashboard snapshot.
type Overview struct {
	Orders      OrderMetrics   `json:"orders"`
	Tickets     TicketMetrics  `json:"tickets"`
	CheckIns    CheckInMetrics `json:"check_ins"`
	VIP         VIPMetrics     `json:"vip"`
	GeneratedAt string         `json:"generated_at"`
}

type OrderMetrics struct {
	Total          int            `json:"total"`
	ByStatus       map[string]int `json:"by_status"`
	GrossRevenue   float64        `json:"gross_revenue"`
	AverageOrder   float64        `json:"average_order_value"`
	ConversionRate float64        `json:"conversion_rate"`
}

type TicketMetrics struct {
	Sold      int            `json:"sold"`
	ByProduct map[string]int `json:"by_product"`
	ByDay     map[string]int `json:"by_day"`
}

type CheckInMetrics struct {
	TicketsCheckedIn int            `json:"tickets_checked_in"`
	CheckInRate      float64        `json:"check_in_rate"`
	ScansByDay       map[string]int `json:"scans_by_day"`
}

type VIPMetrics struct {
	SeatsReservedByDay map[string]int `json:"seats_reserved_by_day"`
}

// DailySales is one calendar day of order activity.
type DailySales struct {
	Date          string  `json:"date"`
	TotalOrders   int     `json:"total_orders"`
	PaidOrders    int     `json:"paid_orders"`
	ExpiredOrders int     `json:"expired_orders"`
	Revenue       float64 `json:"revenue"`
	AverageValue  float64 `json:"average_value"`
}

// CountRow is a generic (key, count) aggregate row.
type CountRow struct {
	Key   string
	Count int
}
