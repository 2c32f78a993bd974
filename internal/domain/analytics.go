package domain

// AgencyStats статистика агентства для дашборда
type AgencyStats struct {
	TotalServices         int     `json:"total_services"`
	TotalReservations     int     `json:"total_reservations"`
	PendingReservations   int     `json:"pending_reservations"`
	ConfirmedReservations int     `json:"confirmed_reservations"`
	Revenue               float64 `json:"revenue"`
	Commission            float64 `json:"commission"`
}

// AgencyCommission комиссия платформы по одному агентству
type AgencyCommission struct {
	Agency     *Agency `json:"agency"`
	Revenue    float64 `json:"revenue"`
	Commission float64 `json:"commission"`
}

// CommissionAnalytics аналитика комиссий для администратора
// Все суммы считает backend, клиент только отображает
type CommissionAnalytics struct {
	TotalRevenue      float64            `json:"total_revenue"`
	TotalCommission   float64            `json:"total_commission"`
	CommissionRate    float64            `json:"commission_rate"`
	ReservationsCount int                `json:"reservations_count"`
	ByAgency          []AgencyCommission `json:"by_agency,omitempty"`
}
