package load_dashboard

import "github.com/m04kA/SMC-MarketplaceClient/internal/domain"

// Response данные дашборда; заполнен только блок роли пользователя
type Response struct {
	Role   domain.Role
	Route  string
	Agency *AgencyDashboard
	Client *ClientDashboard
	Admin  *AdminDashboard
}

// AgencyDashboard дашборд агентства
type AgencyDashboard struct {
	AgencyID     domain.ID
	Stats        *domain.AgencyStats
	Services     []domain.Service
	Reservations []domain.Reservation
}

// ClientDashboard дашборд клиента
type ClientDashboard struct {
	Categories   []domain.Category
	Services     []domain.Service
	Reservations []domain.Reservation
}

// AdminDashboard дашборд администратора
type AdminDashboard struct {
	Analytics *domain.CommissionAnalytics
	Users     []domain.User
	Agencies  []domain.Agency
}
