package domain

// Маршруты фронтенда
const (
	RouteHome            = "/"
	RouteLogin           = "/login"
	RouteClientDashboard = "/client/dashboard"
	RouteAgencyDashboard = "/agency/dashboard"
	RouteAdminDashboard  = "/admin/dashboard"
)

// Area раздел приложения, доступ к которому зависит от роли
type Area string

const (
	AreaPublic Area = "public"
	AreaClient Area = "client"
	AreaAgency Area = "agency"
	AreaAdmin  Area = "admin"
)

// LandingRoute маршрут, на который попадает пользователь после входа
// Неизвестная роль ведет на главную
func LandingRoute(role Role) string {
	switch role {
	case RoleClient:
		return RouteClientDashboard
	case RoleAgency:
		return RouteAgencyDashboard
	case RoleAdmin:
		return RouteAdminDashboard
	default:
		return RouteHome
	}
}

// CanAccess единая политика доступа к разделам
// Публичный раздел доступен всем, остальные только своей роли
func CanAccess(role Role, area Area) bool {
	switch area {
	case AreaPublic:
		return true
	case AreaClient:
		return role == RoleClient
	case AreaAgency:
		return role == RoleAgency
	case AreaAdmin:
		return role == RoleAdmin
	default:
		return false
	}
}
