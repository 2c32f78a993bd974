package search_services

import "github.com/m04kA/SMC-MarketplaceClient/internal/domain"

// Request модель запроса поиска
// Пустой Query с фильтрами выполняет листинг каталога
type Request struct {
	Query  string
	Filter domain.ServiceFilter
}

// Response результаты поиска
type Response struct {
	RequestID uint64 // порядковый номер поиска
	Services  []domain.Service
}
