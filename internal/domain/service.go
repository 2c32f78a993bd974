package domain

// ServiceStatus статус услуги в каталоге
type ServiceStatus string

const (
	ServiceActive   ServiceStatus = "active"
	ServiceInactive ServiceStatus = "inactive"
	ServiceDraft    ServiceStatus = "draft"
)

// Service услуга (активность) агентства
type Service struct {
	ID              ID            `json:"id"`
	Title           string        `json:"title"`
	Description     string        `json:"description,omitempty"`
	Price           float64       `json:"price"`
	Category        *Category     `json:"category,omitempty"`
	CategoryID      ID            `json:"category_id,omitempty"`
	Location        string        `json:"location,omitempty"`
	Duration        int           `json:"duration,omitempty"` // минуты
	MaxParticipants int           `json:"max_participants,omitempty"`
	Dates           []string      `json:"dates,omitempty"`
	Status          ServiceStatus `json:"status,omitempty"`
	Agency          *Agency       `json:"agency,omitempty"`
}

// IsBookable возвращает true, если услугу можно забронировать
// Пустой статус трактуется как активный, так его отдают старые версии API
func (s *Service) IsBookable() bool {
	return s.Status == ServiceActive || s.Status == ""
}

// PriceFor стоимость для указанного числа участников
func (s *Service) PriceFor(people int) float64 {
	if people <= 0 {
		return 0
	}
	return s.Price * float64(people)
}

// Category категория услуг
type Category struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// ServiceFilter параметры поиска услуг
type ServiceFilter struct {
	Query      string
	CategoryID ID
	Location   string
	MinPrice   *float64
	MaxPrice   *float64
	Page       int
}
