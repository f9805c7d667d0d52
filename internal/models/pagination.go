package models

// Pagination метаданные постраничного ответа бэкенда.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page,omitempty"`
	Limit      int `json:"limit,omitempty"`
	TotalPages int `json:"totalPages,omitempty"`
}

const (
	// DefaultPage номер первой страницы, страницы считаются с единицы.
	DefaultPage = 1
	// DefaultLimit размер страницы по умолчанию.
	DefaultLimit = 10
)

// ListParams параметры запроса страницы. Search используется только списком компаний.
type ListParams struct {
	Page   int    `json:"page" validate:"min=1"`
	Limit  int    `json:"limit" validate:"min=1,max=100"`
	Search string `json:"search,omitempty"`
}

// WithDefaults подставляет значения по умолчанию для незаданных полей.
func (p ListParams) WithDefaults() ListParams {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	return p
}
