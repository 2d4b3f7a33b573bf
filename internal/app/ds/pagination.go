package ds

// Page представляет одну страницу выборки вместе с метаданными пагинации
type Page[T any] struct {
	Data       []T   `json:"data"`
	TotalPages int   `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
	PageNumber int   `json:"page_number"`
	PageSize   int   `json:"page_size"`
}

// TotalPages считает ceil(total/size). Для size <= 0 страниц нет.
func TotalPages(total int64, size int) int {
	if size <= 0 || total <= 0 {
		return 0
	}
	s := int64(size)
	return int((total + s - 1) / s)
}
