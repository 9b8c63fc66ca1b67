package entity

// Paging describes the position of a result page within a search.
type Paging struct {
	CurrentPage int `json:"current_page"`
	Size        int `json:"size"`
	TotalPage   int `json:"total_page"`
}

// NewPaging computes paging metadata for total matching rows split into pages of size.
func NewPaging(page, size int, total int64) Paging {
	totalPage := 0
	if size > 0 {
		totalPage = int((total + int64(size) - 1) / int64(size))
	}

	return Paging{
		CurrentPage: page,
		Size:        size,
		TotalPage:   totalPage,
	}
}

// Offset returns the number of rows to skip for the given page.
func Offset(page, size int) int {
	if page < 1 {
		return 0
	}

	return (page - 1) * size
}
