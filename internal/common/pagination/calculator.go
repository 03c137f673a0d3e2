package pagination

// CalculateOffset converts a 1-based page into the number of rows to skip.
//
// Parameters:
//   - page: 1-based page number, already validated
//   - limit: Page size
//
// Returns:
//   - int: (page-1) * limit
//
// Example:
//
//	offset := CalculateOffset(3, 20) // 40
func CalculateOffset(page, limit int) int {
	return (page - 1) * limit
}

// CalculateTotalPages rounds total/limit up. It is never below 1, so an empty
// archive still reports page 1 of 1.
func CalculateTotalPages(total int64, limit int) int {
	if total == 0 || limit <= 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Metadata is the "pagination" object of a paged response.
type Metadata struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

// NewMetadata describes page p of a listing with total items.
func NewMetadata(p Params, total int64) Metadata {
	return Metadata{
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: CalculateTotalPages(total, p.Limit),
	}
}
