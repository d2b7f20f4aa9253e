package orders

// PageSize is the fixed row count of the admin table.
const PageSize = 5

// maxPageButtons caps the numbered-button window.
const maxPageButtons = 5

// TotalPages is max(1, ceil(total/pageSize)). An empty result still
// renders one (empty) page.
func TotalPages(total, pageSize int) int {
	if pageSize < 1 {
		pageSize = PageSize
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// ClampPage pulls an externally-held page number back into range before
// slicing.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// PageSlice returns the rows of the given (already clamped) page.
func PageSlice(list []Order, page, pageSize int) []Order {
	start := (page - 1) * pageSize
	if start >= len(list) {
		return nil
	}
	end := start + pageSize
	if end > len(list) {
		end = len(list)
	}
	return list[start:end]
}

type PageButton struct {
	Number int
	Active bool
}

// Pagination is the page-control model the table renders: previous,
// a window of numbered buttons, next.
type Pagination struct {
	Current      int
	Total        int
	PrevDisabled bool
	NextDisabled bool
	Buttons      []PageButton
}

// BuildPagination computes the control model for the given current
// page. current must already be clamped.
func BuildPagination(current, totalPages int) Pagination {
	start := current - maxPageButtons/2
	if start < 1 {
		start = 1
	}
	end := start + maxPageButtons - 1
	if end > totalPages {
		end = totalPages
		if end-maxPageButtons+1 > 0 {
			start = end - maxPageButtons + 1
		} else {
			start = 1
		}
	}

	buttons := make([]PageButton, 0, end-start+1)
	for n := start; n <= end; n++ {
		buttons = append(buttons, PageButton{Number: n, Active: n == current})
	}

	return Pagination{
		Current:      current,
		Total:        totalPages,
		PrevDisabled: current == 1,
		NextDisabled: current == totalPages,
		Buttons:      buttons,
	}
}
