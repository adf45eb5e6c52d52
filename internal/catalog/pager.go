package catalog

// TotalPages returns the number of pages needed for count records at
// pageSize records per page. It is floored at 1 so an empty result set still
// renders as a single empty page rather than an error.
func TotalPages(count, pageSize int) int {
	if pageSize < 1 || count <= 0 {
		return 1
	}
	pages := count / pageSize
	if count%pageSize > 0 {
		pages++
	}
	return pages
}

// ClampPage forces page into [1, totalPages]. Navigation below page 1 or
// past the last page is a no-op rather than an error.
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// PageSlice returns the 1-based page of animals at pageSize records per
// page. Out-of-range pages are clamped first, and an empty dataset yields an
// empty slice. The slice aliases the input; callers must not mutate it.
func PageSlice(animals []Animal, pageSize, page int) []Animal {
	if len(animals) == 0 || pageSize < 1 {
		return nil
	}

	page = ClampPage(page, TotalPages(len(animals), pageSize))
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(animals) {
		end = len(animals)
	}
	return animals[start:end]
}
