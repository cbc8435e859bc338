package repository

// pageSlice copies the requested page out of records. page and limit are
// assumed already normalized by pkg/pagination.
func pageSlice[T any](records []T, page, limit int) []T {
	offset := (page - 1) * limit
	if offset >= len(records) {
		return []T{}
	}
	end := offset + limit
	if end > len(records) {
		end = len(records)
	}
	out := make([]T, end-offset)
	copy(out, records[offset:end])
	return out
}
