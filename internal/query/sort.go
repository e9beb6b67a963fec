package query

// TieBreaker is appended to every sort so paging is deterministic.
const TieBreaker = "id"

// Sort orders results by a single field. Missing values always sort last.
// Fold orders text by its lowercase form in byte order, which both the SQL
// and the in-memory evaluation can reproduce exactly.
type Sort struct {
	Field string
	Desc  bool
	Fold  bool
}

func (s Sort) Direction() string {
	if s.Desc {
		return "desc"
	}
	return "asc"
}
