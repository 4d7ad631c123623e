package postgres

// ORDER BY columns are interpolated into SQL, so they must come from an
// allow-list; anything unrecognized falls back to the default column and
// ascending order.

var userSortColumns = map[string]string{
	"name":       "name",
	"email":      "email",
	"address":    "address",
	"role":       "role",
	"created_at": "created_at",
}

var storeSortColumns = map[string]string{
	"name":           "s.name",
	"email":          "s.email",
	"address":        "s.address",
	"average_rating": "average_rating",
}

func orderClause(allowed map[string]string, sort, order, def string) string {
	col, ok := allowed[sort]
	if !ok {
		col = allowed[def]
	}
	dir := "ASC"
	if order == "desc" {
		dir = "DESC"
	}
	return col + " " + dir
}
