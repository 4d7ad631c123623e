package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderClauseAllowList(t *testing.T) {
	assert.Equal(t, "s.name ASC", orderClause(storeSortColumns, "name", "asc", "name"))
	assert.Equal(t, "average_rating DESC", orderClause(storeSortColumns, "average_rating", "desc", "name"))

	// anything off the allow-list falls back to the default column
	assert.Equal(t, "s.name ASC", orderClause(storeSortColumns, "password_hash; DROP TABLE users", "asc", "name"))
	assert.Equal(t, "s.name ASC", orderClause(storeSortColumns, "", "", "name"))

	// direction is binary: only "desc" flips it
	assert.Equal(t, "s.email ASC", orderClause(storeSortColumns, "email", "sideways", "name"))
	assert.Equal(t, "created_at DESC", orderClause(userSortColumns, "created_at", "desc", "name"))
	assert.Equal(t, "name ASC", orderClause(userSortColumns, "nope", "asc", "name"))
}
