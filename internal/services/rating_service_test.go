package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRatingRange(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.mustRegister(t, name20("owner"), "owner@example.com", "store_owner")
	user := e.mustRegister(t, name20("user"), "user@example.com", "")
	st := e.mustCreateStore(t, "Range Shop", "shop@example.com", owner.ID)

	_, err := e.ratings.Submit(ctx, st.ID, user.ID, 6)
	assert.ErrorIs(t, err, ErrRatingRange)
	_, err = e.ratings.Submit(ctx, st.ID, user.ID, 0)
	assert.ErrorIs(t, err, ErrRatingRange)

	created, err := e.ratings.Submit(ctx, st.ID, user.ID, 5)
	require.NoError(t, err)
	assert.True(t, created)
}

func TestSubmitRatingStoreChecks(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	user := e.mustRegister(t, name20("user"), "user@example.com", "")

	_, err := e.ratings.Submit(ctx, "", user.ID, 3)
	assert.ErrorIs(t, err, ErrStoreRequired)

	_, err = e.ratings.Submit(ctx, "no-such-store", user.ID, 3)
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestSubmitRatingUpsert(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.mustRegister(t, name20("owner"), "owner@example.com", "store_owner")
	user := e.mustRegister(t, name20("user"), "user@example.com", "")
	st := e.mustCreateStore(t, "Upsert Shop", "shop@example.com", owner.ID)

	created, err := e.ratings.Submit(ctx, st.ID, user.ID, 2)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = e.ratings.Submit(ctx, st.ID, user.ID, 5)
	require.NoError(t, err)
	assert.False(t, created)

	// exactly one stored rating, holding the second value
	rows := e.repos.AllRatings()
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].Value)
	assert.Equal(t, st.ID, rows[0].StoreID)
	assert.Equal(t, user.ID, rows[0].UserID)
}

func TestSubmitRatingAudited(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.mustRegister(t, name20("owner"), "owner@example.com", "store_owner")
	user := e.mustRegister(t, name20("user"), "user@example.com", "")
	st := e.mustCreateStore(t, "Audit Shop", "shop@example.com", owner.ID)

	_, err := e.ratings.Submit(ctx, st.ID, user.ID, 3)
	require.NoError(t, err)
	_, err = e.ratings.Submit(ctx, st.ID, user.ID, 4)
	require.NoError(t, err)

	e.wp.Stop() // drain the audit queue before asserting

	var actions []string
	for _, a := range e.repos.AllAudits() {
		if a.EntityType == "rating" {
			actions = append(actions, a.Action)
		}
	}
	assert.Equal(t, []string{"created", "updated"}, actions)
}

func TestStatsCounts(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.mustRegister(t, name20("owner"), "owner@example.com", "store_owner")
	user := e.mustRegister(t, name20("user"), "user@example.com", "")
	st := e.mustCreateStore(t, "Stat Shop", "shop@example.com", owner.ID)
	_, err := e.ratings.Submit(ctx, st.ID, user.ID, 4)
	require.NoError(t, err)

	stats, err := e.stats.Dashboard(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.Users)
	assert.EqualValues(t, 1, stats.Stores)
	assert.EqualValues(t, 1, stats.Ratings)
}
