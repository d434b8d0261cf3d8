package querybuilder

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectToSQL(t *testing.T) {
	t.Parallel()

	query, args, err := Select("*").From("matchdays").
		Where(
			Eq("season_public_id", "s-2026"),
			IsNull("deleted_at"),
		).
		OrderBy("seq", "id").
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "SELECT * FROM matchdays WHERE season_public_id = $1 AND deleted_at IS NULL ORDER BY seq, id", query)
	require.Equal(t, []any{"s-2026"}, args)
}

func TestSelectRequiresTable(t *testing.T) {
	t.Parallel()

	_, _, err := Select("*").ToSQL()
	require.Error(t, err)
}

func TestInCondition(t *testing.T) {
	t.Parallel()

	query, args, err := Select("public_id").From("teams").
		Where(In("status", []any{"active", "pending"})).
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "SELECT public_id FROM teams WHERE status IN ($1, $2)", query)
	require.Len(t, args, 2)
}

func TestEmptyInNeverMatches(t *testing.T) {
	t.Parallel()

	query, args, err := Select("public_id").From("teams").
		Where(In("status", nil)).
		ToSQL()
	require.NoError(t, err)
	require.Equal(t, "SELECT public_id FROM teams WHERE 1=0", query)
	require.Empty(t, args)
}

func TestInsertMultiRowWithSuffix(t *testing.T) {
	t.Parallel()

	query, args, err := InsertInto("rest_counters").
		Columns("season_public_id", "team_public_id", "scheduled_byes").
		Values("s-2026", "t-1", 2).
		Values("s-2026", "t-2", 1).
		Suffix("ON CONFLICT (season_public_id, team_public_id) DO UPDATE SET scheduled_byes = EXCLUDED.scheduled_byes").
		ToSQL()
	require.NoError(t, err)
	require.Equal(t,
		"INSERT INTO rest_counters (season_public_id, team_public_id, scheduled_byes) VALUES ($1, $2, $3), ($4, $5, $6) "+
			"ON CONFLICT (season_public_id, team_public_id) DO UPDATE SET scheduled_byes = EXCLUDED.scheduled_byes",
		query)
	require.Len(t, args, 6)
}

func TestInsertRowArityMismatch(t *testing.T) {
	t.Parallel()

	_, _, err := InsertInto("rest_counters").
		Columns("a", "b").
		Values(1).
		ToSQL()
	require.Error(t, err)
}

func TestUpdateWithExprAndWhere(t *testing.T) {
	t.Parallel()

	query, args, err := Update("matches").
		SetExpr("deleted_at", "NOW()").
		Set("status", "canceled").
		Where(
			Eq("season_public_id", "s-2026"),
			Expr("status NOT IN (?, ?)", "in_progress", "finished"),
			IsNull("deleted_at"),
		).
		ToSQL()
	require.NoError(t, err)
	require.Equal(t,
		"UPDATE matches SET deleted_at = NOW(), status = $1 WHERE season_public_id = $2 AND status NOT IN ($3, $4) AND deleted_at IS NULL",
		query)
	require.Equal(t, []any{"canceled", "s-2026", "in_progress", "finished"}, args)
}
