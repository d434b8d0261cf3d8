package postgres

import (
	"testing"

	"github.com/ackerman1984/d-sports-sub002/internal/domain/schedule"
)

func TestSeasonLockKey(t *testing.T) {
	t.Run("is stable for the same season", func(t *testing.T) {
		if seasonLockKey("season-apertura-2026") != seasonLockKey("season-apertura-2026") {
			t.Fatalf("expected identical keys for identical ids")
		}
	})

	t.Run("differs between seasons", func(t *testing.T) {
		if seasonLockKey("season-apertura-2026") == seasonLockKey("season-clausura-2026") {
			t.Fatalf("expected different keys for different ids")
		}
	})
}

func TestNullString(t *testing.T) {
	if got := nullString(""); got.Valid {
		t.Fatalf("expected invalid for empty string")
	}
	if got := nullString("team-aguilas"); !got.Valid || got.String != "team-aguilas" {
		t.Fatalf("unexpected null string: %+v", got)
	}
}

func TestJSONStringsRoundTrip(t *testing.T) {
	t.Run("empty encodes as empty array", func(t *testing.T) {
		if string(encodeJSONStrings(nil)) != "[]" {
			t.Fatalf("unexpected encoding: %s", encodeJSONStrings(nil))
		}
		if got := decodeJSONStrings([]byte("[]")); len(got) != 0 {
			t.Fatalf("expected no items, got %v", got)
		}
	})

	t.Run("round trips warnings", func(t *testing.T) {
		in := []string{"no usable capacity on 2026-04-04; date skipped"}
		got := decodeJSONStrings(encodeJSONStrings(in))
		if len(got) != 1 || got[0] != in[0] {
			t.Fatalf("unexpected round trip: %v", got)
		}
	})
}

func TestConflictDetailRoundTrip(t *testing.T) {
	if encodeConflict(nil) != nil {
		t.Fatalf("expected nil encoding for nil conflict")
	}

	in := &schedule.Conflict{Round: 4, Seq: 2, HomeTeamID: "team-aguilas", AwayTeamID: "team-broncos", Reason: "no Saturday with free capacity remains before the season end date"}
	got := decodeConflict(encodeConflict(in))
	if got == nil || *got != *in {
		t.Fatalf("unexpected round trip: %+v", got)
	}
}
