package postgres

import (
	"database/sql"
	"encoding/json"
	"hash/fnv"
)

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func encodeJSONStrings(items []string) []byte {
	if len(items) == 0 {
		return []byte("[]")
	}
	buf, err := json.Marshal(items)
	if err != nil {
		return []byte("[]")
	}
	return buf
}

func decodeJSONStrings(buf []byte) []string {
	if len(buf) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(buf, &out); err != nil {
		return nil
	}
	return out
}

// seasonLockKey hashes a season's public id into the bigint keyspace of
// Postgres advisory locks.
func seasonLockKey(seasonID string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("season-calendar:"))
	_, _ = h.Write([]byte(seasonID))
	return int64(h.Sum64())
}
