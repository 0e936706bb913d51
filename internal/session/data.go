package session

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/gofiber/storage"
)

// Data is the payload serialized into the session store. Only the user
// id is stored; the user record is re-read from the database on each
// request so role or active-flag changes take effect immediately.
type Data struct {
	UserID uint64
}

// Write writes the session data for the given session ID with an expiration duration.
func (d *Data) Write(store storage.Storage, sessionID string, exp time.Duration) error {
	out, err := json.Marshal(d)
	if err != nil {
		return err
	}

	return store.Set(sessionID, out, exp)
}

// Read reads the session data for the given session ID.
func (d *Data) Read(store storage.Storage, sessionID string) error {
	byteData, err := store.Get(sessionID)
	if err != nil {
		return err
	}

	return json.Unmarshal(byteData, d)
}

// GenerateSessionID generates a new secure random session ID.
func GenerateSessionID() (string, error) {
	// 32 bytes = 256 bits
	b := make([]byte, 32) //nolint:mnd
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
