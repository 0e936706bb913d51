// Package session resolves the identity behind a request. A Session is
// an explicit per-request object handed to every service; it is never
// ambient or global.
package session

import (
	"errors"

	"github.com/gofiber/storage"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/stores"
)

// AdminRoleID is the id of the seeded system admin role. Presenting a
// valid API key grants this role wholesale; per-key permission scoping
// is intentionally not supported.
const AdminRoleID uint = 1

// Session resolves and memoizes the authenticated user for one request.
type Session struct {
	users    *stores.UserStore
	roles    *stores.RoleStore
	apiKeys  *stores.APIKeyStore
	store    storage.Storage
	user     *models.User
	resolved bool
}

// New creates a session resolver bound to the database and the cookie
// session store.
func New(db *gorm.DB, store storage.Storage) *Session {
	return &Session{
		users:   stores.NewUserStore(db),
		roles:   stores.NewRoleStore(db),
		apiKeys: stores.NewAPIKeyStore(db),
		store:   store,
	}
}

// Resolve determines the request identity. First match wins:
//  1. bearer token matching an API key grants a synthesized admin user,
//  2. a cookie session id with a stored user id loads that user,
//  3. otherwise the request is anonymous (nil user, not an error).
//
// The result is memoized for the lifetime of the session object.
func (s *Session) Resolve(bearerToken, sessionID string) {
	if s.resolved {
		return
	}

	s.resolved = true

	if bearerToken != "" {
		if user := s.resolveAPIKey(bearerToken); user != nil {
			s.user = user
			return
		}
	}

	if sessionID != "" {
		s.user = s.resolveCookieSession(sessionID)
	}
}

// AuthenticatedUser returns the resolved user, or nil for anonymous
// requests. Resolve must have been called first.
func (s *Session) AuthenticatedUser() *models.User {
	return s.user
}

// resolveAPIKey synthesizes an admin user for a valid API key token.
// This path bypasses the user table entirely.
func (s *Session) resolveAPIKey(token string) *models.User {
	key, err := s.apiKeys.ReadByToken(token)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Msg("api key lookup failed")
		}

		return nil
	}

	adminRole, err := s.roles.Read(AdminRoleID)
	if err != nil {
		log.Error().Err(err).Msg("admin role lookup failed")
		return nil
	}

	return &models.User{
		Name:   "API: " + key.Name,
		Active: true,
		RoleID: AdminRoleID,
		Role:   *adminRole,
	}
}

// resolveCookieSession loads the user referenced by a cookie session.
func (s *Session) resolveCookieSession(sessionID string) *models.User {
	data := new(Data)
	if err := data.Read(s.store, sessionID); err != nil {
		return nil
	}

	if data.UserID == 0 {
		return nil
	}

	user, err := s.users.Read(data.UserID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Uint64("user_id", data.UserID).Msg("session user lookup failed")
		}

		return nil
	}

	if !user.Active {
		return nil
	}

	return user
}
