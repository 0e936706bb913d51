package service

import (
	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/stores"
	"github.com/portalbox-admin/portalbox-admin/internal/perms"
	"github.com/portalbox-admin/portalbox-admin/internal/session"
	"github.com/portalbox-admin/portalbox-admin/internal/uniuri"
)

// apiKeyTokenLength is the length of generated bearer tokens.
const apiKeyTokenLength = 32

// APIKeyRequest is the payload for creating or updating an API key. A
// blank token on create means one is generated server-side; the token
// is immutable afterwards.
type APIKeyRequest struct {
	Name  string `json:"name"`
	Token string `json:"token,omitempty"`
}

// APIKeyService manages bearer API keys. A valid key grants the full
// admin role, so issuing one is itself an admin-level action.
type APIKeyService struct {
	apiKeys *stores.APIKeyStore
}

// NewAPIKeyService creates an API key service.
func NewAPIKeyService(db *gorm.DB) *APIKeyService {
	return &APIKeyService{apiKeys: stores.NewAPIKeyStore(db)}
}

// Create adds an API key, generating a random token when none is given.
func (s *APIKeyService) Create(sess *session.Session, req APIKeyRequest) (*models.APIKey, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgAPIKeysNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.CreateAPIKey, MsgAPIKeysNotAuthorized); err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, errMissingField("name")
	}

	token := req.Token
	if token == "" {
		token = uniuri.NewLen(apiKeyTokenLength)
	}

	key := &models.APIKey{Name: req.Name, Token: token}
	if err := s.apiKeys.Create(key); err != nil {
		return nil, err
	}

	return key, nil
}

// Read returns one API key by id.
func (s *APIKeyService) Read(sess *session.Session, id uint) (*models.APIKey, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgAPIKeysNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ReadAPIKey, MsgAPIKeysNotAuthorized); err != nil {
		return nil, err
	}

	key, err := s.apiKeys.Read(id)
	if err != nil {
		return nil, notFoundOr(err, MsgAPIKeyNotFound)
	}

	return key, nil
}

// Update renames an API key. The token never changes; revoke by
// deleting the key and issuing a new one.
func (s *APIKeyService) Update(sess *session.Session, id uint, req APIKeyRequest) (*models.APIKey, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgAPIKeysNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ModifyAPIKey, MsgAPIKeysNotAuthorized); err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, errMissingField("name")
	}

	key, err := s.apiKeys.Read(id)
	if err != nil {
		return nil, notFoundOr(err, MsgAPIKeyNotFound)
	}

	key.Name = req.Name
	if err := s.apiKeys.Update(key); err != nil {
		return nil, err
	}

	return key, nil
}

// Delete revokes an API key.
func (s *APIKeyService) Delete(sess *session.Session, id uint) error {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgAPIKeysNotAuthenticated); err != nil {
		return err
	}

	if err := authorize(caller, perms.DeleteAPIKey, MsgAPIKeysNotAuthorized); err != nil {
		return err
	}

	if _, err := s.apiKeys.Read(id); err != nil {
		return notFoundOr(err, MsgAPIKeyNotFound)
	}

	return s.apiKeys.Delete(id)
}

// ReadAll lists all API keys.
func (s *APIKeyService) ReadAll(sess *session.Session) ([]models.APIKey, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgAPIKeysNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ListAPIKeys, MsgAPIKeysNotAuthorized); err != nil {
		return nil, err
	}

	return s.apiKeys.Search()
}
