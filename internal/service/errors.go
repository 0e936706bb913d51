// Package service implements the business layer. Every operation
// follows the same contract: resolve identity, check permissions,
// validate input, persist, return the entity. Failures are typed so the
// transport layer can map them to HTTP status codes.
package service

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

// AuthenticationError means no identity could be resolved for the
// request. Always checked before authorization.
type AuthenticationError struct {
	Message string
}

func (e AuthenticationError) Error() string { return e.Message }

// AuthorizationError means the identity lacks the required permission,
// including the own-scope mismatch case.
type AuthorizationError struct {
	Message string
}

func (e AuthorizationError) Error() string { return e.Message }

// NotFoundError means the target resource id does not exist. It is only
// raised after authorization succeeds, so unauthorized callers cannot
// probe for resource existence.
type NotFoundError struct {
	Message string
}

func (e NotFoundError) Error() string { return e.Message }

// InvalidArgumentError means malformed, missing, or semantically invalid
// input. Field checks run in declared order and stop at the first failure.
type InvalidArgumentError struct {
	Message string
}

func (e InvalidArgumentError) Error() string { return e.Message }

// InternalError marks a configuration or infrastructure failure that the
// caller cannot fix by changing the request. Maps to 500.
type InternalError struct {
	Message string
}

func (e InternalError) Error() string { return e.Message }

// IsAuthentication reports whether err is an AuthenticationError.
func IsAuthentication(err error) bool {
	var target AuthenticationError
	return errors.As(err, &target)
}

// IsAuthorization reports whether err is an AuthorizationError.
func IsAuthorization(err error) bool {
	var target AuthorizationError
	return errors.As(err, &target)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

// IsInvalidArgument reports whether err is an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	var target InvalidArgumentError
	return errors.As(err, &target)
}

// StatusCode maps a service error to its HTTP status code. Unclassified
// errors map to 500.
func StatusCode(err error) int {
	switch {
	case IsAuthentication(err):
		return http.StatusUnauthorized
	case IsAuthorization(err):
		return http.StatusForbidden
	case IsNotFound(err):
		return http.StatusNotFound
	case IsInvalidArgument(err):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// Per-resource message constants. These are stable strings relied on by
// tests and by device firmware; do not rephrase casually.
const (
	MsgAPIKeysNotAuthenticated = "You must be authenticated to work with API keys"
	MsgAPIKeysNotAuthorized    = "You are not authorized to work with API keys"
	MsgAPIKeyNotFound          = "API key not found"

	MsgRolesNotAuthenticated = "You must be authenticated to work with roles"
	MsgRolesNotAuthorized    = "You are not authorized to work with roles"
	MsgRoleNotFound          = "Role not found"

	MsgUsersNotAuthenticated = "You must be authenticated to work with users"
	MsgUsersNotAuthorized    = "You are not authorized to work with users"
	MsgUserNotFound          = "User not found"

	MsgCardsNotAuthenticated = "You must be authenticated to work with cards"
	MsgCardsNotAuthorized    = "You are not authorized to work with cards"
	MsgCardNotFound          = "Card not found"

	MsgCardTypesNotAuthenticated = "You must be authenticated to work with card types"
	MsgCardTypesNotAuthorized    = "You are not authorized to work with card types"
	MsgCardTypeNotFound          = "Card type not found"

	MsgChargePoliciesNotAuthenticated = "You must be authenticated to work with charge policies"
	MsgChargePoliciesNotAuthorized    = "You are not authorized to work with charge policies"
	MsgChargePolicyNotFound           = "Charge policy not found"

	MsgChargesNotAuthenticated = "You must be authenticated to work with charges"
	MsgChargesNotAuthorized    = "You are not authorized to work with charges"
	MsgChargeNotFound          = "Charge not found"

	MsgPaymentsNotAuthenticated = "You must be authenticated to work with payments"
	MsgPaymentsNotAuthorized    = "You are not authorized to work with payments"
	MsgPaymentNotFound          = "Payment not found"

	MsgEquipmentTypesNotAuthenticated = "You must be authenticated to work with equipment types"
	MsgEquipmentTypesNotAuthorized    = "You are not authorized to work with equipment types"
	MsgEquipmentTypeNotFound          = "Equipment type not found"

	MsgEquipmentNotAuthenticated = "You must be authenticated to work with equipment"
	MsgEquipmentNotAuthorized    = "You are not authorized to work with equipment"
	MsgEquipmentNotFound         = "Equipment not found"

	MsgLocationsNotAuthenticated = "You must be authenticated to work with locations"
	MsgLocationsNotAuthorized    = "You are not authorized to work with locations"
	MsgLocationNotFound          = "Location not found"

	MsgLogsNotAuthenticated = "You must be authenticated to work with the event log"
	MsgLogsNotAuthorized    = "You are not authorized to work with the event log"
	MsgLogNotFound          = "Logged event not found"

	MsgBadgesNotAuthenticated = "You must be authenticated to work with badges"
	MsgBadgesNotAuthorized    = "You are not authorized to work with badges"
	MsgBadgeRuleNotFound      = "Badge rule not found"
)

// Device protocol messages. The registration denial string is matched by
// device firmware; it deliberately conflates "unknown card" and "wrong
// card type" so callers cannot probe which card ids exist.
const (
	MsgRegistrationNotAuthorized = "ERROR_REGISTRATION_NOT_AUTHORIZED"
	MsgCardNotAuthenticated      = "A valid card id must be presented"
	MsgNoLocationConfigured      = "No location is configured; equipment cannot be registered"
)

func errMissingField(field string) error {
	return InvalidArgumentError{Message: field + " is required"}
}

func errInvalidField(field string) error {
	return InvalidArgumentError{Message: field + " is invalid"}
}

// notFoundOr converts the store's record-not-found error into a
// NotFoundError with the resource message; other errors pass through
// unchanged and surface as internal failures.
func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFoundError{Message: message}
	}

	return err
}
