package service

import (
	"time"

	"gorm.io/gorm"

	"github.com/portalbox-admin/portalbox-admin/internal/db/models"
	"github.com/portalbox-admin/portalbox-admin/internal/db/query"
	"github.com/portalbox-admin/portalbox-admin/internal/db/stores"
	"github.com/portalbox-admin/portalbox-admin/internal/perms"
	"github.com/portalbox-admin/portalbox-admin/internal/session"
)

// PaymentRequest is the payload for recording or correcting a payment.
type PaymentRequest struct {
	UserID uint64 `json:"user_id"`
	Amount string `json:"amount"`
}

// PaymentService manages the payment ledger.
type PaymentService struct {
	payments *stores.PaymentStore
	users    *stores.UserStore
}

// NewPaymentService creates a payment service.
func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{
		payments: stores.NewPaymentStore(db),
		users:    stores.NewUserStore(db),
	}
}

func (s *PaymentService) validatePaymentRequest(req PaymentRequest) error {
	if req.UserID == 0 {
		return errMissingField("user_id")
	}

	if req.Amount == "" {
		return errMissingField("amount")
	}

	if !chargeRatePattern.MatchString(req.Amount) {
		return errInvalidField("amount")
	}

	if _, err := s.users.Read(req.UserID); err != nil {
		return notFoundOr(err, MsgUserNotFound)
	}

	return nil
}

// Create records a payment.
func (s *PaymentService) Create(sess *session.Session, req PaymentRequest) (*models.Payment, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgPaymentsNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.CreatePayment, MsgPaymentsNotAuthorized); err != nil {
		return nil, err
	}

	if err := s.validatePaymentRequest(req); err != nil {
		return nil, err
	}

	payment := &models.Payment{
		UserID: req.UserID,
		Amount: req.Amount,
		Time:   time.Now(),
	}
	if err := s.payments.Create(payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// Read returns one payment. Callers without the broad read permission
// may read payments on their own account.
func (s *PaymentService) Read(sess *session.Session, id uint64) (*models.Payment, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgPaymentsNotAuthenticated); err != nil {
		return nil, err
	}

	if !caller.Role.HasPermission(perms.ReadPayment) &&
		!caller.Role.HasPermission(perms.ListOwnPayments) {
		return nil, AuthorizationError{Message: MsgPaymentsNotAuthorized}
	}

	payment, err := s.payments.Read(id)
	if err != nil {
		return nil, notFoundOr(err, MsgPaymentNotFound)
	}

	if !caller.Role.HasPermission(perms.ReadPayment) && payment.UserID != caller.ID {
		return nil, AuthorizationError{Message: MsgPaymentsNotAuthorized}
	}

	return payment, nil
}

// Update corrects a payment amount.
func (s *PaymentService) Update(sess *session.Session, id uint64, req PaymentRequest) (*models.Payment, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgPaymentsNotAuthenticated); err != nil {
		return nil, err
	}

	if err := authorize(caller, perms.ModifyPayment, MsgPaymentsNotAuthorized); err != nil {
		return nil, err
	}

	if req.Amount == "" {
		return nil, errMissingField("amount")
	}

	if !chargeRatePattern.MatchString(req.Amount) {
		return nil, errInvalidField("amount")
	}

	payment, err := s.payments.Read(id)
	if err != nil {
		return nil, notFoundOr(err, MsgPaymentNotFound)
	}

	payment.Amount = req.Amount
	if err := s.payments.Update(payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// Delete removes a mistaken payment entry.
func (s *PaymentService) Delete(sess *session.Session, id uint64) error {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgPaymentsNotAuthenticated); err != nil {
		return err
	}

	if err := authorize(caller, perms.DeletePayment, MsgPaymentsNotAuthorized); err != nil {
		return err
	}

	if _, err := s.payments.Read(id); err != nil {
		return notFoundOr(err, MsgPaymentNotFound)
	}

	return s.payments.Delete(id)
}

// ReadAll lists payments matching the filter. Callers holding only the
// own-scope permission see just their own payments.
func (s *PaymentService) ReadAll(sess *session.Session, q query.Payment) ([]models.Payment, error) {
	caller := sess.AuthenticatedUser()
	if err := authenticate(caller, MsgPaymentsNotAuthenticated); err != nil {
		return nil, err
	}

	if !caller.Role.HasPermission(perms.ListPayments) {
		if !caller.Role.HasPermission(perms.ListOwnPayments) {
			return nil, AuthorizationError{Message: MsgPaymentsNotAuthorized}
		}

		own := caller.ID
		q.UserID = &own
	}

	return s.payments.Search(q)
}
