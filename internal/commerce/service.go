// AngelaMos | 2026
// service.go

package commerce

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/carterperez-dev/creatorcash/internal/catalog"
	"github.com/carterperez-dev/creatorcash/internal/core"
	"github.com/carterperez-dev/creatorcash/internal/ledger"
	"github.com/carterperez-dev/creatorcash/internal/payment"
)

// Service orchestrates the paid interaction flows. Every flow follows the
// same shape: resolve the creator, check the feature flag, resolve the
// amount server-side, charge, then append the record. Client-supplied
// amounts are only accepted where the buyer genuinely chooses the price
// (tips, calls within the creator's range).
type Service struct {
	catalog *catalog.Service
	ledger  ledger.Store
	gateway payment.Gateway
	metrics *core.Metrics
	logger  *slog.Logger

	currency string
	now      func() time.Time
	newID    func() string
}

// notFoundError marks a catalog lookup miss: the referenced id does not
// exist in the creator's catalog. Matches core.ErrNotFound under errors.Is.
type notFoundError struct {
	resource string
	id       string
}

func (e *notFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.resource, e.id)
}

func (e *notFoundError) Is(target error) bool {
	return target == core.ErrNotFound
}

func NewService(
	catalogSvc *catalog.Service,
	ledgerStore ledger.Store,
	gateway payment.Gateway,
	metrics *core.Metrics,
	logger *slog.Logger,
) *Service {
	return &Service{
		catalog:  catalogSvc,
		ledger:   ledgerStore,
		gateway:  gateway,
		metrics:  metrics,
		logger:   logger,
		currency: payment.DefaultCurrency,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// WithClock overrides the time source, for billing date tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithCurrency sets the settlement currency passed to the gateway.
func (s *Service) WithCurrency(currency string) *Service {
	if currency != "" {
		s.currency = currency
	}
	return s
}

func (s *Service) AskQuestion(
	ctx context.Context,
	username string,
	req AskQuestionRequest,
) (*ledger.Question, error) {
	creator, err := s.catalog.GetCreator(ctx, username)
	if err != nil {
		return nil, err
	}
	if !creator.Settings.EnableQuestions {
		return nil, fmt.Errorf("questions: %w", core.ErrFeatureDisabled)
	}

	opt, ok := creator.ResponseOption(req.ResponseOptionID)
	if !ok {
		return nil, &notFoundError{resource: "response option", id: req.ResponseOptionID}
	}

	if err := s.charge(ctx, req.Payment, opt.Price); err != nil {
		return nil, err
	}

	record := &ledger.Question{
		ID:               s.newID(),
		CreatorUsername:  creator.Username,
		SenderName:       req.Name,
		SenderEmail:      req.Email,
		Content:          req.Question,
		Amount:           opt.Price,
		ResponseOptionID: opt.ID,
		ResponseType:     opt.Type,
		Status:           ledger.QuestionPending,
		CreatedAt:        s.now(),
	}

	if err := s.ledger.AppendQuestion(ctx, record); err != nil {
		return nil, s.recordingFailed(ctx, "question", record.ID, err)
	}

	s.metrics.RecordCreated("question")
	return record, nil
}

func (s *Service) BookCall(
	ctx context.Context,
	username string,
	req BookCallRequest,
) (*ledger.CallBooking, error) {
	creator, err := s.catalog.GetCreator(ctx, username)
	if err != nil {
		return nil, err
	}
	if !creator.Settings.EnableCalls {
		return nil, fmt.Errorf("calls: %w", core.ErrFeatureDisabled)
	}

	// Callers pick the amount, but it has to land inside the creator's
	// advertised range.
	if req.Amount < creator.CallPrice.Min || req.Amount > creator.CallPrice.Max {
		return nil, fmt.Errorf(
			"%w: amount must be between %.2f and %.2f",
			core.ErrInvalidInput, creator.CallPrice.Min, creator.CallPrice.Max,
		)
	}

	if err := s.charge(ctx, req.Payment, req.Amount); err != nil {
		return nil, err
	}

	record := &ledger.CallBooking{
		ID:              s.newID(),
		CreatorUsername: creator.Username,
		BookerName:      req.Name,
		BookerEmail:     req.Email,
		Duration:        req.Duration,
		PreferredDates:  req.PreferredDates,
		Notes:           req.Notes,
		Amount:          req.Amount,
		Status:          ledger.CallPending,
		CreatedAt:       s.now(),
	}

	if err := s.ledger.AppendCallBooking(ctx, record); err != nil {
		return nil, s.recordingFailed(ctx, "call_booking", record.ID, err)
	}

	s.metrics.RecordCreated("call_booking")
	return record, nil
}

func (s *Service) SendTip(
	ctx context.Context,
	username string,
	req SendTipRequest,
) (*ledger.Tip, error) {
	creator, err := s.catalog.GetCreator(ctx, username)
	if err != nil {
		return nil, err
	}
	if !creator.Settings.EnableTips {
		return nil, fmt.Errorf("tips: %w", core.ErrFeatureDisabled)
	}

	if req.Amount < 1 {
		return nil, fmt.Errorf(
			"%w: tip amount must be at least 1",
			core.ErrInvalidInput,
		)
	}

	if err := s.charge(ctx, req.Payment, req.Amount); err != nil {
		return nil, err
	}

	record := &ledger.Tip{
		ID:              s.newID(),
		CreatorUsername: creator.Username,
		SenderName:      req.Name,
		Message:         req.Message,
		Amount:          req.Amount,
		CreatedAt:       s.now(),
	}

	if err := s.ledger.AppendTip(ctx, record); err != nil {
		return nil, s.recordingFailed(ctx, "tip", record.ID, err)
	}

	s.metrics.RecordCreated("tip")
	return record, nil
}

func (s *Service) PurchaseProduct(
	ctx context.Context,
	username string,
	req PurchaseProductRequest,
) (*ledger.ProductPurchase, error) {
	creator, err := s.catalog.GetCreator(ctx, username)
	if err != nil {
		return nil, err
	}
	if !creator.Settings.EnableProducts {
		return nil, fmt.Errorf("products: %w", core.ErrFeatureDisabled)
	}

	product, ok := creator.Product(req.ProductID)
	if !ok {
		return nil, &notFoundError{resource: "product", id: req.ProductID}
	}

	if product.Type == catalog.ProductPhysical && req.ShippingAddress == "" {
		return nil, fmt.Errorf(
			"%w: shipping address is required for physical products",
			core.ErrInvalidInput,
		)
	}

	amount := product.Price * float64(req.Quantity)

	if err := s.charge(ctx, req.Payment, amount); err != nil {
		return nil, err
	}

	record := &ledger.ProductPurchase{
		ID:              s.newID(),
		CreatorUsername: creator.Username,
		BuyerName:       req.Name,
		BuyerEmail:      req.Email,
		ShippingAddress: req.ShippingAddress,
		ProductID:       product.ID,
		Quantity:        req.Quantity,
		Amount:          amount,
		Status:          ledger.PurchasePending,
		CreatedAt:       s.now(),
	}

	if err := s.ledger.AppendPurchase(ctx, record); err != nil {
		return nil, s.recordingFailed(ctx, "product_purchase", record.ID, err)
	}

	s.metrics.RecordCreated("product_purchase")
	return record, nil
}

func (s *Service) BookShoutout(
	ctx context.Context,
	username string,
	req BookShoutoutRequest,
) (*ledger.ShoutoutBooking, error) {
	creator, err := s.catalog.GetCreator(ctx, username)
	if err != nil {
		return nil, err
	}
	if !creator.Settings.EnableShoutouts {
		return nil, fmt.Errorf("shoutouts: %w", core.ErrFeatureDisabled)
	}

	opt, ok := creator.ShoutoutOption(req.ShoutoutOptionID)
	if !ok {
		return nil, &notFoundError{resource: "shoutout option", id: req.ShoutoutOptionID}
	}

	if err := s.charge(ctx, req.Payment, opt.Price); err != nil {
		return nil, err
	}

	record := &ledger.ShoutoutBooking{
		ID:               s.newID(),
		CreatorUsername:  creator.Username,
		BuyerName:        req.Name,
		BuyerEmail:       req.Email,
		ShoutoutOptionID: opt.ID,
		Details:          req.Details,
		Amount:           opt.Price,
		Status:           ledger.ShoutoutPending,
		CreatedAt:        s.now(),
	}

	if err := s.ledger.AppendShoutoutBooking(ctx, record); err != nil {
		return nil, s.recordingFailed(ctx, "shoutout_booking", record.ID, err)
	}

	s.metrics.RecordCreated("shoutout_booking")
	return record, nil
}

func (s *Service) BookHireService(
	ctx context.Context,
	username string,
	req BookHireServiceRequest,
) (*ledger.HireBooking, error) {
	creator, err := s.catalog.GetCreator(ctx, username)
	if err != nil {
		return nil, err
	}
	if !creator.Settings.EnableHiring {
		return nil, fmt.Errorf("hiring: %w", core.ErrFeatureDisabled)
	}

	svc, ok := creator.HireService(req.HireServiceID)
	if !ok {
		return nil, &notFoundError{resource: "hire service", id: req.HireServiceID}
	}

	if err := s.charge(ctx, req.Payment, svc.Price); err != nil {
		return nil, err
	}

	record := &ledger.HireBooking{
		ID:              s.newID(),
		CreatorUsername: creator.Username,
		ClientName:      req.Name,
		ClientEmail:     req.Email,
		HireServiceID:   svc.ID,
		ProjectDetails:  req.ProjectDetails,
		Amount:          svc.Price,
		Status:          ledger.HirePending,
		CreatedAt:       s.now(),
	}

	if err := s.ledger.AppendHireBooking(ctx, record); err != nil {
		return nil, s.recordingFailed(ctx, "hire_booking", record.ID, err)
	}

	s.metrics.RecordCreated("hire_booking")
	return record, nil
}

func (s *Service) JoinGroup(
	ctx context.Context,
	username string,
	req JoinGroupRequest,
) (*ledger.GroupMembership, error) {
	creator, err := s.catalog.GetCreator(ctx, username)
	if err != nil {
		return nil, err
	}
	if !creator.Settings.EnablePrivateGroups {
		return nil, fmt.Errorf("private groups: %w", core.ErrFeatureDisabled)
	}

	group, ok := creator.PrivateGroup(req.GroupID)
	if !ok {
		return nil, &notFoundError{resource: "private group", id: req.GroupID}
	}

	if err := s.charge(ctx, req.Payment, group.MembershipFee); err != nil {
		return nil, err
	}

	start := s.now()
	record := &ledger.GroupMembership{
		ID:              s.newID(),
		CreatorUsername: creator.Username,
		MemberName:      req.Name,
		MemberEmail:     req.Email,
		GroupID:         group.ID,
		StartDate:       start,
		NextBillingDate: nextBillingDate(start, group.BillingCycle),
		Amount:          group.MembershipFee,
		Status:          ledger.MembershipActive,
		CreatedAt:       start,
	}

	if err := s.ledger.AppendMembership(ctx, record); err != nil {
		return nil, s.recordingFailed(ctx, "group_membership", record.ID, err)
	}

	s.metrics.RecordCreated("group_membership")
	return record, nil
}

// JoinWaitlist is the one flow with no payment step.
func (s *Service) JoinWaitlist(
	ctx context.Context,
	username string,
	req JoinWaitlistRequest,
) (*ledger.WaitlistItem, error) {
	creator, err := s.catalog.GetCreator(ctx, username)
	if err != nil {
		return nil, err
	}
	if !creator.Settings.EnableWaitlist {
		return nil, fmt.Errorf("waitlist: %w", core.ErrFeatureDisabled)
	}

	pref := req.NotificationPreference
	if pref == "" {
		pref = ledger.NotifyEmail
	}
	if (pref == ledger.NotifySMS || pref == ledger.NotifyBoth) && req.Phone == "" {
		return nil, fmt.Errorf(
			"%w: phone is required for sms notifications",
			core.ErrInvalidInput,
		)
	}

	record := &ledger.WaitlistItem{
		ID:                     s.newID(),
		CreatorUsername:        creator.Username,
		SubscriberName:         req.Name,
		SubscriberEmail:        req.Email,
		Reason:                 req.Reason,
		Interests:              req.Interests,
		NotificationPreference: pref,
		Phone:                  req.Phone,
		Status:                 ledger.WaitlistPending,
		CreatedAt:              s.now(),
	}

	if err := s.ledger.AppendWaitlistItem(ctx, record); err != nil {
		return nil, s.recordingFailed(ctx, "waitlist_item", record.ID, err)
	}

	s.metrics.RecordCreated("waitlist_item")
	return record, nil
}

// ReviewWaitlistItem moves a pending entry to accepted or rejected. Already
// reviewed entries stay where they are.
func (s *Service) ReviewWaitlistItem(
	ctx context.Context,
	id, status string,
) (*ledger.WaitlistItem, error) {
	if status != ledger.WaitlistAccepted && status != ledger.WaitlistRejected {
		return nil, fmt.Errorf(
			"%w: status must be %q or %q",
			core.ErrInvalidInput, ledger.WaitlistAccepted, ledger.WaitlistRejected,
		)
	}

	item, err := s.ledger.GetWaitlistItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.Status != ledger.WaitlistPending {
		return nil, fmt.Errorf(
			"%w: waitlist item %q already %s",
			core.ErrInvalidInput, id, item.Status,
		)
	}

	return s.ledger.UpdateWaitlistStatus(ctx, id, status)
}

func (s *Service) Questions(ctx context.Context, username string) ([]ledger.Question, error) {
	if _, err := s.catalog.GetCreator(ctx, username); err != nil {
		return nil, err
	}
	return s.ledger.QuestionsByCreator(ctx, username)
}

func (s *Service) CallBookings(ctx context.Context, username string) ([]ledger.CallBooking, error) {
	if _, err := s.catalog.GetCreator(ctx, username); err != nil {
		return nil, err
	}
	return s.ledger.CallBookingsByCreator(ctx, username)
}

func (s *Service) Tips(ctx context.Context, username string) ([]ledger.Tip, error) {
	if _, err := s.catalog.GetCreator(ctx, username); err != nil {
		return nil, err
	}
	return s.ledger.TipsByCreator(ctx, username)
}

func (s *Service) Purchases(ctx context.Context, username string) ([]ledger.ProductPurchase, error) {
	if _, err := s.catalog.GetCreator(ctx, username); err != nil {
		return nil, err
	}
	return s.ledger.PurchasesByCreator(ctx, username)
}

func (s *Service) ShoutoutBookings(ctx context.Context, username string) ([]ledger.ShoutoutBooking, error) {
	if _, err := s.catalog.GetCreator(ctx, username); err != nil {
		return nil, err
	}
	return s.ledger.ShoutoutBookingsByCreator(ctx, username)
}

func (s *Service) HireBookings(ctx context.Context, username string) ([]ledger.HireBooking, error) {
	if _, err := s.catalog.GetCreator(ctx, username); err != nil {
		return nil, err
	}
	return s.ledger.HireBookingsByCreator(ctx, username)
}

func (s *Service) Memberships(ctx context.Context, username string) ([]ledger.GroupMembership, error) {
	if _, err := s.catalog.GetCreator(ctx, username); err != nil {
		return nil, err
	}
	return s.ledger.MembershipsByCreator(ctx, username)
}

func (s *Service) Waitlist(ctx context.Context, username string) ([]ledger.WaitlistItem, error) {
	if _, err := s.catalog.GetCreator(ctx, username); err != nil {
		return nil, err
	}
	return s.ledger.WaitlistByCreator(ctx, username)
}

func (s *Service) charge(
	ctx context.Context,
	details PaymentDetails,
	amount float64,
) error {
	if err := details.Validate(); err != nil {
		return err
	}

	result, err := s.gateway.Charge(ctx, payment.Request{
		Amount:   amount,
		Currency: s.currency,
		Method:   details.Method,
	})
	if err != nil {
		outcome := "error"
		if errors.Is(err, core.ErrPaymentDeclined) {
			outcome = "declined"
		}
		s.metrics.PaymentAttempt(details.Method, outcome)
		return err
	}

	s.metrics.PaymentAttempt(details.Method, "success")
	s.logger.InfoContext(ctx, "payment captured",
		"transaction_id", result.TransactionID,
		"method", details.Method,
		"amount", amount,
	)
	return nil
}

// recordingFailed is the charge-succeeded-but-append-failed path. The money
// already moved, so the original error is logged and the caller gets the
// contact-support sentinel.
func (s *Service) recordingFailed(
	ctx context.Context,
	kind, id string,
	err error,
) error {
	s.logger.ErrorContext(ctx, "ledger append failed after successful charge",
		"kind", kind,
		"record_id", id,
		"error", err,
	)
	return fmt.Errorf("record %s: %w", kind, core.ErrRecordingFailed)
}
