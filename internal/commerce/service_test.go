// AngelaMos | 2026
// service_test.go

package commerce

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/carterperez-dev/creatorcash/internal/catalog"
	"github.com/carterperez-dev/creatorcash/internal/core"
	"github.com/carterperez-dev/creatorcash/internal/ledger"
	"github.com/carterperez-dev/creatorcash/internal/payment"
)

func newTestService(
	t *testing.T,
	gateway payment.Gateway,
) (*Service, *catalog.Service, *ledger.MemoryStore) {
	t.Helper()

	catalogSvc := catalog.NewService(catalog.NewMemoryStore(catalog.Seed()...))
	store := ledger.NewMemoryStore()

	svc := NewService(
		catalogSvc,
		store,
		gateway,
		core.NewMetrics(),
		slog.New(slog.DiscardHandler),
	)
	return svc, catalogSvc, store
}

func approvingGateway() payment.Gateway {
	return payment.NewSimulator(1.0, 0)
}

func decliningGateway() payment.Gateway {
	return payment.NewSimulator(0.0, 0)
}

func validCard() PaymentDetails {
	return PaymentDetails{
		Method:     "card",
		CardNumber: "4242 4242 4242 4242",
		ExpiryDate: "12/30",
		CVV:        "123",
	}
}

func TestAskQuestionResolvesAmountFromOption(t *testing.T) {
	svc, _, store := newTestService(t, approvingGateway())

	record, err := svc.AskQuestion(context.Background(), "johndoe", AskQuestionRequest{
		Name:             "Alice",
		Email:            "alice@example.com",
		Question:         "How did you get started?",
		ResponseOptionID: "qro2",
		Payment:          validCard(),
	})
	if err != nil {
		t.Fatalf("AskQuestion: %v", err)
	}

	if record.Amount != 25 {
		t.Errorf("Amount = %v, want 25", record.Amount)
	}
	if record.Status != ledger.QuestionPending {
		t.Errorf("Status = %q, want %q", record.Status, ledger.QuestionPending)
	}
	if record.ResponseType != catalog.ResponseVideo {
		t.Errorf("ResponseType = %q, want %q", record.ResponseType, catalog.ResponseVideo)
	}

	saved, err := store.QuestionsByCreator(context.Background(), "johndoe")
	if err != nil {
		t.Fatalf("QuestionsByCreator: %v", err)
	}
	if len(saved) != 1 {
		t.Fatalf("stored questions = %d, want 1", len(saved))
	}
}

func TestAskQuestionUnknownOptionNotFound(t *testing.T) {
	svc, _, _ := newTestService(t, approvingGateway())

	_, err := svc.AskQuestion(context.Background(), "johndoe", AskQuestionRequest{
		Name:             "Alice",
		Email:            "alice@example.com",
		Question:         "hello",
		ResponseOptionID: "nope",
		Payment:          validCard(),
	})
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestPurchaseUnknownProductNotFound(t *testing.T) {
	svc, _, store := newTestService(t, approvingGateway())

	_, err := svc.PurchaseProduct(context.Background(), "johndoe", PurchaseProductRequest{
		Name:      "Dave",
		Email:     "dave@example.com",
		ProductID: "does-not-exist",
		Quantity:  1,
		Payment:   validCard(),
	})
	if !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if errors.Is(err, core.ErrInvalidInput) {
		t.Error("error also matches ErrInvalidInput, want not-found only")
	}

	purchases, _ := store.PurchasesByCreator(context.Background(), "johndoe")
	if len(purchases) != 0 {
		t.Errorf("stored purchases = %d, want 0", len(purchases))
	}
}

func TestJoinGroupUnknownGroupNotFound(t *testing.T) {
	svc, _, _ := newTestService(t, approvingGateway())

	_, err := svc.JoinGroup(context.Background(), "johndoe", JoinGroupRequest{
		Name:    "Grace",
		Email:   "grace@example.com",
		GroupID: "pg999",
		Payment: validCard(),
	})
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestBookCallWithinRange(t *testing.T) {
	svc, _, _ := newTestService(t, approvingGateway())

	record, err := svc.BookCall(context.Background(), "johndoe", BookCallRequest{
		Name:           "Bob",
		Email:          "bob@example.com",
		Duration:       30,
		Amount:         25,
		PreferredDates: []string{"2026-09-01"},
		Payment:        validCard(),
	})
	if err != nil {
		t.Fatalf("BookCall: %v", err)
	}

	if record.Amount != 25 {
		t.Errorf("Amount = %v, want 25", record.Amount)
	}
	if record.Status != ledger.CallPending {
		t.Errorf("Status = %q, want %q", record.Status, ledger.CallPending)
	}
}

func TestBookCallAmountOutsideRange(t *testing.T) {
	svc, _, _ := newTestService(t, approvingGateway())

	for _, amount := range []float64{10, 500} {
		_, err := svc.BookCall(context.Background(), "johndoe", BookCallRequest{
			Name:           "Bob",
			Email:          "bob@example.com",
			Duration:       30,
			Amount:         amount,
			PreferredDates: []string{"2026-09-01"},
			Payment:        validCard(),
		})
		if !errors.Is(err, core.ErrInvalidInput) {
			t.Errorf("amount %v: error = %v, want ErrInvalidInput", amount, err)
		}
	}
}

func TestSendTipDeclinedLeavesNoRecord(t *testing.T) {
	svc, _, store := newTestService(t, decliningGateway())

	_, err := svc.SendTip(context.Background(), "johndoe", SendTipRequest{
		Name:    "Carol",
		Amount:  5,
		Payment: validCard(),
	})
	if !errors.Is(err, core.ErrPaymentDeclined) {
		t.Fatalf("error = %v, want ErrPaymentDeclined", err)
	}

	tips, _ := store.TipsByCreator(context.Background(), "johndoe")
	if len(tips) != 0 {
		t.Errorf("stored tips = %d, want 0", len(tips))
	}
}

func TestSendTipBelowMinimum(t *testing.T) {
	svc, _, store := newTestService(t, approvingGateway())

	_, err := svc.SendTip(context.Background(), "johndoe", SendTipRequest{
		Name:    "Carol",
		Amount:  0.5,
		Payment: validCard(),
	})
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("error = %v, want ErrInvalidInput", err)
	}

	tips, _ := store.TipsByCreator(context.Background(), "johndoe")
	if len(tips) != 0 {
		t.Errorf("stored tips = %d, want 0", len(tips))
	}
}

func TestPurchasePhysicalProductRequiresShipping(t *testing.T) {
	svc, _, _ := newTestService(t, approvingGateway())

	_, err := svc.PurchaseProduct(context.Background(), "johndoe", PurchaseProductRequest{
		Name:      "Dave",
		Email:     "dave@example.com",
		ProductID: "2",
		Quantity:  1,
		Payment:   validCard(),
	})
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

func TestPurchaseProductQuantityMultipliesAmount(t *testing.T) {
	svc, _, _ := newTestService(t, approvingGateway())

	record, err := svc.PurchaseProduct(context.Background(), "johndoe", PurchaseProductRequest{
		Name:            "Dave",
		Email:           "dave@example.com",
		ProductID:       "2",
		Quantity:        3,
		ShippingAddress: "1 Main St, Springfield",
		Payment:         validCard(),
	})
	if err != nil {
		t.Fatalf("PurchaseProduct: %v", err)
	}

	want := 24.99 * 3
	if math.Abs(record.Amount-want) > 1e-9 {
		t.Errorf("Amount = %v, want %v", record.Amount, want)
	}
}

func TestPurchaseDigitalProductSkipsShipping(t *testing.T) {
	svc, _, _ := newTestService(t, approvingGateway())

	record, err := svc.PurchaseProduct(context.Background(), "johndoe", PurchaseProductRequest{
		Name:      "Dave",
		Email:     "dave@example.com",
		ProductID: "1",
		Quantity:  1,
		Payment:   validCard(),
	})
	if err != nil {
		t.Fatalf("PurchaseProduct: %v", err)
	}
	if record.Amount != 49.99 {
		t.Errorf("Amount = %v, want 49.99", record.Amount)
	}
}

func TestBookShoutoutResolvesAmount(t *testing.T) {
	svc, _, _ := newTestService(t, approvingGateway())

	record, err := svc.BookShoutout(context.Background(), "johndoe", BookShoutoutRequest{
		Name:             "Erin",
		Email:            "erin@example.com",
		ShoutoutOptionID: "so1",
		Details:          "Happy birthday to my sister",
		Payment:          validCard(),
	})
	if err != nil {
		t.Fatalf("BookShoutout: %v", err)
	}
	if record.Amount != 15 {
		t.Errorf("Amount = %v, want 15", record.Amount)
	}
}

func TestBookHireServiceResolvesAmount(t *testing.T) {
	svc, _, _ := newTestService(t, approvingGateway())

	record, err := svc.BookHireService(context.Background(), "johndoe", BookHireServiceRequest{
		Name:           "Frank",
		Email:          "frank@example.com",
		HireServiceID:  "hs2",
		ProjectDetails: "One hour consultation on launch strategy",
		Payment:        validCard(),
	})
	if err != nil {
		t.Fatalf("BookHireService: %v", err)
	}
	if record.Amount != 250 {
		t.Errorf("Amount = %v, want 250", record.Amount)
	}
	if record.Status != ledger.HirePending {
		t.Errorf("Status = %q, want %q", record.Status, ledger.HirePending)
	}
}

func TestJoinGroupSetsBillingDate(t *testing.T) {
	svc, _, _ := newTestService(t, approvingGateway())
	svc.WithClock(func() time.Time {
		return time.Date(2025, time.January, 31, 10, 0, 0, 0, time.UTC)
	})

	record, err := svc.JoinGroup(context.Background(), "johndoe", JoinGroupRequest{
		Name:    "Grace",
		Email:   "grace@example.com",
		GroupID: "pg1",
		Payment: validCard(),
	})
	if err != nil {
		t.Fatalf("JoinGroup: %v", err)
	}

	if record.Amount != 19.99 {
		t.Errorf("Amount = %v, want 19.99", record.Amount)
	}
	if record.Status != ledger.MembershipActive {
		t.Errorf("Status = %q, want %q", record.Status, ledger.MembershipActive)
	}

	wantBilling := time.Date(2025, time.February, 28, 10, 0, 0, 0, time.UTC)
	if !record.NextBillingDate.Equal(wantBilling) {
		t.Errorf("NextBillingDate = %v, want %v", record.NextBillingDate, wantBilling)
	}
}

func TestFlowsRespectFeatureFlags(t *testing.T) {
	svc, catalogSvc, _ := newTestService(t, approvingGateway())

	off := false
	_, err := catalogSvc.UpdateSettings(context.Background(), "johndoe", catalog.SettingsPatch{
		EnableTips: &off,
	})
	if err != nil {
		t.Fatalf("UpdateSettings: %v", err)
	}

	_, err = svc.SendTip(context.Background(), "johndoe", SendTipRequest{
		Name:    "Carol",
		Amount:  5,
		Payment: validCard(),
	})
	if !errors.Is(err, core.ErrFeatureDisabled) {
		t.Errorf("error = %v, want ErrFeatureDisabled", err)
	}
}

func TestUnknownCreator(t *testing.T) {
	svc, _, _ := newTestService(t, approvingGateway())

	_, err := svc.SendTip(context.Background(), "nobody", SendTipRequest{
		Name:    "Carol",
		Amount:  5,
		Payment: validCard(),
	})
	if !errors.Is(err, core.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestJoinWaitlistDefaultsAndReview(t *testing.T) {
	svc, _, _ := newTestService(t, approvingGateway())
	ctx := context.Background()

	item, err := svc.JoinWaitlist(ctx, "janelle", JoinWaitlistRequest{
		Name:  "Heidi",
		Email: "heidi@example.com",
	})
	if err != nil {
		t.Fatalf("JoinWaitlist: %v", err)
	}

	if item.Status != ledger.WaitlistPending {
		t.Errorf("Status = %q, want %q", item.Status, ledger.WaitlistPending)
	}
	if item.NotificationPreference != ledger.NotifyEmail {
		t.Errorf("NotificationPreference = %q, want %q",
			item.NotificationPreference, ledger.NotifyEmail)
	}

	reviewed, err := svc.ReviewWaitlistItem(ctx, item.ID, ledger.WaitlistAccepted)
	if err != nil {
		t.Fatalf("ReviewWaitlistItem: %v", err)
	}
	if reviewed.Status != ledger.WaitlistAccepted {
		t.Errorf("Status = %q, want %q", reviewed.Status, ledger.WaitlistAccepted)
	}

	// A reviewed item cannot transition again.
	if _, err := svc.ReviewWaitlistItem(ctx, item.ID, ledger.WaitlistRejected); !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("second review error = %v, want ErrInvalidInput", err)
	}

	if _, err := svc.ReviewWaitlistItem(ctx, item.ID, "banana"); !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("invalid status error = %v, want ErrInvalidInput", err)
	}
}

func TestJoinWaitlistSMSRequiresPhone(t *testing.T) {
	svc, _, _ := newTestService(t, approvingGateway())

	_, err := svc.JoinWaitlist(context.Background(), "janelle", JoinWaitlistRequest{
		Name:                   "Heidi",
		Email:                  "heidi@example.com",
		NotificationPreference: ledger.NotifySMS,
	})
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}

type failingAppendStore struct {
	*ledger.MemoryStore
}

func (failingAppendStore) AppendTip(ctx context.Context, t *ledger.Tip) error {
	return errors.New("disk full")
}

func TestRecordingFailureAfterCharge(t *testing.T) {
	catalogSvc := catalog.NewService(catalog.NewMemoryStore(catalog.Seed()...))
	svc := NewService(
		catalogSvc,
		failingAppendStore{ledger.NewMemoryStore()},
		approvingGateway(),
		core.NewMetrics(),
		slog.New(slog.DiscardHandler),
	)

	_, err := svc.SendTip(context.Background(), "johndoe", SendTipRequest{
		Name:    "Carol",
		Amount:  5,
		Payment: validCard(),
	})
	if !errors.Is(err, core.ErrRecordingFailed) {
		t.Errorf("error = %v, want ErrRecordingFailed", err)
	}
}

func TestPaymentDetailsValidation(t *testing.T) {
	svc, _, _ := newTestService(t, approvingGateway())

	bad := PaymentDetails{
		Method:     "card",
		CardNumber: "1234",
		ExpiryDate: "12/30",
		CVV:        "123",
	}

	_, err := svc.SendTip(context.Background(), "johndoe", SendTipRequest{
		Name:    "Carol",
		Amount:  5,
		Payment: bad,
	})
	if !errors.Is(err, core.ErrInvalidInput) {
		t.Errorf("error = %v, want ErrInvalidInput", err)
	}
}
