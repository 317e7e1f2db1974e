// AngelaMos | 2026
// store.go

package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/carterperez-dev/creatorcash/internal/core"
)

// Store is the transaction log. Records are append-only; the waitlist
// status transition is the single exception.
type Store interface {
	AppendQuestion(ctx context.Context, q *Question) error
	AppendCallBooking(ctx context.Context, b *CallBooking) error
	AppendTip(ctx context.Context, t *Tip) error
	AppendPurchase(ctx context.Context, p *ProductPurchase) error
	AppendShoutoutBooking(ctx context.Context, b *ShoutoutBooking) error
	AppendHireBooking(ctx context.Context, b *HireBooking) error
	AppendMembership(ctx context.Context, m *GroupMembership) error
	AppendWaitlistItem(ctx context.Context, item *WaitlistItem) error

	QuestionsByCreator(ctx context.Context, username string) ([]Question, error)
	CallBookingsByCreator(ctx context.Context, username string) ([]CallBooking, error)
	TipsByCreator(ctx context.Context, username string) ([]Tip, error)
	PurchasesByCreator(ctx context.Context, username string) ([]ProductPurchase, error)
	ShoutoutBookingsByCreator(ctx context.Context, username string) ([]ShoutoutBooking, error)
	HireBookingsByCreator(ctx context.Context, username string) ([]HireBooking, error)
	MembershipsByCreator(ctx context.Context, username string) ([]GroupMembership, error)
	WaitlistByCreator(ctx context.Context, username string) ([]WaitlistItem, error)

	GetWaitlistItem(ctx context.Context, id string) (*WaitlistItem, error)
	UpdateWaitlistStatus(ctx context.Context, id, status string) (*WaitlistItem, error)

	Ping(ctx context.Context) error
	Close() error
}

// MemoryStore is the demo backend: mutex-guarded in-process slices, one per
// record kind. Isolated instances make tests independent.
type MemoryStore struct {
	mu sync.RWMutex

	questions        []Question
	callBookings     []CallBooking
	tips             []Tip
	purchases        []ProductPurchase
	shoutoutBookings []ShoutoutBooking
	hireBookings     []HireBooking
	memberships      []GroupMembership
	waitlist         []WaitlistItem
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) AppendQuestion(ctx context.Context, q *Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = append(s.questions, *q)
	return nil
}

func (s *MemoryStore) AppendCallBooking(
	ctx context.Context,
	b *CallBooking,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callBookings = append(s.callBookings, *b)
	return nil
}

func (s *MemoryStore) AppendTip(ctx context.Context, t *Tip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tips = append(s.tips, *t)
	return nil
}

func (s *MemoryStore) AppendPurchase(
	ctx context.Context,
	p *ProductPurchase,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purchases = append(s.purchases, *p)
	return nil
}

func (s *MemoryStore) AppendShoutoutBooking(
	ctx context.Context,
	b *ShoutoutBooking,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shoutoutBookings = append(s.shoutoutBookings, *b)
	return nil
}

func (s *MemoryStore) AppendHireBooking(
	ctx context.Context,
	b *HireBooking,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hireBookings = append(s.hireBookings, *b)
	return nil
}

func (s *MemoryStore) AppendMembership(
	ctx context.Context,
	m *GroupMembership,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memberships = append(s.memberships, *m)
	return nil
}

func (s *MemoryStore) AppendWaitlistItem(
	ctx context.Context,
	item *WaitlistItem,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waitlist = append(s.waitlist, *item)
	return nil
}

func (s *MemoryStore) QuestionsByCreator(
	ctx context.Context,
	username string,
) ([]Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Question
	for _, q := range s.questions {
		if q.CreatorUsername == username {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *MemoryStore) CallBookingsByCreator(
	ctx context.Context,
	username string,
) ([]CallBooking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []CallBooking
	for _, b := range s.callBookings {
		if b.CreatorUsername == username {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *MemoryStore) TipsByCreator(
	ctx context.Context,
	username string,
) ([]Tip, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Tip
	for _, t := range s.tips {
		if t.CreatorUsername == username {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *MemoryStore) PurchasesByCreator(
	ctx context.Context,
	username string,
) ([]ProductPurchase, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []ProductPurchase
	for _, p := range s.purchases {
		if p.CreatorUsername == username {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemoryStore) ShoutoutBookingsByCreator(
	ctx context.Context,
	username string,
) ([]ShoutoutBooking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []ShoutoutBooking
	for _, b := range s.shoutoutBookings {
		if b.CreatorUsername == username {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *MemoryStore) HireBookingsByCreator(
	ctx context.Context,
	username string,
) ([]HireBooking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []HireBooking
	for _, b := range s.hireBookings {
		if b.CreatorUsername == username {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *MemoryStore) MembershipsByCreator(
	ctx context.Context,
	username string,
) ([]GroupMembership, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []GroupMembership
	for _, m := range s.memberships {
		if m.CreatorUsername == username {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *MemoryStore) WaitlistByCreator(
	ctx context.Context,
	username string,
) ([]WaitlistItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []WaitlistItem
	for _, item := range s.waitlist {
		if item.CreatorUsername == username {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *MemoryStore) GetWaitlistItem(
	ctx context.Context,
	id string,
) (*WaitlistItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.waitlist {
		if item.ID == id {
			dup := item
			return &dup, nil
		}
	}
	return nil, fmt.Errorf("get waitlist item %q: %w", id, core.ErrNotFound)
}

func (s *MemoryStore) UpdateWaitlistStatus(
	ctx context.Context,
	id, status string,
) (*WaitlistItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.waitlist {
		if s.waitlist[i].ID == id {
			s.waitlist[i].Status = status
			dup := s.waitlist[i]
			return &dup, nil
		}
	}
	return nil, fmt.Errorf("update waitlist item %q: %w", id, core.ErrNotFound)
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
