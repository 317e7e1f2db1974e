// AngelaMos | 2026
// postgres.go

package ledger

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/creatorcash/internal/core"
)

const (
	kindQuestion   = "question"
	kindCall       = "call_booking"
	kindTip        = "tip"
	kindPurchase   = "product_purchase"
	kindShoutout   = "shoutout_booking"
	kindHire       = "hire_booking"
	kindMembership = "group_membership"
	kindWaitlist   = "waitlist_item"
)

// One table for all record kinds: the shared columns are queryable, the
// kind-specific fields live in the JSONB payload.
const schema = `
	CREATE TABLE IF NOT EXISTS transactions (
		id               UUID PRIMARY KEY,
		kind             TEXT NOT NULL,
		creator_username TEXT NOT NULL,
		amount           NUMERIC(12,2) NOT NULL DEFAULT 0,
		status           TEXT NOT NULL DEFAULT '',
		payload          JSONB NOT NULL,
		created_at       TIMESTAMPTZ NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_transactions_kind_creator
		ON transactions (kind, creator_username, created_at);`

type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore applies the schema and returns the store. The schema is
// idempotent, so repeated startups are safe.
func NewPostgresStore(
	ctx context.Context,
	db *sqlx.DB,
) (*PostgresStore, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("apply ledger schema: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) AppendQuestion(ctx context.Context, q *Question) error {
	return s.insert(ctx, kindQuestion, q.ID, q.CreatorUsername, q.Amount, q.Status, q.CreatedAt, q)
}

func (s *PostgresStore) AppendCallBooking(ctx context.Context, b *CallBooking) error {
	return s.insert(ctx, kindCall, b.ID, b.CreatorUsername, b.Amount, b.Status, b.CreatedAt, b)
}

func (s *PostgresStore) AppendTip(ctx context.Context, t *Tip) error {
	return s.insert(ctx, kindTip, t.ID, t.CreatorUsername, t.Amount, "", t.CreatedAt, t)
}

func (s *PostgresStore) AppendPurchase(ctx context.Context, p *ProductPurchase) error {
	return s.insert(ctx, kindPurchase, p.ID, p.CreatorUsername, p.Amount, p.Status, p.CreatedAt, p)
}

func (s *PostgresStore) AppendShoutoutBooking(ctx context.Context, b *ShoutoutBooking) error {
	return s.insert(ctx, kindShoutout, b.ID, b.CreatorUsername, b.Amount, b.Status, b.CreatedAt, b)
}

func (s *PostgresStore) AppendHireBooking(ctx context.Context, b *HireBooking) error {
	return s.insert(ctx, kindHire, b.ID, b.CreatorUsername, b.Amount, b.Status, b.CreatedAt, b)
}

func (s *PostgresStore) AppendMembership(ctx context.Context, m *GroupMembership) error {
	return s.insert(ctx, kindMembership, m.ID, m.CreatorUsername, m.Amount, m.Status, m.CreatedAt, m)
}

func (s *PostgresStore) AppendWaitlistItem(ctx context.Context, item *WaitlistItem) error {
	return s.insert(ctx, kindWaitlist, item.ID, item.CreatorUsername, 0, item.Status, item.CreatedAt, item)
}

func (s *PostgresStore) insert(
	ctx context.Context,
	kind, id, creator string,
	amount float64,
	status string,
	createdAt time.Time,
	record any,
) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("append %s: marshal payload: %w", kind, err)
	}

	query := `
		INSERT INTO transactions (id, kind, creator_username, amount, status, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if _, err := s.db.ExecContext(
		ctx, query, id, kind, creator, amount, status, payload, createdAt,
	); err != nil {
		return fmt.Errorf("append %s: %w", kind, err)
	}

	return nil
}

func (s *PostgresStore) QuestionsByCreator(
	ctx context.Context,
	username string,
) ([]Question, error) {
	return listByCreator[Question](ctx, s.db, kindQuestion, username)
}

func (s *PostgresStore) CallBookingsByCreator(
	ctx context.Context,
	username string,
) ([]CallBooking, error) {
	return listByCreator[CallBooking](ctx, s.db, kindCall, username)
}

func (s *PostgresStore) TipsByCreator(
	ctx context.Context,
	username string,
) ([]Tip, error) {
	return listByCreator[Tip](ctx, s.db, kindTip, username)
}

func (s *PostgresStore) PurchasesByCreator(
	ctx context.Context,
	username string,
) ([]ProductPurchase, error) {
	return listByCreator[ProductPurchase](ctx, s.db, kindPurchase, username)
}

func (s *PostgresStore) ShoutoutBookingsByCreator(
	ctx context.Context,
	username string,
) ([]ShoutoutBooking, error) {
	return listByCreator[ShoutoutBooking](ctx, s.db, kindShoutout, username)
}

func (s *PostgresStore) HireBookingsByCreator(
	ctx context.Context,
	username string,
) ([]HireBooking, error) {
	return listByCreator[HireBooking](ctx, s.db, kindHire, username)
}

func (s *PostgresStore) MembershipsByCreator(
	ctx context.Context,
	username string,
) ([]GroupMembership, error) {
	return listByCreator[GroupMembership](ctx, s.db, kindMembership, username)
}

func (s *PostgresStore) WaitlistByCreator(
	ctx context.Context,
	username string,
) ([]WaitlistItem, error) {
	return listByCreator[WaitlistItem](ctx, s.db, kindWaitlist, username)
}

func listByCreator[T any](
	ctx context.Context,
	db core.DBTX,
	kind, username string,
) ([]T, error) {
	query := `
		SELECT payload
		FROM transactions
		WHERE kind = $1 AND creator_username = $2
		ORDER BY created_at`

	var payloads [][]byte
	if err := db.SelectContext(ctx, &payloads, query, kind, username); err != nil {
		return nil, fmt.Errorf("list %s: %w", kind, err)
	}

	var out []T
	for _, raw := range payloads {
		var record T
		if err := json.Unmarshal(raw, &record); err != nil {
			return nil, fmt.Errorf("list %s: unmarshal payload: %w", kind, err)
		}
		out = append(out, record)
	}

	return out, nil
}

func (s *PostgresStore) GetWaitlistItem(
	ctx context.Context,
	id string,
) (*WaitlistItem, error) {
	query := `SELECT payload FROM transactions WHERE kind = $1 AND id = $2`

	var payload []byte
	err := s.db.GetContext(ctx, &payload, query, kindWaitlist, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get waitlist item %q: %w", id, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get waitlist item: %w", err)
	}

	var item WaitlistItem
	if err := json.Unmarshal(payload, &item); err != nil {
		return nil, fmt.Errorf("get waitlist item: unmarshal payload: %w", err)
	}

	return &item, nil
}

func (s *PostgresStore) UpdateWaitlistStatus(
	ctx context.Context,
	id, status string,
) (*WaitlistItem, error) {
	var item WaitlistItem

	err := core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		query := `
			SELECT payload FROM transactions
			WHERE kind = $1 AND id = $2
			FOR UPDATE`

		var payload []byte
		err := tx.GetContext(ctx, &payload, query, kindWaitlist, id)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("update waitlist item %q: %w", id, core.ErrNotFound)
		}
		if err != nil {
			return fmt.Errorf("update waitlist item: %w", err)
		}

		if err := json.Unmarshal(payload, &item); err != nil {
			return fmt.Errorf("update waitlist item: unmarshal payload: %w", err)
		}

		item.Status = status

		updated, err := json.Marshal(&item)
		if err != nil {
			return fmt.Errorf("update waitlist item: marshal payload: %w", err)
		}

		update := `
			UPDATE transactions
			SET status = $3, payload = $4
			WHERE kind = $1 AND id = $2`

		if _, err := tx.ExecContext(ctx, update, kindWaitlist, id, status, updated); err != nil {
			return fmt.Errorf("update waitlist item: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &item, nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("ledger ping failed: %w", err)
	}

	return nil
}

func (s *PostgresStore) Close() error {
	return nil // the shared *sqlx.DB is owned by core.Database
}
