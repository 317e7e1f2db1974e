// AngelaMos | 2026
// store_test.go

package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/carterperez-dev/creatorcash/internal/core"
)

func TestMemoryStoreFiltersByCreator(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, creator := range []string{"johndoe", "janedoe", "johndoe"} {
		err := store.AppendTip(ctx, &Tip{
			ID:              creator + "-tip",
			CreatorUsername: creator,
			SenderName:      "Alice",
			Amount:          5,
			CreatedAt:       time.Now(),
		})
		if err != nil {
			t.Fatalf("AppendTip: %v", err)
		}
	}

	tips, err := store.TipsByCreator(ctx, "johndoe")
	if err != nil {
		t.Fatalf("TipsByCreator: %v", err)
	}
	if len(tips) != 2 {
		t.Errorf("johndoe tips = %d, want 2", len(tips))
	}

	tips, err = store.TipsByCreator(ctx, "janelle")
	if err != nil {
		t.Fatalf("TipsByCreator: %v", err)
	}
	if len(tips) != 0 {
		t.Errorf("janelle tips = %d, want 0", len(tips))
	}
}

func TestMemoryStoreWaitlistLifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	item := &WaitlistItem{
		ID:                     "w1",
		CreatorUsername:        "janelle",
		SubscriberName:         "Heidi",
		SubscriberEmail:        "heidi@example.com",
		NotificationPreference: NotifyEmail,
		Status:                 WaitlistPending,
		CreatedAt:              time.Now(),
	}
	if err := store.AppendWaitlistItem(ctx, item); err != nil {
		t.Fatalf("AppendWaitlistItem: %v", err)
	}

	got, err := store.GetWaitlistItem(ctx, "w1")
	if err != nil {
		t.Fatalf("GetWaitlistItem: %v", err)
	}
	if got.Status != WaitlistPending {
		t.Errorf("Status = %q, want %q", got.Status, WaitlistPending)
	}

	updated, err := store.UpdateWaitlistStatus(ctx, "w1", WaitlistAccepted)
	if err != nil {
		t.Fatalf("UpdateWaitlistStatus: %v", err)
	}
	if updated.Status != WaitlistAccepted {
		t.Errorf("Status = %q, want %q", updated.Status, WaitlistAccepted)
	}

	reread, err := store.GetWaitlistItem(ctx, "w1")
	if err != nil {
		t.Fatalf("GetWaitlistItem: %v", err)
	}
	if reread.Status != WaitlistAccepted {
		t.Error("status update did not persist")
	}
}

func TestMemoryStoreWaitlistNotFound(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.GetWaitlistItem(ctx, "missing"); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("GetWaitlistItem error = %v, want ErrNotFound", err)
	}

	if _, err := store.UpdateWaitlistStatus(ctx, "missing", WaitlistRejected); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("UpdateWaitlistStatus error = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if err := store.AppendQuestion(ctx, &Question{
		ID:              "q1",
		CreatorUsername: "johndoe",
		Content:         "original",
		Status:          QuestionPending,
	}); err != nil {
		t.Fatalf("AppendQuestion: %v", err)
	}

	first, _ := store.QuestionsByCreator(ctx, "johndoe")
	first[0].Content = "mutated"

	second, _ := store.QuestionsByCreator(ctx, "johndoe")
	if second[0].Content != "original" {
		t.Error("mutation of returned slice leaked into the store")
	}
}
