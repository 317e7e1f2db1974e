// AngelaMos | 2026
// entity.go

package ledger

import (
	"time"
)

// Transaction records. Each is immutable after append; the only exposed
// mutation is the waitlist status transition.

type Question struct {
	ID               string    `json:"id"`
	CreatorUsername  string    `json:"creator_username"`
	SenderName       string    `json:"sender_name"`
	SenderEmail      string    `json:"sender_email"`
	Content          string    `json:"content"`
	Amount           float64   `json:"amount"`
	ResponseOptionID string    `json:"response_option_id"`
	ResponseType     string    `json:"response_type"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

type CallBooking struct {
	ID              string    `json:"id"`
	CreatorUsername string    `json:"creator_username"`
	BookerName      string    `json:"booker_name"`
	BookerEmail     string    `json:"booker_email"`
	Duration        int       `json:"duration"`
	PreferredDates  []string  `json:"preferred_dates"`
	Notes           string    `json:"notes"`
	Amount          float64   `json:"amount"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type Tip struct {
	ID              string    `json:"id"`
	CreatorUsername string    `json:"creator_username"`
	SenderName      string    `json:"sender_name"`
	Message         string    `json:"message,omitempty"`
	Amount          float64   `json:"amount"`
	CreatedAt       time.Time `json:"created_at"`
}

type ProductPurchase struct {
	ID              string    `json:"id"`
	CreatorUsername string    `json:"creator_username"`
	BuyerName       string    `json:"buyer_name"`
	BuyerEmail      string    `json:"buyer_email"`
	ShippingAddress string    `json:"shipping_address,omitempty"`
	ProductID       string    `json:"product_id"`
	Quantity        int       `json:"quantity"`
	Amount          float64   `json:"amount"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type ShoutoutBooking struct {
	ID               string    `json:"id"`
	CreatorUsername  string    `json:"creator_username"`
	BuyerName        string    `json:"buyer_name"`
	BuyerEmail       string    `json:"buyer_email"`
	ShoutoutOptionID string    `json:"shoutout_option_id"`
	Details          string    `json:"details"`
	Amount           float64   `json:"amount"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

type HireBooking struct {
	ID              string    `json:"id"`
	CreatorUsername string    `json:"creator_username"`
	ClientName      string    `json:"client_name"`
	ClientEmail     string    `json:"client_email"`
	HireServiceID   string    `json:"hire_service_id"`
	ProjectDetails  string    `json:"project_details"`
	Amount          float64   `json:"amount"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type GroupMembership struct {
	ID              string    `json:"id"`
	CreatorUsername string    `json:"creator_username"`
	MemberName      string    `json:"member_name"`
	MemberEmail     string    `json:"member_email"`
	GroupID         string    `json:"group_id"`
	StartDate       time.Time `json:"start_date"`
	NextBillingDate time.Time `json:"next_billing_date"`
	Amount          float64   `json:"amount"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type WaitlistItem struct {
	ID                     string    `json:"id"`
	CreatorUsername        string    `json:"creator_username"`
	SubscriberName         string    `json:"subscriber_name"`
	SubscriberEmail        string    `json:"subscriber_email"`
	Reason                 string    `json:"reason,omitempty"`
	Interests              []string  `json:"interests"`
	NotificationPreference string    `json:"notification_preference"`
	Phone                  string    `json:"phone,omitempty"`
	Status                 string    `json:"status"`
	CreatedAt              time.Time `json:"created_at"`
}

const (
	QuestionPending  = "pending"
	QuestionAnswered = "answered"
)

const (
	CallPending   = "pending"
	CallConfirmed = "confirmed"
	CallCompleted = "completed"
)

const (
	PurchasePending   = "pending"
	PurchaseProcessed = "processed"
	PurchaseShipped   = "shipped"
	PurchaseDelivered = "delivered"
)

const (
	ShoutoutPending   = "pending"
	ShoutoutScheduled = "scheduled"
	ShoutoutCompleted = "completed"
)

const (
	HirePending    = "pending"
	HireInProgress = "in-progress"
	HireCompleted  = "completed"
)

const (
	MembershipActive    = "active"
	MembershipCancelled = "cancelled"
)

const (
	WaitlistPending  = "pending"
	WaitlistAccepted = "accepted"
	WaitlistRejected = "rejected"
)

const (
	NotifyEmail = "email"
	NotifySMS   = "sms"
	NotifyBoth  = "both"
)
