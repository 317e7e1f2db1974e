// AngelaMos | 2026
// dto.go

package commerce

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/carterperez-dev/creatorcash/internal/core"
)

var (
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	expiryPattern     = regexp.MustCompile(`^\d{2}/\d{2}$`)
	cvvPattern        = regexp.MustCompile(`^\d{3,4}$`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// PaymentDetails is the buyer-supplied instrument. Validation mirrors a
// checkout form: which fields matter depends on the method.
type PaymentDetails struct {
	Method      string `json:"method" validate:"required,oneof=card paypal bank"`
	CardNumber  string `json:"card_number,omitempty"`
	ExpiryDate  string `json:"expiry_date,omitempty"`
	CVV         string `json:"cvv,omitempty"`
	PayPalEmail string `json:"paypal_email,omitempty"`
}

// Validate applies the method-specific checks. Bank transfers carry no extra
// fields in the demo flow.
func (d *PaymentDetails) Validate() error {
	switch d.Method {
	case "card":
		if !cardNumberPattern.MatchString(strings.ReplaceAll(d.CardNumber, " ", "")) {
			return fmt.Errorf("%w: please enter a valid 16-digit card number", core.ErrInvalidInput)
		}
		if !expiryPattern.MatchString(d.ExpiryDate) {
			return fmt.Errorf("%w: please enter a valid expiry date (MM/YY)", core.ErrInvalidInput)
		}
		if !cvvPattern.MatchString(d.CVV) {
			return fmt.Errorf("%w: please enter a valid CVV code", core.ErrInvalidInput)
		}
	case "paypal":
		if !emailPattern.MatchString(d.PayPalEmail) {
			return fmt.Errorf("%w: please enter a valid email address", core.ErrInvalidInput)
		}
	}
	return nil
}

type AskQuestionRequest struct {
	Name             string         `json:"name" validate:"required"`
	Email            string         `json:"email" validate:"required,email"`
	Question         string         `json:"question" validate:"required"`
	ResponseOptionID string         `json:"response_option_id" validate:"required"`
	Payment          PaymentDetails `json:"payment" validate:"required"`
}

type BookCallRequest struct {
	Name           string         `json:"name" validate:"required"`
	Email          string         `json:"email" validate:"required,email"`
	Duration       int            `json:"duration" validate:"required,gt=0"`
	Amount         float64        `json:"amount" validate:"required,gt=0"`
	PreferredDates []string       `json:"preferred_dates" validate:"required,min=1,dive,required"`
	Notes          string         `json:"notes"`
	Payment        PaymentDetails `json:"payment" validate:"required"`
}

type SendTipRequest struct {
	Name    string         `json:"name" validate:"required"`
	Amount  float64        `json:"amount" validate:"required,gte=1"`
	Message string         `json:"message"`
	Payment PaymentDetails `json:"payment" validate:"required"`
}

type PurchaseProductRequest struct {
	Name            string         `json:"name" validate:"required"`
	Email           string         `json:"email" validate:"required,email"`
	ProductID       string         `json:"product_id" validate:"required"`
	Quantity        int            `json:"quantity" validate:"required,gt=0"`
	ShippingAddress string         `json:"shipping_address"`
	Payment         PaymentDetails `json:"payment" validate:"required"`
}

type BookShoutoutRequest struct {
	Name             string         `json:"name" validate:"required"`
	Email            string         `json:"email" validate:"required,email"`
	ShoutoutOptionID string         `json:"shoutout_option_id" validate:"required"`
	Details          string         `json:"details" validate:"required"`
	Payment          PaymentDetails `json:"payment" validate:"required"`
}

type BookHireServiceRequest struct {
	Name           string         `json:"name" validate:"required"`
	Email          string         `json:"email" validate:"required,email"`
	HireServiceID  string         `json:"hire_service_id" validate:"required"`
	ProjectDetails string         `json:"project_details" validate:"required"`
	Payment        PaymentDetails `json:"payment" validate:"required"`
}

type JoinGroupRequest struct {
	Name    string         `json:"name" validate:"required"`
	Email   string         `json:"email" validate:"required,email"`
	GroupID string         `json:"group_id" validate:"required"`
	Payment PaymentDetails `json:"payment" validate:"required"`
}

type JoinWaitlistRequest struct {
	Name                   string   `json:"name" validate:"required"`
	Email                  string   `json:"email" validate:"required,email"`
	Reason                 string   `json:"reason"`
	Interests              []string `json:"interests"`
	NotificationPreference string   `json:"notification_preference" validate:"omitempty,oneof=email sms both"`
	Phone                  string   `json:"phone"`
}
