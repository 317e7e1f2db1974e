// AngelaMos | 2026
// entity.go

package catalog

// Creator is the monetizing user whose profile exposes the paid interaction
// features. Seeded at startup; only Settings is ever mutated.
type Creator struct {
	Username                string                   `json:"username"`
	Name                    string                   `json:"name"`
	Bio                     string                   `json:"bio"`
	AvatarURL               string                   `json:"avatar_url"`
	QuestionResponseOptions []QuestionResponseOption `json:"question_response_options"`
	CallPrice               PriceRange               `json:"call_price"`
	Products                []Product                `json:"products"`
	ShoutoutOptions         []ShoutoutOption         `json:"shoutout_options"`
	HireServices            []HireService            `json:"hire_services"`
	PrivateGroups           []PrivateGroup           `json:"private_groups"`
	Favorites               []Favorite               `json:"favorites"`
	WaitlistConfig          *WaitlistConfig          `json:"waitlist_config,omitempty"`
	Settings                Settings                 `json:"settings"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type QuestionResponseOption struct {
	ID                    string  `json:"id"`
	Type                  string  `json:"type"`
	Title                 string  `json:"title"`
	Description           string  `json:"description"`
	Price                 float64 `json:"price"`
	EstimatedResponseTime string  `json:"estimated_response_time"`
}

type Product struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Type        string  `json:"type"`
}

type ShoutoutOption struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	DeliveryTime string  `json:"delivery_time"`
}

type HireService struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	TimeEstimate string  `json:"time_estimate"`
}

type PrivateGroup struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	MembershipFee float64  `json:"membership_fee"`
	BillingCycle  string   `json:"billing_cycle"`
	Benefits      []string `json:"benefits"`
}

type Favorite struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	ImageURL      string `json:"image_url"`
	Link          string `json:"link"`
	Category      string `json:"category"`
	AffiliateLink bool   `json:"affiliate_link,omitempty"`
}

type WaitlistConfig struct {
	Title              string           `json:"title,omitempty"`
	Description        string           `json:"description"`
	InterestCategories []string         `json:"interest_categories,omitempty"`
	EstimatedWaitTime  string           `json:"estimated_wait_time,omitempty"`
	CustomQuestions    []CustomQuestion `json:"custom_questions,omitempty"`
}

type CustomQuestion struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Required bool   `json:"required"`
}

// Settings holds the per-creator feature flags.
type Settings struct {
	EnableQuestions     bool `json:"enable_questions"`
	EnableCalls         bool `json:"enable_calls"`
	EnableProducts      bool `json:"enable_products"`
	EnableShoutouts     bool `json:"enable_shoutouts"`
	EnableHiring        bool `json:"enable_hiring"`
	EnablePrivateGroups bool `json:"enable_private_groups"`
	EnableTips          bool `json:"enable_tips"`
	EnableWaitlist      bool `json:"enable_waitlist"`
	EnableFavorites     bool `json:"enable_favorites"`
}

const (
	ProductDigital  = "digital"
	ProductPhysical = "physical"
)

const (
	ResponseText  = "text"
	ResponseVideo = "video"
	ResponseAudio = "audio"
)

const (
	BillingMonthly   = "monthly"
	BillingQuarterly = "quarterly"
	BillingAnnually  = "annually"
)

func (c *Creator) Product(id string) (*Product, bool) {
	for i := range c.Products {
		if c.Products[i].ID == id {
			return &c.Products[i], true
		}
	}
	return nil, false
}

func (c *Creator) ShoutoutOption(id string) (*ShoutoutOption, bool) {
	for i := range c.ShoutoutOptions {
		if c.ShoutoutOptions[i].ID == id {
			return &c.ShoutoutOptions[i], true
		}
	}
	return nil, false
}

func (c *Creator) HireService(id string) (*HireService, bool) {
	for i := range c.HireServices {
		if c.HireServices[i].ID == id {
			return &c.HireServices[i], true
		}
	}
	return nil, false
}

func (c *Creator) PrivateGroup(id string) (*PrivateGroup, bool) {
	for i := range c.PrivateGroups {
		if c.PrivateGroups[i].ID == id {
			return &c.PrivateGroups[i], true
		}
	}
	return nil, false
}

func (c *Creator) ResponseOption(id string) (*QuestionResponseOption, bool) {
	for i := range c.QuestionResponseOptions {
		if c.QuestionResponseOptions[i].ID == id {
			return &c.QuestionResponseOptions[i], true
		}
	}
	return nil, false
}
