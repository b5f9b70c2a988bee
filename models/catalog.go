package models

// Contract entities shared with collaborators (receptionist UI, AI assistant,
// messaging workers). Each maps to the lowercase collection of its name.

// Organization represents a tenant business.
type Organization struct {
	Name     string                 `bson:"name" json:"name" binding:"required"`
	Industry string                 `bson:"industry,omitempty" json:"industry,omitempty"`
	Timezone string                 `bson:"timezone" json:"timezone"`
	Currency string                 `bson:"currency" json:"currency"`
	Settings map[string]interface{} `bson:"settings,omitempty" json:"settings,omitempty"`
}

// Service is a bookable offering.
type Service struct {
	Name            string `bson:"name" json:"name" binding:"required"`
	Description     string `bson:"description,omitempty" json:"description,omitempty"`
	DurationMinutes int    `bson:"duration_minutes" json:"duration_minutes" binding:"required,min=5,max=480"`
	PriceCents      int    `bson:"price_cents" json:"price_cents" binding:"min=0"`
	Category        string `bson:"category,omitempty" json:"category,omitempty"`
	IsActive        *bool  `bson:"is_active" json:"is_active"`
}

// Staff is a person who performs services.
type Staff struct {
	Name     string   `bson:"name" json:"name" binding:"required"`
	Email    string   `bson:"email,omitempty" json:"email,omitempty" binding:"omitempty,email"`
	Phone    string   `bson:"phone,omitempty" json:"phone,omitempty"`
	Roles    []string `bson:"roles,omitempty" json:"roles,omitempty"`
	Services []string `bson:"services,omitempty" json:"services,omitempty"`
	Timezone string   `bson:"timezone,omitempty" json:"timezone,omitempty"`
	IsActive *bool    `bson:"is_active" json:"is_active"`
}

// Customer is a booking counterparty.
type Customer struct {
	FirstName      string `bson:"first_name" json:"first_name" binding:"required"`
	LastName       string `bson:"last_name,omitempty" json:"last_name,omitempty"`
	Email          string `bson:"email,omitempty" json:"email,omitempty" binding:"omitempty,email"`
	Phone          string `bson:"phone,omitempty" json:"phone,omitempty"`
	Notes          string `bson:"notes,omitempty" json:"notes,omitempty"`
	MarketingOptIn bool   `bson:"marketing_opt_in" json:"marketing_opt_in"`
}

// ApplyDefaults fills zero-valued optional fields the way collaborators expect.
func (o *Organization) ApplyDefaults() {
	if o.Timezone == "" {
		o.Timezone = "UTC"
	}
	if o.Currency == "" {
		o.Currency = DefaultCurrency
	}
}

func (s *Service) ApplyDefaults() {
	if s.IsActive == nil {
		active := true
		s.IsActive = &active
	}
}

func (s *Staff) ApplyDefaults() {
	if s.IsActive == nil {
		active := true
		s.IsActive = &active
	}
}
