package jpfield

// Status classifies the time left before an expiration date.
type Status string

const (
	StatusExpired       Status = "expired"
	StatusExpiringToday Status = "expiring_today"
	StatusCritical      Status = "critical"
	StatusWarning       Status = "warning"
	StatusSoon          Status = "soon"
	StatusOK            Status = "ok"
)

// Urgency is the display severity attached to a Status.
type Urgency string

const (
	UrgencyError   Urgency = "error"
	UrgencyWarning Urgency = "warning"
	UrgencyInfo    Urgency = "info"
	UrgencySuccess Urgency = "success"
)

// Result is the outcome of a single field validation.
type Result struct {
	Valid     bool   `json:"valid"`
	Error     string `json:"error,omitempty"`
	Hint      string `json:"hint,omitempty"`
	Formatted string `json:"formatted,omitempty"`
	// Code is the catalog key of the failure message.
	Code string `json:"code,omitempty"`

	// Kind is set by PhoneNumber.
	Kind PhoneType `json:"kind,omitempty"`
	// Age is set by BirthDate.
	Age int `json:"age,omitempty"`

	// Expiration is set by VisaExpiration for any parseable date.
	*Expiration
}

// Expiration describes how far away an expiration date is.
type Expiration struct {
	DaysRemaining  int     `json:"daysRemaining"`
	Status         Status  `json:"status"`
	Urgency        Urgency `json:"urgency"`
	Message        string  `json:"message"`
	CanRenew       bool    `json:"canRenew"`
	ExpirationDate string  `json:"expirationDate"`
}

func valid(formatted string) Result {
	return Result{Valid: true, Formatted: formatted}
}
