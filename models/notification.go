package models

// NotificationType enum
type NotificationType string

const (
	CityWide NotificationType = "city-wide"
	Local    NotificationType = "local"
	Alert    NotificationType = "alert"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case CityWide, Local, Alert:
		return true
	}
	return false
}

// Notification is a municipal bulletin shown in the notifications screen.
// The store only ever prepends notifications; there is no delete or
// mark-read command.
type Notification struct {
	ID          string           `json:"id" validate:"required"`
	Type        NotificationType `json:"type" validate:"required"`
	Title       string           `json:"title" validate:"required,max=200"`
	Description string           `json:"description,omitempty"`
	Date        string           `json:"date,omitempty"`
	Icon        string           `json:"icon,omitempty"`
}
