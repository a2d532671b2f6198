package models

// User is the citizen currently signed in. Login is mock-only: the login flow
// builds a fully-formed User and dispatches SetUser, there is no credential
// check in this module.
type User struct {
	ID      string `json:"id" validate:"required"`
	Name    string `json:"name" validate:"required,max=100"`
	Phone   string `json:"phone" validate:"required,max=15"`
	Avatar  string `json:"avatar,omitempty"`
	Address string `json:"address,omitempty"`
	Ward    string `json:"ward,omitempty"`
}
