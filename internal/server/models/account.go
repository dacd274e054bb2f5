// Package models holds the server-side domain types shared by repositories,
// services and transports.
package models

import "time"

// Account is a registered user credential record. Secret is stored and
// compared verbatim.
type Account struct {
	ID        string
	Email     string
	Secret    string
	Name      string
	CreatedAt time.Time
}

// PublicAccount is an Account without its secret, safe to return to callers.
type PublicAccount struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (a *Account) Public() PublicAccount {
	return PublicAccount{ID: a.ID, Email: a.Email, Name: a.Name}
}

// Identity is the payload carried by a session token.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (a *Account) Identity() Identity {
	return Identity{ID: a.ID, Email: a.Email, Name: a.Name}
}

// AuthResult is returned by register and login.
type AuthResult struct {
	Account PublicAccount `json:"user"`
	Token   string        `json:"token"`
}
