// Package models holds the server's persisted records that are not part of
// the trip domain.
package models

import "time"

// User is an account. The password is never stored; Verifier is the SHA-256
// of the argon2 master key the client derived from it with Salt.
type User struct {
	ID        string
	UserName  string
	Salt      []byte
	Verifier  []byte
	CreatedAt time.Time
}
