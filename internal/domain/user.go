package domain

import "time"

// User is the domain entity for a user account.
// Password holds the bcrypt hash and is never sent to clients.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"createdAt"`
}

// Profile is the public part of a user, as shown in exports and auth responses.
type Profile struct {
	Username string `json:"username" yaml:"username"`
	Email    string `json:"email" yaml:"email"`
}

func (u User) Profile() Profile {
	return Profile{Username: u.Username, Email: u.Email}
}

// Export is a read-only snapshot of everything a user owns.
type Export struct {
	Todos      []Todo     `json:"todos" yaml:"todos"`
	Categories []Category `json:"categories" yaml:"categories"`
	ExportedAt time.Time  `json:"exportedAt" yaml:"exportedAt"`
	User       Profile    `json:"user" yaml:"user"`
}
