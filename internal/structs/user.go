package structs

import (
	"fmt"
	"io"
)

// User owns all of its fields. Strings are values in Go, so there is no
// lifetime to declare even when a field refers to text defined elsewhere.
// The tags are read by encoders; see demoDebug.
type User struct {
	Active      bool   `yaml:"active"`
	Username    string `yaml:"username"`
	Email       string `yaml:"email"`
	SignInCount int    `yaml:"sign_in_count"`
	Nickname    string `yaml:"nickname,omitempty"`
}

// NewUser fills the defaults a fresh account starts with.
func NewUser(email, username string) User {
	return User{
		Active:      true,
		Username:    username,
		Email:       email,
		SignInCount: 1,
	}
}

func demoDefine(w io.Writer) {
	user := User{
		Active:      true,
		Username:    "mark",
		Email:       "me@example.com",
		SignInCount: 1,
	}
	fmt.Fprintf(w, "  user.Username = %s, user.Email = %s\n", user.Username, user.Email)

	// The whole variable is mutable; there is no per-field mutability.
	user.Email = "another@example.com"
	fmt.Fprintf(w, "  after user.Email = ...: %s\n", user.Email)

	// Omitted fields get their zero value.
	partial := User{Username: "ghost"}
	fmt.Fprintf(w, "  partial: %+v\n", partial)

	fromCtor := NewUser("you@example.com", "someone")
	fmt.Fprintf(w, "  NewUser: %+v\n", fromCtor)
}

// Go has no ..base update syntax. Copying the struct and overriding fields
// does the same job, and the original stays valid because every field,
// string included, was copied.
func demoUpdate(w io.Writer) {
	user := NewUser("me@example.com", "mark")

	user2 := user
	user2.Email = "you@example.com"

	fmt.Fprintf(w, "  user:  %+v\n", user)
	fmt.Fprintf(w, "  user2: %+v\n", user2)
	fmt.Fprintf(w, "  user still usable after the copy: %s\n", user.Username)
	fmt.Fprintf(w, "  user == user2: %v\n", user == user2)
}
