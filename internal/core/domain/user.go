package domain

import (
	"strings"
	"time"
)

const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User models an authenticated actor. The same record backs both the auth
// flows and the team-members directory.
type User struct {
	ID        string    `json:"id" bson:"id"`
	Email     string    `json:"email" bson:"email"`
	Password  string    `json:"-" bson:"password"`
	Name      string    `json:"name" bson:"name"`
	Role      string    `json:"role" bson:"role"`
	Initials  string    `json:"initials" bson:"initials"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// UserPatch carries the fields a partial update may touch; nil means
// "leave untouched". The password hash is never patched through here.
type UserPatch struct {
	Name     *string
	Role     *string
	Initials *string
	Status   *string
}

func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.Role == nil && p.Initials == nil && p.Status == nil
}

// DeriveInitials builds display initials from the first two words of a name.
func DeriveInitials(name string) string {
	var b strings.Builder
	for i, word := range strings.Fields(name) {
		if i == 2 {
			break
		}
		b.WriteString(strings.ToUpper(word[:1]))
	}
	return b.String()
}
