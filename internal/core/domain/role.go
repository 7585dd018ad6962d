package domain

import "time"

// Role is a named permission set. Team members reference roles by name, so
// deletion is blocked while any user still holds the role.
type Role struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Permissions []string  `json:"permissions" bson:"permissions"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

type RolePatch struct {
	Name        *string
	Description *string
	Permissions *[]string
}

func (p RolePatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Permissions == nil
}
