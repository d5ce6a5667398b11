// Package accountrepo persists the narrow slice of user account state the
// marketplace engine touches: the account role. The engine never creates
// users; it only reads and flips roles as lifecycle side effects.
package accountrepo

import (
	"github.com/google/uuid"
)

// UserDTO represents the engine's view of a user account row.
type UserDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role string    `gorm:"type:varchar(32);not null"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}
