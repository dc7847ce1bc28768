package models

import "time"

type User struct {
	BaseModel
	Name         string     `gorm:"not null" json:"name"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Role         UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	Status       UserStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	IsActive     bool       `gorm:"default:true" json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`

	// Relations
	Opportunities []Opportunity  `gorm:"foreignKey:ProviderID" json:"-"`
	Applications  []Application  `gorm:"foreignKey:ApplicantID" json:"-"`
	Notifications []Notification `gorm:"foreignKey:UserID" json:"-"`
}
