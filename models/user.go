package models

import "time"

type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Username   string    `gorm:"type:varchar(150);unique;not null" json:"username"`
	Email      string    `gorm:"type:varchar(255);unique;not null" json:"email"`
	Password   string    `gorm:"type:varchar(255);not null" json:"-"`
	FirstName  string    `gorm:"type:varchar(150);not null" json:"first_name"`
	LastName   string    `gorm:"type:varchar(150);not null" json:"last_name"`
	IsReviewer bool      `gorm:"not null;default:false" json:"is_reviewer"`
	IsAdmin    bool      `gorm:"not null;default:false" json:"is_admin"`
	IsActive   bool      `gorm:"not null" json:"is_active"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`
}
