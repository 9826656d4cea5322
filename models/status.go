package models

import "time"

// Nilai status dibandingkan berdasarkan value, bukan posisi baris di tabel.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

type Status struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(50);unique;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Status       string    `gorm:"type:varchar(15);not null;default:'Active'" json:"status"`
	UserCreateID *uint     `json:"user_create_id,omitempty"`
	UserCreate   *User     `gorm:"foreignKey:UserCreateID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	UserUpdateID *uint     `json:"user_update_id,omitempty"`
	UserUpdate   *User     `gorm:"foreignKey:UserUpdateID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}
