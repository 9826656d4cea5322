package models

import "time"

type Place struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Latitude     float64   `gorm:"not null" json:"latitude"`
	Longitude    float64   `gorm:"not null" json:"longitude"`
	Address      string    `gorm:"type:varchar(255);not null" json:"address"`
	StatusID     uint      `gorm:"not null" json:"status_id"`
	Status       Status    `gorm:"foreignKey:StatusID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"status"`
	UserCreateID *uint     `json:"user_create_id,omitempty"`
	UserCreate   *User     `gorm:"foreignKey:UserCreateID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	UserUpdateID *uint     `json:"user_update_id,omitempty"`
	UserUpdate   *User     `gorm:"foreignKey:UserUpdateID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}
