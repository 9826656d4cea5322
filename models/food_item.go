package models

import "time"

type FoodItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Code         string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"code"`
	PlaceID      uint      `gorm:"not null" json:"place_id"`
	Place        Place     `gorm:"foreignKey:PlaceID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"place"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Price        float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Description  string    `gorm:"type:text;not null" json:"description"`
	Image        *string   `gorm:"type:varchar(255)" json:"image,omitempty"`
	CategoryID   *uint     `gorm:"index" json:"category_id,omitempty"`
	Category     *Category `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"category,omitempty"`
	StatusID     uint      `gorm:"not null" json:"status_id"`
	Status       Status    `gorm:"foreignKey:StatusID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"status"`
	UserCreateID *uint     `json:"user_create_id,omitempty"`
	UserCreate   *User     `gorm:"foreignKey:UserCreateID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	UserUpdateID *uint     `json:"user_update_id,omitempty"`
	UserUpdate   *User     `gorm:"foreignKey:UserUpdateID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"-"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}
