package models

import "time"

type Review struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FoodID     uint      `gorm:"not null;index" json:"food_id"`
	Food       FoodItem  `gorm:"foreignKey:FoodID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"food"`
	ReviewerID uint      `gorm:"not null;index" json:"reviewer_id"`
	Reviewer   User      `gorm:"foreignKey:ReviewerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"reviewer"`
	Rating     uint      `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"type:text;not null" json:"comment"`
	DistanceKm float64   `gorm:"not null" json:"distance_km"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}
