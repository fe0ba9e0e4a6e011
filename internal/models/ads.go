package models

import "time"

type Ad struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Code      string    `json:"code" gorm:"type:text"`
	Active    bool      `json:"active"`
	Position  string    `json:"position" gorm:"size:50;index"`
	Type      string    `json:"type" gorm:"size:50"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
