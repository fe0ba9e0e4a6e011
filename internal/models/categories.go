package models

import "time"

type Category struct {
	ID          int64  `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:100;not null"`
	Slug        string `json:"slug" gorm:"size:100;uniqueIndex"`
	Icon        string `json:"icon" gorm:"size:100"`
	Color       string `json:"color" gorm:"size:50"`
	Description string `json:"description" gorm:"type:text"`
	// GameCount is recomputed after every game mutation that touches
	// this category; values supplied by callers are ignored.
	GameCount int64     `json:"game_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
