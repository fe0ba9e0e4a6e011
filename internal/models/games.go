package models

import "time"

type Game struct {
	ID          int64   `json:"id" gorm:"primaryKey"`
	Title       string  `json:"title" gorm:"size:255;not null"`
	Slug        string  `json:"slug" gorm:"size:255;uniqueIndex"`
	Description string  `json:"description" gorm:"type:text"`
	URL         string  `json:"url" gorm:"size:500"`
	Thumb       string  `json:"thumb" gorm:"size:500"`
	CategoryID  int64   `json:"category_id" gorm:"index"`
	Featured    bool    `json:"featured"`
	Plays       int64   `json:"plays"`
	Rating      float64 `json:"rating"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	Source      string  `json:"source" gorm:"size:100"`
	// CategoryName is joined from categories at read time, never stored.
	CategoryName string    `json:"category_name" gorm:"->;-:migration"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type GameStats struct {
	Total    int            `json:"total"`
	Featured int            `json:"featured"`
	Recent   int            `json:"recent"`
	BySource map[string]int `json:"by_source"`
}
