package models

import "time"

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

type Blog struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null"`
	Slug      string    `json:"slug" gorm:"size:255;uniqueIndex"`
	Content   string    `json:"content" gorm:"type:text"`
	Excerpt   string    `json:"excerpt" gorm:"type:text"`
	Image     string    `json:"image" gorm:"size:500"`
	Author    string    `json:"author" gorm:"size:100"`
	Status    Status    `json:"status" gorm:"type:varchar(20);default:'draft'"`
	Featured  bool      `json:"featured"`
	Views     int64     `json:"views"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
