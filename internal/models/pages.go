package models

import "time"

type Page struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	Title           string    `json:"title" gorm:"size:255;not null"`
	Slug            string    `json:"slug" gorm:"size:255;uniqueIndex"`
	Content         string    `json:"content" gorm:"type:text"`
	MetaTitle       string    `json:"meta_title" gorm:"size:255"`
	MetaDescription string    `json:"meta_description" gorm:"size:500"`
	Status          Status    `json:"status" gorm:"type:varchar(20);default:'draft'"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
