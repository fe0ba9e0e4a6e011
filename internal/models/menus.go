package models

import "time"

type MenuLocation string

const (
	MenuHeader MenuLocation = "header"
	MenuFooter MenuLocation = "footer"
)

type Menu struct {
	ID       int64        `json:"id" gorm:"primaryKey"`
	Location MenuLocation `json:"location" gorm:"type:varchar(20);index"`
	Label    string       `json:"label" gorm:"size:100;not null"`
	Link     string       `json:"link" gorm:"size:500"`
	Type     string       `json:"type" gorm:"size:50"`
	// SortOrder is the integer position inside a location; "order" is a
	// reserved word in most SQL dialects.
	SortOrder int       `json:"order" gorm:"column:sort_order"`
	ParentID  *int64    `json:"parent_id"`
	Target    string    `json:"target" gorm:"size:20"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
