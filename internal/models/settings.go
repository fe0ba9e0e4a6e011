package models

import "time"

// Settings is the site-wide configuration document. It is read and
// written wholesale as a single record; there is no partial-field
// update contract.
type Settings struct {
	ID                 int64     `json:"-" gorm:"primaryKey"`
	Version            int       `json:"version"`
	SiteName           string    `json:"site_name" gorm:"size:100"`
	SiteDescription    string    `json:"site_description" gorm:"size:500"`
	SiteKeywords       string    `json:"site_keywords" gorm:"size:500"`
	AnalyticsCode      string    `json:"analytics_code" gorm:"size:100"`
	AdsensePublisherID string    `json:"adsense_publisher_id" gorm:"size:100"`
	SocialFacebook     string    `json:"social_facebook" gorm:"size:255"`
	SocialTwitter      string    `json:"social_twitter" gorm:"size:255"`
	SocialInstagram    string    `json:"social_instagram" gorm:"size:255"`
	MaintenanceMode    bool      `json:"maintenance_mode"`
	AllowRegistration  bool      `json:"allow_registration"`
	GamesPerPage       int       `json:"games_per_page"`
	MaxFileSizeMB      int       `json:"max_file_size"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// DefaultSettings are the values served before an admin ever saves the
// document.
func DefaultSettings() *Settings {
	return &Settings{
		ID:                1,
		Version:           1,
		SiteName:          "HT5Play",
		SiteDescription:   "Free HTML5 Games Platform",
		SiteKeywords:      "games, html5, free, online",
		AllowRegistration: true,
		GamesPerPage:      24,
		MaxFileSizeMB:     10,
	}
}
