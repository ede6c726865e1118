package posts

import (
	"time"

	"github.com/SzymonTokarzProgramista/HikerApp/internal/users"
)

// Post is immutable once created; rows are never updated or deleted.
// Lat and Lon are independently nullable: clients usually send both or
// neither, but the API does not enforce the pairing.
type Post struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"not null" json:"user_id"`
	User      users.User `gorm:"foreignKey:UserID" json:"-"`
	PhotoPath string     `gorm:"size:255;not null" json:"photo_path"`
	Lat       *float64   `json:"lat"`
	Lon       *float64   `json:"lon"`
	CreatedAt time.Time  `gorm:"not null" json:"created_at"`
}

// FeedItem is one entry of the public feed: a post joined with its
// author's email.
type FeedItem struct {
	ID        uint      `json:"id"`
	User      string    `json:"user"`
	Photo     string    `json:"photo"`
	Lat       *float64  `json:"lat"`
	Lon       *float64  `json:"lon"`
	CreatedAt time.Time `json:"created_at"`
}
