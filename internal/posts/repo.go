package posts

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// ErrUnknownUser is returned by Create when the user id has no matching row.
var ErrUnknownUser = errors.New("user does not exist")

type Repo struct {
	db *gorm.DB
}

func NewRepo(db *gorm.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a post referencing an already stored photo. CreatedAt is
// assigned by the insert.
func (r *Repo) Create(ctx context.Context, userID uint, photoPath string, lat, lon *float64) (*Post, error) {
	p := Post{UserID: userID, PhotoPath: photoPath, Lat: lat, Lon: lon}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}
	return &p, nil
}

// Feed returns the newest posts joined with their author's email, capped at
// limit. Ties on created_at break by id descending so the order is stable.
func (r *Repo) Feed(ctx context.Context, limit int) ([]FeedItem, error) {
	var rows []struct {
		ID        uint
		Email     string
		PhotoPath string
		Lat       *float64
		Lon       *float64
		CreatedAt time.Time
	}
	err := r.db.WithContext(ctx).
		Table("posts").
		Select("posts.id, posts.photo_path, posts.lat, posts.lon, posts.created_at, users.email").
		Joins("JOIN users ON users.id = posts.user_id").
		Order("posts.created_at DESC, posts.id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	items := make([]FeedItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, FeedItem{
			ID:        row.ID,
			User:      row.Email,
			Photo:     row.PhotoPath,
			Lat:       row.Lat,
			Lon:       row.Lon,
			CreatedAt: row.CreatedAt,
		})
	}
	return items, nil
}
