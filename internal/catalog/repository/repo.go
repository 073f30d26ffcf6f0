package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rebeat-kr/souvenir-backend/internal/catalog/data"
	"github.com/rebeat-kr/souvenir-backend/internal/catalog/domain"
)

var ErrActivityNotFound = errors.New("activity not found")

// CatalogRepository serves the album and activity catalogs. With a nil pool
// it falls back to the embedded seed data.
type CatalogRepository struct {
	db *pgxpool.Pool
}

// NewCatalogRepository creates a new CatalogRepository. db may be nil.
func NewCatalogRepository(db *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListAlbums returns the album catalog.
func (r *CatalogRepository) ListAlbums(ctx context.Context) ([]domain.KpopAlbum, error) {
	if r.db == nil {
		return data.Albums, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, artist, title, image_url, price
		FROM kpop_albums
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query albums: %w", err)
	}
	defer rows.Close()

	var albums []domain.KpopAlbum
	for rows.Next() {
		var a domain.KpopAlbum
		if err := rows.Scan(&a.ID, &a.Artist, &a.Title, &a.ImageURL, &a.Price); err != nil {
			return nil, fmt.Errorf("failed to scan album: %w", err)
		}
		albums = append(albums, a)
	}

	return albums, rows.Err()
}

// ListActivities returns the activity catalog.
func (r *CatalogRepository) ListActivities(ctx context.Context) ([]domain.Activity, error) {
	if r.db == nil {
		return data.Activities, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, title, image_url, rating, reviews, duration, price, is_popular, labels, article_title, article_content
		FROM activities
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query activities: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, *a)
	}

	return activities, rows.Err()
}

// GetActivity returns one activity by ID.
func (r *CatalogRepository) GetActivity(ctx context.Context, id int) (*domain.Activity, error) {
	if r.db == nil {
		for i := range data.Activities {
			if data.Activities[i].ID == id {
				return &data.Activities[i], nil
			}
		}
		return nil, ErrActivityNotFound
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, title, image_url, rating, reviews, duration, price, is_popular, labels, article_title, article_content
		FROM activities
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrActivityNotFound
	}

	return scanActivity(rows)
}

func scanActivity(row pgx.Row) (*domain.Activity, error) {
	var a domain.Activity
	var articleTitle, articleContent *string
	if err := row.Scan(&a.ID, &a.Title, &a.ImageURL, &a.Rating, &a.Reviews, &a.Duration,
		&a.Price, &a.IsPopular, &a.Labels, &articleTitle, &articleContent); err != nil {
		return nil, fmt.Errorf("failed to scan activity: %w", err)
	}
	if articleTitle != nil && articleContent != nil {
		a.Article = &domain.Article{Title: *articleTitle, Content: *articleContent}
	}
	return &a, nil
}
