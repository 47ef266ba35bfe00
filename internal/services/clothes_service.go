package services

import (
	"database/sql"
	"fmt"

	"wardrobe-api/internal/apperrors"
	"wardrobe-api/internal/models"
)

// ClothesServiceProvider defines the interface for clothes services.
type ClothesServiceProvider interface {
	CreateClothes(item models.Clothes) (models.Clothes, error)
	GetAllClothes() ([]models.Clothes, error)
	GetClothesByID(id int64) (models.Clothes, error)
	UpdateClothes(id int64, item models.Clothes) (models.Clothes, error)
	DeleteClothes(id int64) (int64, error)
}

// ClothesService provides business logic for the clothes resource.
type ClothesService struct {
	db *sql.DB
}

// NewClothesService creates a new ClothesService.
func NewClothesService(db *sql.DB) *ClothesService {
	return &ClothesService{db: db}
}

// CreateClothes inserts a new record and returns it with its assigned id.
func (s *ClothesService) CreateClothes(item models.Clothes) (models.Clothes, error) {
	if item.Name == "" {
		return models.Clothes{}, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}

	res, err := s.db.Exec("INSERT INTO clothes(name, color, size) VALUES(?, ?, ?)",
		item.Name, item.Color, item.Size)
	if err != nil {
		return models.Clothes{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Clothes{}, err
	}
	item.ID = id
	return item, nil
}

// GetAllClothes retrieves every record. An empty table yields an empty slice,
// not nil, so the response body is always a JSON array.
func (s *ClothesService) GetAllClothes() ([]models.Clothes, error) {
	rows, err := s.db.Query("SELECT id, name, color, size FROM clothes ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]models.Clothes, 0)
	for rows.Next() {
		var item models.Clothes
		if err := rows.Scan(&item.ID, &item.Name, &item.Color, &item.Size); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetClothesByID retrieves a single record by its id.
func (s *ClothesService) GetClothesByID(id int64) (models.Clothes, error) {
	var item models.Clothes
	row := s.db.QueryRow("SELECT id, name, color, size FROM clothes WHERE id = ?", id)
	err := row.Scan(&item.ID, &item.Name, &item.Color, &item.Size)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Clothes{}, fmt.Errorf("%w: clothes %d", apperrors.ErrNotFound, id)
		}
		return models.Clothes{}, err
	}
	return item, nil
}

// UpdateClothes replaces every field of the record with the given id.
func (s *ClothesService) UpdateClothes(id int64, item models.Clothes) (models.Clothes, error) {
	if item.Name == "" {
		return models.Clothes{}, fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}

	res, err := s.db.Exec("UPDATE clothes SET name = ?, color = ?, size = ? WHERE id = ?",
		item.Name, item.Color, item.Size, id)
	if err != nil {
		return models.Clothes{}, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.Clothes{}, err
	}
	if n == 0 {
		return models.Clothes{}, fmt.Errorf("%w: clothes %d", apperrors.ErrNotFound, id)
	}
	item.ID = id
	return item, nil
}

// DeleteClothes removes the record with the given id and returns the number
// of rows removed (0 or 1). Deleting an unknown id is not an error.
func (s *ClothesService) DeleteClothes(id int64) (int64, error) {
	res, err := s.db.Exec("DELETE FROM clothes WHERE id = ?", id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
