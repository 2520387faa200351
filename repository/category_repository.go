package repository

import (
	"context"

	"github.com/akinalp/serverdir/models"
)

// CategoryRepository, kategori veritabanı işlemleri için interface.
type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	// GetAll, tüm kategorileri id sırasıyla döner.
	GetAll(ctx context.Context) ([]models.Category, error)
	// Delete, kategoriyi ve cascade ile ona bağlı tüm sunucuları (ve onların kanallarını) siler.
	Delete(ctx context.Context, id int64) error
}
