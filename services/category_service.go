package services

import (
	"context"

	"github.com/akinalp/serverdir/models"
	"github.com/akinalp/serverdir/repository"
)

// CategoryService, kategori listeleme interface'i.
type CategoryService interface {
	GetAll(ctx context.Context) ([]models.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	return s.categoryRepo.GetAll(ctx)
}
