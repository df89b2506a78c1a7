package service

import (
	"fmt"
	"strings"

	"github.com/yourusername/quiz-api/internal/domain/entity"
	"github.com/yourusername/quiz-api/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-api/internal/pkg/errors"
)

// CategoryService предоставляет методы для работы с категориями вопросов
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	assembler    *AssemblerService
}

// NewCategoryService создает новый сервис категорий
func NewCategoryService(categoryRepo repository.CategoryRepository, assembler *AssemblerService) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		assembler:    assembler,
	}
}

// GetAllCategories возвращает все категории
func (s *CategoryService) GetAllCategories() ([]entity.Category, error) {
	return s.categoryRepo.GetAll()
}

// CreateCategory создает новую категорию
func (s *CategoryService) CreateCategory(name string) (*entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", apperrors.ErrValidation)
	}

	category := &entity.Category{Name: name}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateCategory обновляет имя категории
func (s *CategoryService) UpdateCategory(id uint, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: category name is required", apperrors.ErrValidation)
	}

	if err := s.categoryRepo.Update(&entity.Category{ID: id, Name: name}); err != nil {
		return err
	}

	// Имя категории входит в собранный тест — сбрасываем кеш пула
	s.assembler.InvalidatePoolCache()
	return nil
}

// DeleteCategory удаляет категорию
func (s *CategoryService) DeleteCategory(id uint) error {
	if err := s.categoryRepo.Delete(id); err != nil {
		return err
	}
	s.assembler.InvalidatePoolCache()
	return nil
}
