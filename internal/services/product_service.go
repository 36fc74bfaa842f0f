package services

import (
	"fmt"

	"gerai/internal/models"
	"gerai/internal/repositories"
)

// ProductService handles business logic related to the catalog. Reads are
// public; every write is ADMIN-gated.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product. ADMIN only.
func (s *ProductService) CreateProduct(product *models.Product, identity models.Identity) error {
	if !identity.IsAdmin() {
		return fmt.Errorf("creating product: %w", models.ErrForbidden)
	}
	return s.repo.Create(product)
}

// UpdateProduct applies a partial update to an existing product. ADMIN only.
func (s *ProductService) UpdateProduct(id string, update models.ProductUpdate, identity models.Identity) (*models.Product, error) {
	if !identity.IsAdmin() {
		return nil, fmt.Errorf("updating product %s: %w", id, models.ErrForbidden)
	}
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		product.Name = *update.Name
	}
	if update.Description != nil {
		product.Description = *update.Description
	}
	if update.Price != nil {
		product.Price = *update.Price
	}
	if update.Stock != nil {
		product.Stock = *update.Stock
	}
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct deletes a product by its ID. ADMIN only.
func (s *ProductService) DeleteProduct(id string, identity models.Identity) error {
	if !identity.IsAdmin() {
		return fmt.Errorf("deleting product %s: %w", id, models.ErrForbidden)
	}
	return s.repo.Delete(id)
}
