package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create devuelve *domain.ConstraintViolation si el nombre o el SKU ya existen.
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// List devuelve todos los productos ordenados por nombre.
	List(ctx context.Context) ([]*entity.Product, error)
}
