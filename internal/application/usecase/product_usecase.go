package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// ProductUseCase registro y listado de productos. El saldo no vive aquí: se deriva de los movimientos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Register crea un producto. Nombre y unidad son obligatorios; SKU vacío se guarda como nulo.
// Un nombre o SKU repetido vuelve como *domain.ConstraintViolation.
func (uc *ProductUseCase) Register(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Invalid("nome_produto", "es obligatorio")
	}
	unit := strings.TrimSpace(in.UnitMeasure)
	if unit == "" {
		return nil, domain.Invalid("unidade_medida", "es obligatoria")
	}
	if !entity.IsKnownUnit(unit) {
		return nil, domain.Invalid("unidade_medida", fmt.Sprintf("unidad desconocida %q", unit))
	}
	var sku *string
	if s := strings.TrimSpace(in.SKU); s != "" {
		sku = &s
	}

	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		UnitMeasure: unit,
		SKU:         sku,
		CreatedAt:   time.Now().UTC(),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List todos los productos ordenados por nombre.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		UnitMeasure: p.UnitMeasure,
		SKU:         p.SKU,
		CreatedAt:   p.CreatedAt,
	}
}
