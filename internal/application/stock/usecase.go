package stock

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

// StockUseCase aplica las mutaciones de stock sobre productos y orquesta el
// registro de movimientos y la generación de alertas como efectos derivados.
// No hay transacción entre la mutación primaria y los efectos secundarios:
// si el movimiento o la alerta fallan, la mutación ya persistida no se
// revierte (se loguea el fallo y el caller recibe éxito).
type StockUseCase struct {
	productRepo repository.ProductRepository
	recorder    *MovementRecorder
	alerts      *AlertRaiser
	log         *logger.Logger
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(
	productRepo repository.ProductRepository,
	recorder *MovementRecorder,
	alerts *AlertRaiser,
	log *logger.Logger,
) *StockUseCase {
	return &StockUseCase{productRepo: productRepo, recorder: recorder, alerts: alerts, log: log}
}

// Create crea un producto para el usuario autenticado. Genera UUID si el
// cliente no envió id, asigna la categoría por defecto si falta y fija
// OwningUser una única vez. Registra siempre un movimiento kind=create con
// la cantidad inicial, y levanta alerta si esa cantidad ya está en o por
// debajo del mínimo.
func (uc *StockUseCase) Create(in dto.CreateProductRequest, callerUser string) (*dto.ProductResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	id := in.ID
	if id == "" {
		id = uuid.New().String()
	}
	category := in.Category
	if category == "" {
		category = entity.DefaultCategory
	}
	now := time.Now()
	product := &entity.Product{
		ID:              id,
		Category:        category,
		Name:            in.Name,
		CurrentQuantity: in.CurrentQuantity,
		MinimumQuantity: in.MinimumQuantity,
		Price:           in.Price,
		ImageURL:        in.ImageURL,
		OwningUser:      callerUser,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}

	uc.recorder.Record(product.ID, entity.MovementKindCreate, product.CurrentQuantity, callerUser)
	if product.BelowMinimum() {
		_ = uc.alerts.Raise(product)
	}
	return toProductResponse(product), nil
}

// Delete elimina un producto del usuario. El movimiento kind=delete se
// registra ANTES del borrado, con la cantidad que el producto tenía en ese
// momento.
func (uc *StockUseCase) Delete(id, category, callerUser string) error {
	product, err := uc.productRepo.GetByIDAndCategory(id, category)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if !product.IsOwnedBy(callerUser) {
		return domain.ErrForbidden
	}

	uc.recorder.Record(product.ID, entity.MovementKindDelete, product.CurrentQuantity, callerUser)
	return uc.productRepo.Delete(id, category)
}

// AdjustQuantity aplica un delta con signo a la cantidad del producto.
// Sin piso en cero: el stock resultante puede quedar negativo. El reemplazo
// es de documento completo (Upsert), no un patch parcial. El movimiento se
// clasifica como increase solo cuando delta > 0; delta cero queda como
// decrease (comportamiento heredado, cubierto por tests). La alerta, si
// aplica, refleja la cantidad NUEVA.
func (uc *StockUseCase) AdjustQuantity(id, category string, delta int, callerUser string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByIDAndCategory(id, category)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if !product.IsOwnedBy(callerUser) {
		return nil, domain.ErrForbidden
	}

	product.CurrentQuantity += delta
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Upsert(product); err != nil {
		return nil, err
	}

	kind := entity.MovementKindDecrease
	if delta > 0 {
		kind = entity.MovementKindIncrease
	}
	quantity := delta
	if quantity < 0 {
		quantity = -quantity
	}
	uc.recorder.Record(product.ID, kind, quantity, callerUser)

	if product.BelowMinimum() {
		_ = uc.alerts.Raise(product)
	}
	return toProductResponse(product), nil
}

// List devuelve los productos cuyo dueño es el usuario autenticado, en el
// orden en que los retorna el storage (sin sort explícito).
func (uc *StockUseCase) List(callerUser string) (*dto.ProductListResponse, error) {
	list, err := uc.productRepo.ListByOwner(callerUser)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		Category:        p.Category,
		Name:            p.Name,
		CurrentQuantity: p.CurrentQuantity,
		MinimumQuantity: p.MinimumQuantity,
		Price:           p.Price,
		ImageURL:        p.ImageURL,
		OwningUser:      p.OwningUser,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
