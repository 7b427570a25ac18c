package repository

import "github.com/jhoicas/estoque-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// El par (id, category) es la identidad completa: category es la clave de
// partición del documento, nunca se asume identidad de un solo campo.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByIDAndCategory(id, category string) (*entity.Product, error)
	Upsert(product *entity.Product) error
	Delete(id, category string) error
	ListByOwner(username string) ([]*entity.Product, error)
	// ListAll devuelve todos los productos sin filtrar por usuario.
	// Lo usa el escaneo de stock bajo, que es un job de sistema.
	ListAll() ([]*entity.Product, error)
}
