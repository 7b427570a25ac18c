package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// La tabla products tiene clave primaria compuesta (id, category): category
// es la clave de partición y siempre acompaña al id.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `id, category, name, current_quantity, minimum_quantity, price, image_url, owning_user, created_at, updated_at`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Category, product.Name, product.CurrentQuantity, product.MinimumQuantity,
		product.Price, product.ImageURL, product.OwningUser, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByIDAndCategory obtiene un producto por su clave compuesta.
func (r *ProductRepo) GetByIDAndCategory(id, category string) (*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE id = $1 AND category = $2`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, id, category).Scan(
		&p.ID, &p.Category, &p.Name, &p.CurrentQuantity, &p.MinimumQuantity,
		&p.Price, &p.ImageURL, &p.OwningUser, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// Upsert reemplaza el documento completo del producto. owning_user queda
// fuera del SET: se fija en la creación y nunca se reescribe.
func (r *ProductRepo) Upsert(product *entity.Product) error {
	query := `
		INSERT INTO products (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id, category) DO UPDATE SET
			name = EXCLUDED.name,
			current_quantity = EXCLUDED.current_quantity,
			minimum_quantity = EXCLUDED.minimum_quantity,
			price = EXCLUDED.price,
			image_url = EXCLUDED.image_url,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Category, product.Name, product.CurrentQuantity, product.MinimumQuantity,
		product.Price, product.ImageURL, product.OwningUser, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert product: %w", err)
	}
	return nil
}

// Delete elimina un producto por su clave compuesta.
func (r *ProductRepo) Delete(id, category string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM products WHERE id = $1 AND category = $2`, id, category)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// ListByOwner lista los productos de un usuario en orden de inserción
// (sin ORDER BY explícito).
func (r *ProductRepo) ListByOwner(username string) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products WHERE owning_user = $1`
	return r.list(query, username)
}

// ListAll lista todos los productos sin filtrar por usuario (escaneo de sistema).
func (r *ProductRepo) ListAll() ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products`
	return r.list(query)
}

func (r *ProductRepo) list(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Category, &p.Name, &p.CurrentQuantity, &p.MinimumQuantity,
			&p.Price, &p.ImageURL, &p.OwningUser, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
