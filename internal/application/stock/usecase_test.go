package stock_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/stock"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products []*entity.Product
	err      error // si no es nil, todas las operaciones fallan
}

func (f *fakeProductRepo) key(id, category string) int {
	for i, p := range f.products {
		if p.ID == id && p.Category == category {
			return i
		}
	}
	return -1
}

func (f *fakeProductRepo) Create(p *entity.Product) error {
	if f.err != nil {
		return f.err
	}
	cp := *p
	f.products = append(f.products, &cp)
	return nil
}

func (f *fakeProductRepo) GetByIDAndCategory(id, category string) (*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	if i := f.key(id, category); i >= 0 {
		cp := *f.products[i]
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeProductRepo) Upsert(p *entity.Product) error {
	if f.err != nil {
		return f.err
	}
	if i := f.key(p.ID, p.Category); i >= 0 {
		cp := *p
		cp.OwningUser = f.products[i].OwningUser // owning_user nunca se reescribe
		f.products[i] = &cp
		return nil
	}
	cp := *p
	f.products = append(f.products, &cp)
	return nil
}

func (f *fakeProductRepo) Delete(id, category string) error {
	if f.err != nil {
		return f.err
	}
	if i := f.key(id, category); i >= 0 {
		f.products = append(f.products[:i], f.products[i+1:]...)
	}
	return nil
}

func (f *fakeProductRepo) ListByOwner(username string) ([]*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entity.Product
	for _, p := range f.products {
		if p.OwningUser == username {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ListAll() ([]*entity.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

type fakeMovementRepo struct {
	items []*entity.Movement
	err   error
}

func (f *fakeMovementRepo) Create(m *entity.Movement) error {
	if f.err != nil {
		return f.err
	}
	cp := *m
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakeMovementRepo) ListAll() ([]*entity.Movement, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

type fakeAlertRepo struct {
	items     []*entity.Alert
	err       error
	failOnce  bool // falla solo el primer Create
	attempted int
}

func (f *fakeAlertRepo) Create(a *entity.Alert) error {
	f.attempted++
	if f.failOnce && f.attempted == 1 {
		return errors.New("storage caído")
	}
	if f.err != nil {
		return f.err
	}
	cp := *a
	f.items = append(f.items, &cp)
	return nil
}

func (f *fakeAlertRepo) ListAll() ([]*entity.Alert, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

// newStockUC arma el caso de uso con los fakes dados.
func newStockUC(products *fakeProductRepo, movements *fakeMovementRepo, alerts *fakeAlertRepo) *stock.StockUseCase {
	log := logger.Nop()
	recorder := stock.NewMovementRecorder(movements, log)
	raiser := stock.NewAlertRaiser(alerts, log)
	return stock.NewStockUseCase(products, recorder, raiser, log)
}

func seedProduct(repo *fakeProductRepo, id, category, owner string, qty, min int) {
	repo.products = append(repo.products, &entity.Product{
		ID:              id,
		Category:        category,
		Name:            "producto " + id,
		CurrentQuantity: qty,
		MinimumQuantity: min,
		OwningUser:      owner,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_AsignaDuenoYRegistraMovimientoCreate(t *testing.T) {
	products := &fakeProductRepo{}
	movements := &fakeMovementRepo{}
	alerts := &fakeAlertRepo{}
	uc := newStockUC(products, movements, alerts)

	out, err := uc.Create(dto.CreateProductRequest{
		Name:            "Tornillos",
		CurrentQuantity: 10,
		MinimumQuantity: 3,
	}, "maria")
	require.NoError(t, err)

	assert.Equal(t, "maria", out.OwningUser, "el dueño debe salir del caller, nunca del body")
	require.Len(t, movements.items, 1, "debe registrarse exactamente un movimiento create")
	assert.Equal(t, entity.MovementKindCreate, movements.items[0].Kind)
	assert.Equal(t, 10, movements.items[0].Quantity, "el movimiento create lleva la cantidad inicial")
	assert.Equal(t, "maria", movements.items[0].ActingUser)
	assert.Empty(t, alerts.items, "10 > 3: no debe haber alerta")
}

func TestCreate_DefaultsCategoriaEID(t *testing.T) {
	products := &fakeProductRepo{}
	uc := newStockUC(products, &fakeMovementRepo{}, &fakeAlertRepo{})

	out, err := uc.Create(dto.CreateProductRequest{Name: "Clavos"}, "maria")
	require.NoError(t, err)

	assert.Equal(t, entity.DefaultCategory, out.Category, `sin categoría debe asignarse "Geral"`)
	assert.NotEmpty(t, out.ID, "sin id debe generarse un UUID")
}

func TestCreate_RespetaIDDelCliente(t *testing.T) {
	products := &fakeProductRepo{}
	uc := newStockUC(products, &fakeMovementRepo{}, &fakeAlertRepo{})

	out, err := uc.Create(dto.CreateProductRequest{ID: "prod-7", Name: "Tuercas", Category: "Ferretería"}, "maria")
	require.NoError(t, err)
	assert.Equal(t, "prod-7", out.ID)
	assert.Equal(t, "Ferretería", out.Category)
}

func TestCreate_AlertaSiCantidadInicialBajoMinimo(t *testing.T) {
	alerts := &fakeAlertRepo{}
	uc := newStockUC(&fakeProductRepo{}, &fakeMovementRepo{}, alerts)

	_, err := uc.Create(dto.CreateProductRequest{
		Name:            "Arandelas",
		CurrentQuantity: 2,
		MinimumQuantity: 5,
	}, "maria")
	require.NoError(t, err)

	require.Len(t, alerts.items, 1)
	assert.Equal(t, 2, alerts.items[0].Quantity)
	assert.Equal(t, 5, alerts.items[0].MinimumQuantity)
	assert.Equal(t, entity.AlertStatusOpen, alerts.items[0].Status)
}

func TestCreate_FalloDeEfectosSecundariosNoFallaLaOperacion(t *testing.T) {
	// El registro de movimiento y la alerta son advisory: si su storage falla,
	// la creación del producto igual reporta éxito.
	products := &fakeProductRepo{}
	movements := &fakeMovementRepo{err: errors.New("movements caído")}
	alerts := &fakeAlertRepo{err: errors.New("alerts caído")}
	uc := newStockUC(products, movements, alerts)

	out, err := uc.Create(dto.CreateProductRequest{
		Name:            "Remaches",
		CurrentQuantity: 0,
		MinimumQuantity: 1,
	}, "maria")
	require.NoError(t, err, "la mutación primaria nunca depende de los efectos secundarios")
	assert.NotNil(t, out)
	assert.Len(t, products.products, 1, "el producto quedó persistido")
	assert.Empty(t, movements.items)
	assert.Empty(t, alerts.items)
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustQuantity
// ──────────────────────────────────────────────────────────────────────────────

func TestAdjustQuantity_IncrementaYRegistraMovimiento(t *testing.T) {
	products := &fakeProductRepo{}
	seedProduct(products, "p1", "Geral", "maria", 2, 0)
	movements := &fakeMovementRepo{}
	uc := newStockUC(products, movements, &fakeAlertRepo{})

	out, err := uc.AdjustQuantity("p1", "Geral", 5, "maria")
	require.NoError(t, err)

	assert.Equal(t, 7, out.CurrentQuantity)
	require.Len(t, movements.items, 1)
	assert.Equal(t, entity.MovementKindIncrease, movements.items[0].Kind)
	assert.Equal(t, 5, movements.items[0].Quantity, "el movimiento lleva la magnitud, no el signo")
}

func TestAdjustQuantity_AlertaReflejaCantidadNueva(t *testing.T) {
	products := &fakeProductRepo{}
	seedProduct(products, "p1", "Geral", "maria", 2, 10)
	alerts := &fakeAlertRepo{}
	uc := newStockUC(products, &fakeMovementRepo{}, alerts)

	out, err := uc.AdjustQuantity("p1", "Geral", 5, "maria")
	require.NoError(t, err)

	assert.Equal(t, 7, out.CurrentQuantity)
	require.Len(t, alerts.items, 1, "7 <= 10: debe haber alerta")
	assert.Equal(t, 7, alerts.items[0].Quantity, "la alerta lleva la cantidad NUEVA, no la previa")
}

func TestAdjustQuantity_DecrementoYMagnitudAbsoluta(t *testing.T) {
	products := &fakeProductRepo{}
	seedProduct(products, "p1", "Geral", "maria", 10, 0)
	movements := &fakeMovementRepo{}
	uc := newStockUC(products, movements, &fakeAlertRepo{})

	out, err := uc.AdjustQuantity("p1", "Geral", -4, "maria")
	require.NoError(t, err)

	assert.Equal(t, 6, out.CurrentQuantity)
	require.Len(t, movements.items, 1)
	assert.Equal(t, entity.MovementKindDecrease, movements.items[0].Kind)
	assert.Equal(t, 4, movements.items[0].Quantity)
}

// Comportamiento heredado del sistema original: delta cero se clasifica como
// decrease. Este test lo documenta en lugar de corregirlo.
func TestAdjustQuantity_DeltaCeroSeClasificaComoDecrease(t *testing.T) {
	products := &fakeProductRepo{}
	seedProduct(products, "p1", "Geral", "maria", 10, 0)
	movements := &fakeMovementRepo{}
	uc := newStockUC(products, movements, &fakeAlertRepo{})

	out, err := uc.AdjustQuantity("p1", "Geral", 0, "maria")
	require.NoError(t, err)

	assert.Equal(t, 10, out.CurrentQuantity)
	require.Len(t, movements.items, 1)
	assert.Equal(t, entity.MovementKindDecrease, movements.items[0].Kind)
	assert.Equal(t, 0, movements.items[0].Quantity)
}

// Comportamiento heredado: no hay piso en cero, el stock puede quedar negativo.
func TestAdjustQuantity_PermiteStockNegativo(t *testing.T) {
	products := &fakeProductRepo{}
	seedProduct(products, "p1", "Geral", "maria", 3, 0)
	uc := newStockUC(products, &fakeMovementRepo{}, &fakeAlertRepo{})

	out, err := uc.AdjustQuantity("p1", "Geral", -8, "maria")
	require.NoError(t, err)
	assert.Equal(t, -5, out.CurrentQuantity)
}

func TestAdjustQuantity_NotFound(t *testing.T) {
	movements := &fakeMovementRepo{}
	uc := newStockUC(&fakeProductRepo{}, movements, &fakeAlertRepo{})

	_, err := uc.AdjustQuantity("no-existe", "Geral", 1, "maria")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, movements.items, "sin mutación no debe haber movimiento")
}

func TestAdjustQuantity_ForbiddenParaOtroUsuario(t *testing.T) {
	products := &fakeProductRepo{}
	seedProduct(products, "p1", "Geral", "maria", 10, 0)
	movements := &fakeMovementRepo{}
	uc := newStockUC(products, movements, &fakeAlertRepo{})

	_, err := uc.AdjustQuantity("p1", "Geral", 1, "pedro")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Equal(t, 10, products.products[0].CurrentQuantity, "la cantidad no debe cambiar")
	assert.Empty(t, movements.items)
}

func TestAdjustQuantity_MismoIDOtraCategoriaEsNotFound(t *testing.T) {
	// La identidad del producto es el par (id, category): el mismo id en otra
	// categoría es otro documento.
	products := &fakeProductRepo{}
	seedProduct(products, "p1", "Ferretería", "maria", 10, 0)
	uc := newStockUC(products, &fakeMovementRepo{}, &fakeAlertRepo{})

	_, err := uc.AdjustQuantity("p1", "Geral", 1, "maria")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDelete_RegistraMovimientoConCantidadPreDelete(t *testing.T) {
	products := &fakeProductRepo{}
	seedProduct(products, "p1", "Geral", "maria", 9, 0)
	movements := &fakeMovementRepo{}
	uc := newStockUC(products, movements, &fakeAlertRepo{})

	err := uc.Delete("p1", "Geral", "maria")
	require.NoError(t, err)

	assert.Empty(t, products.products, "el producto debe quedar eliminado")
	require.Len(t, movements.items, 1)
	assert.Equal(t, entity.MovementKindDelete, movements.items[0].Kind)
	assert.Equal(t, 9, movements.items[0].Quantity, "el movimiento delete lleva la cantidad previa al borrado")
}

func TestDelete_Forbidden(t *testing.T) {
	products := &fakeProductRepo{}
	seedProduct(products, "p1", "Geral", "maria", 9, 0)
	movements := &fakeMovementRepo{}
	uc := newStockUC(products, movements, &fakeAlertRepo{})

	err := uc.Delete("p1", "Geral", "pedro")
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Len(t, products.products, 1, "el producto no debe borrarse")
	assert.Empty(t, movements.items, "no debe registrarse movimiento")
}

func TestDelete_NotFound(t *testing.T) {
	uc := newStockUC(&fakeProductRepo{}, &fakeMovementRepo{}, &fakeAlertRepo{})
	err := uc.Delete("no-existe", "Geral", "maria")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestList_FiltraPorDueno(t *testing.T) {
	products := &fakeProductRepo{}
	seedProduct(products, "p1", "Geral", "maria", 1, 0)
	seedProduct(products, "p2", "Geral", "pedro", 2, 0)
	seedProduct(products, "p3", "Geral", "maria", 3, 0)
	uc := newStockUC(products, &fakeMovementRepo{}, &fakeAlertRepo{})

	out, err := uc.List("maria")
	require.NoError(t, err)

	require.Equal(t, 2, out.Total)
	for _, item := range out.Items {
		assert.Equal(t, "maria", item.OwningUser, "nunca deben aparecer productos de otros usuarios")
	}
}

func TestList_IdempotenteSinMutaciones(t *testing.T) {
	products := &fakeProductRepo{}
	seedProduct(products, "p1", "Geral", "maria", 1, 0)
	seedProduct(products, "p2", "Geral", "maria", 2, 0)
	uc := newStockUC(products, &fakeMovementRepo{}, &fakeAlertRepo{})

	first, err := uc.List("maria")
	require.NoError(t, err)
	second, err := uc.List("maria")
	require.NoError(t, err)

	assert.ElementsMatch(t, first.Items, second.Items)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alertas repetidas
// ──────────────────────────────────────────────────────────────────────────────

func TestAlertas_UnaNuevaPorCadaMutacionBajoMinimo(t *testing.T) {
	products := &fakeProductRepo{}
	seedProduct(products, "p1", "Geral", "maria", 5, 10)
	alerts := &fakeAlertRepo{}
	uc := newStockUC(products, &fakeMovementRepo{}, alerts)

	_, err := uc.AdjustQuantity("p1", "Geral", -1, "maria")
	require.NoError(t, err)
	_, err = uc.AdjustQuantity("p1", "Geral", -1, "maria")
	require.NoError(t, err)

	assert.Len(t, alerts.items, 2, "no hay deduplicación: una alerta por mutación bajo mínimo")
}
