package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/warehouse-api/internal/application/dto"
	"github.com/tu-usuario/warehouse-api/internal/application/usecase"
	"github.com/tu-usuario/warehouse-api/internal/domain"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
)

// fakeCategoryRepo repositorio en memoria para los tests de categorías.
type fakeCategoryRepo struct {
	categories map[string]*entity.Category
}

func newFakeCategoryRepo(categories ...*entity.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: map[string]*entity.Category{}}
	for _, c := range categories {
		repo.categories[c.ID] = c
	}
	return repo
}

func (f *fakeCategoryRepo) Create(c *entity.Category) error { f.categories[c.ID] = c; return nil }
func (f *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	return f.categories[id], nil
}
func (f *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeCategoryRepo) Update(c *entity.Category) error { f.categories[c.ID] = c; return nil }
func (f *fakeCategoryRepo) Restore(id string) error {
	f.categories[id].IsDeleted = false
	return nil
}
func (f *fakeCategoryRepo) SoftDelete(id string) error {
	f.categories[id].IsDeleted = true
	return nil
}
func (f *fakeCategoryRepo) List() ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range f.categories {
		if !c.IsDeleted {
			out = append(out, c)
		}
	}
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Create — duplicados y restauración
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryCreate_NombreDuplicadoActivoRechazado(t *testing.T) {
	repo := newFakeCategoryRepo(&entity.Category{ID: "c1", Name: "Herramientas"})
	uc := usecase.NewCategoryUseCase(repo)

	_, err := uc.Create(dto.CreateCategoryRequest{Name: "Herramientas"})
	assert.ErrorIs(t, err, domain.ErrDuplicate,
		"crear con el nombre de una categoría activa debe rechazarse")
}

func TestCategoryCreate_NombreDeEliminadaRestaura(t *testing.T) {
	repo := newFakeCategoryRepo(&entity.Category{
		ID:        "c1",
		Name:      "Herramientas",
		IsDeleted: true,
	})
	uc := usecase.NewCategoryUseCase(repo)

	out, err := uc.Create(dto.CreateCategoryRequest{Name: "Herramientas"})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "c1", out.ID,
		"re-crear con el nombre de una eliminada debe restaurar la fila original")
	assert.False(t, repo.categories["c1"].IsDeleted)
}

func TestCategoryCreate_SinNombreRechazado(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())
	_, err := uc.Create(dto.CreateCategoryRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete / listados
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryDelete_OcultaDeListado(t *testing.T) {
	repo := newFakeCategoryRepo(
		&entity.Category{ID: "c1", Name: "Herramientas"},
		&entity.Category{ID: "c2", Name: "Pinturas"},
	)
	uc := usecase.NewCategoryUseCase(repo)

	require.NoError(t, uc.Delete("c1"))

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Pinturas", list[0].Name)

	// Por ID sigue resolviendo, para las vistas históricas.
	got, err := uc.GetByID("c1")
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestCategoryDelete_YaEliminadaEsNotFound(t *testing.T) {
	repo := newFakeCategoryRepo(&entity.Category{ID: "c1", Name: "Herramientas", IsDeleted: true})
	uc := usecase.NewCategoryUseCase(repo)

	err := uc.Delete("c1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryUpdate_EliminadaNoEditable(t *testing.T) {
	repo := newFakeCategoryRepo(&entity.Category{ID: "c1", Name: "Herramientas", IsDeleted: true})
	uc := usecase.NewCategoryUseCase(repo)

	nombre := "Otro"
	out, err := uc.Update("c1", dto.UpdateCategoryRequest{Name: &nombre})
	require.NoError(t, err)
	assert.Nil(t, out, "una categoría eliminada se trata como inexistente al editar")
}
