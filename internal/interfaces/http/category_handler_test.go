package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/warehouse-api/internal/application/usecase"
	"github.com/tu-usuario/warehouse-api/internal/domain/entity"
	apphttp "github.com/tu-usuario/warehouse-api/internal/interfaces/http"
)

// fakeCategoryRepo repositorio en memoria para ejercer el handler completo.
type fakeCategoryRepo struct {
	categories map[string]*entity.Category
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
func (f *fakeCategoryRepo) Update(c *entity.Category) error { return nil }
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

func buildApp(repo *fakeCategoryRepo) *fiber.App {
	app := fiber.New()
	handler := apphttp.NewCategoryHandler(usecase.NewCategoryUseCase(repo))
	group := app.Group("/api/categories")
	group.Post("/", handler.Create)
	group.Get("/:id", handler.GetByID)
	group.Delete("/:id", handler.Delete)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) *http.Response {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCategoryHandler_CrearRetorna201(t *testing.T) {
	app := buildApp(&fakeCategoryRepo{categories: map[string]*entity.Category{}})

	resp := doJSON(t, app, http.MethodPost, "/api/categories/", `{"name":"Herramientas"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Herramientas", body["name"])
	assert.NotEmpty(t, body["id"])
}

func TestCategoryHandler_DuplicadoRetorna409ConCuerpoError(t *testing.T) {
	repo := &fakeCategoryRepo{categories: map[string]*entity.Category{
		"c1": {ID: "c1", Name: "Herramientas"},
	}}
	app := buildApp(repo)

	resp := doJSON(t, app, http.MethodPost, "/api/categories/", `{"name":"Herramientas"}`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["error"],
		"todo fallo debe responder con la forma {\"error\": \"...\"}")
}

func TestCategoryHandler_InexistenteRetorna404(t *testing.T) {
	app := buildApp(&fakeCategoryRepo{categories: map[string]*entity.Category{}})

	resp := doJSON(t, app, http.MethodGet, "/api/categories/no-existe", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["error"])
}

func TestCategoryHandler_DeleteRetornaMensaje(t *testing.T) {
	repo := &fakeCategoryRepo{categories: map[string]*entity.Category{
		"c1": {ID: "c1", Name: "Herramientas"},
	}}
	app := buildApp(repo)

	resp := doJSON(t, app, http.MethodDelete, "/api/categories/c1", "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["message"])
	assert.True(t, repo.categories["c1"].IsDeleted)
}

func TestCategoryHandler_CuerpoMalformadoRetorna400(t *testing.T) {
	app := buildApp(&fakeCategoryRepo{categories: map[string]*entity.Category{}})

	resp := doJSON(t, app, http.MethodPost, "/api/categories/", `{"name":`)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
