package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chusu_backend/internal/feature/fruits/domain/entity"
	"chusu_backend/internal/feature/fruits/usecase"
	jwtmw "chusu_backend/internal/platform/jwt"
)

// TestMain はテスト実行前にGinをテストモードに設定します。
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// mockFruitUsecase is a func-field fake of FruitUsecase.
type mockFruitUsecase struct {
	listFn   func(ctx context.Context, userID uint) ([]entity.Fruit, error)
	getFn    func(ctx context.Context, userID, id uint) (*entity.Fruit, error)
	createFn func(ctx context.Context, userID uint, fruit *entity.Fruit) (*entity.Fruit, error)
	updateFn func(ctx context.Context, userID, id uint, fields *entity.Fruit) (*entity.Fruit, error)
	deleteFn func(ctx context.Context, userID, id uint) error
}

func (m *mockFruitUsecase) List(ctx context.Context, userID uint) ([]entity.Fruit, error) {
	return m.listFn(ctx, userID)
}

func (m *mockFruitUsecase) Get(ctx context.Context, userID, id uint) (*entity.Fruit, error) {
	return m.getFn(ctx, userID, id)
}

func (m *mockFruitUsecase) Create(ctx context.Context, userID uint, fruit *entity.Fruit) (*entity.Fruit, error) {
	return m.createFn(ctx, userID, fruit)
}

func (m *mockFruitUsecase) Update(ctx context.Context, userID, id uint, fields *entity.Fruit) (*entity.Fruit, error) {
	return m.updateFn(ctx, userID, id, fields)
}

func (m *mockFruitUsecase) Delete(ctx context.Context, userID, id uint) error {
	return m.deleteFn(ctx, userID, id)
}

// newTestRouter wires the handler behind a middleware that injects a
// fixed authenticated user, the way the JWT middleware would.
func newTestRouter(uc FruitUsecase, userID uint) *gin.Engine {
	h := NewFruitHandler(uc, false)
	r := gin.New()
	r.Use(func(c *gin.Context) { c.Set(jwtmw.ContextUserID, userID) })
	r.GET("/fruits", h.List)
	r.GET("/fruits/export/csv", h.ExportCSV)
	r.GET("/fruits/export/pdf", h.ExportPDF)
	r.GET("/fruits/:id", h.Get)
	r.POST("/fruits", h.Create)
	r.PUT("/fruits/:id", h.Update)
	r.DELETE("/fruits/:id", h.Delete)
	return r
}

func sampleFruit() *entity.Fruit {
	return &entity.Fruit{
		ID:          1,
		UserID:      1,
		Name:        "Rakoto",
		Memo:        "met at church",
		ContactDate: time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local),
		Category:    entity.CategoryEvent,
	}
}

func TestFruitHandler_List(t *testing.T) {
	uc := &mockFruitUsecase{
		listFn: func(ctx context.Context, userID uint) ([]entity.Fruit, error) {
			assert.Equal(t, uint(1), userID)
			return []entity.Fruit{*sampleFruit()}, nil
		},
	}
	r := newTestRouter(uc, 1)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fruits", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var views []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	require.Len(t, views, 1)
	assert.Equal(t, "Rakoto", views[0]["name"])
	assert.Nil(t, views[0]["followUpDate"])
}

func TestFruitHandler_Create(t *testing.T) {
	t.Run("valid body returns 201 with envelope", func(t *testing.T) {
		uc := &mockFruitUsecase{
			createFn: func(ctx context.Context, userID uint, fruit *entity.Fruit) (*entity.Fruit, error) {
				fruit.ID = 7
				fruit.UserID = userID
				return fruit, nil
			},
		}
		r := newTestRouter(uc, 1)

		body := `{"name":"Rakoto","memo":"met at church","contactDate":"2024-05-01","category":"event"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/fruits", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp struct {
			Message string         `json:"message"`
			Fruit   map[string]any `json:"fruit"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "fruit created", resp.Message)
		assert.Equal(t, float64(7), resp.Fruit["id"])
	})

	t.Run("validation failures return 400", func(t *testing.T) {
		uc := &mockFruitUsecase{}
		r := newTestRouter(uc, 1)

		tests := []struct {
			name string
			body string
		}{
			{"missing name", `{"memo":"m","contactDate":"2024-05-01","category":"event"}`},
			{"bad category", `{"name":"n","memo":"m","contactDate":"2024-05-01","category":"party"}`},
			{"bad outcome", `{"name":"n","memo":"m","contactDate":"2024-05-01","category":"event","outcome":"maybe"}`},
			{"garbage date", `{"name":"n","memo":"m","contactDate":"not-a-date","category":"event"}`},
			{"not json", `name=Rakoto`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := httptest.NewRecorder()
				req := httptest.NewRequest(http.MethodPost, "/fruits", strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
				r.ServeHTTP(w, req)

				assert.Equal(t, http.StatusBadRequest, w.Code)
			})
		}
	})

	t.Run("RFC3339 contact date is accepted", func(t *testing.T) {
		var got *entity.Fruit
		uc := &mockFruitUsecase{
			createFn: func(ctx context.Context, userID uint, fruit *entity.Fruit) (*entity.Fruit, error) {
				got = fruit
				return fruit, nil
			},
		}
		r := newTestRouter(uc, 1)

		body := `{"name":"n","memo":"m","contactDate":"2024-05-01T09:30:00Z","category":"other"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/fruits", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, got)
		assert.Equal(t, 2024, got.ContactDate.Year())
	})
}

func TestFruitHandler_Get_NotFound(t *testing.T) {
	uc := &mockFruitUsecase{
		getFn: func(ctx context.Context, userID, id uint) (*entity.Fruit, error) {
			return nil, usecase.ErrNotFound
		},
	}
	r := newTestRouter(uc, 1)

	t.Run("missing record", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fruits/42", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unparsable id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fruits/abc", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFruitHandler_Delete(t *testing.T) {
	deleted := map[uint]bool{}
	uc := &mockFruitUsecase{
		deleteFn: func(ctx context.Context, userID, id uint) error {
			if deleted[id] {
				return usecase.ErrNotFound
			}
			deleted[id] = true
			return nil
		},
	}
	r := newTestRouter(uc, 1)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/fruits/5", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// Deleting the same record again answers 404.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/fruits/5", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFruitHandler_ExportCSV(t *testing.T) {
	uc := &mockFruitUsecase{
		listFn: func(ctx context.Context, userID uint) ([]entity.Fruit, error) {
			return []entity.Fruit{*sampleFruit()}, nil
		},
	}
	r := newTestRouter(uc, 1)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fruits/export/csv", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "fruits.csv")

	lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
	require.Len(t, lines, 2, "header plus one record")
	assert.True(t, strings.HasPrefix(lines[0], "name,memo,prayer"))
	assert.Contains(t, lines[1], "Rakoto")
}

func TestFruitHandler_ExportPDF(t *testing.T) {
	uc := &mockFruitUsecase{
		listFn: func(ctx context.Context, userID uint) ([]entity.Fruit, error) {
			return []entity.Fruit{*sampleFruit()}, nil
		},
	}
	r := newTestRouter(uc, 1)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fruits/export/pdf", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"), "body must start with the PDF magic")
}

func TestFruitHandler_Unauthenticated(t *testing.T) {
	// No user id in the context means the middleware never ran.
	h := NewFruitHandler(&mockFruitUsecase{}, false)
	r := gin.New()
	r.GET("/fruits", h.List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fruits", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
