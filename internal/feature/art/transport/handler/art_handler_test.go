package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"art_backend/internal/apperror"
	"art_backend/internal/feature/art/domain/entity"
	"art_backend/internal/feature/art/usecase"
	jwtmw "art_backend/internal/platform/jwt"
)

// mockArtUsecase is a mock implementation of the ArtUsecase interface.
type mockArtUsecase struct {
	CreateArtFunc   func(ctx context.Context, art *entity.Art) error
	ListAllFunc     func(ctx context.Context) ([]entity.Art, error)
	ListPublicFunc  func(ctx context.Context, f usecase.ListingFilter) ([]entity.Art, error)
	GetArtFunc      func(ctx context.Context, id uint) (*entity.Art, error)
	UpdateArtFunc   func(ctx context.Context, id uint, in usecase.UpdateArtInput) (*entity.Art, error)
	UpdateImageFunc func(ctx context.Context, id uint, data []byte, fileName string) (*entity.Art, error)
	DeleteArtFunc   func(ctx context.Context, id uint) (*entity.Art, error)
}

func (m *mockArtUsecase) CreateArt(ctx context.Context, art *entity.Art) error {
	if m.CreateArtFunc != nil {
		return m.CreateArtFunc(ctx, art)
	}
	return nil
}

func (m *mockArtUsecase) ListAll(ctx context.Context) ([]entity.Art, error) {
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockArtUsecase) ListPublic(ctx context.Context, f usecase.ListingFilter) ([]entity.Art, error) {
	if m.ListPublicFunc != nil {
		return m.ListPublicFunc(ctx, f)
	}
	return nil, nil
}

func (m *mockArtUsecase) GetArt(ctx context.Context, id uint) (*entity.Art, error) {
	if m.GetArtFunc != nil {
		return m.GetArtFunc(ctx, id)
	}
	return nil, apperror.NotFound(id)
}

func (m *mockArtUsecase) UpdateArt(ctx context.Context, id uint, in usecase.UpdateArtInput) (*entity.Art, error) {
	if m.UpdateArtFunc != nil {
		return m.UpdateArtFunc(ctx, id, in)
	}
	return nil, apperror.NotFound(id)
}

func (m *mockArtUsecase) UpdateImage(ctx context.Context, id uint, data []byte, fileName string) (*entity.Art, error) {
	if m.UpdateImageFunc != nil {
		return m.UpdateImageFunc(ctx, id, data, fileName)
	}
	return nil, apperror.NotFound(id)
}

func (m *mockArtUsecase) DeleteArt(ctx context.Context, id uint) (*entity.Art, error) {
	if m.DeleteArtFunc != nil {
		return m.DeleteArtFunc(ctx, id)
	}
	return nil, apperror.NotFound(id)
}

// newTestRouter wires the handler behind a stub that injects claims the way
// the auth guard would.
func newTestRouter(uc *mockArtUsecase, claims jwtmw.Claims) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewArtHandler(uc)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if claims.ID != 0 {
			c.Set(jwtmw.ContextClaims, claims)
		}
		c.Next()
	})
	r.POST("/art", h.Create)
	r.GET("/art", h.List)
	r.GET("/art/pub", h.ListPublic)
	r.GET("/art/pub/:id", h.GetByID)
	r.PUT("/art/:id", h.Update)
	r.PATCH("/art/:id", h.UpdateImage)
	r.DELETE("/art/:id", h.Delete)
	return r
}

func validBody() gin.H {
	return gin.H{
		"name":        "Sunset",
		"description": "a description",
		"price":       1500,
		"stock":       3,
		"imgUrl":      "https://img.example.com/a.png",
		"typeId":      2,
	}
}

func doJSON(r *gin.Engine, method, path string, body gin.H) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req, _ := http.NewRequest(method, path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestArtHandler_Create(t *testing.T) {
	t.Run("success: caller becomes the owner", func(t *testing.T) {
		var created *entity.Art
		uc := &mockArtUsecase{
			CreateArtFunc: func(ctx context.Context, art *entity.Art) error {
				created = art
				art.ID = 7
				return nil
			},
		}
		r := newTestRouter(uc, jwtmw.Claims{ID: 42, Role: "Staff"})

		w := doJSON(r, http.MethodPost, "/art", validBody())

		assert.Equal(t, http.StatusCreated, w.Code)
		require.NotNil(t, created)
		assert.Equal(t, uint(42), created.UserID)

		var body struct {
			Message string `json:"message"`
			Art     struct {
				ID     uint `json:"id"`
				UserID uint `json:"userId"`
			} `json:"art"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "art created", body.Message)
		assert.Equal(t, uint(7), body.Art.ID)
		assert.Equal(t, uint(42), body.Art.UserID)
	})

	t.Run("failure: first absent field is named", func(t *testing.T) {
		for _, field := range []string{"name", "description", "price", "stock", "imgUrl", "typeId"} {
			t.Run(field, func(t *testing.T) {
				uc := &mockArtUsecase{
					CreateArtFunc: func(ctx context.Context, art *entity.Art) error {
						t.Error("CreateArt should not be called")
						return nil
					},
				}
				r := newTestRouter(uc, jwtmw.Claims{ID: 42, Role: "Staff"})

				body := validBody()
				delete(body, field)
				w := doJSON(r, http.MethodPost, "/art", body)

				assert.Equal(t, http.StatusBadRequest, w.Code)

				var responseBody gin.H
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &responseBody))
				assert.Equal(t, gin.H{"message": field + " is required"}, responseBody)
			})
		}
	})

	t.Run("failure: constraint violation from storage", func(t *testing.T) {
		uc := &mockArtUsecase{
			CreateArtFunc: func(ctx context.Context, art *entity.Art) error {
				return apperror.BadRequest("price number min 100")
			},
		}
		r := newTestRouter(uc, jwtmw.Claims{ID: 42, Role: "Staff"})

		body := validBody()
		body["price"] = 50
		w := doJSON(r, http.MethodPost, "/art", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"price number min 100"}`, w.Body.String())
	})
}

func TestArtHandler_ListPublic(t *testing.T) {
	t.Run("query parameters compile into the filter", func(t *testing.T) {
		var got usecase.ListingFilter
		uc := &mockArtUsecase{
			ListPublicFunc: func(ctx context.Context, f usecase.ListingFilter) ([]entity.Art, error) {
				got = f
				return []entity.Art{}, nil
			},
		}
		r := newTestRouter(uc, jwtmw.Claims{})

		req, _ := http.NewRequest(http.MethodGet, "/art/pub?name=Vase&typeId=2&sort=oldest&page=2", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, usecase.ListingFilter{
			NamePattern: "vase",
			TypeID:      2,
			OldestFirst: true,
			Offset:      usecase.PageSize,
			Limit:       usecase.PageSize,
		}, got)
	})

	t.Run("invalid query rejected before the usecase runs", func(t *testing.T) {
		uc := &mockArtUsecase{
			ListPublicFunc: func(ctx context.Context, f usecase.ListingFilter) ([]entity.Art, error) {
				t.Error("ListPublic should not be called")
				return nil, nil
			},
		}
		r := newTestRouter(uc, jwtmw.Claims{})

		req, _ := http.NewRequest(http.MethodGet, "/art/pub?page=0", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"page minimum value is 1"}`, w.Body.String())
	})

	t.Run("empty result is an empty list, not null", func(t *testing.T) {
		uc := &mockArtUsecase{
			ListPublicFunc: func(ctx context.Context, f usecase.ListingFilter) ([]entity.Art, error) {
				return nil, nil
			},
		}
		r := newTestRouter(uc, jwtmw.Claims{})

		req, _ := http.NewRequest(http.MethodGet, "/art/pub", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"message":"success","arts":[]}`, w.Body.String())
	})
}

func TestArtHandler_GetByID(t *testing.T) {
	t.Run("missing listing is a 404 naming the id", func(t *testing.T) {
		r := newTestRouter(&mockArtUsecase{}, jwtmw.Claims{})

		req, _ := http.NewRequest(http.MethodGet, "/art/pub/999", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"message":"object with id:999 does not exist"}`, w.Body.String())
	})

	t.Run("malformed id is a 400", func(t *testing.T) {
		r := newTestRouter(&mockArtUsecase{}, jwtmw.Claims{})

		req, _ := http.NewRequest(http.MethodGet, "/art/pub/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"invalid id"}`, w.Body.String())
	})
}

func TestArtHandler_Update(t *testing.T) {
	uc := &mockArtUsecase{
		UpdateArtFunc: func(ctx context.Context, id uint, in usecase.UpdateArtInput) (*entity.Art, error) {
			return &entity.Art{
				ID:          id,
				Name:        in.Name,
				Description: in.Description,
				Price:       in.Price,
				Stock:       in.Stock,
				ImgURL:      in.ImgURL,
				TypeID:      in.TypeID,
				UserID:      42,
			}, nil
		},
	}
	r := newTestRouter(uc, jwtmw.Claims{ID: 42, Role: "Staff"})

	w := doJSON(r, http.MethodPut, "/art/7", validBody())

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Message string `json:"message"`
		Art     struct {
			UserID uint `json:"userId"`
		} `json:"art"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "art updated", body.Message)
	assert.Equal(t, uint(42), body.Art.UserID)
}

func TestArtHandler_UpdateImage(t *testing.T) {
	t.Run("success: uploads the form file", func(t *testing.T) {
		uc := &mockArtUsecase{
			UpdateImageFunc: func(ctx context.Context, id uint, data []byte, fileName string) (*entity.Art, error) {
				assert.Equal(t, uint(7), id)
				assert.Equal(t, "sunset.png", fileName)
				assert.Equal(t, []byte("png-bytes"), data)
				return &entity.Art{ID: id, ImgURL: "https://img.example.com/hosted.png"}, nil
			},
		}
		r := newTestRouter(uc, jwtmw.Claims{ID: 42, Role: "Staff"})

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		fw, err := mw.CreateFormFile("imgUrl", "sunset.png")
		require.NoError(t, err)
		_, err = fw.Write([]byte("png-bytes"))
		require.NoError(t, err)
		require.NoError(t, mw.Close())

		req, _ := http.NewRequest(http.MethodPatch, "/art/7", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "art image updated", body.Message)
	})

	t.Run("failure: no file in the form", func(t *testing.T) {
		r := newTestRouter(&mockArtUsecase{}, jwtmw.Claims{ID: 42, Role: "Staff"})

		req, _ := http.NewRequest(http.MethodPatch, "/art/7", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `{"message":"imgUrl required"}`, w.Body.String())
	})
}

func TestArtHandler_Delete(t *testing.T) {
	uc := &mockArtUsecase{
		DeleteArtFunc: func(ctx context.Context, id uint) (*entity.Art, error) {
			return &entity.Art{ID: id, Name: "Sunset", Description: "a description", Price: 1500}, nil
		},
	}
	r := newTestRouter(uc, jwtmw.Claims{ID: 42, Role: "Staff"})

	req, _ := http.NewRequest(http.MethodDelete, "/art/7", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Message string `json:"message"`
		Art     struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		} `json:"art"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "art deleted", body.Message)
	assert.Equal(t, uint(7), body.Art.ID)
	assert.Equal(t, "Sunset", body.Art.Name)
}
