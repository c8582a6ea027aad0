package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"estatedesk/internal/adapter/http/handlers/mocks"
	"estatedesk/internal/domain/entities"
	"estatedesk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestServiceHandler_CreateService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(h *ServiceHandler) *gin.Engine {
		r := gin.New()
		r.POST("/v1/services", h.CreateService)
		return r
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)
		r := build(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)
		r := build(h)

		uc.EXPECT().CreateService(gomock.Any(), gomock.Any()).Return(entities.Service{}, usecase.ErrMissingServiceName)

		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(`{"name":"  "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)
		r := build(h)

		uc.EXPECT().CreateService(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, in usecase.CreateServiceInput) (entities.Service, error) {
				if in.Name != "Landscaping" || len(in.Packages) != 1 {
					t.Fatalf("unexpected input: %+v", in)
				}
				return entities.Service{ID: "svc-1", Name: in.Name, Packages: in.Packages, Active: true}, nil
			},
		)

		body := `{"name":"Landscaping","packages":[{"name":"basic","price":"$500"}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/services", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "svc-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestServiceHandler_GetService(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		r := gin.New()
		r.GET("/v1/services/:id", h.GetService)

		uc.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{}, usecase.ErrServiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/services/svc-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		r := gin.New()
		r.GET("/v1/services/:id", h.GetService)

		uc.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", Name: "Landscaping"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/services/svc-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestServiceHandler_ListServices(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("active filter forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIServiceUseCase(ctrl)
		h := NewServiceHandler(uc)

		r := gin.New()
		r.GET("/v1/services", h.ListServices)

		uc.EXPECT().List(gomock.Any(), true).Return([]entities.Service{{ID: "svc-1"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/services?active=true", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if len(resp) != 1 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapServiceError(t *testing.T) {
	if got := mapServiceError(usecase.ErrMissingServiceName); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapServiceError(usecase.ErrServiceNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapServiceError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
