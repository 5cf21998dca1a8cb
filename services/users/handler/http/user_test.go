package http

import (
	"context"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karhabty/admin-gateway/internal/pkg/apierr"
	"github.com/karhabty/admin-gateway/internal/pkg/collection"
	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/services/users/mocks"
)

func TestListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockUserUC(ctrl)
	h := NewUserHandler(uc)

	snap := collection.Snapshot[models.User]{
		Items:      []models.User{{ID: "u-1", Email: "a@karhabty.com"}},
		Total:      47,
		TotalPages: 5,
		Query: collection.Query{
			Page:     3,
			PageSize: 10,
			Filters:  map[string]string{"role": "customer"},
		},
		Selected: []string{"u-1"},
	}

	uc.EXPECT().
		ListUsers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q collection.Query) (collection.Snapshot[models.User], error) {
			assert.Equal(t, 3, q.Page)
			assert.Equal(t, 10, q.PageSize)
			assert.Equal(t, "customer", q.Filters["role"])
			return snap, nil
		})

	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodGet, "/users?page=3&page_size=10&role=customer", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ListUsers(c))
	assert.Equal(t, nethttp.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Total      int      `json:"total"`
			TotalPages int      `json:"total_pages"`
			Selected   []string `json:"selected"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 47, resp.Data.Total)
	assert.Equal(t, 5, resp.Data.TotalPages)
	assert.Equal(t, []string{"u-1"}, resp.Data.Selected)
}

func TestCreateUser_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockUserUC(ctrl)
	h := NewUserHandler(uc)

	uc.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{ID: "u-9", Email: "new@karhabty.com"}, nil)

	body := `{"email":"new@karhabty.com","phone":"01001234567","role":"customer"}`
	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodPost, "/users", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateUser(c))
	assert.Equal(t, nethttp.StatusCreated, rec.Code)
}

func TestCreateUser_ValidationErrorCarriesFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockUserUC(ctrl)
	h := NewUserHandler(uc)

	uc.EXPECT().
		RegisterUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, apierr.Validation(map[string]string{"email": "a valid email address is required"}))

	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodPost, "/users", strings.NewReader(`{"email":"bad"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateUser(c))
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "email")
}

func TestBatchDeleteUsers_PartialFailureIs207(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockUserUC(ctrl)
	h := NewUserHandler(uc)

	uc.EXPECT().
		DeleteUsers(gomock.Any(), []string{"u-1", "u-2"}).
		Return(apierr.Partial("delete", map[string]string{"u-2": "upstream: 409"}))

	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodPost, "/users/batch-delete", strings.NewReader(`{"ids":["u-1","u-2"]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.BatchDeleteUsers(c))
	assert.Equal(t, nethttp.StatusMultiStatus, rec.Code)

	var resp struct {
		Failed map[string]string `json:"failed"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Failed, "u-2")
}

func TestUpdateSelection_Toggle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockUserUC(ctrl)
	h := NewUserHandler(uc)

	uc.EXPECT().ToggleUser("u-3").Return([]string{"u-3"})

	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodPut, "/users/selection", strings.NewReader(`{"action":"toggle","id":"u-3"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.UpdateSelection(c))
	assert.Equal(t, nethttp.StatusOK, rec.Code)
}

func TestExportUsers_CSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockUserUC(ctrl)
	h := NewUserHandler(uc)

	uc.EXPECT().
		ExportUsers(gomock.Any()).
		Return([]string{"id", "email"}, [][]string{{"u-1", "a@karhabty.com"}}, nil)

	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodGet, "/users/export", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.ExportUsers(c))
	assert.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "id,email\nu-1,a@karhabty.com\n", rec.Body.String())
}
