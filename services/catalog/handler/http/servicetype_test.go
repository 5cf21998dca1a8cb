package http

import (
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
	"github.com/karhabty/admin-gateway/internal/pkg/models"
	"github.com/karhabty/admin-gateway/services/catalog/mocks"
)

func TestCreateServiceType_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockCatalogUC(ctrl)
	h := NewServiceTypeHandler(uc)

	uc.EXPECT().
		CreateServiceType(gomock.Any(), gomock.Any()).
		Return(models.ServiceType{ID: "st-9"}, nil)

	body := `{"name":{"en":"Oil change","ar":"تغيير زيت"},"category":"maintenance"}`
	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodPost, "/services/types", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateServiceType(c))
	assert.Equal(t, nethttp.StatusCreated, rec.Code)
}

func TestCreateServiceType_MissingArabicNameIs400(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockCatalogUC(ctrl)
	h := NewServiceTypeHandler(uc)

	uc.EXPECT().
		CreateServiceType(gomock.Any(), gomock.Any()).
		Return(models.ServiceType{}, apierr.Validation(map[string]string{"name.ar": "Arabic name is required"}))

	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodPost, "/services/types", strings.NewReader(`{"name":{"en":"Oil change"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.CreateServiceType(c))
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)

	var resp struct {
		Fields map[string]string `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "name.ar")
}

func TestUpdateSelection_UnknownAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := mocks.NewMockCatalogUC(ctrl)
	h := NewServiceTypeHandler(uc)

	e := echo.New()
	req := httptest.NewRequest(nethttp.MethodPut, "/services/types/selection", strings.NewReader(`{"action":"invert"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.UpdateSelection(c))
	assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
}
