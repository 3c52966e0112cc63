package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/apierror"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/dto"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/service"
)

type CierresHandler struct{ svc service.CierreCajaService }

func NewCierresHandler(svc service.CierreCajaService) *CierresHandler {
	return &CierresHandler{svc: svc}
}

// Registrar godoc
// @Summary Registra el cierre de caja de un slot (local, fecha, turno)
// @Tags cierres
// @Accept json
// @Produce json
// @Param body body dto.RegistrarCierreRequest true "Datos del cierre"
// @Success 201 {object} dto.CierreCajaResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/cierres-caja [post]
func (h *CierresHandler) Registrar(c *gin.Context) {
	var req dto.RegistrarCierreRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ObtenerPorSlot godoc
// @Summary Obtiene el cierre de caja de un slot
// @Tags cierres
// @Produce json
// @Param local query string true "ID de local"
// @Param fecha query string true "Fecha AAAA-MM-DD"
// @Param turno query string true "manana | tarde"
// @Success 200 {object} dto.CierreCajaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/cierres-caja/slot [get]
func (h *CierresHandler) ObtenerPorSlot(c *gin.Context) {
	localID, err := uuid.Parse(c.Query("local"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("local inválido"))
		return
	}
	fecha, err := time.ParseInLocation("2006-01-02", c.Query("fecha"), time.UTC)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("fecha inválida, se espera AAAA-MM-DD"))
		return
	}
	resp, err := h.svc.ObtenerPorSlot(c.Request.Context(), localID, fecha, c.Query("turno"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
