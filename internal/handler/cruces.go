package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/apierror"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/apperr"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/repository"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/service"
)

type CrucesHandler struct{ svc service.CruceService }

func NewCrucesHandler(svc service.CruceService) *CrucesHandler {
	return &CrucesHandler{svc: svc}
}

// Comparar godoc
// @Summary Cruza una planilla contra el cierre de caja de su slot
// @Tags cruces
// @Produce json
// @Param id path string true "ID de planilla"
// @Success 200 {object} dto.CruceResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/planillas/{id}/cruce [post]
func (h *CrucesHandler) Comparar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Comparar(c.Request.Context(), id)
	if err != nil {
		// Best-effort durability: si solo falló la grabación de la alerta el
		// cálculo viaja igual en el cuerpo, junto con el error.
		if resp != nil && apperr.IsPersistence(err) {
			c.JSON(http.StatusOK, gin.H{"cruce": resp, "alerta_error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarAlertas returns a paginated listing, optionally filtered by estado.
func (h *CrucesHandler) ListarAlertas(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("pagina", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limite", "20"))

	resp, total, err := h.svc.ListarAlertas(c.Request.Context(), repository.AlertaFilter{
		Estado: c.Query("estado"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": total})
}

// ResolverAlerta marks an alert as resuelta.
func (h *CrucesHandler) ResolverAlerta(c *gin.Context) {
	h.actualizarEstado(c, h.svc.ResolverAlerta)
}

// DescartarAlerta marks an alert as descartada.
func (h *CrucesHandler) DescartarAlerta(c *gin.Context) {
	h.actualizarEstado(c, h.svc.DescartarAlerta)
}

func (h *CrucesHandler) actualizarEstado(c *gin.Context, op func(context.Context, uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := op(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
