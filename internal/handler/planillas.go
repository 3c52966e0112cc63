package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/apierror"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/dto"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/repository"
	"github.com/marcelobeduzzi/sistemagastronomico3-sub002/internal/service"
)

type PlanillasHandler struct{ svc service.PlanillaService }

func NewPlanillasHandler(svc service.PlanillaService) *PlanillasHandler {
	return &PlanillasHandler{svc: svc}
}

// Guardar godoc
// @Summary Crea (primer guardado) o actualiza una planilla de stock
// @Tags planillas
// @Accept json
// @Produce json
// @Param body body dto.GuardarPlanillaRequest true "Datos de la planilla"
// @Success 200 {object} dto.PlanillaResponse
// @Failure 400 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/planillas [post]
func (h *PlanillasHandler) Guardar(c *gin.Context) {
	var req dto.GuardarPlanillaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Guardar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	status := http.StatusOK
	if req.PlanillaID == "" {
		status = http.StatusCreated
	}
	c.JSON(status, resp)
}

// Obtener godoc
// @Summary Obtiene una planilla por id (solo_lectura=true si está completada)
// @Tags planillas
// @Produce json
// @Param id path string true "ID de planilla"
// @Success 200 {object} dto.PlanillaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/planillas/{id} [get]
func (h *PlanillasHandler) Obtener(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorSlot godoc
// @Summary Busca la planilla abierta de un slot (local, fecha, turno)
// @Tags planillas
// @Produce json
// @Param local query string true "ID de local"
// @Param fecha query string true "Fecha AAAA-MM-DD"
// @Param turno query string true "manana | tarde"
// @Success 200 {object} dto.PlanillaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/planillas/slot [get]
func (h *PlanillasHandler) ObtenerPorSlot(c *gin.Context) {
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

// BloquearCampo godoc
// @Summary Bloquea un campo (apertura|ingreso|cierre) de una línea — irreversible
// @Tags planillas
// @Accept json
// @Produce json
// @Param id path string true "ID de planilla"
// @Param body body dto.BloquearCampoRequest true "Campo a bloquear"
// @Success 200 {object} dto.PlanillaResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/planillas/{id}/bloquear [post]
func (h *PlanillasHandler) BloquearCampo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.BloquearCampoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.BloquearCampo(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AgregarIngreso godoc
// @Summary Acumula un ingreso de mercadería sobre una línea aún no bloqueada
// @Tags planillas
// @Accept json
// @Produce json
// @Param id path string true "ID de planilla"
// @Param body body dto.AgregarIngresoRequest true "Ingreso a acumular"
// @Success 200 {object} dto.PlanillaResponse
// @Failure 400 {object} apierror.APIError
// @Failure 409 {object} apierror.APIError
// @Router /v1/planillas/{id}/ingresos [post]
func (h *PlanillasHandler) AgregarIngreso(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.AgregarIngresoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AgregarIngreso(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Finalizar godoc
// @Summary Finaliza la planilla: recalcula diferencias, fuerza bloqueos, estado terminal
// @Tags planillas
// @Accept json
// @Produce json
// @Param id path string true "ID de planilla"
// @Param body body dto.FinalizarPlanillaRequest true "Actor"
// @Success 200 {object} dto.PlanillaResponse
// @Failure 400 {object} apierror.APIError
// @Router /v1/planillas/{id}/finalizar [post]
func (h *PlanillasHandler) Finalizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.FinalizarPlanillaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Finalizar(c.Request.Context(), id, req.Actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar returns a paginated header-only listing for the back-office screens.
func (h *PlanillasHandler) Listar(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("pagina", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limite", "20"))

	filter := repository.PlanillaFilter{Page: page, Limit: limit, Estado: c.Query("estado")}
	if local := c.Query("local"); local != "" {
		localID, err := uuid.Parse(local)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("local inválido"))
			return
		}
		filter.LocalID = &localID
	}

	resp, total, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": resp, "total": total})
}
