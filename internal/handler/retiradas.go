package handler

import (
	"net/http"

	"github.com/okaique/paiol-dashboard-sub000/internal/apierror"
	"github.com/okaique/paiol-dashboard-sub000/internal/dto"
	"github.com/okaique/paiol-dashboard-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RetiradasHandler struct{ svc service.RetiradaService }

func NewRetiradasHandler(svc service.RetiradaService) *RetiradasHandler {
	return &RetiradasHandler{svc: svc}
}

// Registrar godoc
// @Summary Registra uma retirada de areia (sobre-retirada permitida)
// @Tags retiradas
// @Accept json
// @Produce json
// @Param id path string true "ID do paiol"
// @Param body body dto.RegistrarRetiradaRequest true "Dados da retirada"
// @Success 201 {object} dto.RetiradaResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/paiols/{id}/retiradas [post]
func (h *RetiradasHandler) Registrar(c *gin.Context) {
	paiolID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.RegistrarRetiradaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), paiolID, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *RetiradasHandler) ListarPorPaiol(c *gin.Context) {
	paiolID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), paiolID)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// StatusVolume godoc
// @Summary Capacidade × retiradas do ciclo atual (disponível pode ser negativo)
// @Tags retiradas
// @Produce json
// @Param id path string true "ID do paiol"
// @Success 200 {object} dto.StatusVolumeResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/paiols/{id}/volume [get]
func (h *RetiradasHandler) StatusVolume(c *gin.Context) {
	paiolID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.StatusVolume(c.Request.Context(), paiolID)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
