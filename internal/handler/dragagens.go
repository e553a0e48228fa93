package handler

import (
	"net/http"
	"time"

	"github.com/okaique/paiol-dashboard-sub000/internal/apierror"
	"github.com/okaique/paiol-dashboard-sub000/internal/dto"
	"github.com/okaique/paiol-dashboard-sub000/internal/model"
	"github.com/okaique/paiol-dashboard-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DragagensHandler struct {
	status   service.StatusService
	cubagens service.CubagemService
}

func NewDragagensHandler(status service.StatusService, cubagens service.CubagemService) *DragagensHandler {
	return &DragagensHandler{status: status, cubagens: cubagens}
}

// Iniciar godoc
// @Summary Inicia uma dragagem (paiol VAZIO→DRAGANDO, dragador obrigatório)
// @Tags dragagens
// @Accept json
// @Produce json
// @Param id path string true "ID do paiol"
// @Param body body dto.IniciarDragagemRequest true "Equipe da dragagem"
// @Success 201 {object} dto.DragagemResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/paiols/{id}/dragagens [post]
func (h *DragagensHandler) Iniciar(c *gin.Context) {
	paiolID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.IniciarDragagemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	dragagem, err := h.status.IniciarDragagem(c.Request.Context(), paiolID, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, dragagemToResponse(dragagem))
}

// Finalizar godoc
// @Summary Finaliza a dragagem ativa (paiol DRAGANDO→CHEIO)
// @Tags dragagens
// @Accept json
// @Produce json
// @Param id path string true "ID da dragagem"
// @Success 200 {object} dto.DragagemResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/dragagens/{id}/finalizar [post]
func (h *DragagensHandler) Finalizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.FinalizarDragagemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	dragagem, err := h.status.FinalizarDragagem(c.Request.Context(), id, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, dragagemToResponse(dragagem))
}

func (h *DragagensHandler) ListarPorPaiol(c *gin.Context) {
	paiolID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	dragagens, err := h.status.ListarDragagens(c.Request.Context(), paiolID)
	if err != nil {
		respondErro(c, err)
		return
	}
	resp := make([]dto.DragagemResponse, 0, len(dragagens))
	for i := range dragagens {
		resp = append(resp, *dragagemToResponse(&dragagens[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarCubagem godoc
// @Summary Registra a cubagem de uma dragagem (uma por dragagem)
// @Tags cubagens
// @Accept json
// @Produce json
// @Param id path string true "ID da dragagem"
// @Param body body dto.RegistrarCubagemRequest true "Medidas e volume reduzido"
// @Success 201 {object} dto.CubagemResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/dragagens/{id}/cubagem [post]
func (h *DragagensHandler) RegistrarCubagem(c *gin.Context) {
	dragagemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.RegistrarCubagemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.cubagens.Registrar(c.Request.Context(), dragagemID, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *DragagensHandler) AtualizarVolumeReduzido(c *gin.Context) {
	cubagemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.AtualizarVolumeReduzidoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.cubagens.AtualizarVolumeReduzido(c.Request.Context(), cubagemID, req.VolumeReduzido)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PreviewVolume computes the cylinder volume from the measurements without
// persisting anything. Used by the console while the operator types.
func (h *DragagensHandler) PreviewVolume(c *gin.Context) {
	var req dto.CalcularVolumeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.cubagens.Calcular(req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func dragagemToResponse(d *model.Dragagem) *dto.DragagemResponse {
	resp := &dto.DragagemResponse{
		ID:         d.ID.String(),
		PaiolID:    d.PaiolID.String(),
		DragadorID: d.DragadorID.String(),
		DataInicio: d.DataInicio.Format(time.RFC3339),
	}
	if d.AjudanteID != nil {
		s := d.AjudanteID.String()
		resp.AjudanteID = &s
	}
	if d.DataFim != nil {
		s := d.DataFim.Format(time.RFC3339)
		resp.DataFim = &s
	}
	return resp
}
