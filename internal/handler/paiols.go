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

type PaiolsHandler struct {
	svc    service.PaiolService
	status service.StatusService
}

func NewPaiolsHandler(svc service.PaiolService, status service.StatusService) *PaiolsHandler {
	return &PaiolsHandler{svc: svc, status: status}
}

// Criar godoc
// @Summary Cria um novo paiol (nasce VAZIO, ciclo 1)
// @Tags paiols
// @Accept json
// @Produce json
// @Param body body dto.CriarPaiolRequest true "Dados do paiol"
// @Success 201 {object} dto.PaiolResponse
// @Failure 422 {object} apierror.ValidationError
// @Router /v1/paiols [post]
func (h *PaiolsHandler) Criar(c *gin.Context) {
	var req dto.CriarPaiolRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PaiolsHandler) Listar(c *gin.Context) {
	var filter dto.PaiolFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Erro ao listar paióis"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PaiolsHandler) Obter(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.Obter(c.Request.Context(), id)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PaiolsHandler) Atualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.AtualizarPaiolRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Atualizar(c.Request.Context(), id, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PaiolsHandler) Desativar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Desativar(c.Request.Context(), id); err != nil {
		respondErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PaiolsHandler) Reativar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	if err := h.svc.Reativar(c.Request.Context(), id); err != nil {
		respondErro(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AplicarTransicao godoc
// @Summary Aplica uma transição de status (VAZIO→DRAGANDO→CHEIO→RETIRANDO→VAZIO)
// @Tags paiols
// @Accept json
// @Produce json
// @Param id path string true "ID do paiol"
// @Param body body dto.TransicaoRequest true "Transição"
// @Success 201 {object} dto.TransicaoResponse
// @Failure 409 {object} apierror.APIError
// @Router /v1/paiols/{id}/transicoes [post]
func (h *PaiolsHandler) AplicarTransicao(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.TransicaoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	transicao, err := h.status.AplicarTransicao(c.Request.Context(), id, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, transicaoToResponse(transicao))
}

func (h *PaiolsHandler) ListarTransicoes(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	transicoes, err := h.status.ListarTransicoes(c.Request.Context(), id)
	if err != nil {
		respondErro(c, err)
		return
	}
	resp := make([]dto.TransicaoResponse, 0, len(transicoes))
	for i := range transicoes {
		resp = append(resp, *transicaoToResponse(&transicoes[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// FecharCiclo godoc
// @Summary Fecha o ciclo atual (RETIRANDO→VAZIO, registra fechamento)
// @Tags paiols
// @Accept json
// @Produce json
// @Param id path string true "ID do paiol"
// @Success 201 {object} map[string]interface{}
// @Failure 409 {object} apierror.APIError
// @Router /v1/paiols/{id}/fechar-ciclo [post]
func (h *PaiolsHandler) FecharCiclo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.FecharCicloRequest
	if !bindAndValidate(c, &req) {
		return
	}
	fechamento, err := h.status.FecharCiclo(c.Request.Context(), id, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":              fechamento.ID.String(),
		"paiol_id":        fechamento.PaiolID.String(),
		"data_fechamento": fechamento.DataFechamento.Format(time.RFC3339),
	})
}

func transicaoToResponse(t *model.TransicaoStatus) *dto.TransicaoResponse {
	resp := &dto.TransicaoResponse{
		ID:             t.ID.String(),
		PaiolID:        t.PaiolID.String(),
		StatusAnterior: t.StatusAnterior,
		StatusNovo:     t.StatusNovo,
		Observacoes:    t.Observacoes,
		CreatedAt:      t.CreatedAt.Format(time.RFC3339),
	}
	if t.ResponsavelID != nil {
		s := t.ResponsavelID.String()
		resp.ResponsavelID = &s
	}
	return resp
}
