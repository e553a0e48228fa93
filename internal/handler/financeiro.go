package handler

import (
	"net/http"

	"github.com/okaique/paiol-dashboard-sub000/internal/apierror"
	"github.com/okaique/paiol-dashboard-sub000/internal/dto"
	"github.com/okaique/paiol-dashboard-sub000/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FinanceiroHandler struct{ svc service.FinanceiroService }

func NewFinanceiroHandler(svc service.FinanceiroService) *FinanceiroHandler {
	return &FinanceiroHandler{svc: svc}
}

func (h *FinanceiroHandler) RegistrarPagamento(c *gin.Context) {
	dragagemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.RegistrarPagamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarPagamento(c.Request.Context(), dragagemID, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *FinanceiroHandler) ListarPagamentos(c *gin.Context) {
	dragagemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ListarPagamentos(c.Request.Context(), dragagemID)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FinanceiroHandler) RegistrarGasto(c *gin.Context) {
	dragagemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	var req dto.RegistrarGastoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarGasto(c.Request.Context(), dragagemID, req)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *FinanceiroHandler) ListarGastos(c *gin.Context) {
	dragagemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	resp, err := h.svc.ListarGastos(c.Request.Context(), dragagemID)
	if err != nil {
		respondErro(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
