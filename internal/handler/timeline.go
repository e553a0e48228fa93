package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/okaique/paiol-dashboard-sub000/internal/apierror"
	"github.com/okaique/paiol-dashboard-sub000/internal/dto"
	"github.com/okaique/paiol-dashboard-sub000/internal/service"
	"github.com/okaique/paiol-dashboard-sub000/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type TimelineHandler struct {
	svc      service.TimelineService
	rdb      *redis.Client
	cacheTTL time.Duration
}

func NewTimelineHandler(svc service.TimelineService, rdb *redis.Client, cacheTTL time.Duration) *TimelineHandler {
	return &TimelineHandler{svc: svc, rdb: rdb, cacheTTL: cacheTTL}
}

// Obter godoc
// @Summary Timeline unificada do paiol (6 fontes, filtros via query)
// @Tags timeline
// @Produce json
// @Param id path string true "ID do paiol"
// @Param data_inicio query string false "Data inicial (YYYY-MM-DD)"
// @Param data_fim query string false "Data final inclusiva (YYYY-MM-DD)"
// @Param ciclo query int false "Ciclo exato"
// @Param tipos query string false "Tipos separados por vírgula"
// @Param status_associado query string false "Status associado"
// @Param com_valor query bool false "Somente eventos com valor positivo"
// @Param ordem query string false "asc ou desc (padrão desc)"
// @Success 200 {object} dto.TimelineResponse
// @Failure 404 {object} apierror.APIError
// @Router /v1/paiols/{id}/timeline [get]
func (h *TimelineHandler) Obter(c *gin.Context) {
	paiolID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return
	}
	filtro, err := parseFiltroTimeline(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}

	// The default timeline is cached as marshaled JSON; filtered views are
	// always rebuilt. Served raw to skip re-decoding the detail union.
	cacheable := filtro.Vazio() && h.rdb != nil
	if cacheable {
		if data, err := h.rdb.Get(c.Request.Context(), worker.TimelineCacheKey(paiolID)).Bytes(); err == nil {
			c.Data(http.StatusOK, "application/json", data)
			return
		}
	}

	resp, err := h.svc.Montar(c.Request.Context(), paiolID, filtro)
	if err != nil {
		respondErro(c, err)
		return
	}

	if cacheable {
		if data, err := json.Marshal(resp); err == nil {
			h.rdb.Set(c.Request.Context(), worker.TimelineCacheKey(paiolID), data, h.cacheTTL)
		}
	}
	c.JSON(http.StatusOK, resp)
}

var (
	errCicloInvalido = errors.New("ciclo inválido")
	errTipoInvalido  = errors.New("tipo de evento inválido")
)

func errDataInvalida(campo string) error {
	return errors.New(campo + " inválida (use YYYY-MM-DD ou RFC 3339)")
}

func parseFiltroTimeline(c *gin.Context) (dto.FiltroTimeline, error) {
	var filtro dto.FiltroTimeline

	if v := c.Query("data_inicio"); v != "" {
		t, err := parseData(v)
		if err != nil {
			return filtro, errDataInvalida("data_inicio")
		}
		filtro.DataInicio = &t
	}
	if v := c.Query("data_fim"); v != "" {
		t, err := parseData(v)
		if err != nil {
			return filtro, errDataInvalida("data_fim")
		}
		filtro.DataFim = &t
	}
	if v := c.Query("ciclo"); v != "" {
		ciclo, err := strconv.Atoi(v)
		if err != nil || ciclo < 1 {
			return filtro, errCicloInvalido
		}
		filtro.Ciclo = &ciclo
	}
	if v := c.Query("tipos"); v != "" {
		for _, raw := range strings.Split(v, ",") {
			tipo := dto.TipoEvento(strings.TrimSpace(strings.ToUpper(raw)))
			if !dto.TipoEventoValido(tipo) {
				return filtro, errTipoInvalido
			}
			filtro.Tipos = append(filtro.Tipos, tipo)
		}
	}
	if v := c.Query("status_associado"); v != "" {
		filtro.StatusAssociado = &v
	}
	filtro.ComValor = c.Query("com_valor") == "true"
	if v := c.Query("ordem"); v == "asc" || v == "desc" {
		filtro.Ordem = v
	}
	return filtro, nil
}

// parseData accepts a bare date or a full RFC 3339 timestamp.
func parseData(v string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}
