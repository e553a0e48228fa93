package service

import (
	"sort"
	"time"

	"github.com/okaique/paiol-dashboard-sub000/internal/dto"
)

// Filter and sort engine for the normalized timeline. Criteria are optional
// and AND-combined; sorting is stable so events with equal timestamps keep
// their original relative order.

// AplicarFiltroTimeline returns the events matching every set criterion.
func AplicarFiltroTimeline(eventos []dto.EventoTimeline, f dto.FiltroTimeline) []dto.EventoTimeline {
	var fimDoDia time.Time
	if f.DataFim != nil {
		// The range is inclusive: data_fim covers the whole day.
		d := *f.DataFim
		fimDoDia = time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 999999999, d.Location())
	}

	tipos := make(map[dto.TipoEvento]struct{}, len(f.Tipos))
	for _, t := range f.Tipos {
		tipos[t] = struct{}{}
	}

	resultado := make([]dto.EventoTimeline, 0, len(eventos))
	for _, e := range eventos {
		if f.DataInicio != nil && e.DataHora.Before(*f.DataInicio) {
			continue
		}
		if f.DataFim != nil && e.DataHora.After(fimDoDia) {
			continue
		}
		if f.Ciclo != nil && e.Ciclo != *f.Ciclo {
			continue
		}
		if len(tipos) > 0 {
			if _, ok := tipos[e.Tipo]; !ok {
				continue
			}
		}
		if f.StatusAssociado != nil {
			if e.StatusAssociado == nil || *e.StatusAssociado != *f.StatusAssociado {
				continue
			}
		}
		if f.ComValor && (e.Valor == nil || !e.Valor.IsPositive()) {
			continue
		}
		resultado = append(resultado, e)
	}
	return resultado
}

// OrdenarEventos sorts in place by timestamp. Ordem "asc" is ascending;
// anything else (including empty) is descending, the default.
func OrdenarEventos(eventos []dto.EventoTimeline, ordem string) {
	asc := ordem == "asc"
	sort.SliceStable(eventos, func(i, j int) bool {
		if asc {
			return eventos[i].DataHora.Before(eventos[j].DataHora)
		}
		return eventos[i].DataHora.After(eventos[j].DataHora)
	})
}
