package service

import (
	"context"
	"fmt"

	"github.com/okaique/paiol-dashboard-sub000/internal/dto"
	"github.com/okaique/paiol-dashboard-sub000/internal/model"
	"github.com/okaique/paiol-dashboard-sub000/internal/repository"

	"github.com/google/uuid"
)

// NomeNaoEncontrado substitutes unresolvable cross-references. The timeline
// never fails because a payee, cliente or insumo row is missing.
const NomeNaoEncontrado = "(não encontrado)"

// TimelineService merges the six event sources of a paiol into one
// consistently ordered, cycle-attributed history. The aggregation is a pure
// function of the stored records: identical inputs yield identical output.
type TimelineService interface {
	Montar(ctx context.Context, paiolID uuid.UUID, filtro dto.FiltroTimeline) (*dto.TimelineResponse, error)
}

type timelineService struct {
	paiols      repository.PaiolRepository
	transicoes  repository.TransicaoRepository
	dragagens   repository.DragagemRepository
	cubagens    repository.CubagemRepository
	retiradas   repository.RetiradaRepository
	fechamentos repository.FechamentoRepository
	pagamentos  repository.PagamentoRepository
	gastos      repository.GastoRepository
	pessoas     repository.PessoaRepository
}

func NewTimelineService(
	paiols repository.PaiolRepository,
	transicoes repository.TransicaoRepository,
	dragagens repository.DragagemRepository,
	cubagens repository.CubagemRepository,
	retiradas repository.RetiradaRepository,
	fechamentos repository.FechamentoRepository,
	pagamentos repository.PagamentoRepository,
	gastos repository.GastoRepository,
	pessoas repository.PessoaRepository,
) TimelineService {
	return &timelineService{
		paiols:      paiols,
		transicoes:  transicoes,
		dragagens:   dragagens,
		cubagens:    cubagens,
		retiradas:   retiradas,
		fechamentos: fechamentos,
		pagamentos:  pagamentos,
		gastos:      gastos,
		pessoas:     pessoas,
	}
}

func (s *timelineService) Montar(ctx context.Context, paiolID uuid.UUID, filtro dto.FiltroTimeline) (*dto.TimelineResponse, error) {
	paiol, err := s.paiols.FindByID(ctx, paiolID)
	if err != nil {
		return nil, ErrPaiolNaoEncontrado
	}

	// Snapshot the fechamentos once; every event's cycle is attributed
	// against this single sorted list via binary search.
	fechamentos, err := s.fechamentos.ListByPaiol(ctx, paiolID)
	if err != nil {
		return nil, err
	}
	datas := DatasFechamento(fechamentos)

	transicoes, err := s.transicoes.ListByPaiol(ctx, paiolID)
	if err != nil {
		return nil, err
	}
	dragagens, err := s.dragagens.ListByPaiol(ctx, paiolID)
	if err != nil {
		return nil, err
	}
	cubagens, err := s.cubagens.ListByPaiol(ctx, paiolID)
	if err != nil {
		return nil, err
	}
	retiradas, err := s.retiradas.ListByPaiol(ctx, paiolID)
	if err != nil {
		return nil, err
	}
	pagamentos, err := s.pagamentos.ListByPaiol(ctx, paiolID)
	if err != nil {
		return nil, err
	}
	gastos, err := s.gastos.ListByPaiol(ctx, paiolID)
	if err != nil {
		return nil, err
	}

	nomes, err := s.resolverNomes(ctx, dragagens, retiradas, pagamentos, gastos)
	if err != nil {
		return nil, err
	}

	eventos := make([]dto.EventoTimeline, 0,
		len(transicoes)+2*len(dragagens)+len(cubagens)+len(retiradas)+len(pagamentos)+len(gastos))

	for i := range transicoes {
		eventos = append(eventos, eventoTransicao(&transicoes[i]))
	}
	for i := range dragagens {
		eventos = append(eventos, eventosDragagem(&dragagens[i], nomes)...)
	}
	for i := range cubagens {
		eventos = append(eventos, eventoCubagem(&cubagens[i]))
	}
	for i := range retiradas {
		eventos = append(eventos, eventoRetirada(&retiradas[i], nomes))
	}
	for i := range pagamentos {
		eventos = append(eventos, eventoPagamento(&pagamentos[i], nomes))
	}
	for i := range gastos {
		eventos = append(eventos, eventoGasto(&gastos[i], nomes))
	}

	for i := range eventos {
		eventos[i].Ciclo = CicloDe(datas, eventos[i].DataHora)
	}

	eventos = AplicarFiltroTimeline(eventos, filtro)
	OrdenarEventos(eventos, filtro.Ordem)

	return &dto.TimelineResponse{
		PaiolID: paiol.ID.String(),
		Eventos: eventos,
		Total:   len(eventos),
	}, nil
}

// ── Cross-reference resolution ────────────────────────────────────────────────

// nomesResolvidos maps ids to display names, one table per map.
type nomesResolvidos struct {
	dragadores map[uuid.UUID]string
	ajudantes  map[uuid.UUID]string
	clientes   map[uuid.UUID]string
	insumos    map[uuid.UUID]model.TipoInsumo
}

func (n *nomesResolvidos) dragador(id uuid.UUID) string { return nomeOuPlaceholder(n.dragadores, id) }
func (n *nomesResolvidos) ajudante(id uuid.UUID) string { return nomeOuPlaceholder(n.ajudantes, id) }
func (n *nomesResolvidos) cliente(id uuid.UUID) string  { return nomeOuPlaceholder(n.clientes, id) }

func (n *nomesResolvidos) insumo(id uuid.UUID) (nome, categoria string) {
	if t, ok := n.insumos[id]; ok {
		return t.Nome, t.Categoria
	}
	return NomeNaoEncontrado, NomeNaoEncontrado
}

func nomeOuPlaceholder(m map[uuid.UUID]string, id uuid.UUID) string {
	if nome, ok := m[id]; ok {
		return nome
	}
	return NomeNaoEncontrado
}

// resolverNomes batches the secondary lookups: one query per distinct-id set
// per table, never one per event.
func (s *timelineService) resolverNomes(
	ctx context.Context,
	dragagens []model.Dragagem,
	retiradas []model.Retirada,
	pagamentos []model.PagamentoPessoal,
	gastos []model.GastoInsumo,
) (*nomesResolvidos, error) {
	dragadorIDs := make(map[uuid.UUID]struct{})
	ajudanteIDs := make(map[uuid.UUID]struct{})
	clienteIDs := make(map[uuid.UUID]struct{})
	insumoIDs := make(map[uuid.UUID]struct{})

	for _, d := range dragagens {
		dragadorIDs[d.DragadorID] = struct{}{}
		if d.AjudanteID != nil {
			ajudanteIDs[*d.AjudanteID] = struct{}{}
		}
	}
	for _, p := range pagamentos {
		switch p.TipoPessoa {
		case model.PessoaDragador:
			dragadorIDs[p.PessoaID] = struct{}{}
		case model.PessoaAjudante:
			ajudanteIDs[p.PessoaID] = struct{}{}
		}
	}
	for _, r := range retiradas {
		clienteIDs[r.ClienteID] = struct{}{}
	}
	for _, g := range gastos {
		insumoIDs[g.TipoInsumoID] = struct{}{}
	}

	nomes := &nomesResolvidos{
		dragadores: make(map[uuid.UUID]string),
		ajudantes:  make(map[uuid.UUID]string),
		clientes:   make(map[uuid.UUID]string),
		insumos:    make(map[uuid.UUID]model.TipoInsumo),
	}

	dragadores, err := s.pessoas.FindDragadores(ctx, chaves(dragadorIDs))
	if err != nil {
		return nil, err
	}
	for _, d := range dragadores {
		nomes.dragadores[d.ID] = d.Nome
	}

	ajudantes, err := s.pessoas.FindAjudantes(ctx, chaves(ajudanteIDs))
	if err != nil {
		return nil, err
	}
	for _, a := range ajudantes {
		nomes.ajudantes[a.ID] = a.Nome
	}

	clientes, err := s.pessoas.FindClientes(ctx, chaves(clienteIDs))
	if err != nil {
		return nil, err
	}
	for _, c := range clientes {
		nomes.clientes[c.ID] = c.Nome
	}

	insumos, err := s.pessoas.FindTiposInsumo(ctx, chaves(insumoIDs))
	if err != nil {
		return nil, err
	}
	for _, t := range insumos {
		nomes.insumos[t.ID] = t
	}

	return nomes, nil
}

func chaves(m map[uuid.UUID]struct{}) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	return ids
}

// ── Normalization ─────────────────────────────────────────────────────────────

func eventoTransicao(t *model.TransicaoStatus) dto.EventoTimeline {
	descricao := "Status inicial: " + t.StatusNovo
	if t.StatusAnterior != nil {
		descricao = fmt.Sprintf("%s → %s", *t.StatusAnterior, t.StatusNovo)
	}
	status := t.StatusNovo
	return dto.EventoTimeline{
		ID:              "transicao:" + t.ID.String(),
		Tipo:            dto.EventoTransicao,
		DataHora:        t.CreatedAt,
		Titulo:          "Mudança de status",
		Descricao:       descricao,
		StatusAssociado: &status,
		Observacoes:     t.Observacoes,
		Detalhes: dto.DetalhesTransicao{
			StatusAnterior: t.StatusAnterior,
			StatusNovo:     t.StatusNovo,
		},
	}
}

// eventosDragagem emits the start event and, when the session is closed, a
// separate end event at the end timestamp.
func eventosDragagem(d *model.Dragagem, nomes *nomesResolvidos) []dto.EventoTimeline {
	dragadorNome := nomes.dragador(d.DragadorID)
	ajudanteNome := ""
	if d.AjudanteID != nil {
		ajudanteNome = nomes.ajudante(*d.AjudanteID)
	}
	dragagemID := d.ID.String()

	descricao := "Dragagem iniciada por " + dragadorNome
	if ajudanteNome != "" {
		descricao += " com ajudante " + ajudanteNome
	}

	statusInicio := model.StatusDragando
	eventos := []dto.EventoTimeline{{
		ID:              "dragagem-inicio:" + d.ID.String(),
		Tipo:            dto.EventoDragagemInicio,
		DataHora:        d.DataInicio,
		Titulo:          "Início de dragagem",
		Descricao:       descricao,
		StatusAssociado: &statusInicio,
		DragagemID:      &dragagemID,
		Detalhes: dto.DetalhesDragagem{
			Dragador: dragadorNome,
			Ajudante: ajudanteNome,
		},
	}}

	if d.DataFim != nil {
		statusFim := model.StatusCheio
		eventos = append(eventos, dto.EventoTimeline{
			ID:              "dragagem-fim:" + d.ID.String(),
			Tipo:            dto.EventoDragagemFim,
			DataHora:        *d.DataFim,
			Titulo:          "Fim de dragagem",
			Descricao:       "Dragagem finalizada por " + dragadorNome,
			StatusAssociado: &statusFim,
			DragagemID:      &dragagemID,
			Detalhes: dto.DetalhesDragagem{
				Dragador:  dragadorNome,
				Ajudante:  ajudanteNome,
				Encerrada: true,
			},
		})
	}
	return eventos
}

func eventoCubagem(c *model.Cubagem) dto.EventoTimeline {
	status := model.StatusCheio
	dragagemID := c.DragagemID.String()
	return dto.EventoTimeline{
		ID:              "cubagem:" + c.ID.String(),
		Tipo:            dto.EventoCubagem,
		DataHora:        c.CreatedAt,
		Titulo:          "Cubagem registrada",
		Descricao:       fmt.Sprintf("Volume normal %.2f m³, reduzido %.2f m³", c.VolumeNormal, c.VolumeReduzido),
		StatusAssociado: &status,
		DragagemID:      &dragagemID,
		Detalhes: dto.DetalhesCubagem{
			MedidaInferior: c.MedidaInferior,
			MedidaSuperior: c.MedidaSuperior,
			Perimetro:      c.Perimetro,
			VolumeNormal:   c.VolumeNormal,
			VolumeReduzido: c.VolumeReduzido,
		},
	}
}

func eventoRetirada(r *model.Retirada, nomes *nomesResolvidos) dto.EventoTimeline {
	status := model.StatusRetirando
	clienteNome := nomes.cliente(r.ClienteID)
	return dto.EventoTimeline{
		ID:              "retirada:" + r.ID.String(),
		Tipo:            dto.EventoRetirada,
		DataHora:        r.DataRetirada,
		Titulo:          "Retirada de areia",
		Descricao:       fmt.Sprintf("%s retirou %.2f m³", clienteNome, r.VolumeRetirado),
		Valor:           r.ValorTotal,
		StatusAssociado: &status,
		Observacoes:     r.Observacoes,
		Detalhes: dto.DetalhesRetirada{
			Cliente:         clienteNome,
			VolumeRetirado:  r.VolumeRetirado,
			StatusPagamento: r.StatusPagamento,
			TemFrete:        r.TemFrete,
		},
	}
}

func eventoPagamento(p *model.PagamentoPessoal, nomes *nomesResolvidos) dto.EventoTimeline {
	var pessoaNome string
	switch p.TipoPessoa {
	case model.PessoaDragador:
		pessoaNome = nomes.dragador(p.PessoaID)
	case model.PessoaAjudante:
		pessoaNome = nomes.ajudante(p.PessoaID)
	default:
		pessoaNome = NomeNaoEncontrado
	}

	titulo := "Adiantamento de pessoal"
	if p.Tipo == model.PagamentoFinal {
		titulo = "Pagamento final de pessoal"
	}

	status := model.StatusDragando
	valor := p.Valor
	dragagemID := p.DragagemID.String()
	return dto.EventoTimeline{
		ID:              "pagamento:" + p.ID.String(),
		Tipo:            dto.EventoPagamento,
		DataHora:        p.DataPagamento,
		Titulo:          titulo,
		Descricao:       fmt.Sprintf("%s para %s", titulo, pessoaNome),
		Valor:           &valor,
		StatusAssociado: &status,
		DragagemID:      &dragagemID,
		Observacoes:     p.Observacoes,
		Detalhes: dto.DetalhesPagamento{
			Pessoa:     pessoaNome,
			TipoPessoa: p.TipoPessoa,
			Tipo:       p.Tipo,
		},
	}
}

func eventoGasto(g *model.GastoInsumo, nomes *nomesResolvidos) dto.EventoTimeline {
	insumoNome, categoria := nomes.insumo(g.TipoInsumoID)
	status := model.StatusDragando
	valor := g.ValorTotal
	dragagemID := g.DragagemID.String()
	return dto.EventoTimeline{
		ID:              "gasto:" + g.ID.String(),
		Tipo:            dto.EventoGastoInsumo,
		DataHora:        g.DataGasto,
		Titulo:          "Gasto com insumo",
		Descricao:       fmt.Sprintf("%.2f de %s (%s)", g.Quantidade, insumoNome, categoria),
		Valor:           &valor,
		StatusAssociado: &status,
		DragagemID:      &dragagemID,
		Observacoes:     g.Observacoes,
		Detalhes: dto.DetalhesGastoInsumo{
			Insumo:        insumoNome,
			Categoria:     categoria,
			Quantidade:    g.Quantidade,
			ValorUnitario: g.ValorUnitario,
		},
	}
}
