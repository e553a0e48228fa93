package service

import (
	"context"
	"errors"
	"time"

	"github.com/okaique/paiol-dashboard-sub000/internal/dto"
	"github.com/okaique/paiol-dashboard-sub000/internal/model"
	"github.com/okaique/paiol-dashboard-sub000/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errNaoEncontrado = errors.New("registro não encontrado")

// ── fakePaiolRepo ─────────────────────────────────────────────────────────────

type fakePaiolRepo struct {
	paiols map[uuid.UUID]*model.Paiol
}

func newFakePaiolRepo() *fakePaiolRepo {
	return &fakePaiolRepo{paiols: make(map[uuid.UUID]*model.Paiol)}
}

func (r *fakePaiolRepo) seed(status string) *model.Paiol {
	p := &model.Paiol{
		ID:          uuid.New(),
		Nome:        "Paiol Norte",
		Localizacao: "Margem esquerda",
		Status:      status,
		CicloAtual:  1,
		Ativo:       true,
		CreatedAt:   time.Now(),
	}
	r.paiols[p.ID] = p
	return p
}

func (r *fakePaiolRepo) Create(_ context.Context, p *model.Paiol) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	r.paiols[p.ID] = p
	return nil
}

func (r *fakePaiolRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Paiol, error) {
	p, ok := r.paiols[id]
	if !ok {
		return nil, errNaoEncontrado
	}
	return p, nil
}

func (r *fakePaiolRepo) List(_ context.Context, _ dto.PaiolFilter) ([]model.Paiol, int64, error) {
	out := make([]model.Paiol, 0, len(r.paiols))
	for _, p := range r.paiols {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakePaiolRepo) Update(_ context.Context, p *model.Paiol) error {
	if _, ok := r.paiols[p.ID]; !ok {
		return errNaoEncontrado
	}
	r.paiols[p.ID] = p
	return nil
}

func (r *fakePaiolRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	p, ok := r.paiols[id]
	if !ok {
		return errNaoEncontrado
	}
	p.Ativo = false
	return nil
}

func (r *fakePaiolRepo) Reativar(_ context.Context, id uuid.UUID) error {
	p, ok := r.paiols[id]
	if !ok {
		return errNaoEncontrado
	}
	p.Ativo = true
	return nil
}

func (r *fakePaiolRepo) UpdateStatusTx(_ *gorm.DB, id uuid.UUID, status string) error {
	p, ok := r.paiols[id]
	if !ok {
		return errNaoEncontrado
	}
	p.Status = status
	return nil
}

func (r *fakePaiolRepo) IncrementarCicloTx(_ *gorm.DB, id uuid.UUID) error {
	p, ok := r.paiols[id]
	if !ok {
		return errNaoEncontrado
	}
	p.CicloAtual++
	return nil
}

func (r *fakePaiolRepo) DB() *gorm.DB { return nil }

var _ repository.PaiolRepository = (*fakePaiolRepo)(nil)

// ── fakeTransicaoRepo ─────────────────────────────────────────────────────────

type fakeTransicaoRepo struct {
	transicoes []model.TransicaoStatus
	failCreate error
}

func (r *fakeTransicaoRepo) CreateTx(_ *gorm.DB, t *model.TransicaoStatus) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	r.transicoes = append(r.transicoes, *t)
	return nil
}

func (r *fakeTransicaoRepo) ListByPaiol(_ context.Context, paiolID uuid.UUID) ([]model.TransicaoStatus, error) {
	var out []model.TransicaoStatus
	for _, t := range r.transicoes {
		if t.PaiolID == paiolID {
			out = append(out, t)
		}
	}
	return out, nil
}

var _ repository.TransicaoRepository = (*fakeTransicaoRepo)(nil)

// ── fakeDragagemRepo ──────────────────────────────────────────────────────────

type fakeDragagemRepo struct {
	dragagens []*model.Dragagem
}

func (r *fakeDragagemRepo) CreateTx(_ *gorm.DB, d *model.Dragagem) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	r.dragagens = append(r.dragagens, d)
	return nil
}

func (r *fakeDragagemRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Dragagem, error) {
	for _, d := range r.dragagens {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, errNaoEncontrado
}

func (r *fakeDragagemRepo) FindAtiva(_ context.Context, paiolID uuid.UUID) (*model.Dragagem, error) {
	for _, d := range r.dragagens {
		if d.PaiolID == paiolID && d.DataFim == nil {
			return d, nil
		}
	}
	return nil, errNaoEncontrado
}

func (r *fakeDragagemRepo) FindUltima(_ context.Context, paiolID uuid.UUID) (*model.Dragagem, error) {
	for i := len(r.dragagens) - 1; i >= 0; i-- {
		if r.dragagens[i].PaiolID == paiolID {
			return r.dragagens[i], nil
		}
	}
	return nil, errNaoEncontrado
}

func (r *fakeDragagemRepo) ListByPaiol(_ context.Context, paiolID uuid.UUID) ([]model.Dragagem, error) {
	var out []model.Dragagem
	for _, d := range r.dragagens {
		if d.PaiolID == paiolID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDragagemRepo) SetDataFimTx(_ *gorm.DB, id uuid.UUID, fim time.Time) error {
	for _, d := range r.dragagens {
		if d.ID == id {
			d.DataFim = &fim
			return nil
		}
	}
	return errNaoEncontrado
}

var _ repository.DragagemRepository = (*fakeDragagemRepo)(nil)

// ── fakeCubagemRepo ───────────────────────────────────────────────────────────

type fakeCubagemRepo struct {
	cubagens []*model.Cubagem
}

func (r *fakeCubagemRepo) Create(_ context.Context, c *model.Cubagem) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now()
	r.cubagens = append(r.cubagens, c)
	return nil
}

func (r *fakeCubagemRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Cubagem, error) {
	for _, c := range r.cubagens {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, errNaoEncontrado
}

func (r *fakeCubagemRepo) FindByDragagemID(_ context.Context, dragagemID uuid.UUID) (*model.Cubagem, error) {
	for _, c := range r.cubagens {
		if c.DragagemID == dragagemID {
			return c, nil
		}
	}
	return nil, errNaoEncontrado
}

func (r *fakeCubagemRepo) ListByPaiol(_ context.Context, paiolID uuid.UUID) ([]model.Cubagem, error) {
	var out []model.Cubagem
	for _, c := range r.cubagens {
		if c.PaiolID == paiolID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCubagemRepo) UpdateVolumeReduzido(_ context.Context, id uuid.UUID, volume float64) error {
	for _, c := range r.cubagens {
		if c.ID == id {
			c.VolumeReduzido = volume
			return nil
		}
	}
	return errNaoEncontrado
}

var _ repository.CubagemRepository = (*fakeCubagemRepo)(nil)

// ── fakeRetiradaRepo ──────────────────────────────────────────────────────────

type fakeRetiradaRepo struct {
	retiradas []*model.Retirada
}

func (r *fakeRetiradaRepo) Create(_ context.Context, ret *model.Retirada) error {
	if ret.ID == uuid.Nil {
		ret.ID = uuid.New()
	}
	r.retiradas = append(r.retiradas, ret)
	return nil
}

func (r *fakeRetiradaRepo) ListByPaiol(_ context.Context, paiolID uuid.UUID) ([]model.Retirada, error) {
	var out []model.Retirada
	for _, ret := range r.retiradas {
		if ret.PaiolID == paiolID {
			out = append(out, *ret)
		}
	}
	return out, nil
}

func (r *fakeRetiradaRepo) ListByPaiolDesde(_ context.Context, paiolID uuid.UUID, t time.Time) ([]model.Retirada, error) {
	var out []model.Retirada
	for _, ret := range r.retiradas {
		if ret.PaiolID == paiolID && !ret.DataRetirada.Before(t) {
			out = append(out, *ret)
		}
	}
	return out, nil
}

var _ repository.RetiradaRepository = (*fakeRetiradaRepo)(nil)

// ── fakeFechamentoRepo ────────────────────────────────────────────────────────

type fakeFechamentoRepo struct {
	fechamentos []model.Fechamento
}

func (r *fakeFechamentoRepo) CreateTx(_ *gorm.DB, f *model.Fechamento) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	r.fechamentos = append(r.fechamentos, *f)
	return nil
}

func (r *fakeFechamentoRepo) ListByPaiol(_ context.Context, paiolID uuid.UUID) ([]model.Fechamento, error) {
	var out []model.Fechamento
	for _, f := range r.fechamentos {
		if f.PaiolID == paiolID {
			out = append(out, f)
		}
	}
	return out, nil
}

var _ repository.FechamentoRepository = (*fakeFechamentoRepo)(nil)

// ── fakePagamentoRepo / fakeGastoRepo ─────────────────────────────────────────

type fakePagamentoRepo struct {
	pagamentos []model.PagamentoPessoal
	porPaiol   map[uuid.UUID]uuid.UUID // dragagem → paiol, for the join
}

func (r *fakePagamentoRepo) Create(_ context.Context, p *model.PagamentoPessoal) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.pagamentos = append(r.pagamentos, *p)
	return nil
}

func (r *fakePagamentoRepo) ListByDragagem(_ context.Context, dragagemID uuid.UUID) ([]model.PagamentoPessoal, error) {
	var out []model.PagamentoPessoal
	for _, p := range r.pagamentos {
		if p.DragagemID == dragagemID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakePagamentoRepo) ListByPaiol(_ context.Context, paiolID uuid.UUID) ([]model.PagamentoPessoal, error) {
	var out []model.PagamentoPessoal
	for _, p := range r.pagamentos {
		if r.porPaiol[p.DragagemID] == paiolID {
			out = append(out, p)
		}
	}
	return out, nil
}

var _ repository.PagamentoRepository = (*fakePagamentoRepo)(nil)

type fakeGastoRepo struct {
	gastos   []model.GastoInsumo
	porPaiol map[uuid.UUID]uuid.UUID
}

func (r *fakeGastoRepo) Create(_ context.Context, g *model.GastoInsumo) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	r.gastos = append(r.gastos, *g)
	return nil
}

func (r *fakeGastoRepo) ListByDragagem(_ context.Context, dragagemID uuid.UUID) ([]model.GastoInsumo, error) {
	var out []model.GastoInsumo
	for _, g := range r.gastos {
		if g.DragagemID == dragagemID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *fakeGastoRepo) ListByPaiol(_ context.Context, paiolID uuid.UUID) ([]model.GastoInsumo, error) {
	var out []model.GastoInsumo
	for _, g := range r.gastos {
		if r.porPaiol[g.DragagemID] == paiolID {
			out = append(out, g)
		}
	}
	return out, nil
}

var _ repository.GastoRepository = (*fakeGastoRepo)(nil)

// ── fakePessoaRepo ────────────────────────────────────────────────────────────

type fakePessoaRepo struct {
	dragadores map[uuid.UUID]model.Dragador
	ajudantes  map[uuid.UUID]model.Ajudante
	clientes   map[uuid.UUID]model.Cliente
	insumos    map[uuid.UUID]model.TipoInsumo
}

func newFakePessoaRepo() *fakePessoaRepo {
	return &fakePessoaRepo{
		dragadores: make(map[uuid.UUID]model.Dragador),
		ajudantes:  make(map[uuid.UUID]model.Ajudante),
		clientes:   make(map[uuid.UUID]model.Cliente),
		insumos:    make(map[uuid.UUID]model.TipoInsumo),
	}
}

func (r *fakePessoaRepo) seedDragador(nome string) uuid.UUID {
	id := uuid.New()
	r.dragadores[id] = model.Dragador{ID: id, Nome: nome, Ativo: true}
	return id
}

func (r *fakePessoaRepo) seedAjudante(nome string) uuid.UUID {
	id := uuid.New()
	r.ajudantes[id] = model.Ajudante{ID: id, Nome: nome, Ativo: true}
	return id
}

func (r *fakePessoaRepo) seedCliente(nome string) uuid.UUID {
	id := uuid.New()
	r.clientes[id] = model.Cliente{ID: id, Nome: nome, Ativo: true}
	return id
}

func (r *fakePessoaRepo) seedInsumo(nome, categoria string) uuid.UUID {
	id := uuid.New()
	r.insumos[id] = model.TipoInsumo{ID: id, Nome: nome, Categoria: categoria, Ativo: true}
	return id
}

func (r *fakePessoaRepo) FindDragadorByID(_ context.Context, id uuid.UUID) (*model.Dragador, error) {
	d, ok := r.dragadores[id]
	if !ok {
		return nil, errNaoEncontrado
	}
	return &d, nil
}

func (r *fakePessoaRepo) FindAjudanteByID(_ context.Context, id uuid.UUID) (*model.Ajudante, error) {
	a, ok := r.ajudantes[id]
	if !ok {
		return nil, errNaoEncontrado
	}
	return &a, nil
}

func (r *fakePessoaRepo) FindClienteByID(_ context.Context, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, errNaoEncontrado
	}
	return &c, nil
}

func (r *fakePessoaRepo) FindTipoInsumoByID(_ context.Context, id uuid.UUID) (*model.TipoInsumo, error) {
	t, ok := r.insumos[id]
	if !ok {
		return nil, errNaoEncontrado
	}
	return &t, nil
}

func (r *fakePessoaRepo) FindDragadores(_ context.Context, ids []uuid.UUID) ([]model.Dragador, error) {
	var out []model.Dragador
	for _, id := range ids {
		if d, ok := r.dragadores[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakePessoaRepo) FindAjudantes(_ context.Context, ids []uuid.UUID) ([]model.Ajudante, error) {
	var out []model.Ajudante
	for _, id := range ids {
		if a, ok := r.ajudantes[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakePessoaRepo) FindClientes(_ context.Context, ids []uuid.UUID) ([]model.Cliente, error) {
	var out []model.Cliente
	for _, id := range ids {
		if c, ok := r.clientes[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *fakePessoaRepo) FindTiposInsumo(_ context.Context, ids []uuid.UUID) ([]model.TipoInsumo, error) {
	var out []model.TipoInsumo
	for _, id := range ids {
		if t, ok := r.insumos[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

var _ repository.PessoaRepository = (*fakePessoaRepo)(nil)
