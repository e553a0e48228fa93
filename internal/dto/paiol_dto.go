package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CriarPaiolRequest struct {
	Nome        string `json:"nome"        validate:"required,min=2"`
	Localizacao string `json:"localizacao" validate:"required,min=2"`
}

type AtualizarPaiolRequest struct {
	Nome        string `json:"nome"        validate:"required,min=2"`
	Localizacao string `json:"localizacao" validate:"required,min=2"`
}

type TransicaoRequest struct {
	StatusNovo    string  `json:"status_novo"    validate:"required,oneof=VAZIO DRAGANDO CHEIO RETIRANDO"`
	ResponsavelID string  `json:"responsavel_id" validate:"omitempty,uuid"`
	DragadorID    string  `json:"dragador_id"    validate:"omitempty,uuid"`
	AjudanteID    string  `json:"ajudante_id"    validate:"omitempty,uuid"`
	Observacoes   *string `json:"observacoes"`
}

type FecharCicloRequest struct {
	ResponsavelID string  `json:"responsavel_id" validate:"omitempty,uuid"`
	Observacoes   *string `json:"observacoes"`
}

type PaiolFilter struct {
	Ativo  string `form:"ativo"` // "false" = inativos, "all" = todos, default ativos
	Status string `form:"status"`
	Nome   string `form:"nome"`
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PaiolResponse struct {
	ID          string `json:"id"`
	Nome        string `json:"nome"`
	Localizacao string `json:"localizacao"`
	Status      string `json:"status"`
	CicloAtual  int    `json:"ciclo_atual"`
	Ativo       bool   `json:"ativo"`
	CreatedAt   string `json:"created_at"`
}

type PaiolListResponse struct {
	Data  []PaiolResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

type TransicaoResponse struct {
	ID             string  `json:"id"`
	PaiolID        string  `json:"paiol_id"`
	StatusAnterior *string `json:"status_anterior"`
	StatusNovo     string  `json:"status_novo"`
	ResponsavelID  *string `json:"responsavel_id"`
	Observacoes    *string `json:"observacoes"`
	CreatedAt      string  `json:"created_at"`
}
