package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payee kinds — which lookup table PessoaID points at.
const (
	PessoaDragador = "DRAGADOR"
	PessoaAjudante = "AJUDANTE"
)

// Payment kinds.
const (
	PagamentoAdiantamento = "ADIANTAMENTO"
	PagamentoFinal        = "PAGAMENTO_FINAL"
)

// PagamentoPessoal is a crew payment scoped to one dragagem (advance or final).
type PagamentoPessoal struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DragagemID    uuid.UUID       `gorm:"type:uuid;index;not null"`
	TipoPessoa    string          `gorm:"type:varchar(20);not null"`
	PessoaID      uuid.UUID       `gorm:"type:uuid;not null"`
	Tipo          string          `gorm:"type:varchar(20);not null"`
	Valor         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DataPagamento time.Time       `gorm:"index;not null"`
	Observacoes   *string
	CreatedAt     time.Time

	Dragagem *Dragagem `gorm:"foreignKey:DragagemID"`
}

// TableName overrides GORM's default pluralization (pagamento_pessoals → pagamentos_pessoais).
func (PagamentoPessoal) TableName() string { return "pagamentos_pessoais" }
