package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type IniciarDragagemRequest struct {
	DragadorID    string  `json:"dragador_id"    validate:"required,uuid"`
	AjudanteID    string  `json:"ajudante_id"    validate:"omitempty,uuid"`
	ResponsavelID string  `json:"responsavel_id" validate:"omitempty,uuid"`
	Observacoes   *string `json:"observacoes"`
}

type FinalizarDragagemRequest struct {
	ResponsavelID string  `json:"responsavel_id" validate:"omitempty,uuid"`
	Observacoes   *string `json:"observacoes"`
}

type RegistrarCubagemRequest struct {
	MedidaInferior float64 `json:"medida_inferior" validate:"required,gt=0"`
	MedidaSuperior float64 `json:"medida_superior" validate:"required,gt=0"`
	Perimetro      float64 `json:"perimetro"       validate:"required,gt=0"`
	// VolumeReduzido is operator-entered, never derived from the measurements.
	VolumeReduzido float64 `json:"volume_reduzido" validate:"required,gt=0"`
}

type AtualizarVolumeReduzidoRequest struct {
	VolumeReduzido float64 `json:"volume_reduzido" validate:"required,gt=0"`
}

type CalcularVolumeRequest struct {
	MedidaInferior float64 `json:"medida_inferior" validate:"required"`
	MedidaSuperior float64 `json:"medida_superior" validate:"required"`
	Perimetro      float64 `json:"perimetro"       validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type DragagemResponse struct {
	ID         string  `json:"id"`
	PaiolID    string  `json:"paiol_id"`
	DragadorID string  `json:"dragador_id"`
	AjudanteID *string `json:"ajudante_id"`
	DataInicio string  `json:"data_inicio"`
	DataFim    *string `json:"data_fim"`
}

type CubagemResponse struct {
	ID             string   `json:"id"`
	DragagemID     string   `json:"dragagem_id"`
	PaiolID        string   `json:"paiol_id"`
	MedidaInferior float64  `json:"medida_inferior"`
	MedidaSuperior float64  `json:"medida_superior"`
	Perimetro      float64  `json:"perimetro"`
	VolumeNormal   float64  `json:"volume_normal"`
	VolumeReduzido float64  `json:"volume_reduzido"`
	Avisos         []string `json:"avisos,omitempty"`
}

type CalculoVolumeResponse struct {
	Raio         float64  `json:"raio"`
	Altura       float64  `json:"altura"`
	AreaBase     float64  `json:"area_base"`
	VolumeNormal float64  `json:"volume_normal"`
	Avisos       []string `json:"avisos,omitempty"`
}
