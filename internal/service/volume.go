package service

import "math"

// Cylinder-model volume computation. The pit is approximated as a cylinder:
// radius from the measured perimeter, height as the mean of the lower and
// upper depth measurements.

// ResultadoVolume holds the derived geometry of one cubagem.
type ResultadoVolume struct {
	Raio         float64
	Altura       float64
	AreaBase     float64
	VolumeNormal float64
	Avisos       []string
}

// Advisory thresholds. Warnings never block the computation.
const (
	limiteConicidade    = 0.5  // |inferior − superior| over the larger measure
	perimetroMinimoUtil = 10.0 // meters; below this the reading is implausible
)

// CalcularVolume derives raio, altura, areaBase and volumeNormal from the three
// physical measurements. All inputs must be > 0; otherwise a validation error
// is returned and no computation is attempted. VolumeReduzido is NOT derived
// here — it is operator-entered policy, validated only as > 0.
func CalcularVolume(inferior, superior, perimetro float64) (*ResultadoVolume, error) {
	switch {
	case inferior <= 0:
		return nil, &ErroMedidaInvalida{Campo: "medida_inferior"}
	case superior <= 0:
		return nil, &ErroMedidaInvalida{Campo: "medida_superior"}
	case perimetro <= 0:
		return nil, &ErroMedidaInvalida{Campo: "perimetro"}
	}

	raio := perimetro / (2 * math.Pi)
	altura := (inferior + superior) / 2
	areaBase := math.Pi * raio * raio

	r := &ResultadoVolume{
		Raio:         raio,
		Altura:       altura,
		AreaBase:     areaBase,
		VolumeNormal: altura * areaBase,
	}

	maior := math.Max(inferior, superior)
	if math.Abs(inferior-superior) > limiteConicidade*maior {
		r.Avisos = append(r.Avisos, "diferença entre medidas inferior e superior excede 50% da maior medida")
	}
	if perimetro < perimetroMinimoUtil {
		r.Avisos = append(r.Avisos, "perímetro implausivelmente pequeno (menor que 10m)")
	}
	return r, nil
}

// StatusRetiradas reconciles a measured capacity against cumulative
// withdrawals. Disponivel may go negative (over-draw) — a valid, displayed
// state, never an error. PercentualUtilizado may exceed 100.
type StatusRetiradas struct {
	Capacidade          float64
	Retirado            float64
	Disponivel          float64
	PercentualUtilizado float64
}

// CalcularStatusRetiradas sums the withdrawn volumes against capacidade.
func CalcularStatusRetiradas(capacidade float64, volumes []float64) StatusRetiradas {
	var retirado float64
	for _, v := range volumes {
		retirado += v
	}
	s := StatusRetiradas{
		Capacidade: capacidade,
		Retirado:   retirado,
		Disponivel: capacidade - retirado,
	}
	if capacidade > 0 {
		s.PercentualUtilizado = retirado / capacidade * 100
	}
	return s
}

// PodeRetirar reports whether a withdrawal of volume v may proceed.
// Remaining volume is deliberately not consulted: over-draw is allowed.
func PodeRetirar(v float64) bool { return v > 0 }
