package service

import (
	"testing"
	"time"

	"github.com/okaique/paiol-dashboard-sub000/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCicloDeSemFechamentos(t *testing.T) {
	assert.Equal(t, 1, CicloDe(nil, time.Now()))
}

func TestCicloDe(t *testing.T) {
	f1 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	f2 := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	fechamentos := []time.Time{f1, f2}

	cases := []struct {
		nome  string
		em    time.Time
		ciclo int
	}{
		{"antes do primeiro fechamento", f1.Add(-time.Hour), 1},
		// a timestamp equal to a fechamento belongs to the cycle that ends there
		{"exatamente no primeiro fechamento", f1, 1},
		{"entre fechamentos", f1.Add(time.Hour), 2},
		{"exatamente no segundo fechamento", f2, 2},
		{"depois do último fechamento", f2.Add(time.Hour), 3},
	}
	for _, tc := range cases {
		t.Run(tc.nome, func(t *testing.T) {
			assert.Equal(t, tc.ciclo, CicloDe(fechamentos, tc.em))
		})
	}
}

func TestDatasFechamentoReordena(t *testing.T) {
	f1 := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	f2 := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)

	datas := DatasFechamento([]model.Fechamento{
		{DataFechamento: f2},
		{DataFechamento: f1},
	})
	assert.Equal(t, []time.Time{f1, f2}, datas)
}
