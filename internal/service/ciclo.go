package service

import (
	"sort"
	"time"

	"github.com/okaique/paiol-dashboard-sub000/internal/model"
)

// Cycle attribution. N fechamentos partition a paiol's life into N+1 cycles;
// an event's cycle is 1 + the number of fechamentos strictly before it. A
// timestamp exactly equal to a fechamento belongs to the cycle that ENDS
// there — comparison is strict.

// CicloDe returns the cycle number of t given the paiol's fechamento
// timestamps sorted ascending. Binary search: the fechamentos list is fetched
// once per aggregation and reused for every event.
func CicloDe(fechamentos []time.Time, t time.Time) int {
	// First index whose fechamento is >= t equals the count of fechamentos < t.
	return 1 + sort.Search(len(fechamentos), func(i int) bool {
		return !fechamentos[i].Before(t)
	})
}

// DatasFechamento extracts the sorted timestamp slice from fechamento rows.
// The repository already orders by data_fechamento; the re-sort guards
// against callers passing unordered slices.
func DatasFechamento(fechamentos []model.Fechamento) []time.Time {
	datas := make([]time.Time, len(fechamentos))
	for i, f := range fechamentos {
		datas[i] = f.DataFechamento
	}
	sort.Slice(datas, func(i, j int) bool { return datas[i].Before(datas[j]) })
	return datas
}
