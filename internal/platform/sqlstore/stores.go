package sqlstore

import (
	"log/slog"

	"github.com/phrazzld/bloomtrack-api/internal/store"
)

// Stores groups the record stores sharing one connection.
type Stores struct {
	Cycles      *CycleStore
	Pregnancies *PregnancyStore
	Weights     *WeightStore
	Postpartum  *PostpartumStore
}

// NewStores creates every record store over db.
func NewStores(db store.DBTX, dialect Dialect, logger *slog.Logger) *Stores {
	return &Stores{
		Cycles:      NewCycleStore(db, dialect, logger),
		Pregnancies: NewPregnancyStore(db, dialect, logger),
		Weights:     NewWeightStore(db, dialect, logger),
		Postpartum:  NewPostpartumStore(db, dialect, logger),
	}
}

// Records returns the stores as the interface set used by services.
func (s *Stores) Records() store.Records {
	return store.Records{
		Cycles:      s.Cycles,
		Pregnancies: s.Pregnancies,
		Weights:     s.Weights,
		Postpartum:  s.Postpartum,
	}
}
