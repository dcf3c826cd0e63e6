package domain

import (
	"github.com/google/uuid"
)

// Region is a (state, city) pair imported as reference data.
type Region struct {
	ID        uuid.UUID `db:"id" json:"id"`
	StateCode string    `db:"uf" json:"uf"`
	CityName  string    `db:"city" json:"city"`
}
