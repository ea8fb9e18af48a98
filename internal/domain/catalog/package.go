package catalog

import (
	"math"

	"github.com/google/uuid"
)

const DefaultSessionPriceMinor int64 = 1500

type Package struct {
	ID           uuid.UUID
	Name         string
	Description  string
	SessionCount int
	PriceMinor   int64
	IsActive     bool
	SortOrder    int
}

// Offer is a package priced against buying the same sessions one at a time.
type Offer struct {
	Package
	StandardMinor  int64
	SavingsMinor   int64
	SavingsPercent int
}

func NewOffer(p Package, sessionPriceMinor int64) Offer {
	if sessionPriceMinor <= 0 {
		sessionPriceMinor = DefaultSessionPriceMinor
	}
	standard := sessionPriceMinor * int64(p.SessionCount)
	savings := max(int64(0), standard-p.PriceMinor)
	percent := 0
	if standard > 0 {
		percent = int(math.Round(float64(savings) / float64(standard) * 100))
	}
	return Offer{
		Package:        p,
		StandardMinor:  standard,
		SavingsMinor:   savings,
		SavingsPercent: max(0, percent),
	}
}
