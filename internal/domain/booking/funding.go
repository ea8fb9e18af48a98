package booking

import "github.com/google/uuid"

type FundingKind string

const (
	FundedByOrder  FundingKind = "order"
	FundedByCredit FundingKind = "credit"
)

// Funding is the tagged source of a booking: a paid order or a credit usage.
// The zero value is invalid and rejected by New.
type Funding struct {
	kind FundingKind
	ref  uuid.UUID
}

func OrderFunded(orderID uuid.UUID) Funding {
	return Funding{kind: FundedByOrder, ref: orderID}
}

func CreditFunded(creditUsageID uuid.UUID) Funding {
	return Funding{kind: FundedByCredit, ref: creditUsageID}
}

// ReconstructFunding rebuilds the variant from stored columns; exactly one id must be set.
func ReconstructFunding(kind string, orderID, creditUsageID *uuid.UUID) (Funding, error) {
	switch FundingKind(kind) {
	case FundedByOrder:
		if orderID == nil || creditUsageID != nil {
			return Funding{}, ErrInvalidFunding
		}
		return OrderFunded(*orderID), nil
	case FundedByCredit:
		if creditUsageID == nil || orderID != nil {
			return Funding{}, ErrInvalidFunding
		}
		return CreditFunded(*creditUsageID), nil
	default:
		return Funding{}, ErrInvalidFunding
	}
}

func (f Funding) Kind() FundingKind { return f.kind }

func (f Funding) IsZero() bool {
	return f.kind == "" || f.ref == uuid.Nil
}

func (f Funding) OrderID() (uuid.UUID, bool) {
	if f.kind != FundedByOrder {
		return uuid.Nil, false
	}
	return f.ref, true
}

func (f Funding) CreditUsageID() (uuid.UUID, bool) {
	if f.kind != FundedByCredit {
		return uuid.Nil, false
	}
	return f.ref, true
}
