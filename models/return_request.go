package models

import "time"

const ReturnRequestTable = "dh_return_requests"

type ReturnStatus string

const (
	ReturnInitiated     ReturnStatus = "initiated"
	ReturnInTransit     ReturnStatus = "in_transit"
	ReturnReceived      ReturnStatus = "received"
	ReturnIssueReported ReturnStatus = "issue_reported"
)

// returnTransitions is the authoritative forward-only table. The frontend's
// requested/approved/declined/completed vocabulary is a known drift bug and
// is not accepted by the API.
var returnTransitions = map[ReturnStatus][]ReturnStatus{
	ReturnInitiated: {ReturnInTransit, ReturnIssueReported},
	ReturnInTransit: {ReturnReceived, ReturnIssueReported},
}

func (s ReturnStatus) Valid() bool {
	switch s {
	case ReturnInitiated, ReturnInTransit, ReturnReceived, ReturnIssueReported:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed.
func (s ReturnStatus) Terminal() bool { return len(returnTransitions[s]) == 0 && s.Valid() }

func (s ReturnStatus) CanTransition(to ReturnStatus) bool {
	for _, next := range returnTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// ReturnRequest tracks a rental's return-to-owner workflow. Reaching
// "received" cascades the linked Rental to "returned"; "issue_reported"
// never touches the Rental.
type ReturnRequest struct {
	ID       string `gorm:"type:uuid;primaryKey" json:"id"`
	RentalID string `gorm:"type:uuid;index;not null" json:"rentalId"`
	RenterID string `gorm:"type:uuid;index;not null" json:"renterId"`
	OwnerID  string `gorm:"type:uuid;index;not null" json:"ownerId"`

	Status ReturnStatus `gorm:"size:20;not null;default:'initiated'" json:"status"`

	Rental *Rental `gorm:"foreignKey:RentalID" json:"rental,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (ReturnRequest) TableName() string { return ReturnRequestTable }
