package disputedto

import "github.com/shopspring/decimal"

type CreateDisputeInput struct {
	InitiatorID        string
	RespondentUsername string
	Amount             decimal.Decimal
	Description        string
	Category           string
}

type AddEvidenceInput struct {
	DisputeID   string
	UploaderID  string
	Kind        string
	Description string
	FileHash    string
	FileURL     string
}

type GetDisputesInput struct {
	UserID    *string
	ArbiterID *string
	Status    *string
	Page      int
	Limit     int
}
