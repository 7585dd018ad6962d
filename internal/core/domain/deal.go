package domain

import "time"

// Deal pipeline stages. Moving a deal to won or lost stamps DateClosed.
const (
	StageProspecting = "prospecting"
	StageProposal    = "proposal"
	StageNegotiation = "negotiation"
	StageWon         = "won"
	StageLost        = "lost"
)

// Deal is a pipeline opportunity, optionally linked to a client record.
type Deal struct {
	ID                 string     `json:"id" bson:"id"`
	ClientName         string     `json:"client_name" bson:"client_name"`
	ClientID           *string    `json:"client_id" bson:"client_id"`
	Amount             float64    `json:"amount" bson:"amount"`
	ProductDescription string     `json:"product_description" bson:"product_description"`
	Stage              string     `json:"stage" bson:"stage"`
	Priority           string     `json:"priority" bson:"priority"`
	Tags               []string   `json:"tags" bson:"tags"`
	OwnerInitials      string     `json:"owner_initials" bson:"owner_initials"`
	OwnerColor         string     `json:"owner_color" bson:"owner_color"`
	DateEntered        time.Time  `json:"date_entered" bson:"date_entered"`
	DateClosed         *time.Time `json:"date_closed" bson:"date_closed"`
	LossReason         *string    `json:"loss_reason" bson:"loss_reason"`
}

type DealPatch struct {
	ClientName         *string
	Amount             *float64
	ProductDescription *string
	Stage              *string
	Priority           *string
	Tags               *[]string
	LossReason         *string
}

func (p DealPatch) IsEmpty() bool {
	return p.ClientName == nil && p.Amount == nil && p.ProductDescription == nil &&
		p.Stage == nil && p.Priority == nil && p.Tags == nil && p.LossReason == nil
}

// Closed reports whether a stage value terminates the pipeline.
func Closed(stage string) bool {
	return stage == StageWon || stage == StageLost
}
