package proposalModel

import (
	"context"
	"errors"
	"time"
)

var ErrProposalNotFound = errors.New("proposal not found")

type Proposal struct {
	Id          string    `json:"id"`
	Title       string    `json:"title"`
	Votes       int64     `json:"votes"`
	CreatedTime time.Time `json:"created_time"`
}

// ProposalStore keeps the class vote board. List is ordered by votes, highest first.
type ProposalStore interface {
	AddProposal(ctx context.Context, proposal Proposal) error
	Vote(ctx context.Context, id string) (Proposal, error)
	List(ctx context.Context, limit int) ([]Proposal, error)
	Top(ctx context.Context) (Proposal, bool, error)
}
