package proposal

// Store is single-slot durable storage for the one outstanding proposal.
// Save overwrites the slot as a whole, so a reader never observes a
// partially written record.
type Store interface {
	Exists() (bool, error)
	Load() (*PendingProposal, error)
	Save(p *PendingProposal) error
	Delete() error
}
