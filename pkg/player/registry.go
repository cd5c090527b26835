package player

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Registry mediates all bankroll movement. Tables never touch bankrolls
// directly; they ask the registry to pay chips in or collect winnings out.
type Registry struct {
	mu              sync.Mutex
	store           Store
	defaultBankroll int
}

// NewRegistry returns a registry backed by the store. Players seen for the
// first time are created with the default bankroll.
func NewRegistry(store Store, defaultBankroll int) *Registry {
	return &Registry{
		store:           store,
		defaultBankroll: defaultBankroll,
	}
}

// Lookup returns the player, creating them with the default bankroll if this
// is the first time the id has been seen. A non-empty name updates the record.
func (r *Registry) Lookup(id, name string) (*Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.store.Get(id)
	if err == ErrPlayerNotFound {
		p = &Player{
			ID:       id,
			Name:     name,
			Bankroll: r.defaultBankroll,
		}

		if err := r.store.Save(p); err != nil {
			return nil, err
		}

		return p, nil
	} else if err != nil {
		return nil, err
	}

	if name != "" && name != p.Name {
		p.Name = name
		if err := r.store.Save(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Pay deducts amount from the player's bankroll. It returns false, without
// touching the bankroll, if the player is unknown or cannot cover the amount.
func (r *Registry) Pay(id string, amount int) bool {
	if amount < 0 {
		panic("cannot pay a negative amount")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.store.Get(id)
	if err != nil {
		if err != ErrPlayerNotFound {
			logrus.WithError(err).WithField("player", id).Error("could not load player")
		}

		return false
	}

	if p.Bankroll < amount {
		return false
	}

	p.Bankroll -= amount
	if err := r.store.Save(p); err != nil {
		logrus.WithError(err).WithField("player", id).Error("could not save player")
		return false
	}

	return true
}

// Collect credits amount to the player's bankroll
func (r *Registry) Collect(id string, amount int) error {
	if amount < 0 {
		panic("cannot collect a negative amount")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.store.Get(id)
	if err != nil {
		return err
	}

	p.Bankroll += amount
	return r.store.Save(p)
}

// Balance returns the player's current bankroll
func (r *Registry) Balance(id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.store.Get(id)
	if err != nil {
		return 0, err
	}

	return p.Bankroll, nil
}
