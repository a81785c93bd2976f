// Package account holds the registry of deployment accounts that
// description credentials resolve against.
package account

import (
	"errors"
	"fmt"
)

// =============================================================================
// Account Errors
// =============================================================================

var (
	ErrNoName    = errors.New("account name is required")
	ErrDuplicate = errors.New("duplicate account name")
)

// =============================================================================
// Accounts
// =============================================================================

// Account names one set of deployment credentials and where it may
// deploy. Accounts come from configuration and never change at runtime.
type Account struct {
	Name        string   `json:"name" yaml:"name" mapstructure:"name"`
	Environment string   `json:"environment,omitempty" yaml:"environment,omitempty" mapstructure:"environment"`
	Regions     []string `json:"regions,omitempty" yaml:"regions,omitempty" mapstructure:"regions"`
}

// Registry resolves account names. It is immutable after construction
// and safe for concurrent reads without locking.
type Registry struct {
	byName map[string]Account
	order  []string
}

// NewRegistry builds a registry from the configured accounts. Every
// account needs a unique, non-empty name.
func NewRegistry(accounts []Account) (*Registry, error) {
	r := &Registry{byName: make(map[string]Account, len(accounts))}
	for i, a := range accounts {
		if a.Name == "" {
			return nil, fmt.Errorf("account %d: %w", i, ErrNoName)
		}
		if _, exists := r.byName[a.Name]; exists {
			return nil, fmt.Errorf("account %q: %w", a.Name, ErrDuplicate)
		}
		r.byName[a.Name] = a
		r.order = append(r.order, a.Name)
	}
	return r, nil
}

// HasAccount reports whether name is registered.
func (r *Registry) HasAccount(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Account returns the named account.
func (r *Registry) Account(name string) (Account, bool) {
	a, ok := r.byName[name]
	return a, ok
}

// List returns all accounts in registration order.
func (r *Registry) List() []Account {
	out := make([]Account, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}
