package catalog

import (
	"sync"
)

// Process scopes the single catalog instance.
// The zero value is not usable, construct it with NewProcess.
type Process struct {
	mu      sync.Mutex
	catalog *Catalog
}

// NewProcess creates a Process without a catalog, the catalog is constructed on first access.
func NewProcess() *Process {
	return &Process{}
}

// Catalog returns the catalog of this process, constructing it on the first call.
// Every call returns the same instance.
func (p *Process) Catalog() *Catalog {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.catalog == nil {
		p.catalog = newCatalog()
	}

	return p.catalog
}

// NewCatalog constructs the catalog directly.
// It fails with ErrIllegalState if this process already has a catalog.
func (p *Process) NewCatalog() (*Catalog, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.catalog != nil {
		return nil, ErrIllegalState
	}

	p.catalog = newCatalog()

	return p.catalog, nil
}

var sharedProcess = NewProcess()

// Shared returns the catalog of the package-level process.
func Shared() *Catalog {
	return sharedProcess.Catalog()
}
