package backend

import "slices"

// Capability names a feature a backend supports beyond the structural
// queries every backend answers.
type Capability string

const (
	CapabilityRead       Capability = "read"
	CapabilityWrite      Capability = "write"
	CapabilityCreate     Capability = "create"     // create-on-open
	CapabilityTimestamps Capability = "timestamps" // stored last-write time
	CapabilityAttributes Capability = "attributes" // settable attributes
	CapabilityWatch      Capability = "watch"
)

// Capabilities describes what a backend supports.
type Capabilities struct {
	Name         string       `json:"name"`
	Capabilities []Capability `json:"capabilities"`
}

// Contains checks if a capability is supported.
func (c *Capabilities) Contains(cap Capability) bool {
	return slices.Contains(c.Capabilities, cap)
}

// Provider is implemented by backends that report their capabilities.
type Provider interface {
	GetCapabilities() *Capabilities
}
