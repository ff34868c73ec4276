// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Linked provider identifiers as reported by the identity backend.
const (
	ProviderPassword = "password"
	ProviderGoogle   = "google.com"
	ProviderFacebook = "facebook.com"
)

// Identity is an authenticated principal owned by the identity backend.
// This service only reads it; optional attributes are empty strings when unset.
type Identity struct {
	UID         string   `json:"uid"`
	Email       string   `json:"email,omitempty"`
	PhoneNumber string   `json:"phoneNumber,omitempty"`
	DisplayName string   `json:"displayName,omitempty"`
	PhotoURL    string   `json:"photoURL,omitempty"`
	ProviderIDs []string `json:"providerIds"`
}

// HasProvider reports whether the identity is linked to the given provider.
func (i *Identity) HasProvider(providerID string) bool {
	for _, id := range i.ProviderIDs {
		if id == providerID {
			return true
		}
	}

	return false
}

// Clone returns a copy that does not share the provider slice.
func (i *Identity) Clone() *Identity {
	if i == nil {
		return nil
	}

	cloned := *i
	if i.ProviderIDs != nil {
		cloned.ProviderIDs = append([]string(nil), i.ProviderIDs...)
	}

	return &cloned
}
