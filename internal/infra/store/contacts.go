package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/silkyway/silk/internal/core/domain"
	"github.com/silkyway/silk/internal/core/sdkerr"
	"github.com/silkyway/silk/internal/core/validate"
)

// ContactBook is the persisted address book document.
type ContactBook struct {
	Contacts []domain.Contact `json:"contacts"`
}

// LoadContacts reads the contact book, returning an empty book when the
// file is missing or unreadable.
func (s *Store) LoadContacts() *ContactBook {
	raw, err := os.ReadFile(filepath.Join(s.dir, contactsFile))
	if err != nil {
		return &ContactBook{Contacts: []domain.Contact{}}
	}
	var book ContactBook
	if err := json.Unmarshal(raw, &book); err != nil {
		return &ContactBook{Contacts: []domain.Contact{}}
	}
	return &book
}

// SaveContacts rewrites the contact book wholesale.
func (s *Store) SaveContacts(book *ContactBook) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return sdkerr.New(sdkerr.CodeAPIError, "create config directory: %v", err)
	}
	data, err := json.MarshalIndent(book, "", "  ")
	if err != nil {
		return sdkerr.New(sdkerr.CodeAPIError, "encode contacts: %v", err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, contactsFile), data, 0o600); err != nil {
		return sdkerr.New(sdkerr.CodeAPIError, "write contacts: %v", err)
	}
	return nil
}

// InitContacts seeds an empty contact book if none exists, reporting
// whether it was created.
func (s *Store) InitContacts() (bool, error) {
	if _, err := os.Stat(filepath.Join(s.dir, contactsFile)); err == nil {
		return false, nil
	}
	if err := s.SaveContacts(&ContactBook{Contacts: []domain.Contact{}}); err != nil {
		return false, err
	}
	return true, nil
}

// AddContact registers a named address. Names are lowercased and must
// not themselves parse as addresses, so a contact can never shadow a
// literal recipient.
func (s *Store) AddContact(name, address string) (*domain.Contact, error) {
	normalized := strings.ToLower(name)
	if validate.IsAddress(normalized) {
		return nil, sdkerr.New(sdkerr.CodeInvalidContactName, "Contact name cannot be a valid address")
	}
	if err := validate.Address(address, "contact"); err != nil {
		return nil, sdkerr.New(sdkerr.CodeInvalidAddress, "%q is not a valid address", address)
	}

	book := s.LoadContacts()
	for _, c := range book.Contacts {
		if c.Name == normalized {
			return nil, sdkerr.New(sdkerr.CodeContactExists, "Contact %q already exists (%s)", normalized, c.Address)
		}
	}
	contact := domain.Contact{Name: normalized, Address: address}
	book.Contacts = append(book.Contacts, contact)
	if err := s.SaveContacts(book); err != nil {
		return nil, err
	}
	return &contact, nil
}

// RemoveContact deletes a contact by name.
func (s *Store) RemoveContact(name string) error {
	normalized := strings.ToLower(name)
	book := s.LoadContacts()
	for i, c := range book.Contacts {
		if c.Name == normalized {
			book.Contacts = append(book.Contacts[:i], book.Contacts[i+1:]...)
			return s.SaveContacts(book)
		}
	}
	return sdkerr.New(sdkerr.CodeContactNotFound, "Contact %q not found", normalized)
}

// GetContact looks up a contact by name, nil when absent.
func (s *Store) GetContact(name string) *domain.Contact {
	normalized := strings.ToLower(name)
	for _, c := range s.LoadContacts().Contacts {
		if c.Name == normalized {
			contact := c
			return &contact
		}
	}
	return nil
}

// ListContacts returns every contact.
func (s *Store) ListContacts() []domain.Contact {
	return s.LoadContacts().Contacts
}

// ResolveRecipient maps a contact name to its address, passing literal
// addresses through unchanged.
func (s *Store) ResolveRecipient(recipient string) string {
	if c := s.GetContact(recipient); c != nil {
		return c.Address
	}
	return recipient
}
