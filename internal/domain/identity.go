package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type IdentityKind string

const (
	IdentityKindUser      IdentityKind = "user"
	IdentityKindAnonymous IdentityKind = "anonymous"

	maxAnonymousIDLength = 64
)

// Identity is either a UserIdentity or an AnonymousIdentity, never both.
type Identity interface {
	Kind() IdentityKind
	Key() string
	isIdentity()
}

type UserIdentity struct {
	ID uuid.UUID
}

func (UserIdentity) Kind() IdentityKind { return IdentityKindUser }
func (u UserIdentity) Key() string      { return u.ID.String() }
func (UserIdentity) isIdentity()        {}

// AnonymousIdentity is a client generated id of an unauthenticated visitor.
type AnonymousIdentity struct {
	ID string
}

func (AnonymousIdentity) Kind() IdentityKind { return IdentityKindAnonymous }
func (a AnonymousIdentity) Key() string      { return a.ID }
func (AnonymousIdentity) isIdentity()        {}

// NewIdentity picks the authenticated user when present, otherwise the anonymous id.
// A nil user id with an empty anonymous id is rejected.
func NewIdentity(userID *uuid.UUID, anonID string) (Identity, error) {
	if userID != nil && *userID != uuid.Nil {
		return UserIdentity{ID: *userID}, nil
	}

	return NewAnonymousIdentity(anonID)
}

func NewAnonymousIdentity(anonID string) (Identity, error) {
	anonID = strings.TrimSpace(anonID)
	if anonID == "" {
		return nil, fmt.Errorf("%w: user id or anonymous id is required", ErrInvalidIdentity)
	}
	if len(anonID) > maxAnonymousIDLength {
		return nil, fmt.Errorf("%w: anonymous id longer than %d", ErrInvalidIdentity, maxAnonymousIDLength)
	}

	return AnonymousIdentity{ID: anonID}, nil
}

// ParseIdentity restores an identity from its stored kind and key.
func ParseIdentity(kind IdentityKind, key string) (Identity, error) {
	switch kind {
	case IdentityKindUser:
		id, err := uuid.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidIdentity, err)
		}
		return UserIdentity{ID: id}, nil
	case IdentityKindAnonymous:
		return NewAnonymousIdentity(key)
	}

	return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidIdentity, kind)
}
