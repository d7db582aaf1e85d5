// Package access decides which recipes an actor may list, read, and mutate.
// The operating mode is a choice of Policy implementation injected into the
// services, not a branch scattered through them.
package access

import (
	"keto-tracker/domain"
	"keto-tracker/entities"
)

// Actor is the resolved caller identity for one request. A zero Actor is
// anonymous.
type Actor struct {
	UserID string
}

func Anonymous() Actor {
	return Actor{}
}

func Authenticated(userID string) Actor {
	return Actor{UserID: userID}
}

func (a Actor) IsAuthenticated() bool {
	return a.UserID != ""
}

type ListScope string

const (
	ScopePublic ListScope = "public"
	ScopeMine   ListScope = "mine"
)

type Policy interface {
	// CanList gates which recipes appear in list views for the given scope.
	CanList(recipe *entities.Recipe, actor Actor, scope ListScope) bool
	// CanRead gates direct fetch by id. Visibility only restricts listing, so
	// every implementation returns true for an existing recipe.
	CanRead(recipe *entities.Recipe, actor Actor) bool
	// CanMutate gates update and delete.
	CanMutate(recipe *entities.Recipe, actor Actor) bool
	// RequiresAuth reports whether mutating endpoints demand a signed-in user.
	RequiresAuth() bool
}

// ForMode picks the policy for the configured operating mode, defaulting to
// community rules.
func ForMode(mode string) Policy {
	if mode == domain.ModeSingleTenant {
		return SingleTenantPolicy{}
	}
	return CommunityPolicy{}
}

// CommunityPolicy owns recipes: public listing shows only is_public rows,
// "mine" shows the actor's own, and mutation is owner-only. Ownerless legacy
// recipes cannot be mutated by anyone.
type CommunityPolicy struct{}

func (CommunityPolicy) CanList(recipe *entities.Recipe, actor Actor, scope ListScope) bool {
	switch scope {
	case ScopeMine:
		return actor.IsAuthenticated() && owns(recipe, actor)
	default:
		return recipe.IsPublic
	}
}

func (CommunityPolicy) CanRead(*entities.Recipe, Actor) bool {
	return true
}

func (CommunityPolicy) CanMutate(recipe *entities.Recipe, actor Actor) bool {
	return actor.IsAuthenticated() && owns(recipe, actor)
}

func (CommunityPolicy) RequiresAuth() bool {
	return true
}

// SingleTenantPolicy runs without ownership: every recipe is listable,
// readable, and mutable by any caller.
type SingleTenantPolicy struct{}

func (SingleTenantPolicy) CanList(*entities.Recipe, Actor, ListScope) bool {
	return true
}

func (SingleTenantPolicy) CanRead(*entities.Recipe, Actor) bool {
	return true
}

func (SingleTenantPolicy) CanMutate(*entities.Recipe, Actor) bool {
	return true
}

func (SingleTenantPolicy) RequiresAuth() bool {
	return false
}

func owns(recipe *entities.Recipe, actor Actor) bool {
	return recipe.CreatedByID != nil && recipe.CreatedByID.String() == actor.UserID
}
