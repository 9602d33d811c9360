// Package access decides who may view and who may change a user's records.
package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/workoutworks/internal/telemetry/tracing"

	"github.com/google/uuid"
)

var (
	ErrForbidden = errors.New("forbidden")
)

// Subject is a user together with their directory approval.
type Subject struct {
	ID       uuid.UUID
	Approved bool
}

// CanMutate allows only owners to change their own records.
func CanMutate(acting, owner uuid.UUID) bool {
	return acting != uuid.Nil && acting == owner
}

// CanView allows self access, and cross user access between approved members.
func CanView(acting, owner Subject) bool {
	if acting.ID == uuid.Nil || owner.ID == uuid.Nil {
		return false
	}
	if acting.ID == owner.ID {
		return true
	}
	return acting.Approved && owner.Approved
}

//go:generate mockgen -source=$GOFILE -destination=access_mocks_test.go -package=access_test

type approvalRepo interface {
	IsApproved(ctx context.Context, userID uuid.UUID) (bool, error)
}

// Guard resolves approval through the profiles store.
type Guard struct {
	repo approvalRepo
}

func NewGuard(repo approvalRepo) *Guard {
	return &Guard{
		repo: repo,
	}
}

// Viewable returns the user whose records should be read: the requested
// owner when given and visible to acting, acting itself otherwise.
func (g *Guard) Viewable(ctx context.Context, acting, requested uuid.UUID) (_ uuid.UUID, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "access.guard.viewable")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if acting == uuid.Nil {
		return uuid.Nil, ErrForbidden
	}
	if requested == uuid.Nil || requested == acting {
		return acting, nil
	}

	actingApproved, err := g.repo.IsApproved(ctx, acting)
	if err != nil {
		return uuid.Nil, fmt.Errorf("approval of %s: %w", acting, err)
	}
	if !actingApproved {
		return uuid.Nil, ErrForbidden
	}
	ownerApproved, err := g.repo.IsApproved(ctx, requested)
	if err != nil {
		return uuid.Nil, fmt.Errorf("approval of %s: %w", requested, err)
	}

	if !CanView(Subject{ID: acting, Approved: actingApproved}, Subject{ID: requested, Approved: ownerApproved}) {
		return uuid.Nil, ErrForbidden
	}
	return requested, nil
}

// IsApproved reports whether userID is an approved member.
func (g *Guard) IsApproved(ctx context.Context, userID uuid.UUID) (bool, error) {
	if userID == uuid.Nil {
		return false, nil
	}
	return g.repo.IsApproved(ctx, userID)
}
