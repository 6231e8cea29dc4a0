package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"flightdeals/internal/domain/access"
	"flightdeals/internal/domain/profile"
	"flightdeals/internal/pkg/clock"
	"flightdeals/internal/pkg/config"
	"flightdeals/internal/pkg/errs"
	"flightdeals/internal/usecase/shared"
)

const defaultProfileName = "Traveler"

type UpdateMeRequest struct {
	Name  *string
	Phone *string
}

type ProfileCommands interface {
	// EnsureProfile returns the caller's profile, creating it from the
	// identity claims on first sight.
	EnsureProfile(ctx context.Context, identity shared.Identity) (*profile.Profile, error)
	// ResolveViewer derives the request viewer. A nil identity is anonymous.
	ResolveViewer(ctx context.Context, identity *shared.Identity) (access.Viewer, error)
	UpdateMe(ctx context.Context, viewer access.Viewer, req UpdateMeRequest) (*profile.Profile, error)
}

type profileUseCaseImpl struct {
	uow         shared.UnitOfWork
	clock       clock.Clock
	timeout     time.Duration
	invalidator CacheInvalidator
}

func NewProfileUseCase(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config, inv CacheInvalidator) ProfileCommands {
	return &profileUseCaseImpl{uow: uow, clock: clk, timeout: cfg.Store.Timeout, invalidator: inv}
}

func (uc *profileUseCaseImpl) EnsureProfile(ctx context.Context, identity shared.Identity) (*profile.Profile, error) {
	repo := uc.uow.Repositories().Profiles()
	p, err := uc.find(ctx, repo, identity)
	if err == nil || !errs.Is(err, errs.ErrNotFound) {
		return p, err
	}

	fresh, err := profile.New(identity.UserID, nameFromClaims(identity), identity.Email, uc.clock.Now())
	if err != nil {
		return nil, errs.Unauthenticated(errs.Wrap(err, "identity claims cannot seed a profile"))
	}
	created, err := shared.StoreCall(ctx, uc.timeout, func(ctx context.Context) (bool, error) {
		return repo.Create(ctx, fresh)
	})
	if err != nil {
		return nil, err
	}
	if !created {
		// another request for the same subject won the insert
		return uc.find(ctx, repo, identity)
	}
	return fresh, nil
}

func (uc *profileUseCaseImpl) find(ctx context.Context, repo shared.ProfileRepository, identity shared.Identity) (*profile.Profile, error) {
	return shared.StoreCall(ctx, uc.timeout, func(ctx context.Context) (*profile.Profile, error) {
		return repo.FindByID(ctx, identity.UserID)
	})
}

func nameFromClaims(identity shared.Identity) string {
	if name := strings.TrimSpace(identity.Name); name != "" {
		return name
	}
	if local, _, ok := strings.Cut(identity.Email, "@"); ok && local != "" {
		return local
	}
	return defaultProfileName
}

func (uc *profileUseCaseImpl) ResolveViewer(ctx context.Context, identity *shared.Identity) (access.Viewer, error) {
	if identity == nil {
		return access.Anonymous(), nil
	}
	p, err := uc.EnsureProfile(ctx, *identity)
	if err != nil {
		return access.Viewer{}, err
	}
	return access.ViewerOf(identity.UserID, p, uc.clock.Now()), nil
}

func (uc *profileUseCaseImpl) UpdateMe(ctx context.Context, viewer access.Viewer, req UpdateMeRequest) (*profile.Profile, error) {
	if !viewer.Authenticated() {
		return nil, shared.ErrLoginRequired
	}
	var updated *profile.Profile
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := shared.StoreCall(ctx, uc.timeout, func(ctx context.Context) (*profile.Profile, error) {
			return tx.Profiles().FindByID(ctx, viewer.UserID)
		})
		if err != nil {
			return err
		}
		if err := p.UpdateContact(req.Name, req.Phone, uc.clock.Now()); err != nil {
			return err
		}
		if err := shared.StoreExec(ctx, uc.timeout, func(ctx context.Context) error {
			return tx.Profiles().Update(ctx, p)
		}); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := uc.invalidator.Invalidate(ctx, viewer.UserID); err != nil {
		slog.WarnContext(ctx, "customer cache invalidation failed",
			"user_id", viewer.UserID.String(),
			"error", err.Error())
	}
	return updated, nil
}
