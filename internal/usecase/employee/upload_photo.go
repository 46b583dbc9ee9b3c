package employee

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/employee-portal/internal/audit"
	"github.com/BruksfildServices01/employee-portal/internal/domain/access"
	domain "github.com/BruksfildServices01/employee-portal/internal/domain/employee"
	"github.com/BruksfildServices01/employee-portal/internal/httperr"
	"github.com/BruksfildServices01/employee-portal/internal/imaging"
	"github.com/BruksfildServices01/employee-portal/internal/models"
	"github.com/BruksfildServices01/employee-portal/internal/storage"
)

type UploadPhoto struct {
	repo    domain.Repository
	policy  access.ScopePolicy
	audit   audit.Recorder
	store   storage.ObjectStore
	maxSide int
}

// NewUploadPhoto accepts a nil store; uploads then fail as unavailable.
func NewUploadPhoto(
	repo domain.Repository,
	policy access.ScopePolicy,
	audit audit.Recorder,
	store storage.ObjectStore,
	maxSide int,
) *UploadPhoto {
	return &UploadPhoto{
		repo:    repo,
		policy:  policy,
		audit:   audit,
		store:   store,
		maxSide: maxSide,
	}
}

func (uc *UploadPhoto) Execute(
	ctx context.Context,
	caller access.Identity,
	id string,
	photo io.Reader,
) (*models.Employee, error) {

	if uc.store == nil {
		return nil, httperr.ErrUnavailable("Photo storage is not configured")
	}

	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := uc.policy.Authorize(caller, access.ActionUpdate, e.ManagedBy()); err != nil {
		return nil, err
	}

	data, err := imaging.ToWebP(photo, uc.maxSide, imaging.DefaultQuality)
	if err != nil {
		if errors.Is(err, imaging.ErrUnsupportedFormat) {
			return nil, httperr.ErrValidation("Unsupported image format")
		}
		return nil, err
	}

	key := fmt.Sprintf("employees/%s/%s.webp", e.ID, uuid.NewString())

	return audit.Track(ctx, uc.audit, caller, models.AuditUpdate,
		func(ctx context.Context) (*models.Employee, audit.Target, error) {
			url, err := uc.store.Put(ctx, key, imaging.ContentType, data)
			if err != nil {
				return nil, audit.Target{}, err
			}
			e.ProfilePhotoURL = url
			if err := uc.repo.Update(ctx, e); err != nil {
				return nil, audit.Target{}, err
			}
			return e, audit.Target{
				Resource: e.Email,
				Details:  describeChanges([]string{"profilePhotoUrl"}),
			}, nil
		})
}
