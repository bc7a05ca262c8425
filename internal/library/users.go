package library

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hongminglow/library-be/internal/auth"
	"github.com/hongminglow/library-be/internal/models"
	"github.com/hongminglow/library-be/internal/models/dto"
	"github.com/hongminglow/library-be/internal/storage"
)

var errUserNotFound = newError(ErrNotFound, "User not found")

// GetUser returns an enabled user.
func (s *Service) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.store.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, translateUserErr(err)
	}
	return user, nil
}

// UpdateUser changes name/email (self or canUpdateUser) and permissions (canUpdateUser only).
// Authorization is decided before anything is written.
func (s *Service) UpdateUser(ctx context.Context, caller auth.Caller, id int64, req dto.UpdateUserRequest) (models.User, error) {
	if _, err := s.store.FindUserByID(ctx, id); err != nil {
		return models.User{}, translateUserErr(err)
	}

	canUpdateOthers := caller.Can(models.CanUpdateUser)
	if caller.ID != id && !canUpdateOthers {
		return models.User{}, newError(ErrForbidden, "Forbidden: cannot update this user")
	}
	if req.Permissions != nil && !canUpdateOthers {
		return models.User{}, newError(ErrForbidden, "Forbidden: cannot change permissions")
	}

	updated, err := s.store.UpdateUser(ctx, id, func(u *models.User) error {
		if req.Name != "" {
			u.Name = req.Name
		}
		if req.Email != "" {
			u.Email = req.Email
		}
		if req.Permissions != nil {
			u.Permissions = u.Permissions.Merge(*req.Permissions)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return models.User{}, newError(ErrConflict, "Email is already registered")
		}
		return models.User{}, translateUserErr(err)
	}

	if req.Permissions != nil {
		s.logger.InfoContext(ctx, "user permissions changed",
			slog.Int64("user_id", id),
			slog.Int64("changed_by", caller.ID),
		)
	}
	return updated, nil
}

// DeleteUser soft-deletes a user (self or canDeleteUser).
func (s *Service) DeleteUser(ctx context.Context, caller auth.Caller, id int64) error {
	if _, err := s.store.FindUserByID(ctx, id); err != nil {
		return translateUserErr(err)
	}
	if caller.ID != id && !caller.Can(models.CanDeleteUser) {
		return newError(ErrForbidden, "Forbidden: cannot delete this user")
	}
	if err := s.store.DisableUser(ctx, id); err != nil {
		return translateUserErr(err)
	}
	s.logger.InfoContext(ctx, "user disabled", slog.Int64("user_id", id), slog.Int64("disabled_by", caller.ID))
	return nil
}

func translateUserErr(err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return errUserNotFound
	}
	return err
}
