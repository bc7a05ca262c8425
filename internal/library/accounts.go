package library

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/hongminglow/library-be/internal/models"
	"github.com/hongminglow/library-be/internal/models/dto"
	"github.com/hongminglow/library-be/internal/storage"
)

const minPasswordLength = 6

// Register creates a user with no permissions.
func (s *Service) Register(ctx context.Context, req dto.RegisterRequest) (models.User, error) {
	return s.createUser(ctx, req, models.Permissions{})
}

// SeedAdmin creates a user holding every permission unless an enabled user already owns the email.
func (s *Service) SeedAdmin(ctx context.Context, req dto.RegisterRequest) (models.User, bool, error) {
	if existing, err := s.store.FindUserByEmail(ctx, strings.TrimSpace(req.Email)); err == nil {
		return existing, false, nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return models.User{}, false, err
	}
	user, err := s.createUser(ctx, req, models.AllPermissions())
	if err != nil {
		return models.User{}, false, err
	}
	return user, true, nil
}

func (s *Service) createUser(ctx context.Context, req dto.RegisterRequest, perms models.Permissions) (models.User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return models.User{}, newError(ErrValidation, "name, email and password are required")
	}
	if utf8.RuneCountInString(req.Password) < minPasswordLength {
		return models.User{}, newError(ErrValidation, "Password must be at least 6 characters")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.store.CreateUser(ctx, models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Permissions:  perms,
	})
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return models.User{}, newError(ErrConflict, "Email is already registered")
		}
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	s.logger.InfoContext(ctx, "user registered", slog.Int64("user_id", created.ID))
	return created, nil
}

// Login verifies credentials and issues a token embedding the user's current permissions.
// Unknown email, disabled account and wrong password all yield the same error.
func (s *Service) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return dto.LoginResponse{}, newError(ErrValidation, "email and password are required")
	}

	user, err := s.store.FindUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return dto.LoginResponse{}, fmt.Errorf("find user: %w", err)
		}
		s.hasher.CompareDummy(req.Password)
		return dto.LoginResponse{}, errInvalidCredentials
	}
	if !s.hasher.Compare(user.PasswordHash, req.Password) {
		return dto.LoginResponse{}, errInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		return dto.LoginResponse{}, fmt.Errorf("generate token: %w", err)
	}
	return dto.LoginResponse{Token: token, User: user}, nil
}

var errInvalidCredentials = newError(ErrUnauthorized, "Invalid credentials")
