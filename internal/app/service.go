// Package app implements the application service consumed by the transport
// layer: credential verification, session lifecycle, and gate-checked product
// operations.
package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	stderrors "errors"
	"fmt"
	"log/slog"

	"github.com/Kyle5427/web-data-management-system/internal/auth"
	"github.com/Kyle5427/web-data-management-system/internal/domain"
	"github.com/Kyle5427/web-data-management-system/internal/errors"
)

// Service wires the repositories and the password hasher together. Every
// product operation resolves the session token before touching the catalog.
type Service struct {
	users    domain.UserRepository
	products domain.ProductRepository
	sessions domain.SessionRepository
	hasher   auth.Hasher
}

func New(users domain.UserRepository, products domain.ProductRepository, sessions domain.SessionRepository, hasher auth.Hasher) *Service {
	return &Service{
		users:    users,
		products: products,
		sessions: sessions,
		hasher:   hasher,
	}
}

// newSessionToken returns 32 random bytes hex-encoded.
func newSessionToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Register creates a user and immediately logs them in, returning the user
// and a fresh session token.
func (s *Service) Register(ctx context.Context, username, password string) (*domain.User, string, error) {
	var fields []errors.FieldError
	if username == "" {
		fields = append(fields, errors.FieldError{Field: "username", Message: "username must not be empty"})
	}
	if password == "" {
		fields = append(fields, errors.FieldError{Field: "password", Message: "password must not be empty"})
	}
	if len(fields) > 0 {
		return nil, "", errors.ValidationError("invalid registration", fields...)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", errors.InternalError("failed to hash password", err)
	}

	user, err := s.users.Create(ctx, username, hash)
	if stderrors.Is(err, domain.ErrUsernameTaken) {
		return nil, "", errors.ConflictError("username already exists")
	}
	if err != nil {
		return nil, "", errors.InternalError("failed to create user", err)
	}

	token, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	slog.Info("User registered", "user_id", user.ID)
	return user, token, nil
}

// Login verifies the credentials and issues a session token. Unknown username
// and wrong password fail with the identical error.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.User, string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if stderrors.Is(err, domain.ErrUserNotFound) {
		return nil, "", errors.InvalidCredentialsError()
	}
	if err != nil {
		return nil, "", errors.InternalError("failed to look up user", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, "", errors.InvalidCredentialsError()
	}

	token, err := s.issueSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}

	slog.Info("User logged in", "user_id", user.ID)
	return user, token, nil
}

func (s *Service) issueSession(ctx context.Context, userID int64) (string, error) {
	token, err := newSessionToken()
	if err != nil {
		return "", errors.InternalError("failed to generate session token", err)
	}
	if err := s.sessions.Create(ctx, token, userID); err != nil {
		return "", errors.InternalError("failed to store session", err)
	}
	return token, nil
}

// Logout destroys the session. Logging out an absent session is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Destroy(ctx, token); err != nil {
		return errors.InternalError("failed to destroy session", err)
	}
	return nil
}

// CurrentUser resolves the session token to its owning user.
func (s *Service) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, userID)
	if stderrors.Is(err, domain.ErrUserNotFound) {
		// The user was removed after the session was issued.
		return nil, errors.UnauthorizedError("authentication required")
	}
	if err != nil {
		return nil, errors.InternalError("failed to look up user", err)
	}
	return user, nil
}

// authenticate is the auth gate: it resolves the token or refuses the call.
func (s *Service) authenticate(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, errors.UnauthorizedError("authentication required")
	}
	userID, err := s.sessions.Resolve(ctx, token)
	if stderrors.Is(err, domain.ErrSessionNotFound) {
		return 0, errors.UnauthorizedError("authentication required")
	}
	if err != nil {
		return 0, errors.InternalError("failed to resolve session", err)
	}
	return userID, nil
}

func (s *Service) ListProducts(ctx context.Context, token string) ([]domain.Product, error) {
	if _, err := s.authenticate(ctx, token); err != nil {
		return nil, err
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, errors.InternalError("failed to list products", err)
	}
	return products, nil
}

func (s *Service) GetProduct(ctx context.Context, token string, id int64) (*domain.Product, error) {
	if _, err := s.authenticate(ctx, token); err != nil {
		return nil, err
	}

	product, err := s.products.Get(ctx, id)
	return mapProductResult(product, err)
}

func (s *Service) CreateProduct(ctx context.Context, token string, input domain.ProductInput) (*domain.Product, error) {
	if _, err := s.authenticate(ctx, token); err != nil {
		return nil, err
	}

	product, err := s.products.Create(ctx, input)
	return mapProductResult(product, err)
}

func (s *Service) UpdateProduct(ctx context.Context, token string, id int64, patch domain.ProductPatch) (*domain.Product, error) {
	if _, err := s.authenticate(ctx, token); err != nil {
		return nil, err
	}

	product, err := s.products.Update(ctx, id, patch)
	return mapProductResult(product, err)
}

func (s *Service) DeleteProduct(ctx context.Context, token string, id int64) error {
	if _, err := s.authenticate(ctx, token); err != nil {
		return err
	}

	err := s.products.Delete(ctx, id)
	if stderrors.Is(err, domain.ErrProductNotFound) {
		return errors.NotFoundError("product not found")
	}
	if err != nil {
		return errors.AsStructuredError(err)
	}
	return nil
}

// mapProductResult maps repository sentinels onto structured errors.
func mapProductResult(product *domain.Product, err error) (*domain.Product, error) {
	if stderrors.Is(err, domain.ErrProductNotFound) {
		return nil, errors.NotFoundError("product not found")
	}
	if err != nil {
		// Validation errors pass through; anything else becomes internal.
		return nil, errors.AsStructuredError(err)
	}
	return product, nil
}
