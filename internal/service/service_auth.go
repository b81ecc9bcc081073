// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/yuhu-campus/internal/config"
	"github.com/MKhiriev/yuhu-campus/internal/logger"
	"github.com/MKhiriev/yuhu-campus/internal/store"
	"github.com/MKhiriev/yuhu-campus/internal/utils"
	"github.com/MKhiriev/yuhu-campus/internal/validators"
	"github.com/MKhiriev/yuhu-campus/models"
)

// idGenerator issues identifiers for newly registered accounts.
type idGenerator interface {
	Generate() string
}

type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	ids            idGenerator
	hashCost       int
	// dummyHash is compared against when the username is unknown so that
	// both failure paths cost one bcrypt comparison.
	dummyHash []byte

	tokenIssuer   string
	tokenDuration time.Duration
	tokenSignKey  string

	logger *logger.Logger
}

func NewAuthService(userRepository store.UserRepository, cfg config.ServerApp, log *logger.Logger) (AuthService, error) {
	return newAuthService(userRepository, cfg, bcrypt.DefaultCost, log)
}

func newAuthService(userRepository store.UserRepository, cfg config.ServerApp, cost int, log *logger.Logger) (*authService, error) {
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("yuhu-dummy-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("error preparing password hasher: %w", err)
	}

	return &authService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		ids:            utils.NewUUIDGenerator(),
		hashCost:       cost,
		dummyHash:      dummyHash,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		tokenSignKey:   cfg.TokenSignKey,
		logger:         log.WithComponent("auth_service"),
	}, nil
}

// RegisterUser creates a student account. Username is stored trimmed and
// must be unique ignoring case.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.hashCost)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	account := models.Account{
		User: models.User{
			ID:       a.ids.Generate(),
			Username: req.Username,
			Email:    req.Email,
			Name:     req.Name,
			Role:     models.RoleStudent,
			Course:   strings.TrimSpace(req.Course),
			Year:     req.Year,
		},
		PasswordHash: string(hash),
	}

	created, err := a.userRepository.CreateUser(ctx, account)
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		return models.User{}, ErrUserAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("username", req.Username).Msg("error registering user")
		return models.User{}, fmt.Errorf("error registering user: %w", err)
	}

	log.Info().Str("user_id", created.ID).Msg("user registered")
	return created.User, nil
}

// Login checks the credentials against the stored bcrypt hash.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	account, err := a.userRepository.FindUserByUsername(ctx, credentials.NormalizedUsername())
	if errors.Is(err, store.ErrNoUserWasFound) {
		_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(credentials.Password))
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("error looking up user")
		return models.User{}, fmt.Errorf("error looking up user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Debug().Str("user_id", account.ID).Msg("password mismatch")
		return models.User{}, ErrInvalidCredentials
	}

	return account.User, nil
}

func (a *authService) GetUser(ctx context.Context, userID string) (models.User, error) {
	account, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error getting user: %w", err)
	}

	return account.User, nil
}

func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID).Msg("error creating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}

// SeedAccounts creates every missing account with its fixed id. Accounts
// that already exist are left untouched, so seeding is idempotent.
func (a *authService) SeedAccounts(ctx context.Context, accounts []models.DemoAccount) error {
	for _, demo := range accounts {
		_, err := a.userRepository.FindUserByUsername(ctx, demo.User.Username)
		if err == nil {
			continue
		}
		if !errors.Is(err, store.ErrNoUserWasFound) {
			return fmt.Errorf("error seeding %q: %w", demo.User.Username, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(demo.Password), a.hashCost)
		if err != nil {
			return fmt.Errorf("error hashing password of %q: %w", demo.User.Username, err)
		}

		_, err = a.userRepository.CreateUser(ctx, models.Account{User: demo.User, PasswordHash: string(hash)})
		if err != nil && !errors.Is(err, store.ErrUsernameAlreadyExists) {
			return fmt.Errorf("error seeding %q: %w", demo.User.Username, err)
		}

		a.logger.Info().Str("username", demo.User.Username).Msg("demo account seeded")
	}

	return nil
}
