// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/yuhu-campus/models"
)

// Field names accepted by [UserValidator].
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldEmail    = "email"
	FieldName     = "name"
	FieldYear     = "year"
)

const (
	maxUsernameLength = 64
	maxStudyYear      = 8
)

type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateRegisterRequest(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword, FieldEmail, FieldName, FieldYear}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUsername:
			err = validateUsername(req.Username)
		case FieldPassword:
			if req.Password == "" {
				err = ErrEmptyPassword
			}
		case FieldEmail:
			err = validateEmail(req.Email)
		case FieldName:
			if strings.TrimSpace(req.Name) == "" {
				err = ErrEmptyName
			}
		case FieldYear:
			if req.Year < 0 || req.Year > maxStudyYear {
				err = ErrInvalidYear
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *UserValidator) validateCredentials(_ context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(credentials.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateUsername(username string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrEmptyUsername
	}
	if utf8.RuneCountInString(username) > maxUsernameLength || strings.IndexFunc(username, unicode.IsSpace) >= 0 {
		return ErrInvalidUsername
	}
	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrInvalidEmail
	}
	// Display names like "Raj <raj@yuhu.edu>" are rejected.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}
