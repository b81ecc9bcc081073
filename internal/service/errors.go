// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Session store errors.
var (
	// ErrInvalidDataProvided is returned when a required field is empty.
	ErrInvalidDataProvided = errors.New("invalid data provided")
	// ErrOperationInProgress is returned when a session operation starts while
	// another one is still running.
	ErrOperationInProgress = errors.New("another session operation is in progress")
	// ErrVerifyCredentials wraps verifier failures other than a credential
	// mismatch (network errors, server errors).
	ErrVerifyCredentials = errors.New("credential verification failed")
	// ErrPersistSession is returned when the signed-in user cannot be saved.
	ErrPersistSession = errors.New("failed to persist session")
	// ErrDeleteSession is returned when the persisted session cannot be removed.
	ErrDeleteSession = errors.New("failed to delete session")
	// ErrReadSession is returned when the session slot cannot be read.
	ErrReadSession = errors.New("failed to read session")
)

// Auth server errors.
var (
	// ErrInvalidCredentials is returned by Login for an unknown username or a
	// wrong password; the two cases are not distinguished.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrUserAlreadyExists is returned by RegisterUser for a taken username.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrUserNotFound is returned by GetUser for an unknown id.
	ErrUserNotFound = errors.New("user not found")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
)
