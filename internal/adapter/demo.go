// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/MKhiriev/yuhu-campus/models"
)

// demoVerifier checks credentials against a fixed in-memory table after a
// simulated network delay.
type demoVerifier struct {
	accounts map[string]models.DemoAccount
	latency  time.Duration
}

// NewDemoVerifier builds a verifier over accounts. Usernames are matched
// case-insensitively, passwords exactly.
func NewDemoVerifier(accounts []models.DemoAccount, latency time.Duration) CredentialVerifier {
	table := make(map[string]models.DemoAccount, len(accounts))
	for _, a := range accounts {
		table[models.Credentials{Username: a.User.Username}.NormalizedUsername()] = a
	}

	return &demoVerifier{
		accounts: table,
		latency:  latency,
	}
}

func (d *demoVerifier) Verify(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if err := d.wait(ctx); err != nil {
		return models.User{}, err
	}

	account, ok := d.accounts[credentials.NormalizedUsername()]
	if !ok {
		return models.User{}, ErrInvalidCredentials
	}

	if subtle.ConstantTimeCompare([]byte(account.Password), []byte(credentials.Password)) != 1 {
		return models.User{}, ErrInvalidCredentials
	}

	return account.User, nil
}

func (d *demoVerifier) wait(ctx context.Context) error {
	if d.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d.latency)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
