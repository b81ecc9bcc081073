// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DemoAccount is a fixed sign-in identity used by the demo verifier and,
// when seeding is enabled, provisioned on the auth server.
type DemoAccount struct {
	User     User
	Password string
}

// DemoAccounts returns a fresh copy of the built-in accounts.
func DemoAccounts() []DemoAccount {
	return []DemoAccount{
		{
			User: User{
				ID:       "1",
				Username: "student",
				Email:    "student@yuhu.edu",
				Name:     "Raj Kumar",
				Role:     RoleStudent,
				Course:   "BS Computer Science",
				Year:     2,
			},
			Password: "student123",
		},
		{
			User: User{
				ID:       "2",
				Username: "admin",
				Email:    "admin@yuhu.edu",
				Name:     "Admin User",
				Role:     RoleAdmin,
			},
			Password: "admin123",
		},
	}
}
