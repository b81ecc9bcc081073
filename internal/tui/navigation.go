// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/yuhu-campus/models"

var commonMenuItems = []string{"Home", "Profile", "Settings"}

// menuItems returns the navigation entries visible to role.
func menuItems(role models.Role) []string {
	items := append([]string(nil), commonMenuItems...)

	switch role {
	case models.RoleAdmin:
		items = append(items, "Admin Dashboard", "User Management", "Analytics")
	case models.RoleCoordinator, models.RoleCouncilHead:
		items = append(items, "Post Announcement", "Create Event")
	}

	return items
}

// hasStaffAccess reports whether the role may manage campus content.
func hasStaffAccess(role models.Role) bool {
	switch role {
	case models.RoleAdmin, models.RoleCouncilHead, models.RoleCoordinator:
		return true
	}
	return false
}
