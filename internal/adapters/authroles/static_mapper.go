package authroles

import (
	domainauth "github.com/humanlystaffing/jobboard-api/internal/domain/auth"
)

// StaticRoleMapper maps IdP groups by simple string membership rules.
// Admin membership wins over employer; any other authenticated user is a
// candidate.
type StaticRoleMapper struct {
	AdminGroup    string
	EmployerGroup string
}

func (m StaticRoleMapper) Map(groups []string) domainauth.Role {
	for _, g := range groups {
		if m.AdminGroup != "" && g == m.AdminGroup {
			return domainauth.RoleAdmin
		}
	}
	for _, g := range groups {
		if m.EmployerGroup != "" && g == m.EmployerGroup {
			return domainauth.RoleEmployer
		}
	}
	return domainauth.RoleCandidate
}
