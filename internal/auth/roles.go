package auth

import (
	apperrors "lead-crm-backend/internal/errors"
)

// Role is the staff role carried in a token
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleAgent   Role = "agent"
)

// Capability is a permission checked by route middleware. manage_directory
// covers companies, teams, agents and their links.
type Capability string

const (
	CapManageDirectory  Capability = "manage_directory"
	CapViewDirectory    Capability = "view_directory"
	CapViewLeads        Capability = "view_leads"
	CapManageLeads      Capability = "manage_leads"
	CapAssignLeads      Capability = "assign_leads"
	CapViewDistribution Capability = "view_distribution"
	CapRunDistribution  Capability = "run_distribution"
	CapViewClients      Capability = "view_clients"
	CapManageClients    Capability = "manage_clients"
	CapDeleteClients    Capability = "delete_clients"
	CapViewBanks        Capability = "view_banks"
	CapManageBanks      Capability = "manage_banks"
	CapManageSales      Capability = "manage_sales"
)

var roleCapabilities = map[Role][]Capability{
	RoleAdmin: {
		CapManageDirectory, CapViewDirectory,
		CapViewLeads, CapManageLeads, CapAssignLeads,
		CapViewDistribution, CapRunDistribution,
		CapViewClients, CapManageClients, CapDeleteClients,
		CapViewBanks, CapManageBanks,
		CapManageSales,
	},
	RoleManager: {
		CapViewDirectory,
		CapViewLeads, CapManageLeads, CapAssignLeads,
		CapViewDistribution,
		CapViewClients, CapManageClients,
		CapViewBanks,
		CapManageSales,
	},
	RoleAgent: {
		CapViewDirectory,
		CapViewLeads,
		CapViewClients, CapManageClients,
		CapViewBanks,
		CapManageSales,
	},
}

// ParseRole returns the role named s or ErrUnknownRole
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := roleCapabilities[r]; !ok {
		return "", apperrors.ErrUnknownRole
	}
	return r, nil
}

// Can reports whether the role grants capability c
func (r Role) Can(c Capability) bool {
	for _, granted := range roleCapabilities[r] {
		if granted == c {
			return true
		}
	}
	return false
}

// Roles lists every known role, most privileged first
func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleAgent}
}

// CapabilitiesOf returns the capabilities granted by r
func CapabilitiesOf(r Role) []Capability {
	return append([]Capability(nil), roleCapabilities[r]...)
}
