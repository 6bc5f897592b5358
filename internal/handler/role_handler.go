package handler

import (
	"sort"

	"github.com/gofiber/fiber/v2"
)

type RoleResponse struct {
	Code       string   `json:"code"`
	Privileges []string `json:"privileges"`
}

type RoleHandler struct {
	roles map[string][]string
}

func NewRoleHandler(roles map[string][]string) *RoleHandler {
	return &RoleHandler{roles: roles}
}

// GetRoles returns every operator role with the privileges it grants
// GET /auth/roles
func (h *RoleHandler) GetRoles(c *fiber.Ctx) error {
	roles := make([]RoleResponse, 0, len(h.roles))
	for code, privileges := range h.roles {
		roles = append(roles, RoleResponse{Code: code, Privileges: privileges})
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].Code < roles[j].Code })
	return c.JSON(roles)
}
