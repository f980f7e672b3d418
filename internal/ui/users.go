package ui

import (
	"strings"

	"github.com/cruciblehq/crucible/cli/internal/api"
	"github.com/cruciblehq/crucible/cli/internal/permissions"
	"github.com/cruciblehq/crucible/cli/internal/session"
)

// newUsersCatalog wires the account table. Assignable roles follow the
// session's own role; nobody may delete their own account or change
// their own role, admins included.
func newUsersCatalog(client *api.Client, sess *session.Session) CatalogModel {
	roleOptions := permissions.ViewableRoles(sess.Role)

	cfg := catalogConfig{
		entity:     "users",
		title:      "Users",
		itemNoun:   "user",
		pageSize:   15,
		tableLevel: true,
		fields: []fieldSpec{
			{Key: "name", Label: "Username", Required: true, Searchable: true},
			{
				Key: "role", Label: "Role", Kind: fieldSelect, Required: true,
				Options: roleOptions,
				Frozen: func(r record) bool {
					return !sess.CanChangeRoleOf(r.name)
				},
			},
			{Key: "email", Label: "Email", Searchable: true},
		},
		canDeleteRow: func(r record) bool {
			return sess.CanDeleteUser(r.name)
		},
		load: func(c *api.Client) ([]record, error) {
			items, err := c.ListUsers()
			if err != nil {
				return nil, err
			}
			out := make([]record, len(items))
			for i, u := range items {
				out[i] = record{
					id:   u.ID,
					name: u.UserName,
					values: map[string]string{
						"name":  u.UserName,
						"role":  u.Role,
						"email": u.Email,
					},
				}
			}
			return out, nil
		},
		create: func(c *api.Client, v map[string]string, notes string) error {
			_, err := c.CreateUser(api.CreateUserInput{
				UserName: strings.TrimSpace(v["name"]),
				Role:     v["role"],
				Email:    v["email"],
				Notes:    notes,
			})
			return err
		},
		update: func(c *api.Client, id int, changed map[string]string, notes string) error {
			in := api.UpdateUserInput{Notes: notes}
			if v, ok := changed["name"]; ok {
				in.UserName = &v
			}
			if v, ok := changed["role"]; ok {
				in.Role = &v
			}
			if v, ok := changed["email"]; ok {
				in.Email = &v
			}
			return c.UpdateUser(id, in)
		},
		remove: func(c *api.Client, id int) error {
			return c.DeleteUser(id)
		},
	}
	return NewCatalogModel(client, sess, cfg)
}
