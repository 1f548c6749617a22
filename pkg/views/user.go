package views

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/blogadmin/console/pkg/adminclient"
	"github.com/blogadmin/console/pkg/table"
)

// UserView is the account management page. Accounts are created by sign-up
// and never deleted from the console, so only update and list are served.
type UserView struct {
	base
	users *adminclient.Users

	roles []table.Option
}

// NewUserView binds the user page to its client. The role choices of the
// form are fetched before the view is returned; a failed fetch fails the
// construction.
func NewUserView(ctx context.Context, users *adminclient.Users, roles *adminclient.Resource[adminclient.Role], opts ...Option) (*UserView, error) {
	s := newSettings(opts)
	v := &UserView{users: users, roles: []table.Option{}}
	v.base = newBase("system/user", users.Name(), s, table.Handlers{
		Update: v.updateRoles,
		List:   table.Forward(users.ListRaw),
	})
	if s.offline {
		return v, nil
	}

	list, err := listAll(ctx, roles)
	if err != nil {
		return nil, fmt.Errorf("load role options: %w", err)
	}
	for _, r := range list {
		v.roles = append(v.roles, table.Option{Label: r.RoleComment, Value: r.ID})
	}
	return v, nil
}

// RoleOptions returns the role choices loaded at construction.
func (v *UserView) RoleOptions() []table.Option {
	return v.roles
}

// ColumnFields implements table.Hook.
func (v *UserView) ColumnFields(actions table.RowActions) []table.Column {
	avatar := v.textColumn("avatar", "Avatar", 60)
	avatar.Cell = table.CellImage

	roles := v.textColumn("roles", "Roles", 0)
	roles.Cell = table.CellTags
	roles.ItemKey = "role_comment"

	status := v.textColumn("status", "Status", 0)
	status.Cell = table.CellSwitch
	status.Switch = v.statusSwitch()
	status.OnChange = actions.Toggle

	loginAt := v.dateColumn("login_at", "Last login", 140)

	operation := table.ActionColumn(v.t("Operation"), 120, []table.Action{
		{Name: "edit", Label: v.t("Edit"), Style: table.StylePrimary, Icon: "edit-pen", Run: actions.Edit},
	})
	operation.Fixed = table.FixedRight

	return []table.Column{
		v.selectionColumn(),
		v.idColumn(),
		avatar,
		v.textColumn("nickname", "Nickname", 100),
		v.textColumn("login_type", "Login type", 100),
		roles,
		status,
		v.textColumn("ip_address", "Registration IP", 0),
		v.textColumn("ip_source", "Registration location", 0),
		v.dateColumn("created_at", "Created at", 120),
		loginAt,
		operation,
	}
}

// SearchFields implements table.Hook.
func (v *UserView) SearchFields() []table.FormField {
	return []table.FormField{
		table.LikeSearch("nickname", v.t("User nickname")),
	}
}

// FormFields implements table.Hook.
func (v *UserView) FormFields(table.Record) []table.FormField {
	return []table.FormField{
		{Type: table.RenderInput, Field: "nickname", Label: v.t("Nickname"), Required: true},
		{Type: table.RenderMultiSelect, Field: "roles", Label: v.t("Role"), Options: v.roles},
	}
}

// Find implements View.
func (v *UserView) Find(ctx context.Context, id int64) (any, error) {
	return findOn(ctx, v.users.Resource, id)
}

// SetStatus pushes the status currently held by row, as left there by the
// status switch.
func (v *UserView) SetStatus(ctx context.Context, row table.Record) error {
	id, ok := row.ID()
	if !ok {
		return ErrMissingID
	}
	var status int
	switch s := row["status"].(type) {
	case float64:
		status = int(s)
	case int:
		status = s
	case int64:
		status = int(s)
	default:
		return fmt.Errorf("user %d: status %v is not a number", id, row["status"])
	}
	resp, err := v.users.UpdateStatus(ctx, &adminclient.UpdateUserStatusRequest{UserID: id, Status: status})
	if err != nil {
		return err
	}
	return resp.Err()
}

// roleRefs decodes role lists given either as ids or as role objects.
type roleRefs []int64

func (r *roleRefs) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*r = nil
		return nil
	}
	var ids []int64
	if err := json.Unmarshal(b, &ids); err == nil {
		*r = ids
		return nil
	}
	var roles []struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(b, &roles); err != nil {
		return fmt.Errorf("roles: want ids or role objects: %w", err)
	}
	out := make([]int64, 0, len(roles))
	for _, role := range roles {
		out = append(out, role.ID)
	}
	*r = out
	return nil
}

type userRolesPayload struct {
	ID    int64    `json:"id"`
	Roles roleRefs `json:"roles"`
}

// updateRoles serves the update event: an edited user only changes roles.
func (v *UserView) updateRoles(ctx context.Context, payload json.RawMessage) (any, error) {
	var p userRolesPayload
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &p); err != nil {
			return nil, fmt.Errorf("decode update payload: %w", err)
		}
	}
	if p.ID == 0 {
		return nil, ErrMissingID
	}
	ids := []int64(p.Roles)
	if ids == nil {
		ids = []int64{}
	}
	resp, err := v.users.UpdateRoles(ctx, &adminclient.UpdateUserRolesRequest{UserID: p.ID, RoleIDs: ids})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
