package views

import (
	"context"

	"github.com/blogadmin/console/pkg/adminclient"
	"github.com/blogadmin/console/pkg/table"
)

// RoleView is the role management page.
type RoleView struct {
	base
	client *adminclient.Resource[adminclient.Role]
}

// NewRoleView binds the role page to its client.
func NewRoleView(client *adminclient.Resource[adminclient.Role], opts ...Option) *RoleView {
	return &RoleView{
		base:   newBase("system/role", client.Name(), newSettings(opts), crudHandlers(client)),
		client: client,
	}
}

// ColumnFields implements table.Hook.
func (v *RoleView) ColumnFields(actions table.RowActions) []table.Column {
	status := v.textColumn("is_disable", "Status", 100)
	status.Cell = table.CellSwitch
	status.Switch = v.statusSwitch()
	status.OnChange = actions.Toggle

	isDefault := v.textColumn("is_default", "Default", 80)
	isDefault.Cell = table.CellSwitch
	isDefault.Switch = &table.Switch{ActiveValue: 1, InactiveValue: 0, ActiveText: v.t("Yes"), InactiveText: v.t("No")}

	return []table.Column{
		v.selectionColumn(),
		v.idColumn(),
		v.textColumn("role_name", "Role key", 0),
		v.textColumn("role_comment", "Role name", 0),
		status,
		isDefault,
		v.dateColumn("created_at", "Created at", 170),
		v.editDeleteColumn(actions),
	}
}

// SearchFields implements table.Hook.
func (v *RoleView) SearchFields() []table.FormField {
	return []table.FormField{
		table.LikeSearch("role_comment", v.t("Role name")),
	}
}

// FormFields implements table.Hook.
func (v *RoleView) FormFields(table.Record) []table.FormField {
	return []table.FormField{
		{Type: table.RenderInput, Field: "role_name", Label: v.t("Role key"), Required: true},
		{Type: table.RenderInput, Field: "role_comment", Label: v.t("Role name"), Required: true},
		{Type: table.RenderSwitch, Field: "is_disable", Label: v.t("Disabled")},
	}
}

// Find implements View.
func (v *RoleView) Find(ctx context.Context, id int64) (any, error) {
	return findOn(ctx, v.client, id)
}
