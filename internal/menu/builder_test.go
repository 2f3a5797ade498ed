package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	m, err := Build()
	require.NoError(t, err)
	require.Len(t, m.Submenus, 2)

	app := m.Submenus[0]
	assert.Equal(t, "Sumo", app.Label)
	assert.True(t, app.Enabled)
	assert.Equal(t, []Node{
		ActionItem{ID: ItemAboutSumo, Label: "About Sumo", Enabled: true},
		Separator{},
		Predefined{Kind: Quit},
	}, app.Children)

	edit := m.Submenus[1]
	assert.Equal(t, "Edit", edit.Label)
	assert.True(t, edit.Enabled)
	assert.Equal(t, []Node{
		Predefined{Kind: Undo},
		Predefined{Kind: Redo},
		Separator{},
		Predefined{Kind: Cut},
		Predefined{Kind: Copy},
		Predefined{Kind: Paste},
		Predefined{Kind: SelectAll},
	}, edit.Children)
}

func TestBuildDeterministic(t *testing.T) {
	first, err := Build()
	require.NoError(t, err)
	second, err := Build()
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.NotSame(t, first.Submenus[0], second.Submenus[0])
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		menu    *Menu
		wantErr string
	}{
		{
			name:    "nil menu",
			menu:    nil,
			wantErr: "menu is nil",
		},
		{
			name:    "nil submenu",
			menu:    &Menu{Submenus: []*Submenu{nil}},
			wantErr: "submenu 0 is nil",
		},
		{
			name:    "empty submenu label",
			menu:    &Menu{Submenus: []*Submenu{{Enabled: true}}},
			wantErr: "empty label",
		},
		{
			name: "unknown action id",
			menu: &Menu{Submenus: []*Submenu{{
				Label:    "Sumo",
				Children: []Node{ActionItem{Label: "About Sumo"}},
			}}},
			wantErr: "has no identifier",
		},
		{
			name: "empty action label",
			menu: &Menu{Submenus: []*Submenu{{
				Label:    "Sumo",
				Children: []Node{ActionItem{ID: ItemAboutSumo}},
			}}},
			wantErr: "empty label",
		},
		{
			name: "duplicate action",
			menu: &Menu{Submenus: []*Submenu{
				{Label: "Sumo", Children: []Node{ActionItem{ID: ItemAboutSumo, Label: "About Sumo"}}},
				{Label: "Help", Children: []Node{ActionItem{ID: ItemAboutSumo, Label: "About"}}},
			}},
			wantErr: "duplicate action about_sumo",
		},
		{
			name: "unknown predefined kind",
			menu: &Menu{Submenus: []*Submenu{{
				Label:    "Edit",
				Children: []Node{Predefined{Kind: PredefinedKind(42)}},
			}}},
			wantErr: "PredefinedKind(42)",
		},
		{
			name: "nested submenu",
			menu: &Menu{Submenus: []*Submenu{{
				Label: "Sumo",
				Children: []Node{&Submenu{
					Label:    "More",
					Children: []Node{ActionItem{ID: ItemAboutSumo, Label: "About Sumo"}},
				}},
			}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.menu.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestInstallError(t *testing.T) {
	inner := assert.AnError
	err := &InstallError{Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "install menu: "+inner.Error(), err.Error())
}
