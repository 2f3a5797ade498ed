package menu

import (
	"errors"
	"fmt"
)

// Build returns the application menu: a "Sumo" submenu followed by an
// "Edit" submenu. The result is the same on every call.
func Build() (*Menu, error) {
	m := &Menu{
		Submenus: []*Submenu{
			{
				Label:   "Sumo",
				Enabled: true,
				Children: []Node{
					ActionItem{ID: ItemAboutSumo, Label: "About Sumo", Enabled: true},
					Separator{},
					Predefined{Kind: Quit},
				},
			},
			{
				Label:   "Edit",
				Enabled: true,
				Children: []Node{
					Predefined{Kind: Undo},
					Predefined{Kind: Redo},
					Separator{},
					Predefined{Kind: Cut},
					Predefined{Kind: Copy},
					Predefined{Kind: Paste},
					Predefined{Kind: SelectAll},
				},
			},
		},
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks labels, action ids and predefined kinds across the tree.
func (m *Menu) Validate() error {
	if m == nil {
		return errors.New("menu is nil")
	}
	seen := make(map[ItemID]bool)
	for i, sub := range m.Submenus {
		if sub == nil {
			return fmt.Errorf("submenu %d is nil", i)
		}
		if err := validateSubmenu(sub, seen); err != nil {
			return err
		}
	}
	return nil
}

func validateSubmenu(sub *Submenu, seen map[ItemID]bool) error {
	if sub.Label == "" {
		return errors.New("submenu has empty label")
	}
	for _, child := range sub.Children {
		switch n := child.(type) {
		case ActionItem:
			if n.ID == ItemUnknown {
				return fmt.Errorf("%s: action %q has no identifier", sub.Label, n.Label)
			}
			if n.Label == "" {
				return fmt.Errorf("%s: action %s has empty label", sub.Label, n.ID)
			}
			if seen[n.ID] {
				return fmt.Errorf("%s: duplicate action %s", sub.Label, n.ID)
			}
			seen[n.ID] = true
		case Separator:
		case Predefined:
			if n.Kind.Label() == "" {
				return fmt.Errorf("%s: unknown predefined item %s", sub.Label, n.Kind)
			}
		case *Submenu:
			if n == nil {
				return fmt.Errorf("%s: nil submenu", sub.Label)
			}
			if err := validateSubmenu(n, seen); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%s: unsupported node %T", sub.Label, child)
		}
	}
	return nil
}

// InstallError reports that the host rejected the menu tree.
type InstallError struct {
	Err error
}

func (e *InstallError) Error() string {
	return "install menu: " + e.Err.Error()
}

func (e *InstallError) Unwrap() error {
	return e.Err
}
