// Package menu describes the native application menu and routes its events.
package menu

import "fmt"

// Node is one entry of the menu tree. The concrete types are ActionItem,
// Separator, Predefined and Submenu.
type Node interface {
	node()
}

// ActionItem is an application-defined entry whose activation reaches the Router.
type ActionItem struct {
	ID      ItemID
	Label   string
	Enabled bool
}

// Separator is a horizontal divider.
type Separator struct{}

// Predefined is an entry whose behaviour belongs to the host (quit, clipboard, ...).
type Predefined struct {
	Kind PredefinedKind
}

// Submenu groups child nodes under a label.
type Submenu struct {
	Label    string
	Enabled  bool
	Children []Node
}

func (ActionItem) node() {}
func (Separator) node()  {}
func (Predefined) node() {}
func (*Submenu) node()   {}

// PredefinedKind names a host-implemented menu item.
type PredefinedKind int

const (
	Quit PredefinedKind = iota + 1
	Undo
	Redo
	Cut
	Copy
	Paste
	SelectAll
)

var predefinedLabels = map[PredefinedKind]string{
	Quit:      "Quit",
	Undo:      "Undo",
	Redo:      "Redo",
	Cut:       "Cut",
	Copy:      "Copy",
	Paste:     "Paste",
	SelectAll: "Select All",
}

// Label returns the default title for the item.
func (k PredefinedKind) Label() string {
	return predefinedLabels[k]
}

func (k PredefinedKind) String() string {
	if l, ok := predefinedLabels[k]; ok {
		return l
	}
	return fmt.Sprintf("PredefinedKind(%d)", int(k))
}

// Menu is the top-level container installed as the application menu.
type Menu struct {
	Submenus []*Submenu
}
