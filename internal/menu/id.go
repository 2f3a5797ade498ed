package menu

// ItemID identifies an application-defined menu action. The set is closed:
// every identifier the host delivers is parsed into one of these values, and
// anything unrecognised becomes ItemUnknown.
type ItemID int

const (
	// ItemUnknown covers host-handled predefined items and unrecognised ids.
	ItemUnknown ItemID = iota
	// ItemAboutSumo opens the About dialog.
	ItemAboutSumo
)

var itemIDNames = map[ItemID]string{
	ItemAboutSumo: "about_sumo",
}

// String returns the wire identifier, or "" for ItemUnknown.
func (id ItemID) String() string {
	return itemIDNames[id]
}

// ParseItemID maps a host identifier to an ItemID.
func ParseItemID(s string) ItemID {
	for id, name := range itemIDNames {
		if name == s {
			return id
		}
	}
	return ItemUnknown
}

// Event is a menu activation delivered by the host.
type Event struct {
	ID string
}
