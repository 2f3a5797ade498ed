package tray

import _ "embed"

// The Windows tray loads its icon as ICO. icon.ico wraps icon.png as a single
// PNG-compressed entry.
//
//go:embed icon.ico
var iconData []byte
