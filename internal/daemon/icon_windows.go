//go:build windows
// +build windows

package daemon

import _ "embed"

//go:embed icon.ico
var clockIcon []byte
