package version

import "runtime"

// Build metadata, overridable via -ldflags at release time.
var (
	AppName        = "rpg-bot"
	AppDescription = "Dice rolling and music playback bot for RPG servers"
	BuildDate      = ""
	GoVersion      = runtime.Version()
)
