package entities

// Version is stamped at build time with -ldflags "-X .../entities.Version=<tag>".
var Version = "dev" //nolint:gochecknoglobals // set by the linker

// UserAgent identifies this program on outbound API calls.
func UserAgent() string {
	return "hookrunner/" + Version
}
