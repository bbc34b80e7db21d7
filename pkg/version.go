package gnmoth

var (
	// Version of GNmoth.
	Version = "v0.1.0"
	// Build timestamp, set during the build with ldflags.
	Build = "n/a"
)
