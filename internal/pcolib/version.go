package pcolib

// Version is overridden at build time:
// go build -ldflags "-X github.com/pcotoolkit/cli/internal/pcolib.Version=x.y.z"
var Version = "devel"
