package version

// Version is the rules-merge release, set at build time:
// go build -ldflags "-X rules-merge/internal/version.Version=v1.2.0".
var Version = "dev"
