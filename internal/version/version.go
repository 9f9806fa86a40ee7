package version

// Version is overridden at build time with -ldflags "-X dnaflow/internal/version.Version=...".
var Version = "dev"
