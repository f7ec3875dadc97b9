package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/rustadex/stderr/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/rustadex/stderr/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/rustadex/stderr/internal/version.Date={{.Date}}
)
