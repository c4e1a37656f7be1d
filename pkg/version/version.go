package version

// Build variables set through ldflags:
// -X 'github.com/compozy/fixturegen/pkg/version.Version=v1.0.0'
// -X 'github.com/compozy/fixturegen/pkg/version.CommitHash=abc123'
// -X 'github.com/compozy/fixturegen/pkg/version.BuildDate=2024-01-01T00:00:00Z'
var (
	// Version is the semantic version of the binary (e.g., "1.0.0")
	Version = "unknown"
	// CommitHash is the git commit hash used to build the binary
	CommitHash = "unknown"
	// BuildDate is the timestamp when the binary was built (RFC3339 format)
	BuildDate = "unknown"
)

// GetVersion returns the version followed by the commit and build date when
// they are known.
func GetVersion() string {
	if CommitHash == "unknown" && BuildDate == "unknown" {
		return Version
	}
	return Version + " (" + CommitHash + ", " + BuildDate + ")"
}
