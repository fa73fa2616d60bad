package models

// AppBuildInfo is the version triple injected with -ldflags at build time.
// Both binaries report it: the server on GET /api/version, the client in
// its version command.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{buildVersion: version, buildDate: date, buildCommit: commit}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

func (a AppBuildInfo) BuildDate() string { return a.buildDate }

func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }
