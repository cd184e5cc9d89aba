package application

const (
	// AppName is the application name used for directories and identification
	AppName = "sshcm"

	// Version is the tool version reported by the version subcommand
	Version = "1.1.0"

	// SchemaVersion is the store schema version this build reads and writes
	SchemaVersion = "1.1"
)
