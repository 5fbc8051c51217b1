package consts

// Recommended permissions for different types of files and directories Grabarr might create.
const (
	// ** World Readable **
	// Media directories - world readable
	PermsGenericDir  = 0o755
	PermsDownloadDir = 0o755

	// Media files - world readable
	PermsMediaFile = 0o644

	// Other files
	PermsLogFile = 0o644

	// ** Private **
	// Sensitive files - owner only
	PermsConfigDir  = 0o750 // Private settings directory
	PermsConfigFile = 0o600 // Private settings file
)
