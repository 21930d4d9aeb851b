package cli

// Export for testing
var (
	ServeFlags        = serveFlags
	ConfigFromCommand = configFromCommand
	PrintRecords      = printRecords
	Preview           = preview
)
