package contracts

// EVMVersionFor maps a solc release to the EVM version passed in the
// standard-json settings. The ladder follows the solc release notes: 0.8.24
// introduced cancun support, 0.8.20 made shanghai the default. Anything the
// simulated backend runs (post-merge forks) executes all of these.
func EVMVersionFor(major, minor, patch int) string {
	switch {
	case major > 0 || minor > 8:
		return "" // future solc, let the compiler pick its default
	case patch >= 24:
		return "cancun"
	case patch >= 20:
		return "shanghai"
	default:
		return "paris"
	}
}
