package db

// Export for testing
var BuildDSN = buildDSN
