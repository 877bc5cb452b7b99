package http

// Export for testing
var RegisterStatic = registerStatic
var ClientKey = clientKey
