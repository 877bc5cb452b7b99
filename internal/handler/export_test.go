package handler

// Export for testing
type TokenResponse = tokenResponse
type VerifyResponse = verifyResponse
type QueueDepthResponse = queueDepthResponse
type CommentResponse = commentResponse
type NonceResponse = nonceResponse
type LoginResponse = loginResponse
type LockedResponse = lockedResponse

var WriteServiceError = writeServiceError
