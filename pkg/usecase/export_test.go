package usecase

// Export for testing
var ErrorText = errorText
