package services

import "errors"

// Common service-level errors
var (
	// Submission errors
	ErrSubmissionNotFound = errors.New("submission not found")

	// Favorites and account errors
	ErrInvalidUsername = errors.New("invalid username")
	ErrNoURLs          = errors.New("no urls given")
)
