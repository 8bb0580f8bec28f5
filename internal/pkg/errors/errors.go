package errors

import "errors"

// Custom application errors
var (
	ErrInvalidInput       = errors.New("invalid input")                       // Malformed calculation or request input
	ErrReminderNotFound   = errors.New("reminder not found")                  // Reminder not found for the user
	ErrVehicleNotFound    = errors.New("vehicle not found")                   // Vehicle not found for the user
	ErrServiceNotFound    = errors.New("scheduled service not found")         // Scheduled service not found under the vehicle
	ErrDatabaseOperation  = errors.New("database operation failed")           // Generic persistence error
	ErrScheduling         = errors.New("notification scheduling failed")      // Non-fatal notification error
	ErrLineAPI            = errors.New("failed to communicate with LINE API") // Generic LINE API error
	ErrStorageUnavailable = errors.New("photo storage is not configured")     // Photo store missing credentials
	ErrUpload             = errors.New("photo upload failed")                 // Photo store rejected the upload
	ErrInternalServer     = errors.New("internal server error")               // Generic internal error
)
