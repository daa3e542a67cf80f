package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status:  "error",
		Error:   "invalid_request",
		Details: "Invalid request format",
	}

	ErrAuthenticationFailed = ErrorResponse{
		Status: "error",
		Error:  "authentication_failed",
	}

	ErrNotFound = ErrorResponse{
		Status: "error",
		Error:  "not_found",
	}

	ErrConflict = ErrorResponse{
		Status:  "error",
		Error:   "conflict",
		Details: "Resource already exists",
	}

	ErrGalleryAccessDenied = ErrorResponse{
		Status:  "error",
		Error:   "gallery_access_denied",
		Details: "Wrong password or gallery expired",
	}
)
