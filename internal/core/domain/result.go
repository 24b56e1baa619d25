package domain

// OperationResult is the uniform outcome value returned by every mutating
// business operation. It decouples the service layer from transport-level
// response construction: services decide the status code and message, the
// HTTP layer only renders them.
//
// Success implies an empty Errors string. Failure implies a non-empty,
// human-readable Errors string and one of the HTTP-style codes 400, 404,
// 409 or 500.
type OperationResult struct {
	Success    bool
	Errors     string
	StatusCode int
}

// OK returns a successful result.
func OK() OperationResult {
	return OperationResult{Success: true}
}

// Fail returns a failed result carrying a message and an HTTP-style code.
func Fail(errors string, statusCode int) OperationResult {
	return OperationResult{Success: false, Errors: errors, StatusCode: statusCode}
}
