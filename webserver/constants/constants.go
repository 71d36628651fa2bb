package constants

const (
	ResourceNotFound    = "Resource not found"
	EndpointNotFound    = "Endpoint not found"
	BadRequest          = "Bad request"
	Forbidden           = "Forbidden"
	Unauthorized        = "Unauthorized"
	InternalServerError = "Internal server error"
	MethodNotAllowed    = "Method not allowed"
	BodyRequired        = "A body is required for this endpoint"
)
