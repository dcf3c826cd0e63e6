package v1

const (
	MissingParamsMessage        = "Missing params"
	InvalidRequestMessage       = "invalid request"
	InvalidAccessTokenMessage   = "invalid access token"
	AccessDeniedMessage         = "access denied"
	ResolveFailedMessage        = "failed to resolve location"
	SavePreferenceFailedMessage = "failed to save preference"
	GetPreferenceFailedMessage  = "failed to get preference"
	PreferenceNotFoundMessage   = "preference not found"
	RouteFailedMessage          = "failed to route to tenant"
	MarkerResetFailedMessage    = "failed to reset tenant marker"
	FallbackReportFailedMessage = "failed to build fallback report"
	TenantNotFoundMessage       = "tenant not found"
	GetTenantFailedMessage      = "failed to get tenant"
	ValidationErrorMessage      = "Validation error"
)

type ErrorStruct struct {
	Error string `json:"error"`
} // @name ErrorStruct

type ValidationErrorStruct struct {
	Error  string            `json:"error"`
	Errors []ValidationError `json:"validation_errors"`
} // @name ValidationErrorStruct

type ValidationError struct {
	FieldKey     string `json:"field_key"`
	ErrorMessage string `json:"error_message"`
}
