package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrEmailTaken         ErrCode = "EMAIL_TAKEN"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrTokenExpired       ErrCode = "TOKEN_EXPIRED"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden        ErrCode = "FORBIDDEN"
	ErrPermissionDenied ErrCode = "PERMISSION_DENIED"
	ErrLearnerOnly      ErrCode = "LEARNER_ACCESS_ONLY"
	ErrAdminOnly        ErrCode = "ADMIN_ACCESS_ONLY"
	ErrAccountRequired  ErrCode = "ACCOUNT_REQUIRED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound         ErrCode = "NOT_FOUND"
	ErrConflict         ErrCode = "CONFLICT"
	ErrDependencyExists ErrCode = "DEPENDENCY_EXISTS"
	ErrActionForbidden  ErrCode = "ACTION_FORBIDDEN"

	// ─── Sessions ──────────────────────────────────────────────────────
	// ErrSessionNotFound and ErrNoQuestions are deliberately distinct:
	// a missing session is a hard error, a session whose questions cannot
	// be resolved lets the client offer "start a new session" instead.
	ErrSessionNotFound    ErrCode = "SESSION_NOT_FOUND"
	ErrNoQuestions        ErrCode = "NO_QUESTIONS"
	ErrSessionNotActive   ErrCode = "SESSION_NOT_ACTIVE"
	ErrSessionFinished    ErrCode = "SESSION_FINISHED"
	ErrSubmitFailed       ErrCode = "SUBMIT_FAILED"
	ErrGuestLimitReached  ErrCode = "GUEST_LIMIT_REACHED"
	ErrQuestionNotInPaper ErrCode = "QUESTION_NOT_IN_SESSION"

	// ─── Question bank / import ────────────────────────────────────────
	ErrQuestionNotDraft ErrCode = "QUESTION_NOT_DRAFT"
	ErrImportInvalid    ErrCode = "IMPORT_INVALID"
	ErrImportEmpty      ErrCode = "IMPORT_EMPTY"

	// ─── Media ─────────────────────────────────────────────────────────
	ErrFileRequired    ErrCode = "FILE_REQUIRED"
	ErrUnsupportedFile ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge    ErrCode = "FILE_TOO_LARGE"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Incorrect email or password."
	case ErrEmailTaken:
		return "An account with this email already exists."
	case ErrTokenRequired:
		return "An authentication token is required."
	case ErrTokenInvalid:
		return "The authentication token is invalid."
	case ErrTokenExpired:
		return "The authentication token has expired."

	// ─── Authorization ─────────────────────────────────────────────────
	case ErrForbidden:
		return "You do not have permission to access this resource."
	case ErrPermissionDenied:
		return "Permission denied."
	case ErrLearnerOnly:
		return "This resource is restricted to learners."
	case ErrAdminOnly:
		return "This resource is restricted to administrators."
	case ErrAccountRequired:
		return "Sign up for a free account to continue."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid identifier format."
	case ErrInvalidPayload:
		return "Invalid request payload."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Resource not found."
	case ErrConflict:
		return "Resource already exists."
	case ErrDependencyExists:
		return "This record is still referenced by other data and cannot be deleted."
	case ErrActionForbidden:
		return "This action is not allowed."

	// ─── Sessions ──────────────────────────────────────────────────────
	case ErrSessionNotFound:
		return "Study session not found."
	case ErrNoQuestions:
		return "No questions could be found for this session. Try starting a new one."
	case ErrSessionNotActive:
		return "This session is no longer in progress."
	case ErrSessionFinished:
		return "This session has already been completed."
	case ErrSubmitFailed:
		return "Failed to submit your answers. Please try again."
	case ErrGuestLimitReached:
		return "You have used all your free questions. Create a free account to keep practising."
	case ErrQuestionNotInPaper:
		return "This question does not belong to the session."

	// ─── Question bank / import ────────────────────────────────────────
	case ErrQuestionNotDraft:
		return "Only draft questions can be modified."
	case ErrImportInvalid:
		return "The CSV file contains invalid rows. Fix them and try again."
	case ErrImportEmpty:
		return "The CSV file contains no data rows."

	// ─── Media ─────────────────────────────────────────────────────────
	case ErrFileRequired:
		return "A file upload is required."
	case ErrUnsupportedFile:
		return "Unsupported file type."
	case ErrFileTooLarge:
		return "The file exceeds the size limit."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
