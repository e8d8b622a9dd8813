package usercontext

// Shared Locals/session keys used across controllers and middlewares
const (
	AuthKey          = "authenticated"
	KeyUserID        = "user_id"
	KeyUserEmail     = "user_email"
	KeyUserPlan      = "user_plan"
	KeyFromProtected = "from_protected"
	KeyUserContext   = "USER_CONTEXT"
)
