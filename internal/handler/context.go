package handler

type ContextKey string

var (
	SubCtxKey       ContextKey = "sub"
	CallerInfoCtx   ContextKey = "callerInfo"
	EmployeeInfoCtx ContextKey = "employeeInfo"
	SubunitCtx      ContextKey = "subunit"
	PostCtx         ContextKey = "post"
)
