package domain

type CtxKey string

const (
	KeyUserID    CtxKey = "UserID"
	KeyUserName  CtxKey = "Name"
	KeyUserEmail CtxKey = "Email"
	KeyUserRole  CtxKey = "Role"
)
