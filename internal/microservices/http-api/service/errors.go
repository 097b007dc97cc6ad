package service

import "errors"

// Error kinds. Handlers map these to HTTP status codes; anything that is not
// a *Error is an internal failure.
var (
	ErrValidation          = errors.New("validation failed")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInsufficientTickets = errors.New("insufficient monthly tickets")
)

// Error is a failure the client is allowed to see.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// auth
var (
	ErrMissingRegisterFields = newError(ErrValidation, "用户名、密码和邮箱不能为空")
	ErrMissingCredentials    = newError(ErrValidation, "用户名和密码不能为空")
	ErrNameInUse             = newError(ErrConflict, "用户名已存在")
	ErrEmailInUse            = newError(ErrConflict, "邮箱已被使用，请使用其他邮箱")
	ErrUserNotFound          = newError(ErrNotFound, "用户不存在")
	ErrAdminNotFound         = newError(ErrNotFound, "管理员不存在")
	ErrInvalidCredentials    = newError(ErrUnauthorized, "密码错误")
	ErrInvalidToken          = newError(ErrUnauthorized, "无效的令牌")
)

// profile
var (
	ErrUsernameRequired       = newError(ErrValidation, "用户名不能为空")
	ErrPasswordFieldsRequired = newError(ErrValidation, "当前密码和新密码不能为空")
	ErrWrongCurrentPassword   = newError(ErrValidation, "当前密码不正确")
)

// catalog
var (
	ErrNovelNotFound         = newError(ErrNotFound, "没有找到该小说")
	ErrChaptersNotFound      = newError(ErrNotFound, "没有找到该小说的章节")
	ErrChapterNotFound       = newError(ErrNotFound, "没有找到该章节")
	ErrNoSearchResults       = newError(ErrNotFound, "没有找到符合条件的小说")
	ErrNoFeaturedNovels      = newError(ErrNotFound, "没有找到推荐小说")
	ErrChapterFieldsRequired = newError(ErrValidation, "章节标题和内容不能为空")
)

// bookshelf and reward
var (
	ErrMissingParams       = newError(ErrValidation, "缺少必要的参数")
	ErrAlreadyOnShelf      = newError(ErrConflict, "此小说已在书架上")
	ErrShelfEmpty          = newError(ErrNotFound, "暂无小说")
	ErrShelfTargetNotFound = newError(ErrNotFound, "用户或小说不存在")
	ErrInvalidTickets      = newError(ErrValidation, "请输入有效的打赏月票数")
	ErrNotEnoughTickets    = newError(ErrInsufficientTickets, "月票数不足")
)

// admin
var (
	ErrNoUsers            = newError(ErrNotFound, "没有用户信息")
	ErrNoMatchingUsers    = newError(ErrNotFound, "未找到用户")
	ErrAdminNovelNotFound = newError(ErrNotFound, "未找到小说")
	ErrNovelTitleRequired = newError(ErrValidation, "小说标题不能为空")
)
