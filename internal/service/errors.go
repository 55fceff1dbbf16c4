package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid     = errors.New("参数错误")
	ErrPostNotFound     = errors.New("帖子不存在")
	ErrVideoNotFound    = errors.New("视频记录不存在")
	ErrUserFollowExist  = errors.New("用户已关注")
	ErrUserFollowSelf   = errors.New("用户不能关注自己")
	ErrFileNotSupported = errors.New("不支持的文件类型")
	UnauthorizedError   = errors.New("权限不足")
	UnExpectedError     = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:     BadRequest,
	ErrPostNotFound:     NotFound,
	ErrVideoNotFound:    NotFound,
	ErrUserFollowExist:  BadRequest,
	ErrUserFollowSelf:   BadRequest,
	ErrFileNotSupported: BadRequest,
	UnauthorizedError:   Unauthorized,
	UnExpectedError:     InternalServerError,
}
