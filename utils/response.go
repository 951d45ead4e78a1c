package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Envelope codes shared with the mall frontend. Failures still ride an
// HTTP 200; the frontend switches on the envelope code alone.
const (
	CodeSuccess      = 200
	CodeBadRequest   = 400
	CodeUnauthorized = 401
	CodeError        = 500
)

const (
	MsgSuccess      = "成功"
	MsgBadRequest   = "参数错误"
	MsgUnauthorized = "未授权，请先登录"
	MsgError        = "系统错误"
)

// Result is the uniform response envelope for every endpoint.
type Result struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data"`
}

// Success sends the success envelope with no payload.
func Success(c *gin.Context) {
	SuccessData(c, nil)
}

// SuccessData sends the success envelope wrapping data.
func SuccessData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Result{
		Code: CodeSuccess,
		Msg:  MsgSuccess,
		Data: data,
	})
}

// Fail sends a failure envelope with the given code and message.
func Fail(c *gin.Context, code int, msg string) {
	c.JSON(http.StatusOK, Result{
		Code: code,
		Msg:  msg,
		Data: nil,
	})
}

// FailUnauthorized reports a missing or unusable caller identity.
func FailUnauthorized(c *gin.Context) {
	Fail(c, CodeUnauthorized, MsgUnauthorized)
}

// FailBadRequest reports a malformed request payload or parameter.
func FailBadRequest(c *gin.Context) {
	Fail(c, CodeBadRequest, MsgBadRequest)
}

// FailError reports a storage or other internal failure. Details stay
// in the logs; the envelope carries only the generic message.
func FailError(c *gin.Context) {
	Fail(c, CodeError, MsgError)
}
