package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies why a request failed.
type Kind int

const (
	// KindNetwork: the request never produced a response (DNS, refused, timeout, cancelled).
	KindNetwork Kind = iota + 1
	// KindStatus: the server answered with a non-2xx status.
	KindStatus
	// KindDecode: a 2xx body could not be decoded into the expected type.
	KindDecode
	// KindEncode: the request payload could not be marshalled.
	KindEncode
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	case KindEncode:
		return "encode"
	default:
		return "unknown"
	}
}

// DefaultUserMessage is shown when nothing more specific is known.
const DefaultUserMessage = "Có lỗi xảy ra"

// Error is returned by every Client operation that fails.
// StatusCode is 0 unless Kind is KindStatus.
type Error struct {
	Kind       Kind
	Method     string
	Path       string
	StatusCode int
	// Message is the server's "message" field when the error body carried one.
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindStatus:
		if e.Message != "" {
			return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
		}
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	default:
		return fmt.Sprintf("%s %s: %s error: %v", e.Method, e.Path, e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// UserMessage returns a short Vietnamese message suitable for an error banner.
func (e *Error) UserMessage() string {
	switch e.Kind {
	case KindNetwork:
		return "Không thể kết nối tới máy chủ"
	case KindStatus:
		if e.Message != "" {
			return e.Message
		}
		switch e.StatusCode {
		case http.StatusUnauthorized:
			return "Vui lòng đăng nhập để tiếp tục"
		case http.StatusForbidden:
			return "Bạn không có quyền thực hiện thao tác này"
		case http.StatusNotFound:
			return "Không tìm thấy dữ liệu"
		}
	}
	return DefaultUserMessage
}

// IsStatus reports whether err is a status error with the given code.
func IsStatus(err error, code int) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindStatus && e.StatusCode == code
}

// UserMessage extracts a user-facing message from any error.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.UserMessage()
	}
	return DefaultUserMessage
}

// statusError builds a KindStatus error, lifting the envelope message out of body when present.
func statusError(method, path string, code int, body []byte) *Error {
	var env struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(body, &env)
	msg := env.Message
	if msg == "" {
		msg = env.Error
	}
	return &Error{
		Kind:       KindStatus,
		Method:     method,
		Path:       path,
		StatusCode: code,
		Message:    msg,
		Err:        fmt.Errorf("unexpected status %d", code),
	}
}
