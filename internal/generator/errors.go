package generator

import "fmt"

// Messages shown to end users. Diagnostics stay in the server log.
const (
	MessageContentTooShort = "내용이 너무 짧습니다. 최소 10자 이상 입력해주세요."
	MessageGenerateFailed  = "AI 제목 생성 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요."
)

// ValidationError rejects a request before any upstream call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// UpstreamError wraps a failed call to the completion API.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream completion failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
