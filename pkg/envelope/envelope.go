// Package envelope builds the uniform response wrapper every API route
// returns: {success, data?, count?, message?, error?, errors?, pagination?}.
package envelope

import (
	"memberdesk/pkg/translator"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"
)

// FieldError is one field-level validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Pagination describes one page of a listed collection.
// Pages is ceil(Total/Limit).
type Pagination struct {
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

type Envelope struct {
	Success    bool         `json:"success"`
	Data       any          `json:"data,omitempty"`
	Count      *int         `json:"count,omitempty"`
	Message    string       `json:"message,omitempty"`
	Error      string       `json:"error,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
	Pagination *Pagination  `json:"pagination,omitempty"`
}

// OK wraps data in a successful envelope.
func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

// OKMessage wraps data with a translated confirmation message.
func OKMessage(data any, msgKey, lang string) Envelope {
	return Envelope{Success: true, Data: data, Message: Translate(msgKey, lang)}
}

// Fail builds a failed envelope with a translated message.
func Fail(msgKey, lang string) Envelope {
	return Envelope{Success: false, Message: Translate(msgKey, lang)}
}

// WithCount attaches the entity count of a listed collection.
func (e Envelope) WithCount(n int) Envelope {
	e.Count = &n
	return e
}

// WithPagination attaches the pagination block of a listed collection.
func (e Envelope) WithPagination(p Pagination) Envelope {
	e.Pagination = &p
	return e
}

// WithErrors attaches structured per-field validation errors.
func (e Envelope) WithErrors(errs []FieldError) Envelope {
	e.Errors = errs
	return e
}

// WithDetail attaches upstream error detail. In production mode the detail
// is suppressed from the body; callers log it separately for operators.
func (e Envelope) WithDetail(err error, expose bool) Envelope {
	if expose && err != nil {
		e.Error = err.Error()
	}
	return e
}

// Translate resolves a message key for the requested language, falling back
// to English and finally to the key itself.
func Translate(msgKey, lang string) string {
	l := i18n.NewLocalizer(translator.Translator, lang, "en")
	m := i18n.LocalizeConfig{}
	m.MessageID = msgKey
	msg, err := l.Localize(&m)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", msgKey), zap.Error(err))
		return msgKey
	}
	return msg
}
