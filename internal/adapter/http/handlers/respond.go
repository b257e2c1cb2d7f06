package handlers

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"memberdesk/internal/core/domain"
	"memberdesk/pkg/envelope"
)

// decodeBody reads the request body once and decodes it into both the typed
// request and, when raw is non-nil, a raw field map used for
// present-vs-absent checks on partial updates. A zero-length body reads as
// an empty object, so a bare PUT is an empty patch rather than a 400.
func decodeBody(c *gin.Context, dst any, raw *map[string]json.RawMessage) error {
	body, err := c.GetRawData()
	if err != nil {
		return err
	}
	if len(body) == 0 {
		body = []byte("{}")
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return err
	}
	if raw != nil {
		if err := json.Unmarshal(body, raw); err != nil {
			return err
		}
	}
	return nil
}

// bindFailure turns a body-decoding error into a 400 envelope. Type
// mismatches on known fields are reported as field-level violations.
func bindFailure(err error, lang string) envelope.Envelope {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return envelope.Fail(envelope.MsgValidationErrors, lang).WithErrors([]envelope.FieldError{{
			Field:   typeErr.Field,
			Rule:    string(domain.RuleType),
			Message: fmt.Sprintf("%s must be of type %s", typeErr.Field, typeErr.Type),
		}})
	}
	return envelope.Fail(envelope.MsgInvalidPayload, lang)
}

func fieldErrors(vErr *domain.ValidationError) []envelope.FieldError {
	errs := make([]envelope.FieldError, 0, len(vErr.Violations))
	for _, v := range vErr.Violations {
		errs = append(errs, envelope.FieldError{
			Field:   v.Field,
			Rule:    string(v.Rule),
			Message: v.Message,
		})
	}
	return errs
}
