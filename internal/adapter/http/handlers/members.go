package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"memberdesk/internal/adapter/http/dto"
	"memberdesk/internal/adapter/http/mapper"
	"memberdesk/internal/adapter/http/middleware"
	"memberdesk/internal/adapter/http/validation"
	"memberdesk/internal/core/domain"
	"memberdesk/internal/core/ports"
	"memberdesk/pkg/envelope"
)

type MemberHandler struct {
	memberService ports.MemberService
	exposeErrors  bool
}

// NewMemberHandler wires the member routes. exposeErrors controls whether
// upstream error detail is included in 500 responses; it is false in
// production, where detail is only logged.
func NewMemberHandler(memberService ports.MemberService, exposeErrors bool) *MemberHandler {
	return &MemberHandler{memberService: memberService, exposeErrors: exposeErrors}
}

func (h *MemberHandler) ListMembers(c *gin.Context) {
	lang := middleware.GetLang(c)

	members, err := h.memberService.List(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list members", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			envelope.Fail(envelope.MsgFailListMembers, lang).WithDetail(err, h.exposeErrors),
		)
		return
	}

	items := mapper.ToMemberItems(members)
	c.JSON(http.StatusOK, envelope.OK(items).WithCount(len(items)))
}

func (h *MemberHandler) CreateMember(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateMemberRequest
	if err := decodeBody(c, &req, nil); err != nil {
		c.JSON(http.StatusBadRequest, bindFailure(err, lang))
		return
	}

	in, vErr := validation.BuildCreateMemberInput(req)
	if vErr != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail(envelope.MsgValidationErrors, lang).WithErrors(fieldErrors(vErr)))
		return
	}

	member, err := h.memberService.Create(c.Request.Context(), in)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			msgKey := envelope.MsgValidationErrors
			if validationErr.RequiredOnly() {
				msgKey = envelope.MsgMemberRequiredFields
			}
			c.JSON(http.StatusBadRequest, envelope.Fail(msgKey, lang).WithErrors(fieldErrors(validationErr)))
		case errors.Is(err, domain.ErrEmailExists):
			c.JSON(http.StatusBadRequest, envelope.Fail(envelope.MsgEmailExists, lang))
		default:
			zap.L().Error("failed to create member", zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				envelope.Fail(envelope.MsgFailCreateMember, lang).WithDetail(err, h.exposeErrors),
			)
		}
		return
	}

	c.JSON(http.StatusCreated, envelope.OKMessage(mapper.ToMemberItem(member), envelope.MsgMemberCreated, lang))
}

func (h *MemberHandler) UpdateMember(c *gin.Context) {
	lang := middleware.GetLang(c)
	memberID := c.Param("id")

	var req dto.UpdateMemberRequest
	var raw map[string]json.RawMessage
	if err := decodeBody(c, &req, &raw); err != nil {
		c.JSON(http.StatusBadRequest, bindFailure(err, lang))
		return
	}

	in, vErr := validation.BuildUpdateMemberInput(req, raw)
	if vErr != nil {
		c.JSON(http.StatusBadRequest, envelope.Fail(envelope.MsgValidationErrors, lang).WithErrors(fieldErrors(vErr)))
		return
	}

	member, err := h.memberService.Update(c.Request.Context(), memberID, in)
	if err != nil {
		var validationErr *domain.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, envelope.Fail(envelope.MsgValidationErrors, lang).WithErrors(fieldErrors(validationErr)))
		case errors.Is(err, domain.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, envelope.Fail(envelope.MsgMemberNotFound, lang))
		case errors.Is(err, domain.ErrEmailExists):
			c.JSON(http.StatusBadRequest, envelope.Fail(envelope.MsgEmailExists, lang))
		default:
			zap.L().Error("failed to update member", zap.String("member_id", memberID), zap.Error(err))
			c.JSON(
				http.StatusInternalServerError,
				envelope.Fail(envelope.MsgFailUpdateMember, lang).WithDetail(err, h.exposeErrors),
			)
		}
		return
	}

	c.JSON(http.StatusOK, envelope.OKMessage(mapper.ToMemberItem(member), envelope.MsgMemberUpdated, lang))
}

func (h *MemberHandler) DeleteMember(c *gin.Context) {
	lang := middleware.GetLang(c)
	memberID := c.Param("id")

	if err := h.memberService.Delete(c.Request.Context(), memberID); err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, envelope.Fail(envelope.MsgMemberNotFound, lang))
			return
		}

		zap.L().Error("failed to delete member", zap.String("member_id", memberID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			envelope.Fail(envelope.MsgFailDeleteMember, lang).WithDetail(err, h.exposeErrors),
		)
		return
	}

	c.JSON(http.StatusOK, envelope.OKMessage(nil, envelope.MsgMemberDeleted, lang))
}
