package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/domain"
)

// CreateAttachment 只登记附件的元数据，文件本体由对象存储服务负责上传
func (h *Handler) CreateAttachment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FileName    string `json:"fileName" validate:"required,max=512"`
		ContentType string `json:"contentType" validate:"required,max=128"`
		Size        int64  `json:"size" validate:"required,min=1"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	caller := r.Context().Value(CallerInfoCtx).(*domain.Employee)

	attachment := &domain.Attachment{
		OwnerID:     caller.ID,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		Size:        req.Size,
	}

	if err := h.repository.CreateAttachment(attachment); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusCreated, "附件登记成功", attachment)
}

func (h *Handler) GetAttachment(w http.ResponseWriter, r *http.Request) {
	attachmentIDParam := chi.URLParam(r, "id")
	attachmentID, err := strconv.ParseInt(attachmentIDParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "附件ID无效")
		return
	}

	attachment, err := h.repository.GetAttachmentByID(attachmentID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusNotFound, "附件不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusOK, "获取附件成功", attachment)
}
