package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/domain"
)

func (h *Handler) GetAllSubunits(w http.ResponseWriter, r *http.Request) {
	subunits, err := h.repository.GetAllSubunits()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, "获取部门列表成功", subunits)
}

func (h *Handler) GetSubunit(w http.ResponseWriter, r *http.Request) {
	subunit := r.Context().Value(SubunitCtx).(*domain.Subunit)
	h.successResponse(w, r, http.StatusOK, "获取部门信息成功", subunit)
}

func (h *Handler) CreateSubunit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name" validate:"required,min=2,max=512"`
		Address  string `json:"address" validate:"required,min=4,max=256"`
		Phone    string `json:"phone" validate:"required,min=6,max=32"`
		Email    string `json:"email" validate:"required,email"`
		LeaderID int64  `json:"leaderId" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 负责人必须指向一个存在的员工
	if _, err := h.repository.GetEmployeeByID(req.LeaderID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusNotFound, "负责人不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	subunit := &domain.Subunit{
		Name:     req.Name,
		Address:  req.Address,
		Phone:    req.Phone,
		Email:    req.Email,
		LeaderID: req.LeaderID,
	}

	if err := h.repository.CreateSubunit(subunit); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "subunits_email_key":
				h.errorResponse(w, r, http.StatusConflict, "邮箱已存在")
			case "subunits_leader_id_fkey":
				h.errorResponse(w, r, http.StatusNotFound, "负责人不存在")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusCreated, "部门创建成功", subunit)
}

func (h *Handler) UpdateSubunit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     *string `json:"name" validate:"omitempty,min=2,max=512"`
		Address  *string `json:"address" validate:"omitempty,min=4,max=256"`
		Phone    *string `json:"phone" validate:"omitempty,min=6,max=32"`
		Email    *string `json:"email" validate:"omitempty,email"`
		LeaderID *int64  `json:"leaderId"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Name == nil && req.Address == nil && req.Phone == nil && req.Email == nil && req.LeaderID == nil {
		h.errorResponse(w, r, http.StatusUnprocessableEntity, "所有字段都为空")
		return
	}

	subunit := r.Context().Value(SubunitCtx).(*domain.Subunit)

	if req.Name != nil {
		subunit.Name = *req.Name
	}
	if req.Address != nil {
		subunit.Address = *req.Address
	}
	if req.Phone != nil {
		subunit.Phone = *req.Phone
	}
	if req.Email != nil {
		subunit.Email = *req.Email
	}
	if req.LeaderID != nil {
		if _, err := h.repository.GetEmployeeByID(*req.LeaderID); err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, http.StatusNotFound, "负责人不存在")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}
		subunit.LeaderID = *req.LeaderID
	}

	if err := h.repository.UpdateSubunit(subunit); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "subunits_email_key":
				h.errorResponse(w, r, http.StatusConflict, "邮箱已存在")
			case "subunits_leader_id_fkey":
				h.errorResponse(w, r, http.StatusNotFound, "负责人不存在")
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusConflict, "更新部门信息失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusCreated, "更新部门信息成功", subunit)
}
