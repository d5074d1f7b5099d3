package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	amqp "github.com/rabbitmq/amqp091-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/domain"
	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/utils"
)

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeInfoCtx).(*domain.Employee)
	h.successResponse(w, r, http.StatusOK, "获取员工信息成功", employee)
}

func (h *Handler) RegisterEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email     string `json:"email" validate:"required,email"`
		FullName  string `json:"fullName" validate:"required"`
		Role      string `json:"role" validate:"required,oneof=employee moderator admin"`
		SubunitID int64  `json:"subunitId" validate:"required"`
		Password  string `json:"password" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 检查密码复杂度
	if err := utils.ValidatePassword(req.Password); err != nil {
		h.errorResponse(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	// 对密码进行哈希
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 插入员工到数据库中
	employee := &domain.Employee{
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		FullName:     req.FullName,
		Role:         domain.Role(req.Role),
		SubunitID:    req.SubunitID,
	}

	if err := h.repository.CreateEmployee(employee); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "employees_email_key":
				h.errorResponse(w, r, http.StatusConflict, "邮箱已存在")
			case "employees_subunit_id_fkey":
				h.errorResponse(w, r, http.StatusNotFound, "部门不存在")
			default:
				h.internalServerError(w, r, err)
			}
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 准备邮件
	mailMessage := domain.MailMessage{
		Type: "create_employee",
		To:   employee.Email,
		Data: domain.CreateEmployeeMailData{
			FullName: req.FullName,
			Email:    req.Email,
			Password: req.Password,
		},
	}

	// 对邮件进行序列化
	emailData, err := json.Marshal(mailMessage)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 将邮件发送到消息队列
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mailChannel.PublishWithContext(
		ctx,
		"",
		"email_queue",
		true,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        emailData,
		},
	); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 成功响应
	h.successResponse(w, r, http.StatusCreated, "员工注册成功", employee)
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email     *string `json:"email" validate:"omitempty,email"`
		FullName  *string `json:"fullName"`
		Role      *string `json:"role" validate:"omitempty,oneof=employee moderator admin"`
		SubunitID *int64  `json:"subunitId"`
		IsFired   *bool   `json:"isFired"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	// 所有字段都为空的请求没有意义
	if req.Email == nil && req.FullName == nil && req.Role == nil && req.SubunitID == nil && req.IsFired == nil {
		h.errorResponse(w, r, http.StatusUnprocessableEntity, "所有字段都为空")
		return
	}

	employee := r.Context().Value(EmployeeInfoCtx).(*domain.Employee)

	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.FullName != nil {
		employee.FullName = *req.FullName
	}
	if req.Role != nil {
		employee.Role = domain.Role(*req.Role)
	}
	if req.SubunitID != nil {
		employee.SubunitID = *req.SubunitID
	}
	if req.IsFired != nil {
		employee.IsFired = *req.IsFired
	}

	if err := h.repository.UpdateEmployee(employee); err != nil {
		var pgErr *pgconn.PgError
		switch {
		case errors.As(err, &pgErr):
			switch pgErr.ConstraintName {
			case "employees_email_key":
				h.errorResponse(w, r, http.StatusConflict, "邮箱已存在")
			case "employees_subunit_id_fkey":
				h.errorResponse(w, r, http.StatusNotFound, "部门不存在")
			default:
				h.internalServerError(w, r, err)
			}
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusConflict, "更新员工信息失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusCreated, "更新员工信息成功", employee)
}

func (h *Handler) GetFiredEmployees(w http.ResponseWriter, r *http.Request) {
	subunitIDParam := r.URL.Query().Get("subunit")
	subunitID, err := strconv.ParseInt(subunitIDParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, http.StatusBadRequest, "部门ID无效")
		return
	}

	// 确认部门存在
	if _, err := h.repository.GetSubunitByID(subunitID); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusNotFound, "部门不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// types 为空时返回所有角色
	roles := []string{string(domain.RoleEmployee), string(domain.RoleModerator), string(domain.RoleAdmin)}
	if typesParam := r.URL.Query().Get("types"); typesParam != "" {
		roles = roles[:0]
		for _, t := range strings.Split(typesParam, ",") {
			role, ok := domain.ParseRole(t)
			if !ok {
				h.errorResponse(w, r, http.StatusBadRequest, "无效的员工角色 '"+t+"'")
				return
			}
			roles = append(roles, string(role))
		}
	}

	employees, err := h.repository.GetFiredEmployeesOfSubunit(subunitID, roles)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, "获取离职员工列表成功", employees)
}

func (h *Handler) GetMultipleEmployees(w http.ResponseWriter, r *http.Request) {
	idsParam := r.URL.Query().Get("ids")
	if idsParam == "" {
		h.errorResponse(w, r, http.StatusBadRequest, "缺少员工ID列表")
		return
	}

	ids := make([]int64, 0)
	for _, s := range strings.Split(idsParam, ",") {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			h.errorResponse(w, r, http.StatusBadRequest, "员工ID无效")
			return
		}
		ids = append(ids, id)
	}

	employees, err := h.repository.GetEmployeesByIDs(ids)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, "获取员工列表成功", employees)
}
