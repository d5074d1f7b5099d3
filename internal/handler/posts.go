package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/domain"
)

// checkAttachmentsExist 确认每个附件都存在，重复的 ID 只算一次
func (h *Handler) checkAttachmentsExist(ids []int64) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}

	count, err := h.repository.CountAttachments(ids)
	if err != nil {
		return false, err
	}

	unique := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		unique[id] = struct{}{}
	}

	return count == int64(len(unique)), nil
}

// parsePostStatuses 解析逗号分隔的状态列表，空元素直接跳过，重复的只算一次。
// 返回第一个非法的状态值，全部合法时返回空字符串。
func parsePostStatuses(param string) ([]string, string) {
	statuses := make([]string, 0)
	for _, s := range strings.Split(param, ",") {
		if s == "" {
			continue
		}
		status, ok := domain.ParsePostStatus(s)
		if !ok {
			return nil, s
		}
		if !slices.Contains(statuses, string(status)) {
			statuses = append(statuses, string(status))
		}
	}
	return statuses, ""
}

func dedupIDs(ids []int64) []int64 {
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(result, id) {
			result = append(result, id)
		}
	}
	return result
}

func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content     string  `json:"content" validate:"required"`
		Attachments []int64 `json:"attachments"`
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

	ok, err := h.checkAttachmentsExist(req.Attachments)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !ok {
		h.errorResponse(w, r, http.StatusNotFound, "附件不存在")
		return
	}

	// 新帖子总是从待审核状态开始
	post := &domain.Post{
		AuthorID:    caller.ID,
		SubunitID:   caller.SubunitID,
		Content:     req.Content,
		Attachments: dedupIDs(req.Attachments),
		Status:      domain.StatusUnderConsideration,
	}

	if err := h.repository.CreatePost(post); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusNotFound, "附件不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusCreated, "帖子创建成功", post)
}

func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	post := r.Context().Value(PostCtx).(*domain.Post)
	h.successResponse(w, r, http.StatusOK, "获取帖子成功", post)
}

func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content     *string  `json:"content"`
		Attachments *[]int64 `json:"attachments"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if req.Content == nil && req.Attachments == nil {
		h.errorResponse(w, r, http.StatusUnprocessableEntity, "所有字段都为空")
		return
	}

	caller := r.Context().Value(CallerInfoCtx).(*domain.Employee)
	post := r.Context().Value(PostCtx).(*domain.Post)

	// 只有作者本人和管理员可以编辑帖子
	if !caller.CanEditPost(post) {
		h.errorResponse(w, r, http.StatusForbidden, "没有权限编辑这个帖子")
		return
	}

	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Attachments != nil {
		ok, err := h.checkAttachmentsExist(*req.Attachments)
		if err != nil {
			h.internalServerError(w, r, err)
			return
		}
		if !ok {
			h.errorResponse(w, r, http.StatusNotFound, "附件不存在")
			return
		}
		post.Attachments = dedupIDs(*req.Attachments)
	}

	if err := h.repository.UpdatePostContent(post); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusConflict, "更新帖子失败，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusCreated, "帖子编辑成功", post)
}

func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	caller := r.Context().Value(CallerInfoCtx).(*domain.Employee)
	post := r.Context().Value(PostCtx).(*domain.Post)

	if !caller.CanEditPost(post) {
		h.errorResponse(w, r, http.StatusForbidden, "没有权限删除这个帖子")
		return
	}

	withAttachments := r.URL.Query().Get("with_attachments") == "true"

	if err := h.repository.DeletePost(post.ID, withAttachments); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, "帖子删除成功", nil)
}

// setPostStatus 是所有审核操作共用的状态迁移逻辑
func (h *Handler) setPostStatus(w http.ResponseWriter, r *http.Request, to domain.PostStatus, successMsg string) {
	caller := r.Context().Value(CallerInfoCtx).(*domain.Employee)
	post := r.Context().Value(PostCtx).(*domain.Post)

	if !caller.CanModerate(post.SubunitID) {
		h.errorResponse(w, r, http.StatusForbidden, "没有权限审核这个帖子")
		return
	}

	if !domain.CanTransition(post.Status, to) {
		h.errorResponse(w, r, http.StatusUnprocessableEntity, "当前状态不允许此操作")
		return
	}

	post.Status = to
	if err := h.repository.UpdatePostStatus(post); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, http.StatusConflict, "帖子状态已变化，请重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, http.StatusCreated, successMsg, post)
}

func (h *Handler) ApprovePost(w http.ResponseWriter, r *http.Request) {
	h.setPostStatus(w, r, domain.StatusPosted, "帖子批准成功")
}

func (h *Handler) DisapprovePost(w http.ResponseWriter, r *http.Request) {
	h.setPostStatus(w, r, domain.StatusUnderConsideration, "帖子已打回待审核")
}

func (h *Handler) ReturnPost(w http.ResponseWriter, r *http.Request) {
	h.setPostStatus(w, r, domain.StatusReturnedForImprovement, "帖子已退回修改")
}

func (h *Handler) RejectPost(w http.ResponseWriter, r *http.Request) {
	h.setPostStatus(w, r, domain.StatusRejected, "帖子已驳回")
}

func (h *Handler) ArchivePost(w http.ResponseWriter, r *http.Request) {
	h.setPostStatus(w, r, domain.StatusArchived, "帖子归档成功")
}

func (h *Handler) UnarchivePost(w http.ResponseWriter, r *http.Request) {
	// 取消归档必须显式指定目标状态，且目标状态不允许是 archived
	status, ok := domain.ParsePostStatus(r.URL.Query().Get("status"))
	if !ok || status == domain.StatusArchived {
		h.errorResponse(w, r, http.StatusBadRequest, "无效的目标状态")
		return
	}

	h.setPostStatus(w, r, status, "帖子取消归档成功")
}

func (h *Handler) GetArchivedPosts(w http.ResponseWriter, r *http.Request) {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		h.errorResponse(w, r, http.StatusBadRequest, "页码无效")
		return
	}

	posts, pagesCount, err := h.repository.GetPostsByStatuses([]string{string(domain.StatusArchived)}, page, true)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, "获取归档帖子成功", map[string]any{
		"posts":      posts,
		"pagesCount": pagesCount,
	})
}

func (h *Handler) GetPostsOfEmployee(w http.ResponseWriter, r *http.Request) {
	employee := r.Context().Value(EmployeeInfoCtx).(*domain.Employee)

	posts, err := h.repository.GetPostsOfEmployee(employee.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, "获取员工帖子成功", posts)
}

func (h *Handler) GetModerationPosts(w http.ResponseWriter, r *http.Request) {
	caller := r.Context().Value(CallerInfoCtx).(*domain.Employee)

	// 只有审核员和管理员可以查看审核列表
	if caller.Role != domain.RoleModerator && caller.Role != domain.RoleAdmin {
		h.errorResponse(w, r, http.StatusForbidden, "没有权限查看审核列表")
		return
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		h.errorResponse(w, r, http.StatusBadRequest, "页码无效")
		return
	}

	statuses, invalid := parsePostStatuses(r.URL.Query().Get("statuses"))
	if invalid != "" {
		h.errorResponse(w, r, http.StatusUnprocessableEntity, "无效的帖子状态 '"+invalid+"'")
		return
	}
	if len(statuses) == 0 {
		h.errorResponse(w, r, http.StatusBadRequest, "缺少状态列表")
		return
	}

	// 默认按时间倒序
	reverse := r.URL.Query().Get("reverse") != "false"

	posts, pagesCount, err := h.repository.GetPostsByStatuses(statuses, page, reverse)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, http.StatusOK, "获取审核帖子成功", map[string]any{
		"posts":      posts,
		"pagesCount": pagesCount,
	})
}
