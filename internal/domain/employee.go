package domain

import (
	"time"
)

type Role string

const (
	RoleEmployee  Role = "employee"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
)

// ParseRole 解析角色字符串，非法值返回 false
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleEmployee, RoleModerator, RoleAdmin:
		return Role(s), true
	default:
		return "", false
	}
}

type Employee struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Role         Role      `json:"role"`
	SubunitID    int64     `json:"subunitId"`
	IsFired      bool      `json:"isFired"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}

// CanModerate 判断该员工是否有权审核指定部门的帖子
// 管理员可以审核任何部门，审核员只能审核自己所在的部门
func (e *Employee) CanModerate(subunitID int64) bool {
	switch e.Role {
	case RoleAdmin:
		return true
	case RoleModerator:
		return e.SubunitID == subunitID
	default:
		return false
	}
}

// CanEditPost 判断该员工是否有权编辑或删除某个帖子
func (e *Employee) CanEditPost(post *Post) bool {
	return e.Role == RoleAdmin || e.ID == post.AuthorID
}
