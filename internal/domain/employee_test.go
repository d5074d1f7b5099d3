package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/domain"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"employee", "moderator", "admin"} {
		role, ok := domain.ParseRole(s)
		assert.True(t, ok, "合法角色应该解析成功: %s", s)
		assert.Equal(t, domain.Role(s), role)
	}

	for _, s := range []string{"", "superadmin", "Admin", "owner"} {
		_, ok := domain.ParseRole(s)
		assert.False(t, ok, "非法角色应该解析失败: %s", s)
	}
}

func TestCanModerate(t *testing.T) {
	admin := &domain.Employee{ID: 1, Role: domain.RoleAdmin, SubunitID: 1}
	moderator := &domain.Employee{ID: 2, Role: domain.RoleModerator, SubunitID: 2}
	employee := &domain.Employee{ID: 3, Role: domain.RoleEmployee, SubunitID: 2}

	assert.True(t, admin.CanModerate(1), "管理员可以审核自己的部门")
	assert.True(t, admin.CanModerate(99), "管理员可以审核任何部门")

	assert.True(t, moderator.CanModerate(2), "审核员可以审核自己的部门")
	assert.False(t, moderator.CanModerate(1), "审核员不能审核其他部门")

	assert.False(t, employee.CanModerate(2), "普通员工不能审核任何部门")
}

func TestCanEditPost(t *testing.T) {
	admin := &domain.Employee{ID: 1, Role: domain.RoleAdmin}
	author := &domain.Employee{ID: 2, Role: domain.RoleEmployee}
	other := &domain.Employee{ID: 3, Role: domain.RoleModerator}

	post := &domain.Post{ID: 10, AuthorID: 2}

	assert.True(t, admin.CanEditPost(post), "管理员可以编辑任何帖子")
	assert.True(t, author.CanEditPost(post), "作者可以编辑自己的帖子")
	assert.False(t, other.CanEditPost(post), "审核员不能编辑别人的帖子")
}
