package seed

import (
	"log/slog"
	"math/rand"

	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/config"
	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/repository"
	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/utils"
)

// SeedSubunits 插入 n 个随机部门，负责人都指向初始管理员
func SeedSubunits(repo *repository.Repository, cfg *config.Config, n int) int {
	admin, err := repo.GetEmployeeByEmail(cfg.InitialAdmin.Email)
	if err != nil {
		slog.Error("无法获取初始管理员，请先启动一次 API 服务", slog.String("error", err.Error()))
		return 0
	}

	cnt := 0
	for i := 0; i < n; i++ {
		subunit := utils.GenerateRandomSubunit(admin.ID, cfg.Email.UserDomain)
		if err := repo.CreateSubunit(subunit); err != nil {
			slog.Error("无法插入部门", slog.String("error", err.Error()))
			continue
		}
		cnt++
	}

	return cnt
}

// SeedEmployees 插入 n 个随机员工，部门在现有部门中随机选取
func SeedEmployees(repo *repository.Repository, cfg *config.Config, n int) int {
	subunits, err := repo.GetAllSubunits()
	if err != nil {
		slog.Error("无法获取部门列表", slog.String("error", err.Error()))
		return 0
	}
	if len(subunits) == 0 {
		slog.Error("数据库中没有部门，请先插入部门")
		return 0
	}

	cnt := 0
	for i := 0; i < n; i++ {
		subunit := subunits[rand.Intn(len(subunits))]
		employee, err := utils.GenerateRandomEmployee(cfg.Seed.Employee.Password, cfg.Email.UserDomain, subunit.ID)
		if err != nil {
			slog.Error("无法生成随机员工", slog.String("error", err.Error()))
			continue
		}

		if err := repo.CreateEmployee(employee); err != nil {
			slog.Error("无法插入员工", slog.String("error", err.Error()))
			continue
		}
		cnt++
	}

	return cnt
}

// SeedPosts 插入 n 个随机帖子，创建时间分布在过去 months 个月内，方便测试统计接口
func SeedPosts(repo *repository.Repository, n int, months int) int {
	employees, err := repo.GetAllEmployees()
	if err != nil {
		slog.Error("无法获取员工列表", slog.String("error", err.Error()))
		return 0
	}
	if len(employees) == 0 {
		slog.Error("数据库中没有员工，请先插入员工")
		return 0
	}

	cnt := 0
	for i := 0; i < n; i++ {
		author := employees[rand.Intn(len(employees))]
		post := utils.GenerateRandomPost(author)
		if err := repo.CreatePostAt(post, utils.GenerateRandomCreatedAt(months)); err != nil {
			slog.Error("无法插入帖子", slog.String("error", err.Error()))
			continue
		}
		cnt++
	}

	return cnt
}
