package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/config"
	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/domain"
	"github.com/sysu-ecnc-dev/intranet-portal/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 认证相关
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/refresh", h.Refresh)
		r.With(h.auth, h.callerInfo).Get("/identity", h.Identity)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// 以下 API 必须要在登录后才允许调用
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.callerInfo)

		r.Route("/employees", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.RegisterEmployee)
			r.Get("/fired", h.GetFiredEmployees)
			r.Get("/multiple", h.GetMultipleEmployees)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.employeeInfo)
				r.Get("/", h.GetEmployee)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateEmployee)
				r.Get("/posts", h.GetPostsOfEmployee)
			})
		})

		r.Route("/subunits", func(r chi.Router) {
			r.Get("/", h.GetAllSubunits)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateSubunit)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.subunitInfo)
				r.Get("/", h.GetSubunit)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateSubunit)
			})
		})

		r.Route("/posts", func(r chi.Router) {
			r.Post("/", h.CreatePost)
			r.Get("/archived", h.GetArchivedPosts)
			r.Get("/moderation", h.GetModerationPosts)
			r.Get("/statistics", h.GetPostsStatistics)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.postInfo)
				r.Get("/", h.GetPost)
				r.Patch("/", h.UpdatePost)
				r.Delete("/", h.DeletePost)
				r.Post("/approve", h.ApprovePost)
				r.Delete("/approve", h.DisapprovePost)
				r.Post("/return", h.ReturnPost)
				r.Post("/reject", h.RejectPost)
				r.Post("/archive", h.ArchivePost)
				r.Delete("/archive", h.UnarchivePost)
			})
		})

		r.Route("/attachments", func(r chi.Router) {
			r.Post("/", h.CreateAttachment)
			r.Get("/{id}", h.GetAttachment)
		})
	})
}
