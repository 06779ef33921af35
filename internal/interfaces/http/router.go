package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/publicis/rewards-api/internal/application/auth"
	"github.com/publicis/rewards-api/internal/application/usecase"
	"github.com/publicis/rewards-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	CategoryUC   *usecase.CategoryUseCase
	AssignmentUC *usecase.AssignmentUseCase
	PrizeUC      *usecase.PrizeUseCase
	RedemptionUC *usecase.RedemptionUseCase
	DashboardUC  *usecase.DashboardUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	authGroupProtected := protected.Group("/auth")
	authGroupProtected.Post("/switch-role", authHandler.SwitchRole)

	adminOnly := RequireRole(entity.RoleAdministrador)
	granters := RequireRole(entity.RoleAdministrador, entity.RoleManager, entity.RoleSupervisor)

	// Users (lecturas propias para todos, administración solo admin)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)
	users.Get("/", adminOnly, userHandler.List)
	users.Post("/", adminOnly, userHandler.Create)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", adminOnly, userHandler.Update)
	users.Put("/:id/roles", adminOnly, userHandler.AssignRoles)
	users.Put("/:id/toggle", adminOnly, userHandler.ToggleAccount)
	users.Put("/:id/profile-picture", userHandler.UpdateProfilePicture)
	users.Get("/:id/balance", userHandler.Balance)
	users.Delete("/:id", adminOnly, userHandler.Delete)

	// Badge categories (escrituras solo admin)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/manual", categoryHandler.ListManual)
	categories.Post("/", adminOnly, categoryHandler.Create)
	categories.Put("/:id", adminOnly, categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Badge assignments (dos variantes)
	assignments := protected.Group("/assignments")
	assignmentHandler := NewAssignmentHandler(deps.AssignmentUC)
	assignments.Get("/managers", adminOnly, assignmentHandler.ListManagerGrants)
	assignments.Post("/managers", adminOnly, assignmentHandler.CreateManagerGrant)
	assignments.Get("/collaborators", granters, assignmentHandler.ListCollaboratorGrants)
	assignments.Post("/collaborators", RequireRole(entity.RoleManager, entity.RoleSupervisor), assignmentHandler.CreateCollaboratorGrant)
	assignments.Get("/mine", assignmentHandler.ListMine)

	// Prizes (catálogo visible para todos, escrituras solo admin)
	prizes := protected.Group("/prizes")
	prizeHandler := NewPrizeHandler(deps.PrizeUC)
	prizes.Get("/", prizeHandler.List)
	prizes.Get("/:id", prizeHandler.GetByID)
	prizes.Post("/", adminOnly, prizeHandler.Create)
	prizes.Put("/:id", adminOnly, prizeHandler.Update)
	prizes.Put("/:id/toggle", adminOnly, prizeHandler.ToggleActive)
	prizes.Delete("/:id", adminOnly, prizeHandler.Delete)

	// Redemptions (canjear para todos, historial completo y estados solo admin)
	redemptions := protected.Group("/redemptions")
	redemptionHandler := NewRedemptionHandler(deps.RedemptionUC)
	redemptions.Post("/", redemptionHandler.Redeem)
	redemptions.Get("/", adminOnly, redemptionHandler.List)
	redemptions.Get("/mine", redemptionHandler.ListMine)
	redemptions.Put("/:id/status", adminOnly, redemptionHandler.ChangeStatus)

	// Dashboard y equipo
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.EmployeeUC)
	protected.Get("/dashboard/summary", adminOnly, dashboardHandler.Summary)
	protected.Get("/employees/team", dashboardHandler.Team)
}
