package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barberrock-web/internal/audit"
	"github.com/BruksfildServices01/barberrock-web/internal/config"
	"github.com/BruksfildServices01/barberrock-web/internal/domain/account"
	"github.com/BruksfildServices01/barberrock-web/internal/handlers"
	"github.com/BruksfildServices01/barberrock-web/internal/infra/backend"
	"github.com/BruksfildServices01/barberrock-web/internal/middleware"
	"github.com/BruksfildServices01/barberrock-web/internal/session"
	ucAlerts "github.com/BruksfildServices01/barberrock-web/internal/usecase/alerts"
	ucAuth "github.com/BruksfildServices01/barberrock-web/internal/usecase/auth"
	"github.com/BruksfildServices01/barberrock-web/internal/usecase/catalog"
	ucGallery "github.com/BruksfildServices01/barberrock-web/internal/usecase/gallery"
	ucSchedule "github.com/BruksfildServices01/barberrock-web/internal/usecase/schedule"
	"github.com/BruksfildServices01/barberrock-web/internal/usecase/stats"
	ucSurvey "github.com/BruksfildServices01/barberrock-web/internal/usecase/survey"
)

func RegisterRoutes(
	r *gin.Engine,
	api *backend.Client,
	store session.Store,
	auditDispatcher *audit.Dispatcher,
	cfg *config.Config,
) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(session.Middleware(store, session.CookieOptions{
		TTL:    cfg.SessionTTL,
		Secure: cfg.SessionCookieSecure,
	}))

	// ======================================================
	// 🧠 USE CASES - SURVEYS
	// ======================================================
	resolveSurveyUC := ucSurvey.NewResolveSurvey(api, auditDispatcher)
	submitSurveyUC := ucSurvey.NewSubmitSurvey(api, auditDispatcher)
	resolveQRUC := ucSurvey.NewResolveQR(api)

	// ======================================================
	// 🧠 USE CASES - ALERTS
	// ======================================================
	loadAlertsUC := ucAlerts.NewLoadAlerts(api)
	dispatchAlertUC := ucAlerts.NewDispatchAlert(api, auditDispatcher)
	alertWatcher := ucAlerts.NewWatcher(loadAlertsUC, cfg.AlertPollInterval)

	// ======================================================
	// 🧠 USE CASES - SCHEDULE / CATALOG / STATS / AUTH
	// ======================================================
	loadScheduleUC := ucSchedule.NewLoadSchedule(api)
	saveScheduleUC := ucSchedule.NewSaveSchedule(api, auditDispatcher)

	listGalleryUC := ucGallery.NewListGallery(api)
	listServicesUC := catalog.NewListServices(api)
	getStatsUC := stats.NewGetStats(api)

	loginUC := ucAuth.NewLogin(api, auditDispatcher)
	registerUC := ucAuth.NewRegister(api, loginUC, auditDispatcher)
	logoutUC := ucAuth.NewLogout(auditDispatcher)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(loginUC, registerUC, logoutUC)
	meHandler := handlers.NewMeHandler()

	surveyHandler := handlers.NewSurveyHandler(
		resolveSurveyUC,
		submitSurveyUC,
		resolveQRUC,
		cfg.ShopTimezone,
	)

	alertsHandler := handlers.NewAlertsHandler(
		loadAlertsUC,
		dispatchAlertUC,
		alertWatcher,
		cfg.ShopTimezone,
		cfg.CORSOrigins,
	)

	scheduleHandler := handlers.NewScheduleHandler(loadScheduleUC, saveScheduleUC)
	workingHoursHandler := handlers.NewWorkingHoursHandler(loadScheduleUC, saveScheduleUC)

	publicHandler := handlers.NewPublicHandler(listServicesUC, listGalleryUC)
	publicWebHandler := handlers.NewPublicWebHandler(listServicesUC, listGalleryUC)
	appWebHandler := handlers.NewAppWebHandler(getStatsUC, cfg.ShopTimezone)

	// ======================================================
	// 🌍 ROTAS WEB (HTML)
	// ======================================================
	r.GET("/", publicWebHandler.Home)
	r.GET("/servicios", publicWebHandler.Services)
	r.GET("/galeria", publicWebHandler.Gallery)

	r.GET("/login", authHandler.LoginPage)
	r.POST("/login", authHandler.Login)
	r.GET("/registro", authHandler.RegisterPage)
	r.POST("/registro", authHandler.Register)
	r.POST("/logout", authHandler.Logout)

	// ------------------------------
	// ENCUESTAS
	// ------------------------------
	r.GET("/encuesta/qr/:qrToken", surveyHandler.ShowQR)
	r.GET("/encuesta/:token", surveyHandler.Show)
	r.POST("/encuesta/:token", surveyHandler.Submit)

	// ------------------------------
	// 🔐 PÁGINAS PRIVADAS
	// ------------------------------
	r.GET("/dashboard", middleware.RequireAuth(), appWebHandler.Dashboard)

	barber := r.Group("/barbero")
	barber.Use(middleware.RequireAuth(account.RoleBarbero))
	{
		barber.GET("", appWebHandler.Barber)
		barber.GET("/horario", scheduleHandler.Page)
		barber.POST("/horario", scheduleHandler.Save)
		barber.POST("/horario/dias/:day", scheduleHandler.ToggleDay)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.RequireAuth(account.RoleAdmin))
	{
		admin.GET("", appWebHandler.Admin)
		admin.GET("/alertas", alertsHandler.Page)
		admin.POST("/alertas/refresh", alertsHandler.Refresh)
		admin.POST("/alertas/:id/enviar", alertsHandler.Dispatch)
		admin.GET("/alertas/ws", alertsHandler.Socket)
	}

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	webAPI := r.Group("/web/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		webAPI.GET("/servicios", publicHandler.ListServices)
		webAPI.GET("/galeria", publicHandler.ListGallery)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		webAPI.POST("/login", authHandler.LoginJSON)

		// ------------------------------
		// 🔐 API PRIVADA
		// ------------------------------
		webAPI.GET("/me", middleware.RequireAPIAuth(), meHandler.GetMe)

		webAPI.GET("/horario", middleware.RequireAPIAuth(account.RoleBarbero), workingHoursHandler.Get)
		webAPI.PUT("/horario", middleware.RequireAPIAuth(account.RoleBarbero), workingHoursHandler.Update)

		webAPI.GET("/alertas", middleware.RequireAPIAuth(account.RoleAdmin), alertsHandler.JSON)
		webAPI.GET("/admin/estadisticas", middleware.RequireAPIAuth(account.RoleAdmin), appWebHandler.StatsJSON)
	}

	r.NoRoute(handlers.NotFound)
}
