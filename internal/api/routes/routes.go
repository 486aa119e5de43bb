package routes

import (
	"congregation-manager-backend/internal/api/handlers"
	"congregation-manager-backend/internal/api/middleware"
	"congregation-manager-backend/internal/config"
	"congregation-manager-backend/internal/repository"
	"congregation-manager-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	congregationRepo := repository.NewCongregationRepository(db)
	publisherRepo := repository.NewPublisherRepository(db)
	departmentRepo := repository.NewDepartmentRepository(db)
	responsibilityRepo := repository.NewResponsibilityRepository(db)
	qualificationRepo := repository.NewPublisherResponsibilityRepository(db)
	meetingScheduleRepo := repository.NewMeetingScheduleRepository(db)
	assignmentRepo := repository.NewResponsibilityAssignmentRepository(db)
	assignmentConfigRepo := repository.NewAssignmentConfigRepository(db)

	// Initialize services
	congregationService := service.NewCongregationService(congregationRepo, validator)
	publisherService := service.NewPublisherService(publisherRepo, validator)
	departmentService := service.NewDepartmentService(departmentRepo, publisherRepo, validator)
	responsibilityService := service.NewResponsibilityService(responsibilityRepo, departmentRepo, validator)
	qualificationService := service.NewQualificationService(qualificationRepo, publisherRepo, responsibilityRepo)
	meetingScheduleService := service.NewMeetingScheduleService(db, meetingScheduleRepo, assignmentRepo, validator)
	assignmentService := service.NewAssignmentService(db, assignmentRepo, meetingScheduleRepo, publisherRepo, responsibilityRepo, validator)
	assignmentConfigService := service.NewAssignmentConfigService(assignmentConfigRepo, responsibilityRepo, validator)
	reportService := service.NewReportService(meetingScheduleRepo, responsibilityRepo, congregationRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	congregationHandler := handlers.NewCongregationHandler(congregationService)
	publisherHandler := handlers.NewPublisherHandler(publisherService)
	departmentHandler := handlers.NewDepartmentHandler(departmentService, responsibilityService)
	responsibilityHandler := handlers.NewResponsibilityHandler(responsibilityService, assignmentConfigService)
	qualificationHandler := handlers.NewQualificationHandler(qualificationService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	meetingScheduleHandler := handlers.NewMeetingScheduleHandler(meetingScheduleService, reportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Congregation routes
		congregations := v1.Group("/congregations")
		{
			congregations.GET("", congregationHandler.GetCongregation)
			congregations.POST("", congregationHandler.CreateCongregation)
			congregations.PUT("/:id", congregationHandler.UpdateCongregation)
			congregations.DELETE("/:id", congregationHandler.DeleteCongregation)
		}

		// Publisher routes
		publishers := v1.Group("/publishers")
		{
			publishers.GET("", publisherHandler.ListPublishers)
			publishers.POST("", publisherHandler.CreatePublisher)
			publishers.GET("/:id", publisherHandler.GetPublisher)
			publishers.PUT("/:id", publisherHandler.UpdatePublisher)
			publishers.DELETE("/:id", publisherHandler.DeletePublisher)
			publishers.GET("/:id/qualifications", qualificationHandler.GetPublisherQualifications)
			publishers.POST("/:id/qualifications", qualificationHandler.AddQualification)
			publishers.DELETE("/:id/qualifications/:responsibility_id", qualificationHandler.RemoveQualification)
			publishers.GET("/:id/assignments", assignmentHandler.GetAssignmentsByPublisher)
		}

		// Department routes
		departments := v1.Group("/departments")
		{
			departments.GET("", departmentHandler.ListDepartments)
			departments.POST("", departmentHandler.CreateDepartment)
			departments.GET("/:id", departmentHandler.GetDepartment)
			departments.PUT("/:id", departmentHandler.UpdateDepartment)
			departments.DELETE("/:id", departmentHandler.DeleteDepartment)
			departments.GET("/:id/responsibilities", departmentHandler.GetDepartmentResponsibilities)
		}

		// Responsibility routes
		responsibilities := v1.Group("/responsibilities")
		{
			responsibilities.GET("", responsibilityHandler.ListResponsibilities)
			responsibilities.POST("", responsibilityHandler.CreateResponsibility)
			responsibilities.GET("/:id", responsibilityHandler.GetResponsibility)
			responsibilities.PUT("/:id", responsibilityHandler.UpdateResponsibility)
			responsibilities.DELETE("/:id", responsibilityHandler.DeleteResponsibility)
			responsibilities.GET("/:id/qualified-publishers", qualificationHandler.GetQualifiedPublishers)
			responsibilities.GET("/:id/assignments", assignmentHandler.GetAssignmentsByResponsibility)
			responsibilities.GET("/:id/assignment-configs", responsibilityHandler.ListAssignmentConfigs)
			responsibilities.POST("/:id/assignment-configs", responsibilityHandler.CreateAssignmentConfig)
			responsibilities.PUT("/:id/assignment-configs/:meeting_type", responsibilityHandler.UpdateAssignmentConfig)
			responsibilities.DELETE("/:id/assignment-configs/:meeting_type", responsibilityHandler.DeleteAssignmentConfig)
		}

		// Assignment routes
		assignments := v1.Group("/assignments")
		{
			assignments.GET("", assignmentHandler.GetAssignmentsByDateRange)
			assignments.POST("", assignmentHandler.CreateAssignment)
			assignments.PUT("", assignmentHandler.Assign)
			assignments.DELETE("", assignmentHandler.RemoveAssignment)
		}

		// Meeting schedule routes
		meetingSchedules := v1.Group("/meeting-schedules")
		{
			meetingSchedules.GET("", meetingScheduleHandler.ListMeetingSchedules)
			meetingSchedules.POST("", meetingScheduleHandler.CreateMeetingSchedule)
			meetingSchedules.POST("/get-or-create", meetingScheduleHandler.GetOrCreateMeetingSchedule)
			meetingSchedules.POST("/copy-week", meetingScheduleHandler.CopyWeekAssignments)
			meetingSchedules.GET("/week/:year/:week", meetingScheduleHandler.GetOrCreateWeekSchedules)
			meetingSchedules.GET("/monthly-schedule/:year/:month", meetingScheduleHandler.GetMonthlySchedulePDF)
			meetingSchedules.GET("/:id", meetingScheduleHandler.GetMeetingSchedule)
			meetingSchedules.PUT("/:id", meetingScheduleHandler.UpdateMeetingSchedule)
			meetingSchedules.DELETE("/:id", meetingScheduleHandler.DeleteMeetingSchedule)
			meetingSchedules.GET("/:id/assignments", assignmentHandler.GetAssignmentsByMeeting)
		}
	}

	return router
}
