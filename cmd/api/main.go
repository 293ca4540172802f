package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/staffdesk/staffdesk-backend-go/internal/config"
	appHTTP "github.com/staffdesk/staffdesk-backend-go/internal/handler/http"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/cron"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/jwt"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/storage"
	"github.com/staffdesk/staffdesk-backend-go/internal/repository/postgresql"
	authService "github.com/staffdesk/staffdesk-backend-go/internal/service/auth"
	departmentService "github.com/staffdesk/staffdesk-backend-go/internal/service/department"
	employeeService "github.com/staffdesk/staffdesk-backend-go/internal/service/employee"
	leaveService "github.com/staffdesk/staffdesk-backend-go/internal/service/leave"
	"github.com/staffdesk/staffdesk-backend-go/internal/service/reconcile"
	summaryService "github.com/staffdesk/staffdesk-backend-go/internal/service/summary"
	taskService "github.com/staffdesk/staffdesk-backend-go/internal/service/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	authSvc := authService.NewAuthService(userRepo, jwtService)
	departmentSvc := departmentService.NewDepartmentService(departmentRepo)
	employeeSvc := employeeService.NewEmployeeService(
		db,
		employeeRepo,
		attendanceRepo,
		userRepo,
		leaveRepo,
		taskRepo,
		fileStorage,
		cfg.Sweep.DefaultPassword,
	)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, employeeRepo)
	taskSvc := taskService.NewTaskService(taskRepo, employeeRepo)
	summarySvc := summaryService.NewSummaryService(employeeRepo, departmentRepo, leaveRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc)
	taskHandler := appHTTP.NewTaskHandler(taskSvc)
	summaryHandler := appHTTP.NewSummaryHandler(summarySvc)

	if cfg.Sweep.Enabled {
		interval, err := time.ParseDuration(cfg.Sweep.Interval)
		if err != nil {
			log.Fatal("Invalid sweep interval:", err)
		}

		scheduler := cron.NewScheduler()
		reconcileSvc := reconcile.NewService(db, employeeRepo, userRepo, leaveRepo, cfg.Sweep.DefaultPassword)
		reconcileSvc.Register(scheduler, interval)
		scheduler.Start()
		defer scheduler.Stop()
	}

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		leaveHandler,
		departmentHandler,
		taskHandler,
		summaryHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
