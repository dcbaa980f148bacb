package main

import (
	"fmt"
	"net/http"

	"github.com/shiftwise/timeclock-backend-go/internal/config"
	appHTTP "github.com/shiftwise/timeclock-backend-go/internal/handler/http"
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/database"
	"github.com/shiftwise/timeclock-backend-go/internal/pkg/jwt"
	"github.com/shiftwise/timeclock-backend-go/internal/repository/postgresql"
	dashboardService "github.com/shiftwise/timeclock-backend-go/internal/service/dashboard"
	employeeService "github.com/shiftwise/timeclock-backend-go/internal/service/employee"
	payrollService "github.com/shiftwise/timeclock-backend-go/internal/service/payroll"
	punchService "github.com/shiftwise/timeclock-backend-go/internal/service/punch"
	reportService "github.com/shiftwise/timeclock-backend-go/internal/service/report"
	settingService "github.com/shiftwise/timeclock-backend-go/internal/service/setting"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	calcRepo := postgresql.NewPayCalculationRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	settingsSvc := settingService.NewSettingsService(db, settingRepo, calcRepo, auditRepo)
	calcSvc := payrollService.NewCalcService(calcRepo, punchRepo, employeeRepo, settingsSvc)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, calcRepo, auditRepo)
	punchSvc := punchService.NewPunchService(db, punchRepo, employeeRepo, calcRepo, auditRepo)
	reportSvc := reportService.NewReportService(employeeRepo, punchRepo, calcSvc)
	dashboardSvc := dashboardService.NewDashboardService(punchRepo, employeeRepo, calcSvc, settingsSvc)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	punchHandler := appHTTP.NewPunchHandler(punchSvc, calcSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc, dashboardSvc)
	settingHandler := appHTTP.NewSettingHandler(settingsSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		employeeHandler,
		punchHandler,
		reportHandler,
		settingHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
