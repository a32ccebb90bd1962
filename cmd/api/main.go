package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/campus-mis/attendance-backend-go/internal/config"
	appHTTP "github.com/campus-mis/attendance-backend-go/internal/handler/http"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/cron"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/database"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/devicesync"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/jwt"
	"github.com/campus-mis/attendance-backend-go/internal/pkg/oauth"
	"github.com/campus-mis/attendance-backend-go/internal/repository/postgresql"
	accessService "github.com/campus-mis/attendance-backend-go/internal/service/access"
	authService "github.com/campus-mis/attendance-backend-go/internal/service/auth"
	deviceService "github.com/campus-mis/attendance-backend-go/internal/service/device"
	exemptionService "github.com/campus-mis/attendance-backend-go/internal/service/exemption"
	"github.com/campus-mis/attendance-backend-go/internal/service/master"
	reportService "github.com/campus-mis/attendance-backend-go/internal/service/report"
	staffService "github.com/campus-mis/attendance-backend-go/internal/service/staff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	categoryRepo := postgresql.NewCategoryRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	flagRepo := postgresql.NewFlagRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	exemptionRepo := postgresql.NewExemptionRepository(db)
	deviceRepo := postgresql.NewDeviceRepository(db)
	accessRepo := postgresql.NewAccessRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	syncRunner, err := devicesync.NewScriptRunner(cfg.DeviceSync, logger)
	if err != nil {
		log.Fatal("Failed to initialize device sync runner: ", err)
	}

	authSvc := authService.NewAuthService(db, logger, userRepo, staffRepo, jwtService, googleService)
	staffSvc := staffService.NewStaffService(db, staffRepo, categoryRepo)
	categorySvc := master.NewCategoryService(db, categoryRepo)
	reportSvc := reportService.NewReportService(db, cfg, reportRepo, punchRepo, flagRepo, staffRepo, categoryRepo, exemptionRepo)
	exemptionSvc := exemptionService.NewExemptionService(db, exemptionRepo, staffRepo)
	deviceSvc := deviceService.NewDeviceService(db, syncRunner, deviceRepo, staffRepo)
	accessSvc := accessService.NewAccessService(db, accessRepo)

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		JWTService:       jwtService,
		AuthHandler:      appHTTP.NewAuthHandler(jwtService, authSvc, cfg.App.FrontendURL),
		ReportHandler:    appHTTP.NewReportHandler(reportSvc),
		ExemptionHandler: appHTTP.NewExemptionHandler(exemptionSvc),
		StaffHandler:     appHTTP.NewStaffHandler(staffSvc),
		CategoryHandler:  appHTTP.NewCategoryHandler(categorySvc),
		DeviceHandler:    appHTTP.NewDeviceHandler(deviceSvc),
		AccessHandler:    appHTTP.NewAccessHandler(accessSvc),
		FrontendURL:      cfg.App.FrontendURL,
		Env:              cfg.App.Env,
	})

	// Rebuild yesterday's report rows every night so late arrivals are
	// final before the HR office opens.
	scheduler := cron.NewScheduler(logger)
	scheduler.AddJob("recompute-daily-reports", 24*time.Hour, func(ctx context.Context) error {
		yesterday := time.Now().AddDate(0, 0, -1)
		return reportSvc.RecomputeDay(ctx, yesterday)
	})
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
