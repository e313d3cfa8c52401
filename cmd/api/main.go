package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/HarshitVatsa-7/employee-management-system/internal/config"
	appHTTP "github.com/HarshitVatsa-7/employee-management-system/internal/handler/http"
	"github.com/HarshitVatsa-7/employee-management-system/internal/pkg/database"
	"github.com/HarshitVatsa-7/employee-management-system/internal/pkg/jwt"
	"github.com/HarshitVatsa-7/employee-management-system/internal/repository/postgresql"
	attendanceService "github.com/HarshitVatsa-7/employee-management-system/internal/service/attendance"
	authService "github.com/HarshitVatsa-7/employee-management-system/internal/service/auth"
	userService "github.com/HarshitVatsa-7/employee-management-system/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Fatal("Error loading timezone: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	punchRecordRepo := postgresql.NewPunchRecordRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, userRepo, jwtService, refreshTokenRepo)
	userSvc := userService.NewUserService(userRepo)
	attendanceSvc := attendanceService.NewAttendanceService(punchRecordRepo, loc)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	profileHandler := appHTTP.NewProfileHandler(userSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, authHandler, profileHandler, attendanceHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
