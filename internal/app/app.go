package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/balsons/erp-backend-go/internal/config"
	"github.com/balsons/erp-backend-go/internal/domain/dashboard"
	"github.com/balsons/erp-backend-go/internal/domain/employee"
	"github.com/balsons/erp-backend-go/internal/pkg/database"
	"github.com/balsons/erp-backend-go/internal/pkg/storage"
	"github.com/balsons/erp-backend-go/internal/repository/flatfile"
	"github.com/balsons/erp-backend-go/internal/repository/postgresql"
	dashboardService "github.com/balsons/erp-backend-go/internal/service/dashboard"
	employeeService "github.com/balsons/erp-backend-go/internal/service/employee"
	exportService "github.com/balsons/erp-backend-go/internal/service/export"
	"github.com/balsons/erp-backend-go/internal/service/file"
	payrollService "github.com/balsons/erp-backend-go/internal/service/payroll"
)

// App holds the services shared by the HTTP server and the CLI.
type App struct {
	EmployeeService  employee.EmployeeService
	DashboardService dashboard.DashboardService
	ExportService    exportService.ExportService

	db *database.DB
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize local storage: %w", err)
	}

	a := &App{}
	var employeeRepo employee.EmployeeRepository
	switch cfg.Storage.Type {
	case config.StorageLocal:
		employeeRepo = flatfile.NewEmployeeRepository(fileStorage, cfg.Employee.MasterFile)
	case config.StoragePostgres:
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := postgresql.EnsureEmployeeMasterSchema(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
		a.db = db
		employeeRepo = postgresql.NewEmployeeMasterRepository(db)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Storage.Type)
	}
	slog.Info("Employee master store ready", "type", cfg.Storage.Type)

	fileService := file.NewFileService(fileStorage, cfg.Employee.ArchiveImport)
	a.EmployeeService = employeeService.NewEmployeeService(employeeRepo, payrollService.NewCalculator(), fileService)
	a.DashboardService = dashboardService.NewDashboardService(a.EmployeeService)
	a.ExportService = exportService.NewExportService(a.EmployeeService)

	return a, nil
}

// Close releases the database pool, if any.
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
