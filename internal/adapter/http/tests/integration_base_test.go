package tests

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	dbadapter "dayplanner/internal/adapter/db"
	httpadapter "dayplanner/internal/adapter/http"
	"dayplanner/internal/adapter/http/handlers"
	appservice "dayplanner/internal/app/service"
	"dayplanner/internal/config"
	"dayplanner/internal/core/domain"
	"dayplanner/pkg/translator"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/suite"
)

// IntegrationSuiteBase serves the full router over a real database. SQLite in
// memory is used unless TEST_DB_DRIVER selects mysql or pgx, in which case
// TEST_DB_DSN must point to a disposable database.
type IntegrationSuiteBase struct {
	suite.Suite

	adminDB    *sqlx.DB
	DB         *sqlx.DB
	Calendar   *domain.Calendar
	Router     *gin.Engine
	Now        time.Time
	testDBName string
}

func (s *IntegrationSuiteBase) SetupSuite() {
	gin.SetMode(gin.TestMode)
	translator.InitTranslator(translator.Config{})

	cal, err := domain.LoadCalendar(domain.DefaultTimezone)
	s.Require().NoError(err)
	s.Now = time.Date(2024, 6, 1, 12, 0, 0, 0, cal.Location())
	s.Calendar = cal.WithClock(func() time.Time { return s.Now })

	driver := envOrDefault("TEST_DB_DRIVER", config.DriverSQLite)
	dsn := envOrDefault("TEST_DB_DSN", "file::memory:")
	if driver == config.DriverMySQL && os.Getenv("TEST_DB_DSN") == "" {
		dsn = s.createMySQLDatabase()
	}

	db, err := dbadapter.Open(context.Background(), driver, dsn)
	if err != nil {
		s.T().Skipf("skipping integration suite: could not open %s: %v", driver, err)
	}
	s.DB = db
}

func (s *IntegrationSuiteBase) TearDownSuite() {
	if s.DB != nil {
		s.Require().NoError(s.DB.Close())
	}

	// Drop test database to keep local environment clean after integration runs.
	if s.adminDB != nil && s.testDBName != "" && strings.HasSuffix(s.testDBName, "_test") {
		_, err := s.adminDB.Exec(fmt.Sprintf("DROP DATABASE IF EXISTS `%s`", s.testDBName))
		s.Require().NoError(err)
	}

	if s.adminDB != nil {
		s.Require().NoError(s.adminDB.Close())
	}
}

func (s *IntegrationSuiteBase) SetupTest() {
	s.ResetDatabase()

	taskRepository := dbadapter.NewTaskRepository(s.DB, s.Calendar)
	timeBlockRepository := dbadapter.NewTimeBlockRepository(s.DB, s.Calendar)

	router := gin.New()
	httpadapter.RegisterRoutes(router, httpadapter.Handlers{
		Health:    handlers.NewHealthHandler(s.DB, s.Calendar),
		Task:      handlers.NewTaskHandler(appservice.NewTaskService(s.Calendar, taskRepository, timeBlockRepository), s.Calendar),
		TimeBlock: handlers.NewTimeBlockHandler(appservice.NewTimeBlockService(s.Calendar, timeBlockRepository), s.Calendar),
		Stats:     handlers.NewStatsHandler(appservice.NewStatsService(s.Calendar, taskRepository, timeBlockRepository), s.Calendar),
	})
	s.Router = router
}

func (s *IntegrationSuiteBase) ResetDatabase() {
	for _, table := range []string{"time_blocks", "tasks"} {
		_, err := s.DB.Exec("DELETE FROM " + table)
		s.Require().NoError(err)
	}
}

// createMySQLDatabase creates a throwaway schema with the root account and
// returns a DSN for it.
func (s *IntegrationSuiteBase) createMySQLDatabase() string {
	host := envOrDefault("MYSQL_HOST", "127.0.0.1")
	port := envOrDefault("MYSQL_PORT", "3306")
	rootUser := envOrDefault("MYSQL_ROOT_USER", "root")
	rootPassword := envOrDefault("MYSQL_ROOT_PASSWORD", "root")
	database := envOrDefault("MYSQL_TEST_DATABASE", envOrDefault("MYSQL_DATABASE", "planner")+"_test")

	adminDB, err := sqlx.Connect(config.DriverMySQL, mysqlDSN(rootUser, rootPassword, host, port, ""))
	if err != nil {
		s.T().Skipf("skipping integration suite: could not connect to mysql: %v", err)
	}
	s.adminDB = adminDB

	_, err = s.adminDB.Exec(fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", database))
	s.Require().NoError(err)
	s.testDBName = database

	return mysqlDSN(rootUser, rootPassword, host, port, database)
}

func mysqlDSN(user, password, host, port, database string) string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", user, password, host, port, database)
}

func envOrDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
