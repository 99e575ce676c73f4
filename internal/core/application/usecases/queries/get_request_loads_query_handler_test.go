package queries_test

import (
	"context"
	"testing"
	"time"

	"pipeyard/internal/adapters/out/postgres/loadrepo"
	"pipeyard/internal/core/application/usecases/queries"
	"pipeyard/internal/core/domain/model/kernel"
	"pipeyard/internal/core/domain/model/load"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetRequestLoadsQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetRequestLoadsQueryHandler
	loadRepo  *loadrepo.GormLoadRepository
}

func (suite *GetRequestLoadsQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&loadrepo.LoadDTO{}, &loadrepo.DocumentDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetRequestLoadsQueryHandler(db)
	suite.loadRepo = loadrepo.NewGormLoadRepository(db, &mockAggregateTracker{})
}

func (suite *GetRequestLoadsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetRequestLoadsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE trucking_loads, load_documents CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetRequestLoadsQueryHandlerTestSuite) TestHandle_NoLoads_ReturnsEmptySlice() {
	query, err := queries.NewGetRequestLoadsQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetRequestLoadsQueryHandlerTestSuite) TestHandle_ReturnsOrderedLoadRows() {
	ctx := context.Background()
	requestID := kernel.NewUUID()

	suite.seedLoad(ctx, requestID, load.Outbound, 1, load.New, 60, 0)
	suite.seedLoad(ctx, requestID, load.Inbound, 2, load.InTransit, 120, 0)
	inbound1 := suite.seedLoad(ctx, requestID, load.Inbound, 1, load.Completed, 120, 118)
	suite.seedDocument(ctx, requestID, inbound1)
	suite.seedDocument(ctx, requestID, inbound1)

	// Load on another request must not leak in.
	suite.seedLoad(ctx, kernel.NewUUID(), load.Inbound, 1, load.New, 50, 0)

	query, err := queries.NewGetRequestLoadsQuery(requestID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 3)

	suite.Equal("Inbound", result[0].Direction)
	suite.Equal(1, result[0].SequenceNumber)
	suite.Equal("Completed", result[0].Status)
	suite.Equal(120, result[0].PlannedJoints)
	suite.Equal(118, result[0].CompletedJoints)
	suite.Equal(2, result[0].DocumentCount)

	suite.Equal("Inbound", result[1].Direction)
	suite.Equal(2, result[1].SequenceNumber)
	suite.Equal("InTransit", result[1].Status)
	suite.Equal(0, result[1].DocumentCount)

	suite.Equal("Outbound", result[2].Direction)
	suite.Equal(1, result[2].SequenceNumber)
	suite.Equal("New", result[2].Status)
}

// seedLoad persists a trucking load and returns its identifier.
func (suite *GetRequestLoadsQueryHandlerTestSuite) seedLoad(
	ctx context.Context,
	requestID kernel.UUID,
	direction load.Direction,
	sequence int,
	status load.Status,
	plannedJoints, completedJoints int,
) kernel.UUID {
	planned, err := kernel.JointsQuantity(plannedJoints)
	suite.Require().NoError(err)
	completed, err := kernel.JointsQuantity(completedJoints)
	suite.Require().NoError(err)

	ld, err := load.RestoreTruckingLoad(
		kernel.NewUUID(), requestID, direction, sequence, status, planned, completed, nil)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.loadRepo.Add(ctx, ld))
	return ld.ID()
}

// seedDocument persists a manifest attached to the load.
func (suite *GetRequestLoadsQueryHandlerTestSuite) seedDocument(
	ctx context.Context, requestID, loadID kernel.UUID,
) {
	doc, err := load.NewDocument(kernel.NewUUID(), requestID, &loadID, "manifests/test.pdf", load.Manifest)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.loadRepo.AddDocument(ctx, doc))
}

func TestGetRequestLoadsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetRequestLoadsQueryHandlerTestSuite))
}
