package queries_test

import (
	"context"
	"testing"
	"time"

	"laundrytrack/internal/adapters/out/postgres/orderrepo"
	"laundrytrack/internal/adapters/out/postgres/shelfrepo"
	"laundrytrack/internal/core/application/usecases/queries"
	"laundrytrack/internal/core/domain/model/kernel"
	"laundrytrack/internal/core/domain/model/order"
	"laundrytrack/internal/core/domain/model/shelf"
	"laundrytrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ShelfQueriesIntegrationTestSuite exercises the shelf read side against a
// real PostgreSQL instance, including the join with the occupant order.
type ShelfQueriesIntegrationTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	orderRepo   *orderrepo.GormOrderRepository
	shelfRepo   *shelfrepo.GormShelfRepository
	getHandler  queries.GetShelfQueryHandler
	listHandler queries.GetAllShelvesQueryHandler
}

func (suite *ShelfQueriesIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &shelfrepo.ShelfDTO{}))

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.shelfRepo = shelfrepo.NewGormShelfRepository(db, &mockAggregateTracker{})
	suite.getHandler = queries.NewGetShelfQueryHandler(db)
	suite.listHandler = queries.NewGetAllShelvesQueryHandler(db)
}

func (suite *ShelfQueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE shelves").Error)
}

func (suite *ShelfQueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShelfQueriesIntegrationTestSuite) TestGetShelf_EmptyShelf() {
	aggregate, err := shelf.NewShelf("W-01", shelf.StageWash)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.shelfRepo.Add(context.Background(), aggregate))

	query, err := queries.NewGetShelfQuery("W-01")
	suite.Require().NoError(err)

	resp, err := suite.getHandler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal("W-01", resp.Code)
	suite.Equal(shelf.StageWash.String(), resp.Stage)
	suite.False(resp.IsOccupied)
	suite.Nil(resp.CurrentOrder)
}

func (suite *ShelfQueriesIntegrationTestSuite) TestGetShelf_OccupiedShelfCarriesOrder() {
	ctx := context.Background()

	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "I-01")
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.ChangeStatus(order.StatusIroning, order.PermissiveTransitions()))
	suite.Require().NoError(suite.orderRepo.Add(ctx, aggregate))

	rack, err := shelf.NewShelf("I-01", shelf.StageIron)
	suite.Require().NoError(err)
	suite.Require().NoError(rack.Assign(aggregate.ID()))
	suite.Require().NoError(suite.shelfRepo.Add(ctx, rack))

	query, err := queries.NewGetShelfQuery("I-01")
	suite.Require().NoError(err)

	resp, err := suite.getHandler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(resp.IsOccupied)
	suite.Require().NotNil(resp.CurrentOrder)
	suite.True(aggregate.ID().IsEqual(resp.CurrentOrder.ID))
	suite.True(aggregate.OwnerID().IsEqual(resp.CurrentOrder.OwnerID))
	suite.Equal(order.StatusIroning.String(), resp.CurrentOrder.Status)
	suite.Equal("I-01", resp.CurrentOrder.ShelfLocation)
	suite.Nil(resp.CurrentOrder.NfcTag)
}

func (suite *ShelfQueriesIntegrationTestSuite) TestGetShelf_Unknown_ReturnsNotFound() {
	query, err := queries.NewGetShelfQuery("GHOST")
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ShelfQueriesIntegrationTestSuite) TestGetAllShelves_SortedByCode() {
	ctx := context.Background()
	for _, code := range []string{"W-02", "I-01", "R-03"} {
		aggregate, err := shelf.NewShelf(code, shelf.StageWash)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.shelfRepo.Add(ctx, aggregate))
	}

	result, err := suite.listHandler.Handle(ctx, queries.NewGetAllShelvesQuery())
	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("I-01", result[0].Code)
	suite.Equal("R-03", result[1].Code)
	suite.Equal("W-02", result[2].Code)
}

func (suite *ShelfQueriesIntegrationTestSuite) TestGetAllShelves_EmptyBoard() {
	result, err := suite.listHandler.Handle(context.Background(), queries.NewGetAllShelvesQuery())
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func TestShelfQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShelfQueriesIntegrationTestSuite))
}
