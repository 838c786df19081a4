package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	postgresadapter "albarans/internal/adapters/out/postgres"
	"albarans/internal/adapters/out/postgres/catalogrepo"
	"albarans/internal/adapters/out/postgres/clientrepo"
	"albarans/internal/adapters/out/postgres/orderrepo"
	"albarans/internal/adapters/out/postgres/stockrepo"
	"albarans/internal/adapters/out/postgres/warehouserepo"
	"albarans/internal/core/domain/model/client"
	"albarans/internal/core/domain/model/order"
	"albarans/internal/core/domain/model/stock"
	"albarans/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based unit of work against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&clientrepo.ClientDTO{},
		&catalogrepo.CategoryDTO{},
		&catalogrepo.ProductDTO{},
		&warehouserepo.WarehouseDTO{},
		&warehouserepo.EmployeeDTO{},
		&stockrepo.StockEntryDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE clients, categories, products, warehouses, employees, " +
			"stock_entries, orders, line_items RESTART IDENTITY CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_ReturnsInvalidTransaction() {
	uow := suite.factory.Create()
	err := uow.Commit(context.Background())
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollbackAfterCommit_IsHarmless() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	err := uow.Rollback(ctx)
	suite.Require().ErrorIs(err, gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChanges() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	aggregate := suite.newTestClient()
	suite.Require().NoError(uow.ClientRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Rollback(ctx))

	var count int64
	suite.Require().NoError(suite.db.Model(&clientrepo.ClientDTO{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	aggregate := suite.newTestClient()
	suite.Require().NoError(uow.ClientRepository().Add(ctx, aggregate))

	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	clientID := aggregate.ID()
	testOrder, err := order.NewOrder(&clientID, nil, nil, createdAt, createdAt.AddDate(0, 0, 2), "")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	suite.Require().NoError(uow.Commit(ctx))

	// Both writes happened in one transaction and survive a fresh read.
	stored, err := suite.factory.Create().ClientRepository().GetByCode(ctx, aggregate.Code())
	suite.Require().NoError(err)
	suite.Equal("CLI001", stored.Code())

	storedOrder, err := suite.factory.Create().OrderRepository().GetByNumber(ctx, testOrder.Number())
	suite.Require().NoError(err)
	suite.Require().NotNil(storedOrder.ClientID())
	suite.Equal(clientID, *storedOrder.ClientID())
}

// TestConcurrentStockConsumption verifies that two transactions consuming
// from the same stock entry serialize on the FOR UPDATE lock. Only one of
// two consumers of 6 units can succeed on an entry holding 10.
func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentStockConsumption() {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	entry, err := stock.NewStockEntry(1, 1, 10, now, "A-01")
	suite.Require().NoError(err)

	seed := suite.factory.Create()
	suite.Require().NoError(seed.Begin(ctx))
	suite.Require().NoError(seed.StockRepository().Add(ctx, entry))
	suite.Require().NoError(seed.Commit(ctx))

	consume := func() error {
		uow := suite.factory.Create()
		if beginErr := uow.Begin(ctx); beginErr != nil {
			return beginErr
		}
		defer func() { _ = uow.Rollback(ctx) }()

		entries, getErr := uow.StockRepository().GetForUpdate(ctx, 1, []int64{1})
		if getErr != nil {
			return getErr
		}

		locked := entries[1]
		if consumeErr := locked.Consume(6); consumeErr != nil {
			return consumeErr
		}
		if updateErr := uow.StockRepository().Update(ctx, locked); updateErr != nil {
			return updateErr
		}

		return uow.Commit(ctx)
	}

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for range 2 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- consume()
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		}
	}
	suite.Equal(1, succeeded, "exactly one consumer should win the lock race")

	final, err := suite.factory.Create().StockRepository().Get(ctx, 1, 1)
	suite.Require().NoError(err)
	suite.Equal(4, final.Quantity())
}

func (suite *UnitOfWorkIntegrationTestSuite) newTestClient() *client.Client {
	aggregate, err := client.NewClient(
		"Distribuciones Norte SL", "B12345678", "Ana Torres",
		"600123123", "compras@norte.example", "Poligono 4, Nave 2", "Gijon", "33210",
	)
	suite.Require().NoError(err)
	return aggregate
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
