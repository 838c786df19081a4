package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"albarans/internal/adapters/out/postgres/orderrepo"
	"albarans/internal/core/domain/model/catalog"
	"albarans/internal/core/domain/model/kernel"
	"albarans/internal/core/domain/model/order"
	"albarans/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id int64, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using a PostgreSQL container.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, line_items RESTART IDENTITY CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_AssignsNoteNumber() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.Positive(testOrder.ID())
	suite.Equal(kernel.OrderNumber(testOrder.CreatedAt().Year(), testOrder.ID()), testOrder.Number())

	retrieved, err := suite.repository.GetByNumber(ctx, testOrder.Number())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), retrieved.ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsLinesAndTotals() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	product := suite.createTestProduct(3, "10.00")
	_, err := testOrder.AddLine(product, 3, decimal.Zero, "")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Len(retrieved.Lines(), 1)
	suite.Equal("30.00", retrieved.Base().String())
	suite.Equal("6.30", retrieved.Tax().String())
	suite.Equal("36.30", retrieved.Total().String())

	line := retrieved.Lines()[0]
	suite.Equal(product.ID(), line.ProductID())
	suite.Equal(3, line.Quantity())
	suite.Equal(catalog.TaxRate21, line.TaxRate())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_RemovedLinesAreDeleted() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	productA := suite.createTestProduct(1, "10.00")
	productB := suite.createTestProduct(2, "5.50")
	_, err := testOrder.AddLine(productA, 2, decimal.Zero, "")
	suite.Require().NoError(err)
	_, err = testOrder.AddLine(productB, 4, decimal.Zero, "")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Reload so lines carry their database identifiers, then drop one.
	stored, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Len(stored.Lines(), 2)

	removed := stored.Lines()[0].ID()
	suite.Require().NoError(stored.RemoveLine(removed))

	suite.tracker.On("TrackAggregate", stored.ID(), stored).Once()
	suite.Require().NoError(suite.repository.Update(ctx, stored))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Len(retrieved.Lines(), 1)
	suite.NotEqual(removed, retrieved.Lines()[0].ID())

	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.LineItemDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusTransitionIsPersisted() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Transition(order.StatusInPreparation))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusInPreparation, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, 424242)
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByWarehouseAndStatuses_FiltersAndOrders() {
	ctx := context.Background()

	warehouseID := int64(1)
	otherWarehouseID := int64(2)

	older := suite.createTestOrderAt(warehouseID, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	newer := suite.createTestOrderAt(warehouseID, time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC))
	elsewhere := suite.createTestOrderAt(otherWarehouseID, time.Date(2024, 3, 3, 9, 0, 0, 0, time.UTC))

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("int64"), mock.Anything).Times(4)
	suite.Require().NoError(suite.repository.Add(ctx, older))
	suite.Require().NoError(suite.repository.Add(ctx, newer))
	suite.Require().NoError(suite.repository.Add(ctx, elsewhere))

	suite.Require().NoError(older.Cancel())
	suite.Require().NoError(suite.repository.Update(ctx, older))

	pending, err := suite.repository.GetByWarehouseAndStatuses(ctx, warehouseID, []order.Status{order.StatusPending})
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.Equal(newer.ID(), pending[0].ID())

	both, err := suite.repository.GetByWarehouseAndStatuses(ctx, warehouseID,
		[]order.Status{order.StatusPending, order.StatusCancelled})
	suite.Require().NoError(err)
	suite.Require().Len(both, 2)
	suite.Equal(newer.ID(), both[0].ID(), "newest order should come first")
	suite.Equal(older.ID(), both[1].ID())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByWarehouseAndStatuses_InvalidStatus_ReturnsError() {
	_, err := suite.repository.GetByWarehouseAndStatuses(
		context.Background(), 1, []order.Status{order.Status(99)})
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a pending order without a warehouse assignment.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	testOrder, err := order.NewOrder(nil, nil, nil, createdAt, createdAt.AddDate(0, 0, 2), "")
	suite.Require().NoError(err)
	return testOrder
}

// createTestOrderAt creates a pending order for a warehouse with a fixed creation time.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderAt(
	warehouseID int64, createdAt time.Time,
) *order.Order {
	testOrder, err := order.NewOrder(nil, nil, &warehouseID, createdAt, createdAt.AddDate(0, 0, 2), "")
	suite.Require().NoError(err)
	return testOrder
}

// createTestProduct builds a restored product usable as a line snapshot source.
func (suite *OrderRepositoryIntegrationTestSuite) createTestProduct(id int64, price string) *catalog.Product {
	unitPrice, err := kernel.NewMoneyFromString(price)
	suite.Require().NoError(err)

	product, err := catalog.RestoreProduct(
		id, kernel.ProductCode(id), "Test product", "", 1,
		unitPrice, catalog.Box, catalog.TaxRate21, false, "", true,
	)
	suite.Require().NoError(err)
	return product
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
