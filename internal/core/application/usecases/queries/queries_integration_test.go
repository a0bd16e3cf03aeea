package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/partnerrepo"
	"restaurant/internal/adapters/out/postgres/tablerepo"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/partner"
	"restaurant/internal/core/domain/model/table"
	"restaurant/internal/pkg/errs"
)

type QueriesTestSuite struct {
	suite.Suite
	container   *postgres.PostgresContainer
	db          *gorm.DB
	orderRepo   *orderrepo.GormOrderRepository
	partnerRepo *partnerrepo.GormPartnerRepository
	tableRepo   *tablerepo.GormTableRepository
	branchID    kernel.UUID
}

func (suite *QueriesTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &partnerrepo.PartnerDTO{}, &tablerepo.TableDTO{})
	suite.Require().NoError(err)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.partnerRepo = partnerrepo.NewGormPartnerRepository(db, &mockAggregateTracker{})
	suite.tableRepo = tablerepo.NewGormTableRepository(db, &mockAggregateTracker{})
	suite.branchID = kernel.NewUUID()
}

func (suite *QueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueriesTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, partners, tables CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *QueriesTestSuite) newOrder(orderType order.Type, status order.Status) *order.Order {
	price, err := kernel.NewMoney(15000)
	suite.Require().NoError(err)
	item, err := order.NewItem(kernel.NewUUID(), "pad see ew", 1, price)
	suite.Require().NoError(err)
	tax, err := kernel.NewMoney(1050)
	suite.Require().NoError(err)

	address := ""
	var tableID *kernel.UUID
	switch orderType {
	case order.TypeDelivery:
		address = "99 Sukhumvit Rd"
	case order.TypeDineIn:
		id := kernel.NewUUID()
		tableID = &id
	}

	o, err := order.NewOrder(
		kernel.NewUUID(), suite.branchID, orderType,
		[]order.Item{item}, tax,
		order.Customer{Name: "Ploy", Phone: "+66810000000", Email: "ploy@example.com"},
		address, tableID, "extra spicy", order.PaymentCash, time.Now().UTC(),
	)
	suite.Require().NoError(err)

	for _, s := range []order.Status{order.Confirmed, order.Preparing, order.Ready} {
		if o.Status() == status {
			break
		}
		suite.Require().NoError(o.TransitionTo(s, kernel.RoleKitchen, time.Now().UTC()))
	}
	suite.Require().Equal(status, o.Status())
	return o
}

func (suite *QueriesTestSuite) TestKitchenQueue_ReturnsOnlyActiveKitchenWork() {
	ctx := context.Background()

	pending := suite.newOrder(order.TypeDelivery, order.Pending)
	preparing := suite.newOrder(order.TypeTakeaway, order.Preparing)
	completed := suite.newOrder(order.TypeTakeaway, order.Ready)
	suite.Require().NoError(completed.TransitionTo(order.Completed, kernel.RoleKitchen, time.Now().UTC()))

	for _, o := range []*order.Order{pending, preparing, completed} {
		suite.Require().NoError(suite.orderRepo.Add(ctx, o))
	}

	query, err := queries.NewGetKitchenQueueQuery(suite.branchID)
	suite.Require().NoError(err)

	result, err := queries.NewGetKitchenQueueQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Len(result, 2)

	ids := map[kernel.UUID]bool{}
	for _, r := range result {
		ids[r.ID] = true
	}
	suite.True(ids[pending.ID()])
	suite.True(ids[preparing.ID()])
	suite.False(ids[completed.ID()])
}

func (suite *QueriesTestSuite) TestKitchenQueue_ItemsSurviveTheRoundTrip() {
	ctx := context.Background()

	placed := suite.newOrder(order.TypeTakeaway, order.Pending)
	suite.Require().NoError(suite.orderRepo.Add(ctx, placed))

	query, err := queries.NewGetKitchenQueueQuery(suite.branchID)
	suite.Require().NoError(err)

	result, err := queries.NewGetKitchenQueueQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)

	suite.Equal("pending", result[0].Status)
	suite.Equal("takeaway", result[0].OrderType)
	suite.Require().Len(result[0].Items, 1)
	suite.Equal("pad see ew", result[0].Items[0].Name)
	suite.Equal(int64(15000), result[0].Items[0].UnitPriceCents)
	suite.Equal("extra spicy", result[0].Instructions)
	suite.Equal(int64(16050), result[0].TotalCents)
	suite.Positive(result[0].Number)
}

func (suite *QueriesTestSuite) TestPickupQueue_OnlyUnclaimedReadyDeliveries() {
	ctx := context.Background()

	claimable := suite.newOrder(order.TypeDelivery, order.Ready)
	stillCooking := suite.newOrder(order.TypeDelivery, order.Preparing)
	dineIn := suite.newOrder(order.TypeDineIn, order.Ready)

	claimed := suite.newOrder(order.TypeDelivery, order.Ready)
	p, err := partner.NewPartner(kernel.NewUUID(), "Nok", suite.branchID, partner.Vehicle{Kind: "motorbike"})
	suite.Require().NoError(err)
	suite.Require().NoError(p.SetAvailable(true))
	suite.Require().NoError(p.Take(claimed.ID()))
	suite.Require().NoError(claimed.Pickup(p.ID(), time.Now().UTC()))

	for _, o := range []*order.Order{claimable, stillCooking, dineIn, claimed} {
		suite.Require().NoError(suite.orderRepo.Add(ctx, o))
	}

	query, err := queries.NewGetPickupQueueQuery(suite.branchID)
	suite.Require().NoError(err)

	result, err := queries.NewGetPickupQueueQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(claimable.ID(), result[0].ID)
}

func (suite *QueriesTestSuite) TestPartnerDeliveries() {
	ctx := context.Background()

	inTransit := suite.newOrder(order.TypeDelivery, order.Ready)
	p, err := partner.NewPartner(kernel.NewUUID(), "Nok", suite.branchID, partner.Vehicle{Kind: "motorbike"})
	suite.Require().NoError(err)
	suite.Require().NoError(p.SetAvailable(true))
	suite.Require().NoError(p.Take(inTransit.ID()))
	suite.Require().NoError(inTransit.Pickup(p.ID(), time.Now().UTC()))
	suite.Require().NoError(suite.orderRepo.Add(ctx, inTransit))

	unrelated := suite.newOrder(order.TypeDelivery, order.Ready)
	suite.Require().NoError(suite.orderRepo.Add(ctx, unrelated))

	query, err := queries.NewGetPartnerDeliveriesQuery(p.ID())
	suite.Require().NoError(err)

	result, err := queries.NewGetPartnerDeliveriesQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(inTransit.ID(), result[0].ID)
	suite.Equal("picked_up", result[0].Status)
	suite.Require().NotNil(result[0].PartnerID)
	suite.True(result[0].PartnerID.IsEqual(p.ID()))
}

func (suite *QueriesTestSuite) TestTrackOrder_FullDetailWithHistory() {
	ctx := context.Background()

	tracked := suite.newOrder(order.TypeDelivery, order.Preparing)
	suite.Require().NoError(suite.orderRepo.Add(ctx, tracked))

	query, err := queries.NewTrackOrderQuery(tracked.ID())
	suite.Require().NoError(err)

	result, err := queries.NewTrackOrderQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(tracked.ID(), result.ID)
	suite.Equal("preparing", result.Status)
	suite.Equal("cash", result.PaymentMethod)
	suite.Equal("ploy@example.com", result.CustomerEmail)
	suite.Equal(int64(1050), result.TaxCents)

	// pending, confirmed, preparing
	suite.Require().Len(result.History, 3)
	suite.Equal("pending", result.History[0].Status)
	suite.Equal("customer", result.History[0].Role)
	suite.Equal("preparing", result.History[2].Status)
	suite.Equal("kitchen", result.History[2].Role)
}

func (suite *QueriesTestSuite) TestTrackOrder_NotFound() {
	query, err := queries.NewTrackOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewTrackOrderQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesTestSuite) TestActiveOrders_ExcludesTerminal() {
	ctx := context.Background()

	active := suite.newOrder(order.TypeTakeaway, order.Confirmed)
	cancelled := suite.newOrder(order.TypeTakeaway, order.Pending)
	suite.Require().NoError(cancelled.TransitionTo(order.Cancelled, kernel.RoleAdmin, time.Now().UTC()))

	for _, o := range []*order.Order{active, cancelled} {
		suite.Require().NoError(suite.orderRepo.Add(ctx, o))
	}

	query, err := queries.NewGetActiveOrdersQuery(suite.branchID)
	suite.Require().NoError(err)

	result, err := queries.NewGetActiveOrdersQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(active.ID(), result[0].ID)
}

func (suite *QueriesTestSuite) TestPartnersBoard() {
	ctx := context.Background()

	free, err := partner.NewPartner(kernel.NewUUID(), "Anan", suite.branchID, partner.Vehicle{Kind: "bicycle"})
	suite.Require().NoError(err)
	suite.Require().NoError(free.SetAvailable(true))

	busy, err := partner.NewPartner(kernel.NewUUID(), "Nok", suite.branchID,
		partner.Vehicle{Kind: "motorbike", Plate: "1กข 1234"})
	suite.Require().NoError(err)
	suite.Require().NoError(busy.SetAvailable(true))
	suite.Require().NoError(busy.Take(kernel.NewUUID()))

	suite.Require().NoError(suite.partnerRepo.Add(ctx, free))
	suite.Require().NoError(suite.partnerRepo.Add(ctx, busy))

	query, err := queries.NewGetPartnersBoardQuery(suite.branchID)
	suite.Require().NoError(err)

	result, err := queries.NewGetPartnersBoardQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)

	suite.Equal("Anan", result[0].Name)
	suite.Equal("available", result[0].Availability)
	suite.Nil(result[0].CurrentOrderID)

	suite.Equal("Nok", result[1].Name)
	suite.Equal("busy", result[1].Availability)
	suite.NotNil(result[1].CurrentOrderID)
	suite.Equal("motorbike", result[1].VehicleKind)
}

func (suite *QueriesTestSuite) TestDeliveryAvailability() {
	ctx := context.Background()

	query, err := queries.NewCheckDeliveryAvailabilityQuery(suite.branchID)
	suite.Require().NoError(err)
	handler := queries.NewCheckDeliveryAvailabilityQueryHandler(suite.db)

	result, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.False(result.Available)
	suite.Zero(result.FreePartners)

	free, err := partner.NewPartner(kernel.NewUUID(), "Anan", suite.branchID,
		partner.Vehicle{Kind: "bicycle"})
	suite.Require().NoError(err)
	suite.Require().NoError(free.SetAvailable(true))
	suite.Require().NoError(suite.partnerRepo.Add(ctx, free))

	busy, err := partner.NewPartner(kernel.NewUUID(), "Nok", suite.branchID,
		partner.Vehicle{Kind: "motorbike"})
	suite.Require().NoError(err)
	suite.Require().NoError(busy.SetAvailable(true))
	suite.Require().NoError(busy.Take(kernel.NewUUID()))
	suite.Require().NoError(suite.partnerRepo.Add(ctx, busy))

	result, err = handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(result.Available)
	suite.Equal(1, result.FreePartners)
}

func (suite *QueriesTestSuite) TestTables() {
	ctx := context.Background()

	vacant, err := table.NewTable(kernel.NewUUID(), suite.branchID, 1, 2)
	suite.Require().NoError(err)
	occupied, err := table.NewTable(kernel.NewUUID(), suite.branchID, 2, 4)
	suite.Require().NoError(err)
	suite.Require().NoError(occupied.Occupy(kernel.NewUUID()))

	suite.Require().NoError(suite.tableRepo.Add(ctx, vacant))
	suite.Require().NoError(suite.tableRepo.Add(ctx, occupied))

	query, err := queries.NewGetTablesQuery(suite.branchID)
	suite.Require().NoError(err)

	result, err := queries.NewGetTablesQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("vacant", result[0].Status)
	suite.Equal("occupied", result[1].Status)
	suite.NotNil(result[1].CurrentOrderID)
}

func (suite *QueriesTestSuite) TestInvalidQuery() {
	_, err := queries.NewGetKitchenQueueQueryHandler(suite.db).
		Handle(context.Background(), queries.GetKitchenQueueQuery{})
	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetKitchenQueueQuery constructor")
}

func TestQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}

// mockAggregateTracker satisfies the repositories' tracker for test
// purposes.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
}
