package postgres_test

import (
	"context"
	"testing"

	"logistics/internal/adapters/out/blobstore"
	"logistics/internal/adapters/out/memory"
	postgres_adapter "logistics/internal/adapters/out/postgres"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// BlobStoreIntegrationTestSuite runs the blob store against a real
// PostgreSQL database.
type BlobStoreIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	store     *postgres_adapter.BlobStore
}

// SetupSuite starts the PostgreSQL container and migrates the schema.
func (suite *BlobStoreIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	host, err := container.Host(ctx)
	suite.Require().NoError(err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	suite.Require().NoError(err)

	db, err := postgres_adapter.OpenDB(postgres_adapter.ConnectionConfig{
		Host:     host,
		Port:     port.Port(),
		User:     "testuser",
		Password: "testpass",
		Name:     "testdb",
		Driver:   postgres_adapter.DriverLibPQ,
	})
	suite.Require().NoError(err)
	suite.db = db

	suite.store = postgres_adapter.NewBlobStore(db)
	suite.Require().NoError(suite.store.Migrate(ctx))
}

// SetupTest truncates the table to prevent test interference.
func (suite *BlobStoreIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE blobs").Error)
}

// TearDownSuite terminates the container.
func (suite *BlobStoreIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *BlobStoreIntegrationTestSuite) TestLoad_Absent() {
	_, err := suite.store.Load(context.Background(), "missing")

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *BlobStoreIntegrationTestSuite) TestSave_Upserts() {
	ctx := context.Background()

	suite.Require().NoError(suite.store.Save(ctx, "orders", []byte(`[1]`)))
	suite.Require().NoError(suite.store.Save(ctx, "orders", []byte(`[1,2]`)))

	got, err := suite.store.Load(ctx, "orders")
	suite.Require().NoError(err)
	suite.Equal(`[1,2]`, string(got))

	var count int64
	suite.Require().NoError(suite.db.Model(&postgres_adapter.BlobDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *BlobStoreIntegrationTestSuite) TestDelete_Idempotent() {
	ctx := context.Background()
	suite.Require().NoError(suite.store.Save(ctx, "vehicles", []byte(`[]`)))

	suite.Require().NoError(suite.store.Delete(ctx, "vehicles"))
	suite.Require().NoError(suite.store.Delete(ctx, "vehicles"))

	_, err := suite.store.Load(ctx, "vehicles")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestEntityStore_SurvivesReopen seeds an Entity Store on PostgreSQL, commits a
// change and reopens it from the persisted rows.
func (suite *BlobStoreIntegrationTestSuite) TestEntityStore_SurvivesReopen() {
	ctx := context.Background()
	seed := memory.Seed{Vehicles: []memory.VehicleDTO{{Plate: "AA", MaxWeightCapacity: 100, AvailableWeight: 100}}}

	first, err := memory.Open(ctx, suite.store, seed)
	suite.Require().NoError(err)
	suite.True(first.Seeded())

	uow := memory.NewUnitOfWorkFactory(first).Create()
	suite.Require().NoError(uow.Begin(ctx))
	v, err := uow.VehicleRepository().Get(ctx, "AA")
	suite.Require().NoError(err)
	v.ToggleFavourite()
	suite.Require().NoError(uow.VehicleRepository().Update(ctx, v))
	suite.Require().NoError(uow.Commit(ctx))

	second, err := memory.Open(ctx, suite.store, seed)
	suite.Require().NoError(err)
	suite.False(second.Seeded())

	reloaded, err := second.FindVehicle(ctx, "AA")
	suite.Require().NoError(err)
	suite.True(reloaded.IsFavourite())

	orders, err := blobstore.Load(ctx, suite.store, memory.OrdersKey, []memory.OrderDTO(nil))
	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
}

func TestBlobStoreIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("requires docker")
	}
	suite.Run(t, new(BlobStoreIntegrationTestSuite))
}
