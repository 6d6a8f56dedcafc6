//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"pos/config"
	"pos/internal/domain/entity"
	domainerrors "pos/internal/domain/errors"
	"pos/internal/domain/repository"
	"pos/internal/errors"
	"pos/internal/infra/metrics"
	"pos/internal/infra/persistence"
	"pos/internal/infra/persistence/postgres"

	"github.com/stretchr/testify/suite"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type PostgresKVStoreSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	store     repository.KeyValueStore
}

func TestPostgresKVStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresKVStoreSuite))
}

func (s *PostgresKVStoreSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("pos"),
		tcpostgres.WithUsername("pos"),
		tcpostgres.WithPassword("pos"),
		tcpostgres.BasicWaitStrategies(),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	s.Require().NoError(err)
	s.db = db

	s.Require().NoError(postgres.Migrate(ctx, db))
	s.store = postgres.NewKVStore(db)
}

func (s *PostgresKVStoreSuite) TearDownSuite() {
	if s.db != nil {
		if sqlDB, err := s.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *PostgresKVStoreSuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE kv_entries").Error)
}

func (s *PostgresKVStoreSuite) TestGetMissingKey() {
	value, found, err := s.store.Get(context.Background(), "@pos/basket:nobody")
	s.Require().NoError(err)
	s.False(found)
	s.Empty(value)
}

func (s *PostgresKVStoreSuite) TestSetUpserts() {
	ctx := context.Background()

	s.Require().NoError(s.store.Set(ctx, "k", "first"))
	s.Require().NoError(s.store.Set(ctx, "k", "second"))

	value, found, err := s.store.Get(ctx, "k")
	s.Require().NoError(err)
	s.True(found)
	s.Equal("second", value)

	var count int64
	s.Require().NoError(s.db.Table("kv_entries").Count(&count).Error)
	s.Equal(int64(1), count)
}

func (s *PostgresKVStoreSuite) TestSetFailureIsStorageError() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.store.Set(ctx, "k", "v")
	s.Require().Error(err)

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	s.Require().True(ok)
	s.Equal("STORAGE_UNAVAILABLE", appErr.ErrorCode())
}

func (s *PostgresKVStoreSuite) TestMigrateIsIdempotent() {
	s.Require().NoError(postgres.Migrate(context.Background(), s.db))
}

func (s *PostgresKVStoreSuite) TestConcurrentUpserts() {
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.NoError(s.store.Set(ctx, "shared", fmt.Sprintf("v%d", i)))
		}()
	}
	wg.Wait()

	_, found, err := s.store.Get(ctx, "shared")
	s.Require().NoError(err)
	s.True(found)
}

func (s *PostgresKVStoreSuite) TestBasketRoundTrip() {
	ctx := context.Background()
	cfg := &config.Config{}
	cfg.Basket.KeyPrefix = "@pos/basket"

	repo := persistence.NewBasketRepository(s.store, cfg, metrics.Nop{})
	basket := []entity.BasketItem{
		{ID: 1, ProductID: 101, Name: "Espresso", Price: 2.50, Quantity: 2, Points: 25},
		{ID: 2, ProductID: 202, Name: "Croissant", Price: 3.20, Quantity: 1, Points: 10, Image: "c.png"},
	}

	s.Require().NoError(repo.Save(ctx, "owner-1", basket))

	loaded, err := repo.Load(ctx, "owner-1")
	s.Require().NoError(err)
	s.Equal(basket, loaded)
}
