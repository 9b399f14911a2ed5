package components

import (
	"net/http"

	"radstation/internal/infra/cache"
	"radstation/internal/infra/db"
	"radstation/internal/infra/repository"
	"radstation/internal/infra/upstream"
	"radstation/internal/pkg/config"
	"radstation/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.SubmissionQueries)),
		),
		fx.Annotate(
			repository.NewSubmissionRepository,
			fx.As(new(shared.SubmissionRepository)),
		),
		fx.Annotate(
			NewSnapshotCache,
			fx.As(new(shared.SnapshotCache)),
		),
		fx.Annotate(
			NewUpstreamClient,
			fx.As(new(shared.AvailabilitySource)),
			fx.As(new(shared.BookingSink)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *db.Queries {
	return db.New()
}

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewSnapshotCache(rdb *redis.Client, cfg config.Config) *cache.SnapshotCache {
	return cache.NewSnapshotCache(rdb, cfg.Redis.SnapshotTTL)
}

func NewUpstreamClient(cfg config.Config) *upstream.Client {
	return upstream.NewClient(&http.Client{Timeout: cfg.Upstream.Timeout}, cfg.Upstream)
}
