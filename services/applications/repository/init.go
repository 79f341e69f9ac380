package repository

import (
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/yuanzh/recruit-portal/internal/pkg/database"
	"github.com/yuanzh/recruit-portal/internal/pkg/models"
)

// ApplicationRepo handles persistence for applications, notifications and
// verification codes. Applications and notifications live in Postgres;
// verification codes live in Redis under a TTL.
type ApplicationRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient

	// now is the single clock source for timestamps; overridable in tests.
	now func() time.Time
}

// NewApplicationRepo creates a new application repository instance
func NewApplicationRepo(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *ApplicationRepo {
	return &ApplicationRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
		now:         time.Now,
	}
}
