package employee

import (
	"context"
	"errors"
	"time"

	"dosrobles-hr/internal/domain"
	"dosrobles-hr/internal/shared/apperror"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	displayNameKeyPrefix = "employee:display_name:"
	displayNameTTL       = 1 * time.Hour
)

func displayNameKey(id string) string {
	return displayNameKeyPrefix + id
}

// Directory answers the identity questions the leave core asks about
// employees. It stores nothing itself: references stay plain ids and are
// resolved here on demand.
//
//go:generate mockgen -source=employee_directory.go -destination=mock/employee_directory_mock.go -package=mock
type Directory interface {
	Exists(ctx context.Context, id string) (bool, error)
	DisplayName(ctx context.Context, id string) (string, error)
	AdminIDs(ctx context.Context) ([]string, error)
}

type directory struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewDirectory(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Directory {
	l := zap.L().Named("employee.directory")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.directory")
	}
	return &directory{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (d *directory) Exists(ctx context.Context, id string) (bool, error) {
	return d.repo.Exists(ctx, id)
}

// DisplayName resolves an employee id to its full name, caching hits in redis.
// Singleflight collapses concurrent lookups for the same id, which matters
// when a broadcast resolves many recipients at once.
func (d *directory) DisplayName(ctx context.Context, id string) (string, error) {
	cacheKey := displayNameKey(id)

	if d.rdb != nil {
		if cached, err := d.rdb.Get(ctx, cacheKey).Result(); err == nil {
			return cached, nil
		}
	}

	v, err, _ := d.sf.Do(cacheKey, func() (interface{}, error) {
		empl, err := d.repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", apperror.ErrNotFound
			}
			return "", err
		}

		if d.rdb != nil {
			if err := d.rdb.Set(ctx, cacheKey, empl.FullName, displayNameTTL).Err(); err != nil {
				d.logger.Warn("display name cache set failed",
					zap.String("employee_id", id),
					zap.Error(err),
				)
			}
		}

		return empl.FullName, nil
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

// AdminIDs lists every active employee holding the privileged role. Not
// cached: the admin set is small and staleness here would misroute the
// create broadcast.
func (d *directory) AdminIDs(ctx context.Context) ([]string, error) {
	return d.repo.FindActiveIDsByRole(ctx, string(domain.RoleAdmin))
}
