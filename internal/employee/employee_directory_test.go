package employee_test

import (
	"context"
	"testing"
	"time"

	"dosrobles-hr/internal/employee"
	"dosrobles-hr/internal/shared/apperror"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	existsFn              func(ctx context.Context, id string) (bool, error)
	findByIDFn            func(ctx context.Context, id string) (*employee.Employee, error)
	findActiveIDsByRoleFn func(ctx context.Context, role string) ([]string, error)
}

func (f *fakeEmployeeRepository) Exists(ctx context.Context, id string) (bool, error) {
	if f.existsFn != nil {
		return f.existsFn(ctx, id)
	}
	return true, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &employee.Employee{}, nil
}

func (f *fakeEmployeeRepository) FindActiveIDsByRole(ctx context.Context, role string) ([]string, error) {
	if f.findActiveIDsByRoleFn != nil {
		return f.findActiveIDsByRoleFn(ctx, role)
	}
	return nil, nil
}

func TestDirectory_DisplayName(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()
	cacheKey := "employee:display_name:" + employeeID

	t.Run("cache miss loads from repo and caches", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSet(cacheKey, "Marta Quiroga", 1*time.Hour).SetVal("OK")

		repo := &fakeEmployeeRepository{
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				assert.Equal(t, employeeID, id)
				return &employee.Employee{FullName: "Marta Quiroga"}, nil
			},
		}

		dir := employee.NewDirectory(repo, rdb)
		name, err := dir.DisplayName(ctx, employeeID)
		assert.NoError(t, err)
		assert.Equal(t, "Marta Quiroga", name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache hit skips repo", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).SetVal("Marta Quiroga")

		repo := &fakeEmployeeRepository{
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				t.Fatal("repo should not be hit on cache hit")
				return nil, nil
			},
		}

		dir := employee.NewDirectory(repo, rdb)
		name, err := dir.DisplayName(ctx, employeeID)
		assert.NoError(t, err)
		assert.Equal(t, "Marta Quiroga", name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown employee maps to not found", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet(cacheKey).RedisNil()

		repo := &fakeEmployeeRepository{
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}

		dir := employee.NewDirectory(repo, rdb)
		_, err := dir.DisplayName(ctx, employeeID)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("works without redis", func(t *testing.T) {
		repo := &fakeEmployeeRepository{
			findByIDFn: func(ctx context.Context, id string) (*employee.Employee, error) {
				return &employee.Employee{FullName: "Marta Quiroga"}, nil
			},
		}

		dir := employee.NewDirectory(repo, nil)
		name, err := dir.DisplayName(ctx, employeeID)
		assert.NoError(t, err)
		assert.Equal(t, "Marta Quiroga", name)
	})
}

func TestDirectory_AdminIDs(t *testing.T) {
	admins := []string{uuid.New().String(), uuid.New().String()}
	repo := &fakeEmployeeRepository{
		findActiveIDsByRoleFn: func(ctx context.Context, role string) ([]string, error) {
			assert.Equal(t, "admin", role)
			return admins, nil
		},
	}

	dir := employee.NewDirectory(repo, nil)
	got, err := dir.AdminIDs(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, admins, got)
}
