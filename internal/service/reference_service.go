package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/noah-isme/scholarship-portal-api/internal/models"
)

const (
	referenceCachePattern = "ref:*"
	referenceLoadTimeout  = 30 * time.Second
)

type referenceRepository interface {
	ListScholarships(ctx context.Context, token string) ([]models.Scholarship, error)
	SubTypeTranslations(ctx context.Context, token string, role models.Role) (models.SubTypeTranslations, error)
	CurrentUserPermissions(ctx context.Context, token string) ([]models.ScholarshipPermission, error)
}

// ReferenceDataService serves quasi-static scholarship reference data. Each
// dataset is cached per role, and concurrent loads of the same key share
// one backend call.
type ReferenceDataService struct {
	repo   referenceRepository
	cache  *CacheService
	ttl    time.Duration
	group  singleflight.Group
	logger *zap.Logger
}

// NewReferenceDataService constructs a ReferenceDataService.
func NewReferenceDataService(repo referenceRepository, cache *CacheService, ttl time.Duration, logger *zap.Logger) *ReferenceDataService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &ReferenceDataService{repo: repo, cache: cache, ttl: ttl, logger: logger}
}

// ReferenceKey builds the cache key for a role scoped dataset.
func ReferenceKey(role models.Role, dataset string) string {
	r := string(role)
	if r == "" {
		r = "anonymous"
	}
	return fmt.Sprintf("ref:%s:%s", r, dataset)
}

// Scholarships returns the scholarship list for role.
func (s *ReferenceDataService) Scholarships(ctx context.Context, token string, role models.Role) ([]models.Scholarship, error) {
	return cached(ctx, s, ReferenceKey(role, "scholarships"), func(ctx context.Context) ([]models.Scholarship, error) {
		return s.repo.ListScholarships(ctx, token)
	})
}

// SubTypeTranslations returns sub-type labels from the endpoint matching role.
func (s *ReferenceDataService) SubTypeTranslations(ctx context.Context, token string, role models.Role) (models.SubTypeTranslations, error) {
	return cached(ctx, s, ReferenceKey(role, "translations"), func(ctx context.Context) (models.SubTypeTranslations, error) {
		return s.repo.SubTypeTranslations(ctx, token, role)
	})
}

// UserPermissions returns the caller's scholarship grants. Permissions are
// per user, so only roles with scoped access consult the backend, and the
// cache key carries the user id. Callers without an id are never cached.
func (s *ReferenceDataService) UserPermissions(ctx context.Context, token string, role models.Role, userID string) ([]models.ScholarshipPermission, error) {
	if !role.Can(models.CapScholarshipScoped) {
		return []models.ScholarshipPermission{}, nil
	}
	if userID == "" {
		s.logger.Debug("permissions loaded uncached: caller has no user id", zap.String("role", string(role)))
		return s.repo.CurrentUserPermissions(ctx, token)
	}
	return cached(ctx, s, ReferenceKey(role, "permissions:"+userID), func(ctx context.Context) ([]models.ScholarshipPermission, error) {
		return s.repo.CurrentUserPermissions(ctx, token)
	})
}

// Catalog bundles scholarships and translations for lookup helpers.
func (s *ReferenceDataService) Catalog(ctx context.Context, token string, role models.Role) (*models.ScholarshipCatalog, error) {
	scholarships, err := s.Scholarships(ctx, token, role)
	if err != nil {
		return nil, err
	}
	translations, err := s.SubTypeTranslations(ctx, token, role)
	if err != nil {
		return nil, err
	}
	return &models.ScholarshipCatalog{Scholarships: scholarships, Translations: translations}, nil
}

// MyScholarships returns the scholarships the caller holds permission for.
func (s *ReferenceDataService) MyScholarships(ctx context.Context, token string, role models.Role, userID string) ([]models.Scholarship, error) {
	if !role.IsAdministrative() {
		return []models.Scholarship{}, nil
	}
	scholarships, err := s.Scholarships(ctx, token, role)
	if err != nil {
		return nil, err
	}
	perms, err := s.UserPermissions(ctx, token, role, userID)
	if err != nil {
		return nil, err
	}
	return models.FilterScholarshipsByPermission(role, perms, scholarships), nil
}

// Invalidate drops every cached reference dataset.
func (s *ReferenceDataService) Invalidate(ctx context.Context) error {
	s.logger.Info("invalidating reference cache")
	return s.cache.Invalidate(ctx, referenceCachePattern)
}

// cached reads key from cache, otherwise loads it once across concurrent
// callers and stores the result. The shared load outlives the caller that
// started it so a cancelled request does not fail the others waiting on it.
func cached[T any](ctx context.Context, s *ReferenceDataService, key string, load func(context.Context) (T, error)) (T, error) {
	var out T
	if s.cache.Get(ctx, key, &out) {
		return out, nil
	}
	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), referenceLoadTimeout)
		defer cancel()
		value, err := load(loadCtx)
		if err != nil {
			return value, err
		}
		s.cache.Set(loadCtx, key, value, s.ttl)
		return value, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	if shared {
		s.logger.Debug("reference load shared", zap.String("key", key))
	}
	return v.(T), nil
}
