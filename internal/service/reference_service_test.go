package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/scholarship-portal-api/internal/models"
	appErrors "github.com/noah-isme/scholarship-portal-api/pkg/errors"
)

type memoryCacheRepo struct {
	mu      sync.Mutex
	entries map[string][]byte
	getErr  error
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{entries: map[string][]byte{}}
}

func (m *memoryCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	if m.getErr != nil {
		return m.getErr
	}
	m.mu.Lock()
	raw, ok := m.entries[key]
	m.mu.Unlock()
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.entries[key] = raw
	m.mu.Unlock()
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	m.mu.Lock()
	for key := range m.entries {
		if strings.HasPrefix(key, prefix) {
			delete(m.entries, key)
		}
	}
	m.mu.Unlock()
	return nil
}

type stubReferenceRepo struct {
	scholarshipCalls int32
	translationRoles []models.Role
	permissionCalls  int32
	mu               sync.Mutex
	gate             chan struct{}
	err              error
	loadCtxErr       error
}

func (s *stubReferenceRepo) ListScholarships(ctx context.Context, token string) ([]models.Scholarship, error) {
	atomic.AddInt32(&s.scholarshipCalls, 1)
	if s.gate != nil {
		<-s.gate
	}
	s.mu.Lock()
	s.loadCtxErr = ctx.Err()
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return []models.Scholarship{{ID: 1, Code: "phd", Name: "博士生獎學金"}, {ID: 2, Code: "direct_phd", Name: "逕博獎學金"}}, nil
}

func (s *stubReferenceRepo) SubTypeTranslations(ctx context.Context, token string, role models.Role) (models.SubTypeTranslations, error) {
	s.mu.Lock()
	s.translationRoles = append(s.translationRoles, role)
	s.mu.Unlock()
	return models.SubTypeTranslations{"zh": {"nstc": "國科會"}}, nil
}

func (s *stubReferenceRepo) CurrentUserPermissions(ctx context.Context, token string) ([]models.ScholarshipPermission, error) {
	atomic.AddInt32(&s.permissionCalls, 1)
	return []models.ScholarshipPermission{{UserID: 5, ScholarshipID: 2}}, nil
}

func newReferenceService(repo referenceRepository, cacheRepo CacheRepository) *ReferenceDataService {
	cache := NewCacheService(cacheRepo, NewMetricsService(), time.Hour, nil, true)
	return NewReferenceDataService(repo, cache, time.Hour, nil)
}

func TestReferenceScholarshipsCachedPerRole(t *testing.T) {
	repo := &stubReferenceRepo{}
	cacheRepo := newMemoryCacheRepo()
	svc := newReferenceService(repo, cacheRepo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		list, err := svc.Scholarships(ctx, "tok", models.RoleAdmin)
		require.NoError(t, err)
		assert.Len(t, list, 2)
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&repo.scholarshipCalls))

	_, err := svc.Scholarships(ctx, "tok", models.RoleCollege)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&repo.scholarshipCalls))
	assert.Contains(t, cacheRepo.entries, "ref:admin:scholarships")
	assert.Contains(t, cacheRepo.entries, "ref:college:scholarships")
}

func TestReferenceTranslationsKeyIncludesRole(t *testing.T) {
	repo := &stubReferenceRepo{}
	svc := newReferenceService(repo, newMemoryCacheRepo())
	ctx := context.Background()

	_, err := svc.SubTypeTranslations(ctx, "tok", models.RoleAdmin)
	require.NoError(t, err)
	_, err = svc.SubTypeTranslations(ctx, "tok", models.RoleCollege)
	require.NoError(t, err)
	_, err = svc.SubTypeTranslations(ctx, "tok", models.RoleAdmin)
	require.NoError(t, err)

	assert.Equal(t, []models.Role{models.RoleAdmin, models.RoleCollege}, repo.translationRoles)
}

func TestReferenceConcurrentLoadsCollapse(t *testing.T) {
	repo := &stubReferenceRepo{gate: make(chan struct{})}
	svc := newReferenceService(repo, newMemoryCacheRepo())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Scholarships(ctx, "tok", models.RoleSuperAdmin)
			assert.NoError(t, err)
		}()
	}
	require.Eventually(t, func() bool { return atomic.LoadInt32(&repo.scholarshipCalls) >= 1 }, time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(repo.gate)
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&repo.scholarshipCalls), int32(2))
}

func TestReferenceCacheFailureFallsBackToBackend(t *testing.T) {
	repo := &stubReferenceRepo{}
	cacheRepo := newMemoryCacheRepo()
	cacheRepo.getErr = errors.New("redis: connection refused")
	svc := newReferenceService(repo, cacheRepo)

	list, err := svc.Scholarships(context.Background(), "tok", models.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestReferenceBackendErrorPropagates(t *testing.T) {
	repo := &stubReferenceRepo{err: appErrors.Backend(401, "Token expired")}
	svc := newReferenceService(repo, newMemoryCacheRepo())

	_, err := svc.Scholarships(context.Background(), "tok", models.RoleAdmin)
	require.Error(t, err)
	assert.Equal(t, "Token expired", appErrors.FromError(err).Message)
}

func TestReferenceMyScholarshipsFiltersByPermission(t *testing.T) {
	repo := &stubReferenceRepo{}
	svc := newReferenceService(repo, newMemoryCacheRepo())
	ctx := context.Background()

	mine, err := svc.MyScholarships(ctx, "tok", models.RoleCollege, "5")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "direct_phd", mine[0].Code)

	all, err := svc.MyScholarships(ctx, "tok", models.RoleSuperAdmin, "1")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	none, err := svc.MyScholarships(ctx, "tok", models.RoleProfessor, "9")
	require.NoError(t, err)
	assert.Empty(t, none)
	assert.Equal(t, int32(1), atomic.LoadInt32(&repo.permissionCalls))
}

func TestReferenceCatalogAndInvalidate(t *testing.T) {
	repo := &stubReferenceRepo{}
	cacheRepo := newMemoryCacheRepo()
	svc := newReferenceService(repo, cacheRepo)
	ctx := context.Background()

	catalog, err := svc.Catalog(ctx, "tok", models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "博士生獎學金", catalog.GetScholarshipName(1, models.LocaleZH))
	assert.Equal(t, "國科會", catalog.GetSubTypeName("nstc", models.LocaleZH))
	assert.Len(t, cacheRepo.entries, 2)

	require.NoError(t, svc.Invalidate(ctx))
	assert.Empty(t, cacheRepo.entries)

	_, err = svc.Scholarships(ctx, "tok", models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&repo.scholarshipCalls))
}

func TestReferenceSharedLoadSurvivesCallerCancellation(t *testing.T) {
	repo := &stubReferenceRepo{}
	cacheRepo := newMemoryCacheRepo()
	svc := newReferenceService(repo, cacheRepo)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	list, err := svc.Scholarships(ctx, "tok", models.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.NoError(t, repo.loadCtxErr)
	assert.Contains(t, cacheRepo.entries, "ref:admin:scholarships")
}

func TestReferencePermissionsWithoutUserIDAreNotCached(t *testing.T) {
	repo := &stubReferenceRepo{}
	cacheRepo := newMemoryCacheRepo()
	svc := newReferenceService(repo, cacheRepo)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		perms, err := svc.UserPermissions(ctx, "tok", models.RoleCollege, "")
		require.NoError(t, err)
		assert.Len(t, perms, 1)
	}
	assert.Equal(t, int32(2), atomic.LoadInt32(&repo.permissionCalls))
	assert.NotContains(t, cacheRepo.entries, "ref:college:permissions:")
	assert.Empty(t, cacheRepo.entries)
}

func TestReferenceMyScholarshipsSkipsBackendForNonAdministrativeRoles(t *testing.T) {
	repo := &stubReferenceRepo{}
	svc := newReferenceService(repo, newMemoryCacheRepo())

	mine, err := svc.MyScholarships(context.Background(), "tok", models.RoleStudent, "3")
	require.NoError(t, err)
	assert.Empty(t, mine)
	assert.Equal(t, int32(0), atomic.LoadInt32(&repo.scholarshipCalls))
	assert.Equal(t, int32(0), atomic.LoadInt32(&repo.permissionCalls))
}
