package plan

import (
	"Panel-API/domain"
	"Panel-API/internal/utils"
	"Panel-API/pkg/kv"
	"Panel-API/pkg/user"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

type recordingSuspender struct {
	mu    sync.Mutex
	calls []string
}

func (r *recordingSuspender) Suspend(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, userID)
}

func testSettings() utils.Settings {
	return utils.Settings{
		Packages: utils.PackageSettings{
			Default: "default",
			List: map[string]utils.Package{
				"default": {RAM: 1024, Disk: 2048, CPU: 100, Servers: 1},
				"pro":     {RAM: 4096, Disk: 8192, CPU: 200, Servers: 3},
			},
		},
	}
}

type fixture struct {
	service   PlanService
	repo      PlanRepository
	store     kv.Store
	suspender *recordingSuspender
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	store, err := kv.NewMemoryStore()
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), "users-1", "17"))

	repo := NewPlanRepository(store)
	suspender := &recordingSuspender{}
	service := NewPlanService(repo, user.NewUserRepository(store), suspender, testSettings(), utils.NewValidator())
	return fixture{service: service, repo: repo, store: store, suspender: suspender}
}

func TestSetPlanAssignsPackage(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	require.NoError(t, f.service.SetPlan(ctx, domain.SetPlanRequest{ID: ptr("1"), Package: ptr("pro")}))

	name, assigned, err := f.repo.GetPackage(ctx, "1")
	require.NoError(t, err)
	assert.True(t, assigned)
	assert.Equal(t, "pro", name)
	assert.Equal(t, []string{"1"}, f.suspender.calls)
}

func TestSetPlanWithoutPackageRevertsToDefault(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.repo.SetPackage(ctx, "1", "pro"))

	require.NoError(t, f.service.SetPlan(ctx, domain.SetPlanRequest{ID: ptr("1")}))

	_, assigned, err := f.repo.GetPackage(ctx, "1")
	require.NoError(t, err)
	assert.False(t, assigned)
	assert.Equal(t, []string{"1"}, f.suspender.calls)
}

func TestSetPlanRejectsUnknownPackage(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.repo.SetPackage(ctx, "1", "pro"))

	err := f.service.SetPlan(ctx, domain.SetPlanRequest{ID: ptr("1"), Package: ptr("gold")})
	assert.ErrorIs(t, err, domain.ErrInvalidPackage)

	name, _, err := f.repo.GetPackage(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "pro", name)
	assert.Empty(t, f.suspender.calls)
}

func TestSetPlanUserChecks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	assert.ErrorIs(t, f.service.SetPlan(ctx, domain.SetPlanRequest{Package: ptr("pro")}), domain.ErrMissingID)
	assert.ErrorIs(t, f.service.SetPlan(ctx, domain.SetPlanRequest{ID: ptr("9999"), Package: ptr("pro")}), domain.ErrInvalidID)
	assert.ErrorIs(t, f.service.SetPlan(ctx, domain.SetPlanRequest{ID: ptr("9999")}), domain.ErrInvalidID)

	_, found, err := f.store.Get(ctx, "package-9999")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, f.suspender.calls)
}

func TestSetResourcesPartialUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.repo.SetExtra(ctx, "1", domain.Resources{RAM: 5}))

	require.NoError(t, f.service.SetResources(ctx, domain.SetResourcesRequest{ID: ptr("1"), Disk: ptr(10.0)}))

	extra, err := f.repo.GetExtra(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, domain.Resources{RAM: 5, Disk: 10}, extra)
	assert.Equal(t, []string{"1"}, f.suspender.calls)
}

func TestSetResourcesAllZeroDeletes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.repo.SetExtra(ctx, "1", domain.Resources{RAM: 5, Disk: 10}))

	require.NoError(t, f.service.SetResources(ctx, domain.SetResourcesRequest{
		ID: ptr("1"), RAM: ptr(0.0), Disk: ptr(0.0), CPU: ptr(0.0), Servers: ptr(0.0),
	}))

	_, found, err := f.store.Get(ctx, "extra-1")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, []string{"1"}, f.suspender.calls)
}

func TestSetResourcesIgnoresMalformedOverride(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.store.Set(ctx, "extra-1", "garbage"))

	require.NoError(t, f.service.SetResources(ctx, domain.SetResourcesRequest{ID: ptr("1"), CPU: ptr(50.0)}))

	extra, err := f.repo.GetExtra(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, domain.Resources{CPU: 50}, extra)
}

func TestSetResourcesValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	require.NoError(t, f.repo.SetExtra(ctx, "1", domain.Resources{RAM: 5}))

	tests := []struct {
		name string
		req  domain.SetResourcesRequest
		want error
	}{
		{"missing id", domain.SetResourcesRequest{RAM: ptr(1.0)}, domain.ErrMissingID},
		{"unknown user", domain.SetResourcesRequest{ID: ptr("9999"), RAM: ptr(1.0)}, domain.ErrInvalidID},
		{"no variables", domain.SetResourcesRequest{ID: ptr("1")}, domain.ErrMissingVariables},
		{"ram", domain.SetResourcesRequest{ID: ptr("1"), RAM: ptr(-1.0)}, domain.ErrRAMSize},
		{"disk", domain.SetResourcesRequest{ID: ptr("1"), Disk: ptr(1e15)}, domain.ErrDiskSize},
		{"cpu", domain.SetResourcesRequest{ID: ptr("1"), CPU: ptr(-0.5)}, domain.ErrCPUSize},
		{"servers", domain.SetResourcesRequest{ID: ptr("1"), RAM: ptr(7.0), Servers: ptr(-2.0)}, domain.ErrServerSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, f.service.SetResources(ctx, tt.req), tt.want)
		})
	}

	extra, err := f.repo.GetExtra(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, domain.Resources{RAM: 5}, extra)
	assert.Empty(t, f.suspender.calls)
}

func TestResolvePackage(t *testing.T) {
	settings := testSettings()

	assert.Equal(t, domain.Resources{RAM: 1024, Disk: 2048, CPU: 100, Servers: 1}, ResolvePackage(settings, "", false))
	assert.Equal(t, domain.Resources{RAM: 4096, Disk: 8192, CPU: 200, Servers: 3}, ResolvePackage(settings, "pro", true))
	assert.Equal(t, domain.Resources{}, ResolvePackage(settings, "retired", true))
}
