package suspend

import (
	"Panel-API/domain"
	"Panel-API/internal/metrics"
	"Panel-API/internal/utils"
	"Panel-API/pkg/panel"
	"Panel-API/pkg/plan"
	"Panel-API/pkg/user"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/tidwall/gjson"
)

const reconcileTimeout = time.Minute

const (
	ResultDisabled    = "disabled"
	ResultSkipped     = "skipped"
	ResultUnchanged   = "unchanged"
	ResultSuspended   = "suspended"
	ResultUnsuspended = "unsuspended"
	ResultFailed      = "failed"
	ResultDropped     = "dropped"
)

type server struct {
	ID        string
	Suspended bool
	Limits    domain.Resources
}

// Reconciler brings a user's panel servers in line with their package and override.
// Notifications are queued and handled by a fixed pool of workers; a full queue drops them.
type Reconciler struct {
	settings       utils.Settings
	userRepository user.UserRepository
	planRepository plan.PlanRepository
	panelClient    panel.Client

	mu     sync.RWMutex
	queue  chan string
	closed bool
	wg     sync.WaitGroup
}

func NewReconciler(
	settings utils.Settings,
	userRepository user.UserRepository,
	planRepository plan.PlanRepository,
	panelClient panel.Client,
) *Reconciler {
	return &Reconciler{
		settings:       settings,
		userRepository: userRepository,
		planRepository: planRepository,
		panelClient:    panelClient,
		queue:          make(chan string, settings.Suspension.Queue),
	}
}

func (r *Reconciler) Start() {
	workers := r.settings.Suspension.Workers
	if workers <= 0 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		r.wg.Add(1)
		go r.worker()
	}
}

// Stop refuses new notifications and waits for the queued ones to finish.
func (r *Reconciler) Stop() {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.queue)
	}
	r.mu.Unlock()
	r.wg.Wait()
}

// Suspend queues a reconciliation for userID without blocking.
func (r *Reconciler) Suspend(userID string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return
	}

	select {
	case r.queue <- userID:
	default:
		metrics.SuspendReconciliations.WithLabelValues(ResultDropped).Inc()
		log.Warnf("suspend queue full, dropping reconciliation for user %s", userID)
	}
}

func (r *Reconciler) worker() {
	defer r.wg.Done()
	for userID := range r.queue {
		ctx, cancel := context.WithTimeout(context.Background(), reconcileTimeout)
		result, err := r.Reconcile(ctx, userID)
		cancel()

		if err != nil {
			metrics.SuspendReconciliations.WithLabelValues(ResultFailed).Inc()
			log.Errorf("reconciling user %s: %v", userID, err)
			continue
		}
		metrics.SuspendReconciliations.WithLabelValues(result).Inc()
	}
}

// Reconcile suspends every server of a user whose usage exceeds package plus override,
// and lifts suspensions once it fits again.
func (r *Reconciler) Reconcile(ctx context.Context, userID string) (string, error) {
	if !r.settings.Suspension.Enabled {
		return ResultDisabled, nil
	}

	panelID, found, err := r.userRepository.GetPanelID(ctx, userID)
	if err != nil {
		return "", err
	}
	if !found {
		return ResultSkipped, nil
	}

	account, err := r.panelClient.GetUser(ctx, panelID)
	if errors.Is(err, panel.ErrNotFound) {
		return ResultSkipped, nil
	}
	if err != nil {
		return "", err
	}

	name, assigned, err := r.planRepository.GetPackage(ctx, userID)
	if err != nil {
		return "", err
	}
	extra, err := r.planRepository.GetExtra(ctx, userID)
	if err != nil {
		return "", err
	}
	allowed := plan.ResolvePackage(r.settings, name, assigned).Add(extra)

	servers := parseServers(account)
	return r.apply(ctx, servers, exceeds(usage(servers), allowed))
}

func (r *Reconciler) apply(ctx context.Context, servers []server, suspend bool) (string, error) {
	var errs []error
	changed := 0
	for _, s := range servers {
		if s.Suspended == suspend {
			continue
		}
		var err error
		if suspend {
			err = r.panelClient.SuspendServer(ctx, s.ID)
		} else {
			err = r.panelClient.UnsuspendServer(ctx, s.ID)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("server %s: %w", s.ID, err))
			continue
		}
		changed++
	}

	if len(errs) > 0 {
		return "", errors.Join(errs...)
	}
	switch {
	case changed == 0:
		return ResultUnchanged, nil
	case suspend:
		return ResultSuspended, nil
	default:
		return ResultUnsuspended, nil
	}
}

func parseServers(account []byte) []server {
	var servers []server
	gjson.GetBytes(account, "attributes.relationships.servers.data").ForEach(func(_, value gjson.Result) bool {
		attrs := value.Get("attributes")
		servers = append(servers, server{
			ID:        attrs.Get("id").String(),
			Suspended: attrs.Get("suspended").Bool(),
			Limits: domain.Resources{
				RAM:  attrs.Get("limits.memory").Float(),
				Disk: attrs.Get("limits.disk").Float(),
				CPU:  attrs.Get("limits.cpu").Float(),
			},
		})
		return true
	})
	return servers
}

func usage(servers []server) domain.Resources {
	var total domain.Resources
	for _, s := range servers {
		total = total.Add(s.Limits)
	}
	total.Servers = float64(len(servers))
	return total
}

func exceeds(used, allowed domain.Resources) bool {
	return used.RAM > allowed.RAM ||
		used.Disk > allowed.Disk ||
		used.CPU > allowed.CPU ||
		used.Servers > allowed.Servers
}
