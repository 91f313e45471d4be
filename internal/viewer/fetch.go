package viewer

import (
	"context"

	"github.com/Iron-Ham/playground/internal/api"
	"github.com/sourcegraph/conc/pool"
)

// Source is the subset of the backend the detail pane needs.
type Source interface {
	GetScenario(ctx context.Context, id string) (*api.Scenario, error)
	GetState(ctx context.Context, id string) (api.Snapshot, error)
	TriggerAction(ctx context.Context, id, actionID string) (api.ActionResult, error)
}

// Load fetches scenario detail and state concurrently. The first failure
// cancels the other request and is returned; partial results are dropped.
func Load(ctx context.Context, src Source, id string) (*api.Scenario, api.Snapshot, error) {
	var (
		sc   *api.Scenario
		snap api.Snapshot
	)

	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	p.Go(func(ctx context.Context) error {
		var err error
		sc, err = src.GetScenario(ctx, id)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		snap, err = src.GetState(ctx, id)
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, nil, err
	}
	return sc, snap, nil
}
