package viewer

import (
	"context"
	"errors"
	"testing"

	"github.com/Iron-Ham/playground/internal/api"
	"go.uber.org/goleak"
)

// fakeSource answers from memory. A nil scenario/state error field means
// success; blockState makes GetState wait for cancellation.
type fakeSource struct {
	scenarioErr error
	stateErr    error
	blockState  bool
}

func (f *fakeSource) GetScenario(ctx context.Context, id string) (*api.Scenario, error) {
	if f.scenarioErr != nil {
		return nil, f.scenarioErr
	}
	return &api.Scenario{ID: id, Title: "T"}, nil
}

func (f *fakeSource) GetState(ctx context.Context, id string) (api.Snapshot, error) {
	if f.blockState {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.stateErr != nil {
		return nil, f.stateErr
	}
	return api.Snapshot{"id": id}, nil
}

func (f *fakeSource) TriggerAction(ctx context.Context, id, actionID string) (api.ActionResult, error) {
	return api.ActionResult{Status: "success"}, nil
}

func TestLoad(t *testing.T) {
	defer goleak.VerifyNone(t)

	errDetail := errors.New("detail failed")
	errState := errors.New("state failed")

	tests := []struct {
		name    string
		src     *fakeSource
		wantErr error
	}{
		{name: "both succeed", src: &fakeSource{}},
		{name: "detail fails", src: &fakeSource{scenarioErr: errDetail}, wantErr: errDetail},
		{name: "state fails", src: &fakeSource{stateErr: errState}, wantErr: errState},
		{name: "detail fails while state hangs", src: &fakeSource{scenarioErr: errDetail, blockState: true}, wantErr: errDetail},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, snap, err := Load(context.Background(), tt.src, "a")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
				}
				if sc != nil || snap != nil {
					t.Error("partial results must be discarded")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if sc.ID != "a" || snap["id"] != "a" {
				t.Errorf("Load() = %+v, %v", sc, snap)
			}
		})
	}
}

func TestLoadHonorsCancellation(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := Load(ctx, &fakeSource{blockState: true}, "a")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Load() error = %v, want context.Canceled", err)
	}
}
