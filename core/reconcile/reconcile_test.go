package reconcile_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"flatacuties/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    reconcile.Policy
		wantErr bool
	}{
		{"", reconcile.PolicyRetain, false},
		{"retain", reconcile.PolicyRetain, false},
		{" Revert ", reconcile.PolicyRevert, false},
		{"rollback", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := reconcile.ParsePolicy(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPending(t *testing.T) {
	p := reconcile.NewPending[int]()

	select {
	case <-p.Done():
		t.Fatal("resolved too early")
	default:
	}

	p.Resolve(5, nil)
	p.Resolve(6, errors.New("ignored"))

	v, err := p.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestPending_WaitContext(t *testing.T) {
	p := reconcile.NewPending[string]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestTracker(t *testing.T) {
	var tr reconcile.Tracker
	var n atomic.Int32
	for i := 0; i < 5; i++ {
		tr.Go(func() {
			time.Sleep(5 * time.Millisecond)
			n.Add(1)
		})
	}
	tr.Wait()
	assert.Equal(t, int32(5), n.Load())
}
