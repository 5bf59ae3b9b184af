package scan

import (
	"context"
	"testing"
)

func TestRunnerStartSupersedesPreviousRun(t *testing.T) {
	var r Runner

	ctxA, tokenA := r.Start(context.Background())
	if !r.IsCurrent(tokenA) {
		t.Fatal("fresh token must be current")
	}

	ctxB, tokenB := r.Start(context.Background())

	if tokenB <= tokenA {
		t.Fatalf("tokens must increase: %d then %d", tokenA, tokenB)
	}
	if r.IsCurrent(tokenA) {
		t.Fatal("superseded token must not be current")
	}
	if !r.IsCurrent(tokenB) {
		t.Fatal("new token must be current")
	}

	select {
	case <-ctxA.Done():
	default:
		t.Fatal("starting a new run must cancel the previous context")
	}
	if ctxB.Err() != nil {
		t.Fatal("new run context must be live")
	}
}

func TestRunnerStop(t *testing.T) {
	var r Runner

	ctx, token := r.Start(context.Background())
	r.Stop()

	if r.IsCurrent(token) {
		t.Fatal("stopped token must not be current")
	}
	select {
	case <-ctx.Done():
	default:
		t.Fatal("Stop must cancel the run context")
	}
}
