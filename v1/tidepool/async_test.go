package tidepool

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"testing"
	"time"
)

// newAsyncPair returns a sync client and an async client sharing the same
// stub services, so behavioral identity can be checked result-for-result.
func newAsyncPair(t *testing.T, queryBody, ingestBody string) (*Client, *AsyncClient) {
	t.Helper()
	sync, _ := newStubServices(t,
		jsonHandler(200, queryBody),
		jsonHandler(200, ingestBody),
	)
	return sync, &AsyncClient{sync: sync}
}

func TestAsyncClient_QueryMatchesSync(t *testing.T) {
	sync, async := newAsyncPair(t,
		`{"results": [{"id": "a", "score": 0.7}], "namespace": "docs"}`,
		`{}`,
	)

	req := QueryRequest{Vector: Vector{0.1, 0.2}, TopK: 3}
	ctx := context.Background()

	want, wantErr := sync.Query(ctx, req)
	got, gotErr := async.Query(ctx, req).Wait()

	if (wantErr == nil) != (gotErr == nil) {
		t.Fatalf("error mismatch: sync=%v async=%v", wantErr, gotErr)
	}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("response mismatch:\nsync:  %#v\nasync: %#v", want, got)
	}
}

func TestAsyncClient_ValidationErrorsMatchSync(t *testing.T) {
	sync, async := newAsyncPair(t, `{"results": []}`, `{}`)

	req := QueryRequest{Vector: Vector{0.1}} // missing top_k
	ctx := context.Background()

	_, wantErr := sync.Query(ctx, req)
	_, gotErr := async.Query(ctx, req).Wait()

	if !IsValidation(wantErr) || !IsValidation(gotErr) {
		t.Fatalf("expected validation from both, got sync=%v async=%v", wantErr, gotErr)
	}
	if wantErr.Error() != gotErr.Error() {
		t.Errorf("error text mismatch: sync=%q async=%q", wantErr.Error(), gotErr.Error())
	}
}

func TestAsyncClient_UpsertAck(t *testing.T) {
	_, async := newAsyncPair(t, `{}`, `{"status": "ok"}`)

	call := async.Upsert(context.Background(), UpsertRequest{
		Documents: []Document{{ID: "a", Vector: Vector{0.1}}},
	})
	if err := call.Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAsyncClient_WaitIsIdempotent(t *testing.T) {
	_, async := newAsyncPair(t, `{"results": [{"id": "a"}]}`, `{}`)

	call := async.Query(context.Background(), QueryRequest{Vector: Vector{0.1}, TopK: 1})

	first, err1 := call.Wait()
	second, err2 := call.Wait()

	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v %v", err1, err2)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Wait returned different results")
	}
}

func TestAsyncClient_DoneSelectable(t *testing.T) {
	_, async := newAsyncPair(t, `{"results": []}`, `{}`)

	call := async.Query(context.Background(), QueryRequest{Vector: Vector{0.1}, TopK: 1})

	select {
	case <-call.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("Done channel never closed")
	}

	if _, err := call.Wait(); err != nil {
		t.Fatalf("unexpected error after Done: %v", err)
	}
}

func TestAsyncClient_ContextCancellation(t *testing.T) {
	client, err := NewAsyncClientWithTransport(
		DefaultConfig().WithDefaultNamespace("docs"),
		failingDoer{err: errors.New("connection refused")},
	)
	if err != nil {
		t.Fatalf("NewAsyncClientWithTransport: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.Query(ctx, QueryRequest{Vector: Vector{0.1}, TopK: 1}).Wait()
	if !IsTransport(err) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestAsyncClient_DoesNotBlockCaller(t *testing.T) {
	blocked := make(chan struct{})
	sync, _ := newStubServices(t,
		func(w http.ResponseWriter, r *http.Request) {
			<-blocked
			jsonHandler(200, `{"results": []}`)(w, r)
		},
		jsonHandler(200, `{}`),
	)
	async := &AsyncClient{sync: sync}

	start := time.Now()
	call := async.Query(context.Background(), QueryRequest{Vector: Vector{0.1}, TopK: 1})
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("dispatch blocked for %v", elapsed)
	}

	close(blocked)
	if _, err := call.Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
