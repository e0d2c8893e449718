package dispatch

import (
	"context"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Partitionable messages carry the key that picks their worker.
type Partitionable interface {
	PartitionKey() string
}

// --- common interface ---

// WorkerDispatcher hands out the channel a message must be sent on. Workers
// stop when the context given at construction is done; channels are never
// closed, so senders should select on that context as well.
//
// A message received after the context is done is not handled; it goes to
// the drop function given at construction, if any.
type WorkerDispatcher[T any] interface {
	GetChannelOf(msg T) chan<- T
	// Wait blocks until every worker has returned, then passes the messages
	// still buffered to the drop function. Callers must stop sending first.
	Wait()
}

type workers[T any] struct {
	wg     sync.WaitGroup
	chs    []chan T
	dropFn func(T)
}

func (w *workers[T]) Wait() {
	w.wg.Wait()
	for _, ch := range w.chs {
		w.drain(ch)
	}
}

func (w *workers[T]) drain(ch chan T) {
	for {
		select {
		case msg := <-ch:
			w.drop(msg)
		default:
			return
		}
	}
}

func (w *workers[T]) drop(msg T) {
	if w.dropFn != nil {
		w.dropFn(msg)
	}
}

// --- single queue ---

type singleQueue[T any] struct {
	*workers[T]
}

func (q singleQueue[T]) GetChannelOf(_ T) chan<- T {
	return q.chs[0]
}

// NewSingleQueue starts one worker draining a channel of bufferSize. dropFn
// may be nil.
func NewSingleQueue[T any](
	ctx context.Context,
	bufferSize int,
	handleFn func(context.Context, T),
	dropFn func(T),
) WorkerDispatcher[T] {
	w := &workers[T]{dropFn: dropFn}
	effCh := make(chan T, bufferSize)
	w.chs = []chan T{effCh}
	runWorker(ctx, w, effCh, handleFn)
	return singleQueue[T]{workers: w}
}

// --- partitioned queue ---

type partitionedQueue[T Partitionable] struct {
	*workers[T]
}

func (pq partitionedQueue[T]) GetChannelOf(msg T) chan<- T {
	idx := getIndexByHash(msg, len(pq.chs))
	return pq.chs[idx]
}

// NewPartitionedQueue starts numWorkers workers, each with its own channel.
// Messages with equal partition keys always reach the same worker, so they
// are handled in the order they were sent. dropFn may be nil.
func NewPartitionedQueue[T Partitionable](
	ctx context.Context,
	numWorkers, bufferSize int,
	handleFn func(context.Context, T),
	dropFn func(T),
) WorkerDispatcher[T] {
	w := &workers[T]{dropFn: dropFn}
	w.chs = make([]chan T, numWorkers)
	for i := 0; i < numWorkers; i++ {
		ch := make(chan T, bufferSize)
		w.chs[i] = ch
		runWorker(ctx, w, ch, handleFn)
	}
	return partitionedQueue[T]{workers: w}
}

func runWorker[T any](ctx context.Context, w *workers[T], ch chan T, handleFn func(context.Context, T)) {
	ready := make(chan struct{})
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		close(ready)
		for {
			select {
			case msg := <-ch:
				if ctx.Err() != nil {
					w.drop(msg)
					continue
				}
				handleFn(ctx, msg)
			case <-ctx.Done():
				return
			}
		}
	}()
	<-ready
}

func hash(key string) uint64 {
	return xxhash.Sum64String(key)
}

func getIndexByHash(payload Partitionable, numChs int) int {
	switch numChs {
	case 0:
		panic("number of channels cannot be 0")
	case 1:
		return 0
	default:
		return int(hash(payload.PartitionKey()) % uint64(numChs))
	}
}
