package concurrent

import (
	"sync"

	"go.uber.org/zap"
)

type JobFunc[T any] func(job T) error

// BackgroundWorker runs jobs on a fixed set of goroutines without making the
// caller wait for them. Failed jobs are logged and dropped.
type BackgroundWorker[T any] struct {
	workers   int
	msgC      chan T
	waitGroup sync.WaitGroup
	jobFunc   JobFunc[T]
	log       *zap.Logger
	closeOnce sync.Once
}

func NewBackgroundWorker[T any](workers, buffer int, jobFunc JobFunc[T], log *zap.Logger) *BackgroundWorker[T] {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &BackgroundWorker[T]{
		workers: workers,
		msgC:    make(chan T, buffer),
		jobFunc: jobFunc,
		log:     log,
	}
}

// TriggerProcessing queues a job. It blocks while the buffer is full.
func (bw *BackgroundWorker[T]) TriggerProcessing(job T) {
	bw.msgC <- job
}

func (bw *BackgroundWorker[T]) Start() {
	bw.waitGroup.Add(bw.workers)
	for i := 0; i < bw.workers; i++ {
		go func() {
			defer bw.waitGroup.Done()
			for job := range bw.msgC {
				if err := bw.jobFunc(job); err != nil {
					bw.log.Warn("background job failed", zap.Error(err))
				}
			}
		}()
	}
}

// Close stops accepting jobs and waits for the queued ones to finish.
func (bw *BackgroundWorker[T]) Close() {
	bw.closeOnce.Do(func() {
		close(bw.msgC)
	})
	bw.waitGroup.Wait()
}
