package notify

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Sender performs the actual notification work. It must swallow its
// own errors; the dispatcher only provides the goroutines and queue.
type Sender interface {
	SendOrderNotification(ctx context.Context, orderID int64)
}

// Dispatcher is the in-process background queue the request path hands
// committed order ids to. Enqueue never blocks the caller: a full
// queue drops the job with a log line, since notifications are
// best-effort.
type Dispatcher struct {
	workers int
	jobs    chan int64
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
	sender  Sender
	logger  *zap.Logger
}

func NewDispatcher(sender Sender, workers, queueSize int, logger *zap.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 64
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		workers: workers,
		jobs:    make(chan int64, queueSize),
		ctx:     ctx,
		cancel:  cancel,
		sender:  sender,
		logger:  logger,
	}
}

func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
}

// Stop cancels the workers and waits for them to exit. Jobs still
// queued are dropped; the orders they reference are already committed.
func (d *Dispatcher) Stop() {
	d.cancel()
	d.wg.Wait()
}

// Enqueue schedules a notification for an already-committed order.
func (d *Dispatcher) Enqueue(orderID int64) {
	select {
	case d.jobs <- orderID:
	default:
		d.logger.Warn("notification queue full, dropping job",
			zap.Int64("order_id", orderID))
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for {
		select {
		case <-d.ctx.Done():
			return
		case orderID := <-d.jobs:
			d.sender.SendOrderNotification(d.ctx, orderID)
		}
	}
}
