package renderer

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sync"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/scene"
)

// FrameTask is one whole frame for the worker pool. Frames are independent;
// the pixels of a single frame are still traced by one worker.
type FrameTask struct {
	TaskID int // Index into the batch, for deterministic ordering
	Name   string
	Scene  *scene.Scene
	Width  int
	Height int
}

// FrameResult contains the result of rendering a frame
type FrameResult struct {
	TaskID int
	Name   string
	Image  *image.RGBA
	Stats  RenderStats
	Error  error
}

// WorkerPool renders frames in parallel
type WorkerPool struct {
	taskQueue   chan FrameTask
	resultQueue chan FrameResult
	numWorkers  int
	wg          sync.WaitGroup
	logger      core.Logger
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// queueSize bounds the number of queued tasks and undelivered results.
func NewWorkerPool(numWorkers, queueSize int, logger core.Logger) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = NewNopLogger()
	}

	return &WorkerPool{
		taskQueue:   make(chan FrameTask, queueSize),
		resultQueue: make(chan FrameResult, queueSize),
		numWorkers:  numWorkers,
		logger:      logger,
	}
}

// Start begins all workers. Tasks taken after ctx is done fail with ctx.Err().
func (wp *WorkerPool) Start(ctx context.Context) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run(ctx, i)
	}
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a frame task to the worker pool
func (wp *WorkerPool) SubmitTask(task FrameTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed frame result
func (wp *WorkerPool) GetResult() (FrameResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run(ctx context.Context, id int) {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		result := FrameResult{TaskID: task.TaskID, Name: task.Name}

		if err := ctx.Err(); err != nil {
			result.Error = err
			wp.resultQueue <- result
			continue
		}

		rt, err := NewRaytracer(task.Scene, task.Width, task.Height)
		if err != nil {
			result.Error = fmt.Errorf("frame %q: %w", task.Name, err)
			wp.resultQueue <- result
			continue
		}

		wp.logger.Printf("Worker %d: rendering %q\n", id, task.Name)
		result.Image, result.Stats = rt.RenderImage()
		wp.resultQueue <- result
	}
}

// RenderBatch renders every task and returns the results in task order.
// Each result carries its own error; the returned error is ctx.Err() if the batch was cancelled.
func RenderBatch(ctx context.Context, tasks []FrameTask, numWorkers int, logger core.Logger) ([]FrameResult, error) {
	pool := NewWorkerPool(numWorkers, len(tasks), logger)
	pool.Start(ctx)

	for i, task := range tasks {
		task.TaskID = i
		pool.SubmitTask(task)
	}

	results := make([]FrameResult, len(tasks))
	for range tasks {
		result, ok := pool.GetResult()
		if !ok {
			return nil, fmt.Errorf("worker pool closed unexpectedly")
		}
		results[result.TaskID] = result
	}
	pool.Stop()

	return results, ctx.Err()
}
