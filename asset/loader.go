package asset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/gopxl/beep"
	"github.com/lixenwraith/moonwalk/core"
	"golang.org/x/sync/semaphore"
)

// Request identifies one asset to load; Tag routes the result back to its owner
type Request struct {
	Kind Kind
	Path string
	Tag  string
}

// Result is a completion event delivered to the frame loop
// Exactly one of Texture, Model, Sound is set when Err is nil
type Result struct {
	Request
	Texture *Texture
	Model   *Model
	Sound   *Sound
	Err     error
}

// LoaderConfig controls concurrency and retry behavior
type LoaderConfig struct {
	FS          fs.FS
	SampleRate  beep.SampleRate
	Concurrency int
	Retries     int
	RetryDelay  time.Duration
	QueueSize   int
}

// Loader decodes assets on worker goroutines and reports completions on a channel
type Loader struct {
	cfg     LoaderConfig
	ctx     context.Context
	sem     *semaphore.Weighted
	results chan Result
	pending atomic.Int32
	failed  atomic.Int32
	wg      sync.WaitGroup
}

// NewLoader creates a loader bound to ctx; cancelling ctx abandons pending retries
func NewLoader(ctx context.Context, cfg LoaderConfig) *Loader {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = 100 * time.Millisecond
	}
	return &Loader{
		cfg:     cfg,
		ctx:     ctx,
		sem:     semaphore.NewWeighted(int64(cfg.Concurrency)),
		results: make(chan Result, cfg.QueueSize),
	}
}

// Results is the completion channel drained by the frame loop
func (l *Loader) Results() <-chan Result {
	return l.results
}

// Pending returns the number of loads not yet delivered
func (l *Loader) Pending() int {
	return int(l.pending.Load())
}

// Failed returns the number of loads that ended in a LoadError
func (l *Loader) Failed() int {
	return int(l.failed.Load())
}

// Load starts an asynchronous load; the result arrives on Results
func (l *Loader) Load(req Request) {
	l.pending.Add(1)
	l.wg.Add(1)
	core.Go(func() {
		defer l.wg.Done()
		res := l.run(req)
		select {
		case l.results <- res:
		case <-l.ctx.Done():
		}
		l.pending.Add(-1)
	})
}

// Wait blocks until every started load has been delivered or abandoned
func (l *Loader) Wait() {
	l.wg.Wait()
}

func (l *Loader) run(req Request) Result {
	res := Result{Request: req}

	if err := l.sem.Acquire(l.ctx, 1); err != nil {
		res.Err = &LoadError{Kind: req.Kind, Path: req.Path, Err: err}
		l.failed.Add(1)
		return res
	}
	defer l.sem.Release(1)

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = l.cfg.RetryDelay

	out, err := backoff.Retry(l.ctx, func() (Result, error) {
		return l.decode(req)
	},
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(l.cfg.Retries+1)),
	)
	if err != nil {
		res.Err = &LoadError{Kind: req.Kind, Path: req.Path, Err: err}
		l.failed.Add(1)
		log.Printf("asset: %v", res.Err)
		return res
	}
	return out
}

// decode reads and decodes one asset; format errors are permanent, I/O errors retry
func (l *Loader) decode(req Request) (Result, error) {
	res := Result{Request: req}

	data, err := fs.ReadFile(l.cfg.FS, req.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return res, backoff.Permanent(err)
		}
		return res, err
	}

	switch req.Kind {
	case KindTexture:
		res.Texture, err = DecodeTexture(data)
	case KindModel:
		res.Model, err = ParseModel(data)
	case KindSound:
		res.Sound, err = DecodeSound(data, l.cfg.SampleRate)
	default:
		err = fmt.Errorf("unsupported kind %v", req.Kind)
	}
	if err != nil {
		return res, backoff.Permanent(err)
	}
	return res, nil
}
