package translators

import (
	"context"
	"sync"

	"github.com/crossbridge/proxycore/internal/registry"
)

// SkinFetcher fetches and converts a Java player's skin to Bedrock's flat
// RGBA geometry format (SPEC_FULL.md SUPPLEMENTED FEATURES #5). The HTTP
// fetch itself against the session-server texture URL is an external
// collaborator; this module only defines the dispatch/re-entry contract
// around it.
type SkinFetcher interface {
	FetchSkin(ctx context.Context, playerUUID string) (rgba []byte, geometry string, err error)
}

// SkinResult is delivered back into a session's mailbox once a fetch
// started on the worker pool completes (SPEC_FULL.md §4.5 "dispatched to a
// shared worker pool and re-enters via a completion message").
type SkinResult struct {
	RGBA     []byte
	Geometry string
	Err      error
}

// SkinWorkerPool bounds the number of concurrent skin fetches so a burst of
// logins never starves other session work (SPEC_FULL.md §4.5 "must not
// block the pipeline loop"). Modeled on the teacher's bounded background
// worker loop (runtime/registry/cache.go's refreshLoop: a buffered request
// channel drained by a fixed set of goroutines).
type SkinWorkerPool struct {
	fetcher SkinFetcher
	jobs    chan skinJob
	wg      sync.WaitGroup
}

type skinJob struct {
	ctx        context.Context
	playerUUID string
	sess       registry.SessionHandle
	onComplete func(registry.SessionHandle, SkinResult)
}

// NewSkinWorkerPool starts size worker goroutines pulling from a shared job
// queue. A nil fetcher makes the pool a no-op: submissions never fire
// onComplete, matching a deployment where skin translation is disabled.
func NewSkinWorkerPool(fetcher SkinFetcher, size int) *SkinWorkerPool {
	if size <= 0 {
		size = 4
	}
	p := &SkinWorkerPool{fetcher: fetcher, jobs: make(chan skinJob, 64)}
	if fetcher == nil {
		return p
	}
	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.worker()
	}
	return p
}

func (p *SkinWorkerPool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		rgba, geometry, err := p.fetcher.FetchSkin(job.ctx, job.playerUUID)
		result := SkinResult{RGBA: rgba, Geometry: geometry, Err: err}
		job.onComplete(job.sess, result)
	}
}

// Submit enqueues a skin fetch. onComplete runs on a worker goroutine and
// must re-enter the session via sess.Dispatch rather than mutating session
// state directly (SPEC_FULL.md §9 "all mutation of session state happens
// inside the mailbox handler").
func (p *SkinWorkerPool) Submit(ctx context.Context, sess registry.SessionHandle, playerUUID string, onComplete func(registry.SessionHandle, SkinResult)) {
	if p.fetcher == nil {
		return
	}
	select {
	case p.jobs <- skinJob{ctx: ctx, playerUUID: playerUUID, sess: sess, onComplete: onComplete}:
	default:
		// Job queue saturated: drop the fetch rather than block the
		// translator that requested it. The player keeps the default skin.
	}
}

// Close stops accepting new jobs and waits for in-flight fetches to finish.
func (p *SkinWorkerPool) Close() {
	close(p.jobs)
	p.wg.Wait()
}
