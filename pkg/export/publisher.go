package export

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/matzehuels/graphsketch/pkg/graph"
)

// Publisher delivers a snapshot to the host.
type Publisher interface {
	Publish(ctx context.Context, s graph.Snapshot) error
}

// PublisherFunc adapts a function to a Publisher.
type PublisherFunc func(ctx context.Context, s graph.Snapshot) error

// Publish calls f.
func (f PublisherFunc) Publish(ctx context.Context, s graph.Snapshot) error { return f(ctx, s) }

// WriterPublisher writes each snapshot as indented JSON to W.
type WriterPublisher struct {
	mu sync.Mutex
	W  io.Writer
}

// NewWriterPublisher returns a publisher writing to w.
func NewWriterPublisher(w io.Writer) *WriterPublisher {
	return &WriterPublisher{W: w}
}

// Publish writes s followed by a newline.
func (p *WriterPublisher) Publish(_ context.Context, s graph.Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return graph.WriteSnapshot(s, p.W)
}

// FilePublisher overwrites Path with the latest snapshot.
type FilePublisher struct {
	Path string
}

// Publish writes s to the file.
func (p FilePublisher) Publish(ctx context.Context, s graph.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return graph.WriteSnapshotFile(s, p.Path)
}

// Multi publishes to every publisher in order and joins their errors. A
// failing publisher does not stop the others. Nil publishers are skipped.
func Multi(publishers ...Publisher) Publisher {
	out := make(multi, 0, len(publishers))
	for _, p := range publishers {
		if p != nil {
			out = append(out, p)
		}
	}
	return out
}

type multi []Publisher

func (m multi) Publish(ctx context.Context, s graph.Snapshot) error {
	var errs []error
	for _, p := range m {
		if err := p.Publish(ctx, s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var (
	_ Publisher = PublisherFunc(nil)
	_ Publisher = (*WriterPublisher)(nil)
	_ Publisher = FilePublisher{}
	_ Publisher = multi(nil)
)
