// Package app implements the application layer for grampus.
package app

import (
	"context"
	"fmt"
	"time"

	"go.grampus.dev/grampus/internal/adapters/sections"
	"go.grampus.dev/grampus/internal/core/domain"
	"go.grampus.dev/grampus/internal/core/ports"
	"go.grampus.dev/grampus/internal/engine/injector"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader   ports.DocumentLoader
	targets  ports.TargetFactory
	journals ports.JournalFactory
	tracer   ports.Tracer
	logger   ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.DocumentLoader,
	targets ports.TargetFactory,
	journals ports.JournalFactory,
	tracer ports.Tracer,
	logger ports.Logger,
) *App {
	return &App{
		loader:   loader,
		targets:  targets,
		journals: journals,
		tracer:   tracer,
		logger:   logger,
	}
}

// RunOptions configures one invocation of the load command.
type RunOptions struct {
	// StorePath selects the target graph store; empty means in-memory.
	StorePath string
	// JournalPath selects the load journal file; empty disables journaling.
	JournalPath string
	// DryRun parses and validates the documents without touching a target.
	DryRun bool
}

// Run loads the given document sources and injects them, in argument
// order, into one target graph. Documents are parsed concurrently but
// injected strictly one after another: the target sees a single injection
// in flight at any time.
func (a *App) Run(ctx context.Context, sources []string, opts RunOptions) error {
	if len(sources) == 0 {
		return domain.ErrNoDocumentsSpecified
	}

	docs, err := a.loader.LoadAll(ctx, sources)
	if err != nil {
		return zerr.Wrap(err, "failed to load documents")
	}

	if opts.DryRun {
		return a.validateOnly(docs)
	}

	target, err := a.targets.Open(ctx, opts.StorePath)
	if err != nil {
		return err
	}
	defer target.Close() //nolint:errcheck // Best effort close in defer

	journal, err := a.openJournal(opts.JournalPath)
	if err != nil {
		return err
	}

	defer a.tracer.Close() //nolint:errcheck // Best effort close in defer

	var total domain.InjectStats
	for _, doc := range docs {
		stats, err := a.loadDocument(ctx, target, journal, doc)
		total.Add(stats)
		if err != nil {
			return err
		}
	}

	vertices, edges, err := target.Counts(ctx)
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf(
		"applied %d document(s): %d vertices created, %d reused, %d edges created (target now holds %d vertices, %d edges)",
		len(docs), total.VerticesCreated, total.VerticesReused, total.EdgesCreated, vertices, edges,
	))
	return nil
}

func (a *App) openJournal(path string) (ports.LoadJournal, error) {
	if path == "" {
		return nil, nil
	}
	return a.journals.Open(path)
}

// loadDocument applies one document to the target and journals the result.
func (a *App) loadDocument(
	ctx context.Context,
	target ports.Target,
	journal ports.LoadJournal,
	doc *domain.Document,
) (domain.InjectStats, error) {
	ctx, span := a.tracer.Start(ctx, doc.Source)

	stats, err := a.injectDocument(ctx, target, journal, doc, span)
	span.End(err)
	return stats, err
}

func (a *App) injectDocument(
	ctx context.Context,
	target ports.Target,
	journal ports.LoadJournal,
	doc *domain.Document,
	span ports.Span,
) (domain.InjectStats, error) {
	header := sections.NewHeader(doc.Header)
	a.logger.Info(fmt.Sprintf("loading %s (version %s)", doc.Source, header.Version()))

	if journal != nil {
		prev, err := journal.Get(doc.Source)
		if err != nil {
			return domain.InjectStats{}, err
		}
		if prev != nil && prev.Digest == doc.Digest {
			// Vertices are reused across runs, but edges are never
			// deduplicated: reapplying an unchanged document duplicates
			// its edges.
			a.logger.Warn(fmt.Sprintf("%s was already applied with the same content; its edges will be duplicated", doc.Source))
		}
	}

	inj, err := injector.New(
		doc.Graph,
		sections.NewClassmap(doc.Classmap),
		sections.NewVertices(doc.Vertices),
		sections.NewEdges(doc.Edges),
	)
	if err != nil {
		return domain.InjectStats{}, zerr.With(err, "source", doc.Source)
	}

	stats, err := inj.Inject(ctx, target)
	if err != nil {
		return stats, zerr.With(err, "source", doc.Source)
	}

	_, _ = fmt.Fprintf(span, "%d vertices created, %d reused, %d edges created\n",
		stats.VerticesCreated, stats.VerticesReused, stats.EdgesCreated)

	if journal != nil {
		rec := domain.LoadRecord{
			Source:   doc.Source,
			Digest:   doc.Digest,
			LoadedAt: time.Now().UTC(),
			Vertices: stats.VerticesCreated,
			Edges:    stats.EdgesCreated,
		}
		if err := journal.Put(rec); err != nil {
			return stats, err
		}
	}

	return stats, nil
}

// validateOnly checks every document without opening a target: the graph
// section must be present and free of map-shaped edge targets.
func (a *App) validateOnly(docs []*domain.Document) error {
	for _, doc := range docs {
		inj, err := injector.New(
			doc.Graph,
			sections.NewClassmap(doc.Classmap),
			sections.NewVertices(doc.Vertices),
			sections.NewEdges(doc.Edges),
		)
		if err != nil {
			return zerr.With(err, "source", doc.Source)
		}
		if err := inj.Validate(); err != nil {
			return zerr.With(err, "source", doc.Source)
		}
		a.logger.Info(fmt.Sprintf("%s: ok", doc.Source))
	}
	return nil
}
