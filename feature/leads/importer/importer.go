package importer

import (
	"context"
	"fmt"
	"strings"

	"github.com/stevetowers08/leadflow-sub006/core/csv"
	"github.com/stevetowers08/leadflow-sub006/core/identity"
	"github.com/stevetowers08/leadflow-sub006/feature/leads/models"

	"go.uber.org/zap"
)

// DefaultBatchSize is how many accepted leads are committed per store call.
// Batching trades row-level failure granularity for one round trip per batch.
const DefaultBatchSize = 50

// Options tunes a single import run. The zero value means: default mapping
// table, default batch size, duplicates skipped, no progress reporting.
type Options struct {
	// Table overrides the mapping table; nil means DefaultTable().
	Table Table
	// BatchSize overrides the commit batch size when positive.
	BatchSize int
	// KeepDuplicates disables the duplicate filter, importing every row
	// that passes mapping and resolution.
	KeepDuplicates bool
	// OnProgress, when set, is invoked after every processed row. It is
	// purely observational; panics aside, it cannot influence the run.
	OnProgress func(processed, total int)
}

// Importer drives delimited-text content through the import pipeline.
type Importer struct {
	store  Store
	actors identity.Provider
	log    *zap.Logger
}

// New creates an Importer on top of an injected store and identity provider.
func New(store Store, actors identity.Provider, log *zap.Logger) *Importer {
	return &Importer{store: store, actors: actors, log: log}
}

// Outcome of one processed row; every row gets exactly one.
const (
	rowAccepted = iota
	rowFailed
	rowSkipped
)

type pendingLead struct {
	lead      models.Lead
	candidate *Candidate
}

// Run executes one import over raw file bytes and always returns a complete
// Result, never an error. Rows are processed strictly sequentially so every
// failure lands on the row that caused it.
func (imp *Importer) Run(ctx context.Context, content []byte, opts Options) (result *Result) {
	result = &Result{}

	// A panic escaping the run itself (not row processing) becomes a single
	// run-level error so callers can treat Run as total.
	defer func() {
		if rec := recover(); rec != nil {
			imp.log.Error("Import run aborted", zap.Any("panic", rec))
			result.addError(0, fmt.Sprintf("Import aborted: %v", rec), nil)
			result.finalize()
		}
	}()

	doc, err := csv.Parse(content)
	if err != nil {
		result.addError(0, fmt.Sprintf("Could not parse file: %v", err), nil)
		result.finalize()
		return result
	}

	table := opts.Table
	if table == nil {
		table = DefaultTable()
	}
	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	ownerID, hasOwner := imp.actors.CurrentActorID(ctx)
	if !hasOwner {
		imp.log.Debug("No actor for this run, created records get no owner")
	}

	idx := headerIndex(doc.Header)
	res := newResolver(imp.store)
	total := len(doc.Rows)
	imp.log.Info("Starting import run",
		zap.Int("rows", total),
		zap.Int("batch_size", batchSize),
		zap.Bool("skip_duplicates", !opts.KeepDuplicates),
	)

	var pending []pendingLead

	for i, row := range doc.Rows {
		rowNum := i + 1

		outcome := imp.processRow(ctx, res, table, idx, row, rowNum, opts.KeepDuplicates, ownerID, result, &pending)
		switch outcome {
		case rowFailed:
			result.Failed++
		case rowSkipped:
			result.Skipped++
		}

		if len(pending) >= batchSize {
			imp.flush(ctx, pending, result)
			pending = pending[:0]
		}

		if opts.OnProgress != nil {
			opts.OnProgress(i+1, total)
		}
	}

	imp.flush(ctx, pending, result)

	result.finalize()
	imp.log.Info("Import run finished",
		zap.Int("created", result.Created),
		zap.Int("failed", result.Failed),
		zap.Int("skipped", result.Skipped),
		zap.Bool("success", result.Success),
	)
	return result
}

// processRow takes one row through mapping, company resolution and duplicate
// filtering. Accepted rows are appended to pending; they are only counted as
// created once their batch commits. A panic anywhere in the row converts to
// a row-level error and processing continues with the next row.
func (imp *Importer) processRow(
	ctx context.Context,
	res *resolver,
	table Table,
	idx map[string]int,
	row []string,
	rowNum int,
	keepDuplicates bool,
	ownerID string,
	result *Result,
	pending *[]pendingLead,
) (outcome int) {
	defer func() {
		if rec := recover(); rec != nil {
			imp.log.Error("Row processing panicked", zap.Int("row", rowNum), zap.Any("panic", rec))
			result.addError(rowNum, fmt.Sprintf("Unexpected error: %v", rec), nil)
			outcome = rowFailed
		}
	}()

	candidate, errs, warns := table.mapRow(row, idx, rowNum)
	for _, w := range warns {
		result.addWarning(rowNum, w)
	}
	if len(errs) > 0 {
		result.addError(rowNum, strings.Join(errs, "; "), candidate)
		return rowFailed
	}

	if candidate.CompanyName != "" {
		companyID, err := res.resolve(ctx, candidate.CompanyName, candidate.CompanyWebsite, ownerID)
		if err != nil {
			// Degraded, not failed: the lead is still worth importing
			// without its company reference.
			imp.log.Warn("Company resolution failed",
				zap.Int("row", rowNum),
				zap.String("company", candidate.CompanyName),
				zap.Error(err),
			)
			result.addWarning(rowNum, fmt.Sprintf("Could not resolve company %q, lead imported without it: %v", candidate.CompanyName, err))
		} else {
			candidate.CompanyID = companyID
		}
	}

	if !keepDuplicates {
		dup, err := isDuplicate(ctx, imp.store, candidate)
		if err != nil {
			result.addError(rowNum, fmt.Sprintf("Duplicate check failed: %v", err), candidate)
			return rowFailed
		}
		if dup {
			result.addWarning(rowNum, "Duplicate lead, skipped")
			return rowSkipped
		}
	}

	*pending = append(*pending, pendingLead{lead: candidate.toLead(ownerID), candidate: candidate})
	return rowAccepted
}

// flush commits one batch. A store rejection attributes an error to every
// row in the batch and later batches still run; there is no retry.
func (imp *Importer) flush(ctx context.Context, batch []pendingLead, result *Result) {
	if len(batch) == 0 {
		return
	}

	leads := make([]models.Lead, len(batch))
	for i, p := range batch {
		leads[i] = p.lead
	}

	if err := imp.store.InsertLeads(ctx, leads); err != nil {
		imp.log.Warn("Batch insert failed", zap.Int("size", len(batch)), zap.Error(err))
		for _, p := range batch {
			result.addError(p.candidate.Row, fmt.Sprintf("Failed to save lead: %v", err), p.candidate)
			result.Failed++
		}
		return
	}

	result.Created += len(batch)
}
