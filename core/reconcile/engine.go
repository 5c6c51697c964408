package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"inventory-seeder/core/catalog"
	"inventory-seeder/core/inventory"
	"inventory-seeder/core/logger"
	"inventory-seeder/core/resolve"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Reconciler applies catalogs to the inventory API, one entity at a time.
type Reconciler struct {
	client   inventory.Client
	logger   *zap.Logger
	observer Observer
}

// New creates a reconciler. logger and observer may be nil.
func New(client inventory.Client, l *zap.Logger, observer Observer) *Reconciler {
	if l == nil {
		l = zap.NewNop()
	}
	return &Reconciler{
		client:   client,
		logger:   l,
		observer: observer,
	}
}

// Reconcile resolves the catalog and applies it.
// The only error is a catalog defect (e.g. *resolve.CycleError), reported
// before any request is made; entity failures are recorded in the run.
func (r *Reconciler) Reconcile(ctx context.Context, c *catalog.Catalog) (*Run, error) {
	plan, err := resolve.Resolve(c)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve catalog: %w", err)
	}
	return r.Apply(ctx, plan), nil
}

// Apply walks a resolved plan sequentially and returns the per-entity report.
func (r *Reconciler) Apply(ctx context.Context, plan *resolve.Plan) *Run {
	run := &Run{
		ID:      uuid.NewString(),
		Started: time.Now(),
		Results: make([]Result, 0, len(plan.Order)),
	}
	l := logger.WithRunID(r.logger, run.ID)
	l.Info("Starting reconciliation",
		zap.Int("entities", len(plan.Order)),
		zap.Int("external_parents", len(plan.External)),
	)

	p := &pass{
		client:    r.client,
		logger:    l,
		index:     NewIndex(),
		inCatalog: make(map[catalog.Ref]struct{}, len(plan.Order)),
	}
	for _, e := range plan.Order {
		p.inCatalog[e.Ref()] = struct{}{}
	}

	for _, e := range plan.Order {
		outcome := p.reconcileEntity(ctx, e)
		res := Result{
			Kind:    e.Kind,
			Key:     e.QualifiedKey(),
			Name:    e.Name(),
			Outcome: outcome,
			Entity:  e,
		}
		run.Results = append(run.Results, res)
		run.Summary.add(outcome.Status)
		logResult(l, res)
		if r.observer != nil {
			r.observer.Observe(res)
		}
	}

	run.Finished = time.Now()
	l.Info("Reconciliation finished",
		zap.Int("created", run.Summary.Created),
		zap.Int("already_exists", run.Summary.AlreadyExists),
		zap.Int("updated", run.Summary.Updated),
		zap.Int("skipped", run.Summary.Skipped),
		zap.Int("failed", run.Summary.Failed),
		zap.Duration("duration", run.Finished.Sub(run.Started)),
	)
	return run
}

// pass holds the state of a single run.
type pass struct {
	client    inventory.Client
	logger    *zap.Logger
	index     *Index
	inCatalog map[catalog.Ref]struct{}
}

// reconcileEntity runs lookup, optional patch and optional create for e.
func (p *pass) reconcileEntity(ctx context.Context, e catalog.Entity) Outcome {
	ref := e.Ref()

	// 1. Resolve parents
	parentIDs := make(map[string]int, len(e.Parents))
	for _, parent := range e.Parents {
		id, err := p.resolveParent(ctx, parent)
		if err != nil {
			var missing *MissingParentError
			if errors.As(err, &missing) {
				return Outcome{Status: StatusSkipped, Detail: err.Error(), Err: err}
			}
			return Outcome{Status: StatusFailed, Detail: fmt.Sprintf("parent %s lookup: %v", parent.Ref(), err), Err: err}
		}
		parentIDs[parent.Field] = id
	}

	// 2. Look up the entity itself
	filter := lookupFilter(e, parentIDs)
	rec, found, err := p.client.Find(ctx, e.Kind, filter)
	if err != nil {
		return Outcome{Status: StatusFailed, Detail: fmt.Sprintf("lookup: %v", err), Err: err}
	}
	if found {
		return p.reconcileExisting(ctx, e, rec, parentIDs)
	}

	// 3. Create
	created, err := p.client.Create(ctx, e.Kind, buildPayload(e, parentIDs))
	if err != nil {
		if !inventory.IsDuplicate(err) {
			return Outcome{Status: StatusFailed, Detail: fmt.Sprintf("create: %v", err), Err: err}
		}
		// Another writer created it between lookup and create
		p.logger.Debug("Duplicate on create, looking up again", zap.String("ref", ref.String()))
		rec, found, lookupErr := p.client.Find(ctx, e.Kind, filter)
		if lookupErr != nil || !found {
			return Outcome{Status: StatusFailed, Detail: fmt.Sprintf("create: %v", err), Err: err}
		}
		p.index.Set(ref, rec.ID())
		return Outcome{Status: StatusAlreadyExists, ID: rec.ID(), Detail: "created concurrently"}
	}

	id := created.ID()
	if id == 0 {
		err := errors.New("create response has no id")
		return Outcome{Status: StatusFailed, Detail: err.Error(), Err: err}
	}
	p.index.Set(ref, id)
	return Outcome{Status: StatusCreated, ID: id}
}

// reconcileExisting records the id of a found entity and corrects drifted
// mutable relationships with a single patch.
func (p *pass) reconcileExisting(ctx context.Context, e catalog.Entity, rec inventory.Record, parentIDs map[string]int) Outcome {
	id := rec.ID()
	p.index.Set(e.Ref(), id)

	fields := make(map[string]any)
	var drift []string
	for _, parent := range e.Mutable() {
		want := parentIDs[parent.Field]
		current, linked := rec.RefID(parent.Field)
		if linked && current == want {
			continue
		}
		fields[parent.Field] = want
		was := "none"
		if linked {
			was = strconv.Itoa(current)
		}
		drift = append(drift, fmt.Sprintf("%s: %s -> %d", parent.Field, was, want))
	}

	if len(fields) == 0 {
		return Outcome{Status: StatusAlreadyExists, ID: id}
	}

	detail := strings.Join(drift, ", ")
	if _, err := p.client.Patch(ctx, e.Kind, id, fields); err != nil {
		return Outcome{Status: StatusFailed, ID: id, Detail: fmt.Sprintf("patch %s: %v", detail, err), Err: err}
	}
	return Outcome{Status: StatusUpdated, ID: id, Detail: detail}
}

// resolveParent returns the remote id of a parent.
// In-catalog parents must have been resolved earlier in the run; external
// parents are looked up once and cached.
func (p *pass) resolveParent(ctx context.Context, parent catalog.ParentRef) (int, error) {
	ref := parent.Ref()
	if id, ok := p.index.Get(ref); ok {
		return id, nil
	}
	if _, ok := p.inCatalog[ref]; ok {
		// Processed earlier without success
		return 0, &MissingParentError{Parent: ref}
	}

	filter, err := p.externalFilter(ctx, ref)
	if err != nil {
		return 0, err
	}
	rec, found, err := p.client.Find(ctx, ref.Kind, filter)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, &MissingParentError{Parent: ref}
	}
	p.index.Set(ref, rec.ID())
	return rec.ID(), nil
}

// externalFilter builds the lookup of a parent outside the catalog.
// A qualified key resolves its scope parent first and narrows the lookup to it.
func (p *pass) externalFilter(ctx context.Context, ref catalog.Ref) (inventory.Filter, error) {
	scope, local, qualified := catalog.SplitKey(ref.Key)
	filter := inventory.Filter{ref.Kind.KeyField(): local}
	if !qualified {
		return filter, nil
	}
	scopeKind, field, ok := ref.Kind.Scope()
	if !ok {
		return nil, fmt.Errorf("%s: %s keys are not scoped", ref, ref.Kind)
	}
	scopeID, err := p.resolveParent(ctx, catalog.ParentRef{Kind: scopeKind, Key: scope, Field: field})
	if err != nil {
		return nil, err
	}
	filter[field+"_id"] = strconv.Itoa(scopeID)
	return filter, nil
}

// lookupFilter builds the natural-key query for e.
func lookupFilter(e catalog.Entity, parentIDs map[string]int) inventory.Filter {
	filter := inventory.Filter{e.Kind.KeyField(): e.Key}
	for _, parent := range e.Parents {
		if parent.Scope {
			filter[parent.Field+"_id"] = strconv.Itoa(parentIDs[parent.Field])
		}
	}
	return filter
}

// buildPayload merges attributes, the natural key and resolved parent ids.
func buildPayload(e catalog.Entity, parentIDs map[string]int) map[string]any {
	payload := make(map[string]any, len(e.Attributes)+len(parentIDs)+1)
	for k, v := range e.Attributes {
		payload[k] = v
	}
	payload[e.Kind.KeyField()] = e.Key
	for field, id := range parentIDs {
		payload[field] = id
	}
	return payload
}

// logResult logs an outcome at a level matching its status.
func logResult(l *zap.Logger, res Result) {
	fields := []zap.Field{
		zap.String("kind", string(res.Kind)),
		zap.String("key", res.Key),
		zap.String("status", string(res.Status)),
	}
	if res.ID != 0 {
		fields = append(fields, zap.Int("id", res.ID))
	}
	if res.Detail != "" {
		fields = append(fields, zap.String("detail", res.Detail))
	}

	switch res.Status {
	case StatusCreated, StatusUpdated:
		l.Info("Entity reconciled", fields...)
	case StatusAlreadyExists:
		l.Debug("Entity reconciled", fields...)
	case StatusSkipped:
		l.Warn("Entity skipped", fields...)
	default:
		l.Error("Entity failed", fields...)
	}
}
