package sandbox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"inventory-seeder/core/catalog"
	"inventory-seeder/core/utils"
	"inventory-seeder/feature/sandbox/models"

	"go.uber.org/zap"
)

// Object is a rendered API object.
type Object map[string]any

// ValidationError maps field names to rejection messages, like the
// inventory API's 400 bodies.
type ValidationError map[string][]string

func (v ValidationError) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(v[f], " "))
	}
	return strings.Join(parts, "; ")
}

// Service implements the collection semantics on top of the store.
type Service struct {
	store  *Store
	logger *zap.Logger
}

// NewService creates a service.
func NewService(store *Store, l *zap.Logger) *Service {
	if l == nil {
		l = zap.NewNop()
	}
	return &Service{store: store, logger: l}
}

// List returns the objects of kind matching every filter exactly.
// Filters name attribute fields, "id", or "<relation>_id".
func (s *Service) List(ctx context.Context, kind catalog.Kind, filters map[string]string) ([]Object, error) {
	records, err := s.store.List(ctx, kind)
	if err != nil {
		return nil, err
	}

	out := []Object{}
	for i := range records {
		data, err := decode(&records[i])
		if err != nil {
			return nil, err
		}
		if matches(kind, records[i].ID, data, filters) {
			out = append(out, render(kind, records[i].ID, data))
		}
	}
	return out, nil
}

// Get returns one object.
func (s *Service) Get(ctx context.Context, kind catalog.Kind, id uint) (Object, error) {
	rec, err := s.store.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	data, err := decode(rec)
	if err != nil {
		return nil, err
	}
	return render(kind, rec.ID, data), nil
}

// Create validates payload and stores a new object.
// A natural key already taken within its scope is rejected with
// "... already exists.".
func (s *Service) Create(ctx context.Context, kind catalog.Kind, payload map[string]any) (Object, error) {
	data := make(map[string]any, len(payload))
	for k, v := range payload {
		if k != "id" {
			data[k] = v
		}
	}

	if err := s.normalizeRelations(ctx, kind, data); err != nil {
		return nil, err
	}

	keyField := kind.KeyField()
	key := strings.TrimSpace(utils.ToString(data[keyField]))
	verr := ValidationError{}
	if key == "" {
		verr[keyField] = []string{"This field is required."}
	}
	if models.RequiresName(kind) && strings.TrimSpace(utils.ToString(data["name"])) == "" {
		verr["name"] = []string{"This field is required."}
	}
	scopeField, scoped := models.ScopeFields[kind]
	if scoped && data[scopeField] == nil {
		verr[scopeField] = []string{"This field is required."}
	}
	if len(verr) > 0 {
		return nil, verr
	}

	scopeID := scopeOf(kind, data)
	if err := s.ensureUnique(ctx, kind, scopeID, key, 0); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", kind, err)
	}
	rec := &models.Record{Kind: string(kind), ScopeID: scopeID, Key: key, Data: string(raw)}
	if err := s.store.Create(ctx, rec); err != nil {
		return nil, err
	}

	s.logger.Debug("Created object", zap.String("kind", string(kind)), zap.String("key", key), zap.Uint("id", rec.ID))
	return s.Get(ctx, kind, rec.ID)
}

// Update applies a partial update to an existing object.
func (s *Service) Update(ctx context.Context, kind catalog.Kind, id uint, payload map[string]any) (Object, error) {
	rec, err := s.store.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	data, err := decode(rec)
	if err != nil {
		return nil, err
	}

	changes := make(map[string]any, len(payload))
	for k, v := range payload {
		if k != "id" {
			changes[k] = v
		}
	}
	if err := s.normalizeRelations(ctx, kind, changes); err != nil {
		return nil, err
	}
	for k, v := range changes {
		data[k] = v
	}

	keyField := kind.KeyField()
	key := strings.TrimSpace(utils.ToString(data[keyField]))
	if key == "" {
		return nil, ValidationError{keyField: {"This field may not be blank."}}
	}
	scopeID := scopeOf(kind, data)
	if key != rec.Key || scopeID != rec.ScopeID {
		if err := s.ensureUnique(ctx, kind, scopeID, key, rec.ID); err != nil {
			return nil, err
		}
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", kind, err)
	}
	rec.Key = key
	rec.ScopeID = scopeID
	rec.Data = string(raw)
	if err := s.store.Save(ctx, rec); err != nil {
		return nil, err
	}

	s.logger.Debug("Updated object", zap.String("kind", string(kind)), zap.Uint("id", rec.ID), zap.Int("fields", len(changes)))
	return render(kind, rec.ID, data), nil
}

// normalizeRelations rewrites relation fields to bare ids and checks the
// referenced objects exist.
func (s *Service) normalizeRelations(ctx context.Context, kind catalog.Kind, data map[string]any) error {
	verr := ValidationError{}
	for field, target := range models.Relations[kind] {
		v, present := data[field]
		if !present {
			continue
		}
		if v == nil {
			data[field] = nil
			continue
		}
		if nested, ok := v.(map[string]any); ok {
			v = nested["id"]
		}
		id, ok := utils.ToIntOK(v)
		if !ok || id <= 0 {
			verr[field] = []string{fmt.Sprintf("Invalid related object id: %v", v)}
			continue
		}
		if _, err := s.store.Get(ctx, target, uint(id)); err != nil {
			if errors.Is(err, ErrNotFound) {
				verr[field] = []string{fmt.Sprintf("Related object not found using the provided numeric ID: %d", id)}
				continue
			}
			return err
		}
		data[field] = id
	}
	if len(verr) > 0 {
		return verr
	}
	return nil
}

func (s *Service) ensureUnique(ctx context.Context, kind catalog.Kind, scopeID uint, key string, self uint) error {
	existing, err := s.store.FindByKey(ctx, kind, scopeID, key)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID == self {
		return nil
	}

	keyField := kind.KeyField()
	label := strings.ReplaceAll(string(kind), "-", " ")
	msg := fmt.Sprintf("%s with this %s already exists.", label, keyField)
	if scopeField, scoped := models.ScopeFields[kind]; scoped {
		msg = fmt.Sprintf("%s with this %s and %s already exists.", label, scopeField, keyField)
	}
	return ValidationError{keyField: {msg}}
}

func scopeOf(kind catalog.Kind, data map[string]any) uint {
	field, scoped := models.ScopeFields[kind]
	if !scoped {
		return 0
	}
	id, _ := utils.ToIntOK(data[field])
	return uint(id)
}

func decode(rec *models.Record) (map[string]any, error) {
	data := map[string]any{}
	if rec.Data == "" {
		return data, nil
	}
	if err := json.Unmarshal([]byte(rec.Data), &data); err != nil {
		return nil, fmt.Errorf("corrupt %s record %d: %w", rec.Kind, rec.ID, err)
	}
	return data, nil
}

// render returns the API form: relations nested as {"id": n}.
func render(kind catalog.Kind, id uint, data map[string]any) Object {
	obj := make(Object, len(data)+1)
	for k, v := range data {
		obj[k] = v
	}
	obj["id"] = id
	for field := range models.Relations[kind] {
		v, present := obj[field]
		if !present || v == nil {
			obj[field] = nil
			continue
		}
		obj[field] = map[string]any{"id": utils.ToInt(v)}
	}
	return obj
}

func matches(kind catalog.Kind, id uint, data map[string]any, filters map[string]string) bool {
	for name, want := range filters {
		switch {
		case name == "id":
			if strconv.FormatUint(uint64(id), 10) != want {
				return false
			}
		case strings.HasSuffix(name, "_id") && isRelation(kind, strings.TrimSuffix(name, "_id")):
			field := strings.TrimSuffix(name, "_id")
			if data[field] == nil || utils.ToString(data[field]) != want {
				return false
			}
		default:
			if utils.ToString(data[name]) != want {
				return false
			}
		}
	}
	return true
}

func isRelation(kind catalog.Kind, field string) bool {
	_, ok := models.Relations[kind][field]
	return ok
}
