// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/parte-archiv/parte-tracker/gen/ent/extractjob"
	"github.com/parte-archiv/parte-tracker/gen/ent/notice"
	"github.com/parte-archiv/parte-tracker/gen/ent/noticefile"
)

// NoticeCreate is the builder for creating a Notice entity.
type NoticeCreate struct {
	config
	mutation *NoticeMutation
	hooks    []Hook
}

// SetHash sets the "hash" field.
func (_c *NoticeCreate) SetHash(v string) *NoticeCreate {
	_c.mutation.SetHash(v)
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *NoticeCreate) SetFullName(v string) *NoticeCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetOpeningQuote sets the "opening_quote" field.
func (_c *NoticeCreate) SetOpeningQuote(v string) *NoticeCreate {
	_c.mutation.SetOpeningQuote(v)
	return _c
}

// SetNillableOpeningQuote sets the "opening_quote" field if the given value is not nil.
func (_c *NoticeCreate) SetNillableOpeningQuote(v *string) *NoticeCreate {
	if v != nil {
		_c.SetOpeningQuote(*v)
	}
	return _c
}

// SetDeathDate sets the "death_date" field.
func (_c *NoticeCreate) SetDeathDate(v time.Time) *NoticeCreate {
	_c.mutation.SetDeathDate(v)
	return _c
}

// SetNillableDeathDate sets the "death_date" field if the given value is not nil.
func (_c *NoticeCreate) SetNillableDeathDate(v *time.Time) *NoticeCreate {
	if v != nil {
		_c.SetDeathDate(*v)
	}
	return _c
}

// SetFuneralDate sets the "funeral_date" field.
func (_c *NoticeCreate) SetFuneralDate(v time.Time) *NoticeCreate {
	_c.mutation.SetFuneralDate(v)
	return _c
}

// SetNillableFuneralDate sets the "funeral_date" field if the given value is not nil.
func (_c *NoticeCreate) SetNillableFuneralDate(v *time.Time) *NoticeCreate {
	if v != nil {
		_c.SetFuneralDate(*v)
	}
	return _c
}

// SetAnnouncementText sets the "announcement_text" field.
func (_c *NoticeCreate) SetAnnouncementText(v string) *NoticeCreate {
	_c.mutation.SetAnnouncementText(v)
	return _c
}

// SetNillableAnnouncementText sets the "announcement_text" field if the given value is not nil.
func (_c *NoticeCreate) SetNillableAnnouncementText(v *string) *NoticeCreate {
	if v != nil {
		_c.SetAnnouncementText(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *NoticeCreate) SetSource(v string) *NoticeCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetSourceURL sets the "source_url" field.
func (_c *NoticeCreate) SetSourceURL(v string) *NoticeCreate {
	_c.mutation.SetSourceURL(v)
	return _c
}

// SetHasPhoto sets the "has_photo" field.
func (_c *NoticeCreate) SetHasPhoto(v bool) *NoticeCreate {
	_c.mutation.SetHasPhoto(v)
	return _c
}

// SetNillableHasPhoto sets the "has_photo" field if the given value is not nil.
func (_c *NoticeCreate) SetNillableHasPhoto(v *bool) *NoticeCreate {
	if v != nil {
		_c.SetHasPhoto(*v)
	}
	return _c
}

// SetPhotoX sets the "photo_x" field.
func (_c *NoticeCreate) SetPhotoX(v float64) *NoticeCreate {
	_c.mutation.SetPhotoX(v)
	return _c
}

// SetNillablePhotoX sets the "photo_x" field if the given value is not nil.
func (_c *NoticeCreate) SetNillablePhotoX(v *float64) *NoticeCreate {
	if v != nil {
		_c.SetPhotoX(*v)
	}
	return _c
}

// SetPhotoY sets the "photo_y" field.
func (_c *NoticeCreate) SetPhotoY(v float64) *NoticeCreate {
	_c.mutation.SetPhotoY(v)
	return _c
}

// SetNillablePhotoY sets the "photo_y" field if the given value is not nil.
func (_c *NoticeCreate) SetNillablePhotoY(v *float64) *NoticeCreate {
	if v != nil {
		_c.SetPhotoY(*v)
	}
	return _c
}

// SetPhotoWidth sets the "photo_width" field.
func (_c *NoticeCreate) SetPhotoWidth(v float64) *NoticeCreate {
	_c.mutation.SetPhotoWidth(v)
	return _c
}

// SetNillablePhotoWidth sets the "photo_width" field if the given value is not nil.
func (_c *NoticeCreate) SetNillablePhotoWidth(v *float64) *NoticeCreate {
	if v != nil {
		_c.SetPhotoWidth(*v)
	}
	return _c
}

// SetPhotoHeight sets the "photo_height" field.
func (_c *NoticeCreate) SetPhotoHeight(v float64) *NoticeCreate {
	_c.mutation.SetPhotoHeight(v)
	return _c
}

// SetNillablePhotoHeight sets the "photo_height" field if the given value is not nil.
func (_c *NoticeCreate) SetNillablePhotoHeight(v *float64) *NoticeCreate {
	if v != nil {
		_c.SetPhotoHeight(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *NoticeCreate) SetCreatedAt(v time.Time) *NoticeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *NoticeCreate) SetNillableCreatedAt(v *time.Time) *NoticeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *NoticeCreate) SetUpdatedAt(v time.Time) *NoticeCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *NoticeCreate) SetNillableUpdatedAt(v *time.Time) *NoticeCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *NoticeCreate) SetID(v uuid.UUID) *NoticeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *NoticeCreate) SetNillableID(v *uuid.UUID) *NoticeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddFileIDs adds the "files" edge to the NoticeFile entity by IDs.
func (_c *NoticeCreate) AddFileIDs(ids ...uuid.UUID) *NoticeCreate {
	_c.mutation.AddFileIDs(ids...)
	return _c
}

// AddFiles adds the "files" edges to the NoticeFile entity.
func (_c *NoticeCreate) AddFiles(v ...*NoticeFile) *NoticeCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_c *NoticeCreate) AddJobIDs(ids ...uuid.UUID) *NoticeCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_c *NoticeCreate) AddJobs(v ...*ExtractJob) *NoticeCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the NoticeMutation object of the builder.
func (_c *NoticeCreate) Mutation() *NoticeMutation {
	return _c.mutation
}

// Save creates the Notice in the database.
func (_c *NoticeCreate) Save(ctx context.Context) (*Notice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *NoticeCreate) SaveX(ctx context.Context) *Notice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NoticeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NoticeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *NoticeCreate) defaults() {
	if _, ok := _c.mutation.HasPhoto(); !ok {
		v := notice.DefaultHasPhoto
		_c.mutation.SetHasPhoto(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := notice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := notice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := notice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *NoticeCreate) check() error {
	if _, ok := _c.mutation.Hash(); !ok {
		return &ValidationError{Name: "hash", err: errors.New(`ent: missing required field "Notice.hash"`)}
	}
	if v, ok := _c.mutation.Hash(); ok {
		if err := notice.HashValidator(v); err != nil {
			return &ValidationError{Name: "hash", err: fmt.Errorf(`ent: validator failed for field "Notice.hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`ent: missing required field "Notice.full_name"`)}
	}
	if v, ok := _c.mutation.FullName(); ok {
		if err := notice.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "Notice.full_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Notice.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := notice.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Notice.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceURL(); !ok {
		return &ValidationError{Name: "source_url", err: errors.New(`ent: missing required field "Notice.source_url"`)}
	}
	if v, ok := _c.mutation.SourceURL(); ok {
		if err := notice.SourceURLValidator(v); err != nil {
			return &ValidationError{Name: "source_url", err: fmt.Errorf(`ent: validator failed for field "Notice.source_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HasPhoto(); !ok {
		return &ValidationError{Name: "has_photo", err: errors.New(`ent: missing required field "Notice.has_photo"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Notice.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Notice.updated_at"`)}
	}
	return nil
}

func (_c *NoticeCreate) sqlSave(ctx context.Context) (*Notice, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *NoticeCreate) createSpec() (*Notice, *sqlgraph.CreateSpec) {
	var (
		_node = &Notice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(notice.Table, sqlgraph.NewFieldSpec(notice.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Hash(); ok {
		_spec.SetField(notice.FieldHash, field.TypeString, value)
		_node.Hash = value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(notice.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.OpeningQuote(); ok {
		_spec.SetField(notice.FieldOpeningQuote, field.TypeString, value)
		_node.OpeningQuote = &value
	}
	if value, ok := _c.mutation.DeathDate(); ok {
		_spec.SetField(notice.FieldDeathDate, field.TypeTime, value)
		_node.DeathDate = &value
	}
	if value, ok := _c.mutation.FuneralDate(); ok {
		_spec.SetField(notice.FieldFuneralDate, field.TypeTime, value)
		_node.FuneralDate = &value
	}
	if value, ok := _c.mutation.AnnouncementText(); ok {
		_spec.SetField(notice.FieldAnnouncementText, field.TypeString, value)
		_node.AnnouncementText = &value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(notice.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.SourceURL(); ok {
		_spec.SetField(notice.FieldSourceURL, field.TypeString, value)
		_node.SourceURL = value
	}
	if value, ok := _c.mutation.HasPhoto(); ok {
		_spec.SetField(notice.FieldHasPhoto, field.TypeBool, value)
		_node.HasPhoto = value
	}
	if value, ok := _c.mutation.PhotoX(); ok {
		_spec.SetField(notice.FieldPhotoX, field.TypeFloat64, value)
		_node.PhotoX = &value
	}
	if value, ok := _c.mutation.PhotoY(); ok {
		_spec.SetField(notice.FieldPhotoY, field.TypeFloat64, value)
		_node.PhotoY = &value
	}
	if value, ok := _c.mutation.PhotoWidth(); ok {
		_spec.SetField(notice.FieldPhotoWidth, field.TypeFloat64, value)
		_node.PhotoWidth = &value
	}
	if value, ok := _c.mutation.PhotoHeight(); ok {
		_spec.SetField(notice.FieldPhotoHeight, field.TypeFloat64, value)
		_node.PhotoHeight = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(notice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(notice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.FilesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   notice.FilesTable,
			Columns: []string{notice.FilesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(noticefile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   notice.JobsTable,
			Columns: []string{notice.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// NoticeCreateBulk is the builder for creating many Notice entities in bulk.
type NoticeCreateBulk struct {
	config
	err      error
	builders []*NoticeCreate
}

// Save creates the Notice entities in the database.
func (_c *NoticeCreateBulk) Save(ctx context.Context) ([]*Notice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Notice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*NoticeMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *NoticeCreateBulk) SaveX(ctx context.Context) []*Notice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *NoticeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *NoticeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
