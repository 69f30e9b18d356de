// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/parte-archiv/parte-tracker/gen/ent/extractjob"
	"github.com/parte-archiv/parte-tracker/gen/ent/notice"
	"github.com/parte-archiv/parte-tracker/gen/ent/noticefile"
	"github.com/parte-archiv/parte-tracker/gen/ent/predicate"
)

// NoticeUpdate is the builder for updating Notice entities.
type NoticeUpdate struct {
	config
	hooks    []Hook
	mutation *NoticeMutation
}

// Where appends a list predicates to the NoticeUpdate builder.
func (_u *NoticeUpdate) Where(ps ...predicate.Notice) *NoticeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *NoticeUpdate) SetFullName(v string) *NoticeUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableFullName(v *string) *NoticeUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetOpeningQuote sets the "opening_quote" field.
func (_u *NoticeUpdate) SetOpeningQuote(v string) *NoticeUpdate {
	_u.mutation.SetOpeningQuote(v)
	return _u
}

// SetNillableOpeningQuote sets the "opening_quote" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableOpeningQuote(v *string) *NoticeUpdate {
	if v != nil {
		_u.SetOpeningQuote(*v)
	}
	return _u
}

// ClearOpeningQuote clears the value of the "opening_quote" field.
func (_u *NoticeUpdate) ClearOpeningQuote() *NoticeUpdate {
	_u.mutation.ClearOpeningQuote()
	return _u
}

// SetDeathDate sets the "death_date" field.
func (_u *NoticeUpdate) SetDeathDate(v time.Time) *NoticeUpdate {
	_u.mutation.SetDeathDate(v)
	return _u
}

// SetNillableDeathDate sets the "death_date" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableDeathDate(v *time.Time) *NoticeUpdate {
	if v != nil {
		_u.SetDeathDate(*v)
	}
	return _u
}

// ClearDeathDate clears the value of the "death_date" field.
func (_u *NoticeUpdate) ClearDeathDate() *NoticeUpdate {
	_u.mutation.ClearDeathDate()
	return _u
}

// SetFuneralDate sets the "funeral_date" field.
func (_u *NoticeUpdate) SetFuneralDate(v time.Time) *NoticeUpdate {
	_u.mutation.SetFuneralDate(v)
	return _u
}

// SetNillableFuneralDate sets the "funeral_date" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableFuneralDate(v *time.Time) *NoticeUpdate {
	if v != nil {
		_u.SetFuneralDate(*v)
	}
	return _u
}

// ClearFuneralDate clears the value of the "funeral_date" field.
func (_u *NoticeUpdate) ClearFuneralDate() *NoticeUpdate {
	_u.mutation.ClearFuneralDate()
	return _u
}

// SetAnnouncementText sets the "announcement_text" field.
func (_u *NoticeUpdate) SetAnnouncementText(v string) *NoticeUpdate {
	_u.mutation.SetAnnouncementText(v)
	return _u
}

// SetNillableAnnouncementText sets the "announcement_text" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableAnnouncementText(v *string) *NoticeUpdate {
	if v != nil {
		_u.SetAnnouncementText(*v)
	}
	return _u
}

// ClearAnnouncementText clears the value of the "announcement_text" field.
func (_u *NoticeUpdate) ClearAnnouncementText() *NoticeUpdate {
	_u.mutation.ClearAnnouncementText()
	return _u
}

// SetSource sets the "source" field.
func (_u *NoticeUpdate) SetSource(v string) *NoticeUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableSource(v *string) *NoticeUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *NoticeUpdate) SetSourceURL(v string) *NoticeUpdate {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableSourceURL(v *string) *NoticeUpdate {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetHasPhoto sets the "has_photo" field.
func (_u *NoticeUpdate) SetHasPhoto(v bool) *NoticeUpdate {
	_u.mutation.SetHasPhoto(v)
	return _u
}

// SetNillableHasPhoto sets the "has_photo" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableHasPhoto(v *bool) *NoticeUpdate {
	if v != nil {
		_u.SetHasPhoto(*v)
	}
	return _u
}

// SetPhotoX sets the "photo_x" field.
func (_u *NoticeUpdate) SetPhotoX(v float64) *NoticeUpdate {
	_u.mutation.ResetPhotoX()
	_u.mutation.SetPhotoX(v)
	return _u
}

// SetNillablePhotoX sets the "photo_x" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillablePhotoX(v *float64) *NoticeUpdate {
	if v != nil {
		_u.SetPhotoX(*v)
	}
	return _u
}

// AddPhotoX adds value to the "photo_x" field.
func (_u *NoticeUpdate) AddPhotoX(v float64) *NoticeUpdate {
	_u.mutation.AddPhotoX(v)
	return _u
}

// ClearPhotoX clears the value of the "photo_x" field.
func (_u *NoticeUpdate) ClearPhotoX() *NoticeUpdate {
	_u.mutation.ClearPhotoX()
	return _u
}

// SetPhotoY sets the "photo_y" field.
func (_u *NoticeUpdate) SetPhotoY(v float64) *NoticeUpdate {
	_u.mutation.ResetPhotoY()
	_u.mutation.SetPhotoY(v)
	return _u
}

// SetNillablePhotoY sets the "photo_y" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillablePhotoY(v *float64) *NoticeUpdate {
	if v != nil {
		_u.SetPhotoY(*v)
	}
	return _u
}

// AddPhotoY adds value to the "photo_y" field.
func (_u *NoticeUpdate) AddPhotoY(v float64) *NoticeUpdate {
	_u.mutation.AddPhotoY(v)
	return _u
}

// ClearPhotoY clears the value of the "photo_y" field.
func (_u *NoticeUpdate) ClearPhotoY() *NoticeUpdate {
	_u.mutation.ClearPhotoY()
	return _u
}

// SetPhotoWidth sets the "photo_width" field.
func (_u *NoticeUpdate) SetPhotoWidth(v float64) *NoticeUpdate {
	_u.mutation.ResetPhotoWidth()
	_u.mutation.SetPhotoWidth(v)
	return _u
}

// SetNillablePhotoWidth sets the "photo_width" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillablePhotoWidth(v *float64) *NoticeUpdate {
	if v != nil {
		_u.SetPhotoWidth(*v)
	}
	return _u
}

// AddPhotoWidth adds value to the "photo_width" field.
func (_u *NoticeUpdate) AddPhotoWidth(v float64) *NoticeUpdate {
	_u.mutation.AddPhotoWidth(v)
	return _u
}

// ClearPhotoWidth clears the value of the "photo_width" field.
func (_u *NoticeUpdate) ClearPhotoWidth() *NoticeUpdate {
	_u.mutation.ClearPhotoWidth()
	return _u
}

// SetPhotoHeight sets the "photo_height" field.
func (_u *NoticeUpdate) SetPhotoHeight(v float64) *NoticeUpdate {
	_u.mutation.ResetPhotoHeight()
	_u.mutation.SetPhotoHeight(v)
	return _u
}

// SetNillablePhotoHeight sets the "photo_height" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillablePhotoHeight(v *float64) *NoticeUpdate {
	if v != nil {
		_u.SetPhotoHeight(*v)
	}
	return _u
}

// AddPhotoHeight adds value to the "photo_height" field.
func (_u *NoticeUpdate) AddPhotoHeight(v float64) *NoticeUpdate {
	_u.mutation.AddPhotoHeight(v)
	return _u
}

// ClearPhotoHeight clears the value of the "photo_height" field.
func (_u *NoticeUpdate) ClearPhotoHeight() *NoticeUpdate {
	_u.mutation.ClearPhotoHeight()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *NoticeUpdate) SetCreatedAt(v time.Time) *NoticeUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *NoticeUpdate) SetNillableCreatedAt(v *time.Time) *NoticeUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NoticeUpdate) SetUpdatedAt(v time.Time) *NoticeUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFileIDs adds the "files" edge to the NoticeFile entity by IDs.
func (_u *NoticeUpdate) AddFileIDs(ids ...uuid.UUID) *NoticeUpdate {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the NoticeFile entity.
func (_u *NoticeUpdate) AddFiles(v ...*NoticeFile) *NoticeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *NoticeUpdate) AddJobIDs(ids ...uuid.UUID) *NoticeUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *NoticeUpdate) AddJobs(v ...*ExtractJob) *NoticeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the NoticeMutation object of the builder.
func (_u *NoticeUpdate) Mutation() *NoticeMutation {
	return _u.mutation
}

// ClearFiles clears all "files" edges to the NoticeFile entity.
func (_u *NoticeUpdate) ClearFiles() *NoticeUpdate {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to NoticeFile entities by IDs.
func (_u *NoticeUpdate) RemoveFileIDs(ids ...uuid.UUID) *NoticeUpdate {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to NoticeFile entities.
func (_u *NoticeUpdate) RemoveFiles(v ...*NoticeFile) *NoticeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *NoticeUpdate) ClearJobs() *NoticeUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *NoticeUpdate) RemoveJobIDs(ids ...uuid.UUID) *NoticeUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *NoticeUpdate) RemoveJobs(v ...*ExtractJob) *NoticeUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *NoticeUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NoticeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *NoticeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NoticeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NoticeUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := notice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NoticeUpdate) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := notice.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "Notice.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := notice.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Notice.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceURL(); ok {
		if err := notice.SourceURLValidator(v); err != nil {
			return &ValidationError{Name: "source_url", err: fmt.Errorf(`ent: validator failed for field "Notice.source_url": %w`, err)}
		}
	}
	return nil
}

func (_u *NoticeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notice.Table, notice.Columns, sqlgraph.NewFieldSpec(notice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(notice.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OpeningQuote(); ok {
		_spec.SetField(notice.FieldOpeningQuote, field.TypeString, value)
	}
	if _u.mutation.OpeningQuoteCleared() {
		_spec.ClearField(notice.FieldOpeningQuote, field.TypeString)
	}
	if value, ok := _u.mutation.DeathDate(); ok {
		_spec.SetField(notice.FieldDeathDate, field.TypeTime, value)
	}
	if _u.mutation.DeathDateCleared() {
		_spec.ClearField(notice.FieldDeathDate, field.TypeTime)
	}
	if value, ok := _u.mutation.FuneralDate(); ok {
		_spec.SetField(notice.FieldFuneralDate, field.TypeTime, value)
	}
	if _u.mutation.FuneralDateCleared() {
		_spec.ClearField(notice.FieldFuneralDate, field.TypeTime)
	}
	if value, ok := _u.mutation.AnnouncementText(); ok {
		_spec.SetField(notice.FieldAnnouncementText, field.TypeString, value)
	}
	if _u.mutation.AnnouncementTextCleared() {
		_spec.ClearField(notice.FieldAnnouncementText, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(notice.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(notice.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.HasPhoto(); ok {
		_spec.SetField(notice.FieldHasPhoto, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PhotoX(); ok {
		_spec.SetField(notice.FieldPhotoX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPhotoX(); ok {
		_spec.AddField(notice.FieldPhotoX, field.TypeFloat64, value)
	}
	if _u.mutation.PhotoXCleared() {
		_spec.ClearField(notice.FieldPhotoX, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PhotoY(); ok {
		_spec.SetField(notice.FieldPhotoY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPhotoY(); ok {
		_spec.AddField(notice.FieldPhotoY, field.TypeFloat64, value)
	}
	if _u.mutation.PhotoYCleared() {
		_spec.ClearField(notice.FieldPhotoY, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PhotoWidth(); ok {
		_spec.SetField(notice.FieldPhotoWidth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPhotoWidth(); ok {
		_spec.AddField(notice.FieldPhotoWidth, field.TypeFloat64, value)
	}
	if _u.mutation.PhotoWidthCleared() {
		_spec.ClearField(notice.FieldPhotoWidth, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PhotoHeight(); ok {
		_spec.SetField(notice.FieldPhotoHeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPhotoHeight(); ok {
		_spec.AddField(notice.FieldPhotoHeight, field.TypeFloat64, value)
	}
	if _u.mutation.PhotoHeightCleared() {
		_spec.ClearField(notice.FieldPhotoHeight, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(notice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(notice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// NoticeUpdateOne is the builder for updating a single Notice entity.
type NoticeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *NoticeMutation
}

// SetFullName sets the "full_name" field.
func (_u *NoticeUpdateOne) SetFullName(v string) *NoticeUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableFullName(v *string) *NoticeUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetOpeningQuote sets the "opening_quote" field.
func (_u *NoticeUpdateOne) SetOpeningQuote(v string) *NoticeUpdateOne {
	_u.mutation.SetOpeningQuote(v)
	return _u
}

// SetNillableOpeningQuote sets the "opening_quote" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableOpeningQuote(v *string) *NoticeUpdateOne {
	if v != nil {
		_u.SetOpeningQuote(*v)
	}
	return _u
}

// ClearOpeningQuote clears the value of the "opening_quote" field.
func (_u *NoticeUpdateOne) ClearOpeningQuote() *NoticeUpdateOne {
	_u.mutation.ClearOpeningQuote()
	return _u
}

// SetDeathDate sets the "death_date" field.
func (_u *NoticeUpdateOne) SetDeathDate(v time.Time) *NoticeUpdateOne {
	_u.mutation.SetDeathDate(v)
	return _u
}

// SetNillableDeathDate sets the "death_date" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableDeathDate(v *time.Time) *NoticeUpdateOne {
	if v != nil {
		_u.SetDeathDate(*v)
	}
	return _u
}

// ClearDeathDate clears the value of the "death_date" field.
func (_u *NoticeUpdateOne) ClearDeathDate() *NoticeUpdateOne {
	_u.mutation.ClearDeathDate()
	return _u
}

// SetFuneralDate sets the "funeral_date" field.
func (_u *NoticeUpdateOne) SetFuneralDate(v time.Time) *NoticeUpdateOne {
	_u.mutation.SetFuneralDate(v)
	return _u
}

// SetNillableFuneralDate sets the "funeral_date" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableFuneralDate(v *time.Time) *NoticeUpdateOne {
	if v != nil {
		_u.SetFuneralDate(*v)
	}
	return _u
}

// ClearFuneralDate clears the value of the "funeral_date" field.
func (_u *NoticeUpdateOne) ClearFuneralDate() *NoticeUpdateOne {
	_u.mutation.ClearFuneralDate()
	return _u
}

// SetAnnouncementText sets the "announcement_text" field.
func (_u *NoticeUpdateOne) SetAnnouncementText(v string) *NoticeUpdateOne {
	_u.mutation.SetAnnouncementText(v)
	return _u
}

// SetNillableAnnouncementText sets the "announcement_text" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableAnnouncementText(v *string) *NoticeUpdateOne {
	if v != nil {
		_u.SetAnnouncementText(*v)
	}
	return _u
}

// ClearAnnouncementText clears the value of the "announcement_text" field.
func (_u *NoticeUpdateOne) ClearAnnouncementText() *NoticeUpdateOne {
	_u.mutation.ClearAnnouncementText()
	return _u
}

// SetSource sets the "source" field.
func (_u *NoticeUpdateOne) SetSource(v string) *NoticeUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableSource(v *string) *NoticeUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetSourceURL sets the "source_url" field.
func (_u *NoticeUpdateOne) SetSourceURL(v string) *NoticeUpdateOne {
	_u.mutation.SetSourceURL(v)
	return _u
}

// SetNillableSourceURL sets the "source_url" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableSourceURL(v *string) *NoticeUpdateOne {
	if v != nil {
		_u.SetSourceURL(*v)
	}
	return _u
}

// SetHasPhoto sets the "has_photo" field.
func (_u *NoticeUpdateOne) SetHasPhoto(v bool) *NoticeUpdateOne {
	_u.mutation.SetHasPhoto(v)
	return _u
}

// SetNillableHasPhoto sets the "has_photo" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableHasPhoto(v *bool) *NoticeUpdateOne {
	if v != nil {
		_u.SetHasPhoto(*v)
	}
	return _u
}

// SetPhotoX sets the "photo_x" field.
func (_u *NoticeUpdateOne) SetPhotoX(v float64) *NoticeUpdateOne {
	_u.mutation.ResetPhotoX()
	_u.mutation.SetPhotoX(v)
	return _u
}

// SetNillablePhotoX sets the "photo_x" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillablePhotoX(v *float64) *NoticeUpdateOne {
	if v != nil {
		_u.SetPhotoX(*v)
	}
	return _u
}

// AddPhotoX adds value to the "photo_x" field.
func (_u *NoticeUpdateOne) AddPhotoX(v float64) *NoticeUpdateOne {
	_u.mutation.AddPhotoX(v)
	return _u
}

// ClearPhotoX clears the value of the "photo_x" field.
func (_u *NoticeUpdateOne) ClearPhotoX() *NoticeUpdateOne {
	_u.mutation.ClearPhotoX()
	return _u
}

// SetPhotoY sets the "photo_y" field.
func (_u *NoticeUpdateOne) SetPhotoY(v float64) *NoticeUpdateOne {
	_u.mutation.ResetPhotoY()
	_u.mutation.SetPhotoY(v)
	return _u
}

// SetNillablePhotoY sets the "photo_y" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillablePhotoY(v *float64) *NoticeUpdateOne {
	if v != nil {
		_u.SetPhotoY(*v)
	}
	return _u
}

// AddPhotoY adds value to the "photo_y" field.
func (_u *NoticeUpdateOne) AddPhotoY(v float64) *NoticeUpdateOne {
	_u.mutation.AddPhotoY(v)
	return _u
}

// ClearPhotoY clears the value of the "photo_y" field.
func (_u *NoticeUpdateOne) ClearPhotoY() *NoticeUpdateOne {
	_u.mutation.ClearPhotoY()
	return _u
}

// SetPhotoWidth sets the "photo_width" field.
func (_u *NoticeUpdateOne) SetPhotoWidth(v float64) *NoticeUpdateOne {
	_u.mutation.ResetPhotoWidth()
	_u.mutation.SetPhotoWidth(v)
	return _u
}

// SetNillablePhotoWidth sets the "photo_width" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillablePhotoWidth(v *float64) *NoticeUpdateOne {
	if v != nil {
		_u.SetPhotoWidth(*v)
	}
	return _u
}

// AddPhotoWidth adds value to the "photo_width" field.
func (_u *NoticeUpdateOne) AddPhotoWidth(v float64) *NoticeUpdateOne {
	_u.mutation.AddPhotoWidth(v)
	return _u
}

// ClearPhotoWidth clears the value of the "photo_width" field.
func (_u *NoticeUpdateOne) ClearPhotoWidth() *NoticeUpdateOne {
	_u.mutation.ClearPhotoWidth()
	return _u
}

// SetPhotoHeight sets the "photo_height" field.
func (_u *NoticeUpdateOne) SetPhotoHeight(v float64) *NoticeUpdateOne {
	_u.mutation.ResetPhotoHeight()
	_u.mutation.SetPhotoHeight(v)
	return _u
}

// SetNillablePhotoHeight sets the "photo_height" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillablePhotoHeight(v *float64) *NoticeUpdateOne {
	if v != nil {
		_u.SetPhotoHeight(*v)
	}
	return _u
}

// AddPhotoHeight adds value to the "photo_height" field.
func (_u *NoticeUpdateOne) AddPhotoHeight(v float64) *NoticeUpdateOne {
	_u.mutation.AddPhotoHeight(v)
	return _u
}

// ClearPhotoHeight clears the value of the "photo_height" field.
func (_u *NoticeUpdateOne) ClearPhotoHeight() *NoticeUpdateOne {
	_u.mutation.ClearPhotoHeight()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *NoticeUpdateOne) SetCreatedAt(v time.Time) *NoticeUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *NoticeUpdateOne) SetNillableCreatedAt(v *time.Time) *NoticeUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *NoticeUpdateOne) SetUpdatedAt(v time.Time) *NoticeUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddFileIDs adds the "files" edge to the NoticeFile entity by IDs.
func (_u *NoticeUpdateOne) AddFileIDs(ids ...uuid.UUID) *NoticeUpdateOne {
	_u.mutation.AddFileIDs(ids...)
	return _u
}

// AddFiles adds the "files" edges to the NoticeFile entity.
func (_u *NoticeUpdateOne) AddFiles(v ...*NoticeFile) *NoticeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *NoticeUpdateOne) AddJobIDs(ids ...uuid.UUID) *NoticeUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *NoticeUpdateOne) AddJobs(v ...*ExtractJob) *NoticeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the NoticeMutation object of the builder.
func (_u *NoticeUpdateOne) Mutation() *NoticeMutation {
	return _u.mutation
}

// ClearFiles clears all "files" edges to the NoticeFile entity.
func (_u *NoticeUpdateOne) ClearFiles() *NoticeUpdateOne {
	_u.mutation.ClearFiles()
	return _u
}

// RemoveFileIDs removes the "files" edge to NoticeFile entities by IDs.
func (_u *NoticeUpdateOne) RemoveFileIDs(ids ...uuid.UUID) *NoticeUpdateOne {
	_u.mutation.RemoveFileIDs(ids...)
	return _u
}

// RemoveFiles removes "files" edges to NoticeFile entities.
func (_u *NoticeUpdateOne) RemoveFiles(v ...*NoticeFile) *NoticeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *NoticeUpdateOne) ClearJobs() *NoticeUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *NoticeUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *NoticeUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *NoticeUpdateOne) RemoveJobs(v ...*ExtractJob) *NoticeUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the NoticeUpdate builder.
func (_u *NoticeUpdateOne) Where(ps ...predicate.Notice) *NoticeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *NoticeUpdateOne) Select(field string, fields ...string) *NoticeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Notice entity.
func (_u *NoticeUpdateOne) Save(ctx context.Context) (*Notice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *NoticeUpdateOne) SaveX(ctx context.Context) *Notice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *NoticeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *NoticeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *NoticeUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := notice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *NoticeUpdateOne) check() error {
	if v, ok := _u.mutation.FullName(); ok {
		if err := notice.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "Notice.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := notice.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Notice.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceURL(); ok {
		if err := notice.SourceURLValidator(v); err != nil {
			return &ValidationError{Name: "source_url", err: fmt.Errorf(`ent: validator failed for field "Notice.source_url": %w`, err)}
		}
	}
	return nil
}

func (_u *NoticeUpdateOne) sqlSave(ctx context.Context) (_node *Notice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(notice.Table, notice.Columns, sqlgraph.NewFieldSpec(notice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Notice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, notice.FieldID)
		for _, f := range fields {
			if !notice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != notice.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(notice.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.OpeningQuote(); ok {
		_spec.SetField(notice.FieldOpeningQuote, field.TypeString, value)
	}
	if _u.mutation.OpeningQuoteCleared() {
		_spec.ClearField(notice.FieldOpeningQuote, field.TypeString)
	}
	if value, ok := _u.mutation.DeathDate(); ok {
		_spec.SetField(notice.FieldDeathDate, field.TypeTime, value)
	}
	if _u.mutation.DeathDateCleared() {
		_spec.ClearField(notice.FieldDeathDate, field.TypeTime)
	}
	if value, ok := _u.mutation.FuneralDate(); ok {
		_spec.SetField(notice.FieldFuneralDate, field.TypeTime, value)
	}
	if _u.mutation.FuneralDateCleared() {
		_spec.ClearField(notice.FieldFuneralDate, field.TypeTime)
	}
	if value, ok := _u.mutation.AnnouncementText(); ok {
		_spec.SetField(notice.FieldAnnouncementText, field.TypeString, value)
	}
	if _u.mutation.AnnouncementTextCleared() {
		_spec.ClearField(notice.FieldAnnouncementText, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(notice.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceURL(); ok {
		_spec.SetField(notice.FieldSourceURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.HasPhoto(); ok {
		_spec.SetField(notice.FieldHasPhoto, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PhotoX(); ok {
		_spec.SetField(notice.FieldPhotoX, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPhotoX(); ok {
		_spec.AddField(notice.FieldPhotoX, field.TypeFloat64, value)
	}
	if _u.mutation.PhotoXCleared() {
		_spec.ClearField(notice.FieldPhotoX, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PhotoY(); ok {
		_spec.SetField(notice.FieldPhotoY, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPhotoY(); ok {
		_spec.AddField(notice.FieldPhotoY, field.TypeFloat64, value)
	}
	if _u.mutation.PhotoYCleared() {
		_spec.ClearField(notice.FieldPhotoY, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PhotoWidth(); ok {
		_spec.SetField(notice.FieldPhotoWidth, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPhotoWidth(); ok {
		_spec.AddField(notice.FieldPhotoWidth, field.TypeFloat64, value)
	}
	if _u.mutation.PhotoWidthCleared() {
		_spec.ClearField(notice.FieldPhotoWidth, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PhotoHeight(); ok {
		_spec.SetField(notice.FieldPhotoHeight, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPhotoHeight(); ok {
		_spec.AddField(notice.FieldPhotoHeight, field.TypeFloat64, value)
	}
	if _u.mutation.PhotoHeightCleared() {
		_spec.ClearField(notice.FieldPhotoHeight, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(notice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(notice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFilesIDs(); len(nodes) > 0 && !_u.mutation.FilesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FilesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Notice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{notice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
