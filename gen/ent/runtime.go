// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/parte-archiv/parte-tracker/db/ent/schema"
	"github.com/parte-archiv/parte-tracker/gen/ent/extractjob"
	"github.com/parte-archiv/parte-tracker/gen/ent/notice"
	"github.com/parte-archiv/parte-tracker/gen/ent/noticefile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[3].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = func() func(string) error {
		validators := extractjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescMode is the schema descriptor for mode field.
	extractjobDescMode := extractjobFields[4].Descriptor()
	// extractjob.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	extractjob.ModeValidator = func() func(string) error {
		validators := extractjobDescMode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(mode string) error {
			for _, fn := range fns {
				if err := fn(mode); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[5].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescAttempts is the schema descriptor for attempts field.
	extractjobDescAttempts := extractjobFields[9].Descriptor()
	// extractjob.DefaultAttempts holds the default value on creation for the attempts field.
	extractjob.DefaultAttempts = extractjobDescAttempts.Default.(int)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	noticeFields := schema.Notice{}.Fields()
	_ = noticeFields
	// noticeDescHash is the schema descriptor for hash field.
	noticeDescHash := noticeFields[1].Descriptor()
	// notice.HashValidator is a validator for the "hash" field. It is called by the builders before save.
	notice.HashValidator = noticeDescHash.Validators[0].(func(string) error)
	// noticeDescFullName is the schema descriptor for full_name field.
	noticeDescFullName := noticeFields[2].Descriptor()
	// notice.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	notice.FullNameValidator = noticeDescFullName.Validators[0].(func(string) error)
	// noticeDescSource is the schema descriptor for source field.
	noticeDescSource := noticeFields[7].Descriptor()
	// notice.SourceValidator is a validator for the "source" field. It is called by the builders before save.
	notice.SourceValidator = noticeDescSource.Validators[0].(func(string) error)
	// noticeDescSourceURL is the schema descriptor for source_url field.
	noticeDescSourceURL := noticeFields[8].Descriptor()
	// notice.SourceURLValidator is a validator for the "source_url" field. It is called by the builders before save.
	notice.SourceURLValidator = noticeDescSourceURL.Validators[0].(func(string) error)
	// noticeDescHasPhoto is the schema descriptor for has_photo field.
	noticeDescHasPhoto := noticeFields[9].Descriptor()
	// notice.DefaultHasPhoto holds the default value on creation for the has_photo field.
	notice.DefaultHasPhoto = noticeDescHasPhoto.Default.(bool)
	// noticeDescCreatedAt is the schema descriptor for created_at field.
	noticeDescCreatedAt := noticeFields[14].Descriptor()
	// notice.DefaultCreatedAt holds the default value on creation for the created_at field.
	notice.DefaultCreatedAt = noticeDescCreatedAt.Default.(func() time.Time)
	// noticeDescUpdatedAt is the schema descriptor for updated_at field.
	noticeDescUpdatedAt := noticeFields[15].Descriptor()
	// notice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	notice.DefaultUpdatedAt = noticeDescUpdatedAt.Default.(func() time.Time)
	// notice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	notice.UpdateDefaultUpdatedAt = noticeDescUpdatedAt.UpdateDefault.(func() time.Time)
	// noticeDescID is the schema descriptor for id field.
	noticeDescID := noticeFields[0].Descriptor()
	// notice.DefaultID holds the default value on creation for the id field.
	notice.DefaultID = noticeDescID.Default.(func() uuid.UUID)
	noticefileFields := schema.NoticeFile{}.Fields()
	_ = noticefileFields
	// noticefileDescKind is the schema descriptor for kind field.
	noticefileDescKind := noticefileFields[2].Descriptor()
	// noticefile.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	noticefile.KindValidator = noticefileDescKind.Validators[0].(func(string) error)
	// noticefileDescSourcePath is the schema descriptor for source_path field.
	noticefileDescSourcePath := noticefileFields[3].Descriptor()
	// noticefile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	noticefile.SourcePathValidator = noticefileDescSourcePath.Validators[0].(func(string) error)
	// noticefileDescContentHash is the schema descriptor for content_hash field.
	noticefileDescContentHash := noticefileFields[4].Descriptor()
	// noticefile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	noticefile.ContentHashValidator = noticefileDescContentHash.Validators[0].(func([]byte) error)
	// noticefileDescFilename is the schema descriptor for filename field.
	noticefileDescFilename := noticefileFields[5].Descriptor()
	// noticefile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	noticefile.FilenameValidator = noticefileDescFilename.Validators[0].(func(string) error)
	// noticefileDescFileExt is the schema descriptor for file_ext field.
	noticefileDescFileExt := noticefileFields[6].Descriptor()
	// noticefile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	noticefile.FileExtValidator = noticefileDescFileExt.Validators[0].(func(string) error)
	// noticefileDescFileSize is the schema descriptor for file_size field.
	noticefileDescFileSize := noticefileFields[7].Descriptor()
	// noticefile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	noticefile.FileSizeValidator = noticefileDescFileSize.Validators[0].(func(int) error)
	// noticefileDescUploadedAt is the schema descriptor for uploaded_at field.
	noticefileDescUploadedAt := noticefileFields[8].Descriptor()
	// noticefile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	noticefile.DefaultUploadedAt = noticefileDescUploadedAt.Default.(func() time.Time)
	// noticefileDescID is the schema descriptor for id field.
	noticefileDescID := noticefileFields[0].Descriptor()
	// noticefile.DefaultID holds the default value on creation for the id field.
	noticefile.DefaultID = noticefileDescID.Default.(func() uuid.UUID)
}
