// Code generated by ent, DO NOT EDIT.

package notice

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/parte-archiv/parte-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldID, id))
}

// Hash applies equality check predicate on the "hash" field. It's identical to HashEQ.
func Hash(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldHash, v))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldFullName, v))
}

// OpeningQuote applies equality check predicate on the "opening_quote" field. It's identical to OpeningQuoteEQ.
func OpeningQuote(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldOpeningQuote, v))
}

// DeathDate applies equality check predicate on the "death_date" field. It's identical to DeathDateEQ.
func DeathDate(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldDeathDate, v))
}

// FuneralDate applies equality check predicate on the "funeral_date" field. It's identical to FuneralDateEQ.
func FuneralDate(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldFuneralDate, v))
}

// AnnouncementText applies equality check predicate on the "announcement_text" field. It's identical to AnnouncementTextEQ.
func AnnouncementText(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldAnnouncementText, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldSource, v))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldSourceURL, v))
}

// HasPhoto applies equality check predicate on the "has_photo" field. It's identical to HasPhotoEQ.
func HasPhoto(v bool) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldHasPhoto, v))
}

// PhotoX applies equality check predicate on the "photo_x" field. It's identical to PhotoXEQ.
func PhotoX(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldPhotoX, v))
}

// PhotoY applies equality check predicate on the "photo_y" field. It's identical to PhotoYEQ.
func PhotoY(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldPhotoY, v))
}

// PhotoWidth applies equality check predicate on the "photo_width" field. It's identical to PhotoWidthEQ.
func PhotoWidth(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldPhotoWidth, v))
}

// PhotoHeight applies equality check predicate on the "photo_height" field. It's identical to PhotoHeightEQ.
func PhotoHeight(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldPhotoHeight, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldUpdatedAt, v))
}

// HashEQ applies the EQ predicate on the "hash" field.
func HashEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldHash, v))
}

// HashNEQ applies the NEQ predicate on the "hash" field.
func HashNEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldHash, v))
}

// HashIn applies the In predicate on the "hash" field.
func HashIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldHash, vs...))
}

// HashNotIn applies the NotIn predicate on the "hash" field.
func HashNotIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldHash, vs...))
}

// HashGT applies the GT predicate on the "hash" field.
func HashGT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldHash, v))
}

// HashGTE applies the GTE predicate on the "hash" field.
func HashGTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldHash, v))
}

// HashLT applies the LT predicate on the "hash" field.
func HashLT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldHash, v))
}

// HashLTE applies the LTE predicate on the "hash" field.
func HashLTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldHash, v))
}

// HashContains applies the Contains predicate on the "hash" field.
func HashContains(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContains(FieldHash, v))
}

// HashHasPrefix applies the HasPrefix predicate on the "hash" field.
func HashHasPrefix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasPrefix(FieldHash, v))
}

// HashHasSuffix applies the HasSuffix predicate on the "hash" field.
func HashHasSuffix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasSuffix(FieldHash, v))
}

// HashEqualFold applies the EqualFold predicate on the "hash" field.
func HashEqualFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEqualFold(FieldHash, v))
}

// HashContainsFold applies the ContainsFold predicate on the "hash" field.
func HashContainsFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContainsFold(FieldHash, v))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContainsFold(FieldFullName, v))
}

// OpeningQuoteEQ applies the EQ predicate on the "opening_quote" field.
func OpeningQuoteEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldOpeningQuote, v))
}

// OpeningQuoteNEQ applies the NEQ predicate on the "opening_quote" field.
func OpeningQuoteNEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldOpeningQuote, v))
}

// OpeningQuoteIn applies the In predicate on the "opening_quote" field.
func OpeningQuoteIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldOpeningQuote, vs...))
}

// OpeningQuoteNotIn applies the NotIn predicate on the "opening_quote" field.
func OpeningQuoteNotIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldOpeningQuote, vs...))
}

// OpeningQuoteGT applies the GT predicate on the "opening_quote" field.
func OpeningQuoteGT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldOpeningQuote, v))
}

// OpeningQuoteGTE applies the GTE predicate on the "opening_quote" field.
func OpeningQuoteGTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldOpeningQuote, v))
}

// OpeningQuoteLT applies the LT predicate on the "opening_quote" field.
func OpeningQuoteLT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldOpeningQuote, v))
}

// OpeningQuoteLTE applies the LTE predicate on the "opening_quote" field.
func OpeningQuoteLTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldOpeningQuote, v))
}

// OpeningQuoteContains applies the Contains predicate on the "opening_quote" field.
func OpeningQuoteContains(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContains(FieldOpeningQuote, v))
}

// OpeningQuoteHasPrefix applies the HasPrefix predicate on the "opening_quote" field.
func OpeningQuoteHasPrefix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasPrefix(FieldOpeningQuote, v))
}

// OpeningQuoteHasSuffix applies the HasSuffix predicate on the "opening_quote" field.
func OpeningQuoteHasSuffix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasSuffix(FieldOpeningQuote, v))
}

// OpeningQuoteIsNil applies the IsNil predicate on the "opening_quote" field.
func OpeningQuoteIsNil() predicate.Notice {
	return predicate.Notice(sql.FieldIsNull(FieldOpeningQuote))
}

// OpeningQuoteNotNil applies the NotNil predicate on the "opening_quote" field.
func OpeningQuoteNotNil() predicate.Notice {
	return predicate.Notice(sql.FieldNotNull(FieldOpeningQuote))
}

// OpeningQuoteEqualFold applies the EqualFold predicate on the "opening_quote" field.
func OpeningQuoteEqualFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEqualFold(FieldOpeningQuote, v))
}

// OpeningQuoteContainsFold applies the ContainsFold predicate on the "opening_quote" field.
func OpeningQuoteContainsFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContainsFold(FieldOpeningQuote, v))
}

// DeathDateEQ applies the EQ predicate on the "death_date" field.
func DeathDateEQ(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldDeathDate, v))
}

// DeathDateNEQ applies the NEQ predicate on the "death_date" field.
func DeathDateNEQ(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldDeathDate, v))
}

// DeathDateIn applies the In predicate on the "death_date" field.
func DeathDateIn(vs ...time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldDeathDate, vs...))
}

// DeathDateNotIn applies the NotIn predicate on the "death_date" field.
func DeathDateNotIn(vs ...time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldDeathDate, vs...))
}

// DeathDateGT applies the GT predicate on the "death_date" field.
func DeathDateGT(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldDeathDate, v))
}

// DeathDateGTE applies the GTE predicate on the "death_date" field.
func DeathDateGTE(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldDeathDate, v))
}

// DeathDateLT applies the LT predicate on the "death_date" field.
func DeathDateLT(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldDeathDate, v))
}

// DeathDateLTE applies the LTE predicate on the "death_date" field.
func DeathDateLTE(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldDeathDate, v))
}

// DeathDateIsNil applies the IsNil predicate on the "death_date" field.
func DeathDateIsNil() predicate.Notice {
	return predicate.Notice(sql.FieldIsNull(FieldDeathDate))
}

// DeathDateNotNil applies the NotNil predicate on the "death_date" field.
func DeathDateNotNil() predicate.Notice {
	return predicate.Notice(sql.FieldNotNull(FieldDeathDate))
}

// FuneralDateEQ applies the EQ predicate on the "funeral_date" field.
func FuneralDateEQ(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldFuneralDate, v))
}

// FuneralDateNEQ applies the NEQ predicate on the "funeral_date" field.
func FuneralDateNEQ(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldFuneralDate, v))
}

// FuneralDateIn applies the In predicate on the "funeral_date" field.
func FuneralDateIn(vs ...time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldFuneralDate, vs...))
}

// FuneralDateNotIn applies the NotIn predicate on the "funeral_date" field.
func FuneralDateNotIn(vs ...time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldFuneralDate, vs...))
}

// FuneralDateGT applies the GT predicate on the "funeral_date" field.
func FuneralDateGT(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldFuneralDate, v))
}

// FuneralDateGTE applies the GTE predicate on the "funeral_date" field.
func FuneralDateGTE(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldFuneralDate, v))
}

// FuneralDateLT applies the LT predicate on the "funeral_date" field.
func FuneralDateLT(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldFuneralDate, v))
}

// FuneralDateLTE applies the LTE predicate on the "funeral_date" field.
func FuneralDateLTE(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldFuneralDate, v))
}

// FuneralDateIsNil applies the IsNil predicate on the "funeral_date" field.
func FuneralDateIsNil() predicate.Notice {
	return predicate.Notice(sql.FieldIsNull(FieldFuneralDate))
}

// FuneralDateNotNil applies the NotNil predicate on the "funeral_date" field.
func FuneralDateNotNil() predicate.Notice {
	return predicate.Notice(sql.FieldNotNull(FieldFuneralDate))
}

// AnnouncementTextEQ applies the EQ predicate on the "announcement_text" field.
func AnnouncementTextEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldAnnouncementText, v))
}

// AnnouncementTextNEQ applies the NEQ predicate on the "announcement_text" field.
func AnnouncementTextNEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldAnnouncementText, v))
}

// AnnouncementTextIn applies the In predicate on the "announcement_text" field.
func AnnouncementTextIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldAnnouncementText, vs...))
}

// AnnouncementTextNotIn applies the NotIn predicate on the "announcement_text" field.
func AnnouncementTextNotIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldAnnouncementText, vs...))
}

// AnnouncementTextGT applies the GT predicate on the "announcement_text" field.
func AnnouncementTextGT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldAnnouncementText, v))
}

// AnnouncementTextGTE applies the GTE predicate on the "announcement_text" field.
func AnnouncementTextGTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldAnnouncementText, v))
}

// AnnouncementTextLT applies the LT predicate on the "announcement_text" field.
func AnnouncementTextLT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldAnnouncementText, v))
}

// AnnouncementTextLTE applies the LTE predicate on the "announcement_text" field.
func AnnouncementTextLTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldAnnouncementText, v))
}

// AnnouncementTextContains applies the Contains predicate on the "announcement_text" field.
func AnnouncementTextContains(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContains(FieldAnnouncementText, v))
}

// AnnouncementTextHasPrefix applies the HasPrefix predicate on the "announcement_text" field.
func AnnouncementTextHasPrefix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasPrefix(FieldAnnouncementText, v))
}

// AnnouncementTextHasSuffix applies the HasSuffix predicate on the "announcement_text" field.
func AnnouncementTextHasSuffix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasSuffix(FieldAnnouncementText, v))
}

// AnnouncementTextIsNil applies the IsNil predicate on the "announcement_text" field.
func AnnouncementTextIsNil() predicate.Notice {
	return predicate.Notice(sql.FieldIsNull(FieldAnnouncementText))
}

// AnnouncementTextNotNil applies the NotNil predicate on the "announcement_text" field.
func AnnouncementTextNotNil() predicate.Notice {
	return predicate.Notice(sql.FieldNotNull(FieldAnnouncementText))
}

// AnnouncementTextEqualFold applies the EqualFold predicate on the "announcement_text" field.
func AnnouncementTextEqualFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEqualFold(FieldAnnouncementText, v))
}

// AnnouncementTextContainsFold applies the ContainsFold predicate on the "announcement_text" field.
func AnnouncementTextContainsFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContainsFold(FieldAnnouncementText, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContainsFold(FieldSource, v))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.Notice {
	return predicate.Notice(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.Notice {
	return predicate.Notice(sql.FieldContainsFold(FieldSourceURL, v))
}

// HasPhotoEQ applies the EQ predicate on the "has_photo" field.
func HasPhotoEQ(v bool) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldHasPhoto, v))
}

// HasPhotoNEQ applies the NEQ predicate on the "has_photo" field.
func HasPhotoNEQ(v bool) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldHasPhoto, v))
}

// PhotoXEQ applies the EQ predicate on the "photo_x" field.
func PhotoXEQ(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldPhotoX, v))
}

// PhotoXNEQ applies the NEQ predicate on the "photo_x" field.
func PhotoXNEQ(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldPhotoX, v))
}

// PhotoXIn applies the In predicate on the "photo_x" field.
func PhotoXIn(vs ...float64) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldPhotoX, vs...))
}

// PhotoXNotIn applies the NotIn predicate on the "photo_x" field.
func PhotoXNotIn(vs ...float64) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldPhotoX, vs...))
}

// PhotoXGT applies the GT predicate on the "photo_x" field.
func PhotoXGT(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldPhotoX, v))
}

// PhotoXGTE applies the GTE predicate on the "photo_x" field.
func PhotoXGTE(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldPhotoX, v))
}

// PhotoXLT applies the LT predicate on the "photo_x" field.
func PhotoXLT(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldPhotoX, v))
}

// PhotoXLTE applies the LTE predicate on the "photo_x" field.
func PhotoXLTE(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldPhotoX, v))
}

// PhotoXIsNil applies the IsNil predicate on the "photo_x" field.
func PhotoXIsNil() predicate.Notice {
	return predicate.Notice(sql.FieldIsNull(FieldPhotoX))
}

// PhotoXNotNil applies the NotNil predicate on the "photo_x" field.
func PhotoXNotNil() predicate.Notice {
	return predicate.Notice(sql.FieldNotNull(FieldPhotoX))
}

// PhotoYEQ applies the EQ predicate on the "photo_y" field.
func PhotoYEQ(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldPhotoY, v))
}

// PhotoYNEQ applies the NEQ predicate on the "photo_y" field.
func PhotoYNEQ(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldPhotoY, v))
}

// PhotoYIn applies the In predicate on the "photo_y" field.
func PhotoYIn(vs ...float64) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldPhotoY, vs...))
}

// PhotoYNotIn applies the NotIn predicate on the "photo_y" field.
func PhotoYNotIn(vs ...float64) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldPhotoY, vs...))
}

// PhotoYGT applies the GT predicate on the "photo_y" field.
func PhotoYGT(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldPhotoY, v))
}

// PhotoYGTE applies the GTE predicate on the "photo_y" field.
func PhotoYGTE(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldPhotoY, v))
}

// PhotoYLT applies the LT predicate on the "photo_y" field.
func PhotoYLT(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldPhotoY, v))
}

// PhotoYLTE applies the LTE predicate on the "photo_y" field.
func PhotoYLTE(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldPhotoY, v))
}

// PhotoYIsNil applies the IsNil predicate on the "photo_y" field.
func PhotoYIsNil() predicate.Notice {
	return predicate.Notice(sql.FieldIsNull(FieldPhotoY))
}

// PhotoYNotNil applies the NotNil predicate on the "photo_y" field.
func PhotoYNotNil() predicate.Notice {
	return predicate.Notice(sql.FieldNotNull(FieldPhotoY))
}

// PhotoWidthEQ applies the EQ predicate on the "photo_width" field.
func PhotoWidthEQ(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldPhotoWidth, v))
}

// PhotoWidthNEQ applies the NEQ predicate on the "photo_width" field.
func PhotoWidthNEQ(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldPhotoWidth, v))
}

// PhotoWidthIn applies the In predicate on the "photo_width" field.
func PhotoWidthIn(vs ...float64) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldPhotoWidth, vs...))
}

// PhotoWidthNotIn applies the NotIn predicate on the "photo_width" field.
func PhotoWidthNotIn(vs ...float64) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldPhotoWidth, vs...))
}

// PhotoWidthGT applies the GT predicate on the "photo_width" field.
func PhotoWidthGT(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldPhotoWidth, v))
}

// PhotoWidthGTE applies the GTE predicate on the "photo_width" field.
func PhotoWidthGTE(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldPhotoWidth, v))
}

// PhotoWidthLT applies the LT predicate on the "photo_width" field.
func PhotoWidthLT(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldPhotoWidth, v))
}

// PhotoWidthLTE applies the LTE predicate on the "photo_width" field.
func PhotoWidthLTE(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldPhotoWidth, v))
}

// PhotoWidthIsNil applies the IsNil predicate on the "photo_width" field.
func PhotoWidthIsNil() predicate.Notice {
	return predicate.Notice(sql.FieldIsNull(FieldPhotoWidth))
}

// PhotoWidthNotNil applies the NotNil predicate on the "photo_width" field.
func PhotoWidthNotNil() predicate.Notice {
	return predicate.Notice(sql.FieldNotNull(FieldPhotoWidth))
}

// PhotoHeightEQ applies the EQ predicate on the "photo_height" field.
func PhotoHeightEQ(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldPhotoHeight, v))
}

// PhotoHeightNEQ applies the NEQ predicate on the "photo_height" field.
func PhotoHeightNEQ(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldPhotoHeight, v))
}

// PhotoHeightIn applies the In predicate on the "photo_height" field.
func PhotoHeightIn(vs ...float64) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldPhotoHeight, vs...))
}

// PhotoHeightNotIn applies the NotIn predicate on the "photo_height" field.
func PhotoHeightNotIn(vs ...float64) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldPhotoHeight, vs...))
}

// PhotoHeightGT applies the GT predicate on the "photo_height" field.
func PhotoHeightGT(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldPhotoHeight, v))
}

// PhotoHeightGTE applies the GTE predicate on the "photo_height" field.
func PhotoHeightGTE(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldPhotoHeight, v))
}

// PhotoHeightLT applies the LT predicate on the "photo_height" field.
func PhotoHeightLT(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldPhotoHeight, v))
}

// PhotoHeightLTE applies the LTE predicate on the "photo_height" field.
func PhotoHeightLTE(v float64) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldPhotoHeight, v))
}

// PhotoHeightIsNil applies the IsNil predicate on the "photo_height" field.
func PhotoHeightIsNil() predicate.Notice {
	return predicate.Notice(sql.FieldIsNull(FieldPhotoHeight))
}

// PhotoHeightNotNil applies the NotNil predicate on the "photo_height" field.
func PhotoHeightNotNil() predicate.Notice {
	return predicate.Notice(sql.FieldNotNull(FieldPhotoHeight))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Notice {
	return predicate.Notice(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasFiles applies the HasEdge predicate on the "files" edge.
func HasFiles() predicate.Notice {
	return predicate.Notice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFilesWith applies the HasEdge predicate on the "files" edge with a given conditions (other predicates).
func HasFilesWith(preds ...predicate.NoticeFile) predicate.Notice {
	return predicate.Notice(func(s *sql.Selector) {
		step := newFilesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Notice {
	return predicate.Notice(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractJob) predicate.Notice {
	return predicate.Notice(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Notice) predicate.Notice {
	return predicate.Notice(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Notice) predicate.Notice {
	return predicate.Notice(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Notice) predicate.Notice {
	return predicate.Notice(sql.NotPredicates(p))
}
