// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: notices/v1/notices.proto

package noticespb

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type BoundingBox struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	XPercent      float64                `protobuf:"fixed64,1,opt,name=x_percent,json=xPercent,proto3" json:"x_percent,omitempty"`
	YPercent      float64                `protobuf:"fixed64,2,opt,name=y_percent,json=yPercent,proto3" json:"y_percent,omitempty"`
	WidthPercent  float64                `protobuf:"fixed64,3,opt,name=width_percent,json=widthPercent,proto3" json:"width_percent,omitempty"`
	HeightPercent float64                `protobuf:"fixed64,4,opt,name=height_percent,json=heightPercent,proto3" json:"height_percent,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BoundingBox) Reset() {
	*x = BoundingBox{}
	mi := &file_notices_v1_notices_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BoundingBox) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BoundingBox) ProtoMessage() {}

func (x *BoundingBox) ProtoReflect() protoreflect.Message {
	mi := &file_notices_v1_notices_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BoundingBox.ProtoReflect.Descriptor instead.
func (*BoundingBox) Descriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{0}
}

func (x *BoundingBox) GetXPercent() float64 {
	if x != nil {
		return x.XPercent
	}
	return 0
}

func (x *BoundingBox) GetYPercent() float64 {
	if x != nil {
		return x.YPercent
	}
	return 0
}

func (x *BoundingBox) GetWidthPercent() float64 {
	if x != nil {
		return x.WidthPercent
	}
	return 0
}

func (x *BoundingBox) GetHeightPercent() float64 {
	if x != nil {
		return x.HeightPercent
	}
	return 0
}

type Notice struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Id               string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Hash             string                 `protobuf:"bytes,2,opt,name=hash,proto3" json:"hash,omitempty"`
	FullName         string                 `protobuf:"bytes,3,opt,name=full_name,json=fullName,proto3" json:"full_name,omitempty"`
	OpeningQuote     string                 `protobuf:"bytes,4,opt,name=opening_quote,json=openingQuote,proto3" json:"opening_quote,omitempty"` // empty when not extracted
	DeathDate        string                 `protobuf:"bytes,5,opt,name=death_date,json=deathDate,proto3" json:"death_date,omitempty"`          // YYYY-MM-DD, empty when unknown
	FuneralDate      string                 `protobuf:"bytes,6,opt,name=funeral_date,json=funeralDate,proto3" json:"funeral_date,omitempty"`    // YYYY-MM-DD, empty when unknown
	AnnouncementText string                 `protobuf:"bytes,7,opt,name=announcement_text,json=announcementText,proto3" json:"announcement_text,omitempty"`
	Source           string                 `protobuf:"bytes,8,opt,name=source,proto3" json:"source,omitempty"`
	SourceUrl        string                 `protobuf:"bytes,9,opt,name=source_url,json=sourceUrl,proto3" json:"source_url,omitempty"`
	HasPhoto         bool                   `protobuf:"varint,10,opt,name=has_photo,json=hasPhoto,proto3" json:"has_photo,omitempty"`
	PhotoBbox        *BoundingBox           `protobuf:"bytes,11,opt,name=photo_bbox,json=photoBbox,proto3" json:"photo_bbox,omitempty"` // unset when no portrait was located
	CreatedAt        string                 `protobuf:"bytes,12,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC 3339
	UpdatedAt        string                 `protobuf:"bytes,13,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC 3339
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *Notice) Reset() {
	*x = Notice{}
	mi := &file_notices_v1_notices_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Notice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Notice) ProtoMessage() {}

func (x *Notice) ProtoReflect() protoreflect.Message {
	mi := &file_notices_v1_notices_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Notice.ProtoReflect.Descriptor instead.
func (*Notice) Descriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{1}
}

func (x *Notice) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Notice) GetHash() string {
	if x != nil {
		return x.Hash
	}
	return ""
}

func (x *Notice) GetFullName() string {
	if x != nil {
		return x.FullName
	}
	return ""
}

func (x *Notice) GetOpeningQuote() string {
	if x != nil {
		return x.OpeningQuote
	}
	return ""
}

func (x *Notice) GetDeathDate() string {
	if x != nil {
		return x.DeathDate
	}
	return ""
}

func (x *Notice) GetFuneralDate() string {
	if x != nil {
		return x.FuneralDate
	}
	return ""
}

func (x *Notice) GetAnnouncementText() string {
	if x != nil {
		return x.AnnouncementText
	}
	return ""
}

func (x *Notice) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *Notice) GetSourceUrl() string {
	if x != nil {
		return x.SourceUrl
	}
	return ""
}

func (x *Notice) GetHasPhoto() bool {
	if x != nil {
		return x.HasPhoto
	}
	return false
}

func (x *Notice) GetPhotoBbox() *BoundingBox {
	if x != nil {
		return x.PhotoBbox
	}
	return nil
}

func (x *Notice) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Notice) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type ListNoticesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Source        string                 `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`                     // optional; one of the configured scraper sources
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"` // optional, YYYY-MM-DD
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`       // optional, YYYY-MM-DD
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListNoticesRequest) Reset() {
	*x = ListNoticesRequest{}
	mi := &file_notices_v1_notices_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListNoticesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListNoticesRequest) ProtoMessage() {}

func (x *ListNoticesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_notices_v1_notices_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListNoticesRequest.ProtoReflect.Descriptor instead.
func (*ListNoticesRequest) Descriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{2}
}

func (x *ListNoticesRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *ListNoticesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListNoticesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListNoticesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Notices       []*Notice              `protobuf:"bytes,1,rep,name=notices,proto3" json:"notices,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListNoticesResponse) Reset() {
	*x = ListNoticesResponse{}
	mi := &file_notices_v1_notices_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListNoticesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListNoticesResponse) ProtoMessage() {}

func (x *ListNoticesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_notices_v1_notices_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListNoticesResponse.ProtoReflect.Descriptor instead.
func (*ListNoticesResponse) Descriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{3}
}

func (x *ListNoticesResponse) GetNotices() []*Notice {
	if x != nil {
		return x.Notices
	}
	return nil
}

type GetNoticeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"` // UUID
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetNoticeRequest) Reset() {
	*x = GetNoticeRequest{}
	mi := &file_notices_v1_notices_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetNoticeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetNoticeRequest) ProtoMessage() {}

func (x *GetNoticeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_notices_v1_notices_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetNoticeRequest.ProtoReflect.Descriptor instead.
func (*GetNoticeRequest) Descriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{4}
}

func (x *GetNoticeRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetNoticeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Notice        *Notice                `protobuf:"bytes,1,opt,name=notice,proto3" json:"notice,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetNoticeResponse) Reset() {
	*x = GetNoticeResponse{}
	mi := &file_notices_v1_notices_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetNoticeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetNoticeResponse) ProtoMessage() {}

func (x *GetNoticeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_notices_v1_notices_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetNoticeResponse.ProtoReflect.Descriptor instead.
func (*GetNoticeResponse) Descriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{5}
}

func (x *GetNoticeResponse) GetNotice() *Notice {
	if x != nil {
		return x.Notice
	}
	return nil
}

type ReextractNoticeRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`     // UUID
	Mode          string                 `protobuf:"bytes,2,opt,name=mode,proto3" json:"mode,omitempty"` // "full" (default) or "death_date"
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReextractNoticeRequest) Reset() {
	*x = ReextractNoticeRequest{}
	mi := &file_notices_v1_notices_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReextractNoticeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReextractNoticeRequest) ProtoMessage() {}

func (x *ReextractNoticeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_notices_v1_notices_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReextractNoticeRequest.ProtoReflect.Descriptor instead.
func (*ReextractNoticeRequest) Descriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{6}
}

func (x *ReextractNoticeRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ReextractNoticeRequest) GetMode() string {
	if x != nil {
		return x.Mode
	}
	return ""
}

type ReextractNoticeResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Queued        bool                   `protobuf:"varint,1,opt,name=queued,proto3" json:"queued,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ReextractNoticeResponse) Reset() {
	*x = ReextractNoticeResponse{}
	mi := &file_notices_v1_notices_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReextractNoticeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReextractNoticeResponse) ProtoMessage() {}

func (x *ReextractNoticeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_notices_v1_notices_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReextractNoticeResponse.ProtoReflect.Descriptor instead.
func (*ReextractNoticeResponse) Descriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{7}
}

func (x *ReextractNoticeResponse) GetQueued() bool {
	if x != nil {
		return x.Queued
	}
	return false
}

type ExportNoticesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Source        string                 `protobuf:"bytes,1,opt,name=source,proto3" json:"source,omitempty"`
	FromDate      string                 `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportNoticesRequest) Reset() {
	*x = ExportNoticesRequest{}
	mi := &file_notices_v1_notices_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportNoticesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportNoticesRequest) ProtoMessage() {}

func (x *ExportNoticesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_notices_v1_notices_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportNoticesRequest.ProtoReflect.Descriptor instead.
func (*ExportNoticesRequest) Descriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{8}
}

func (x *ExportNoticesRequest) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *ExportNoticesRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportNoticesRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportNoticesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportNoticesResponse) Reset() {
	*x = ExportNoticesResponse{}
	mi := &file_notices_v1_notices_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportNoticesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportNoticesResponse) ProtoMessage() {}

func (x *ExportNoticesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_notices_v1_notices_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportNoticesResponse.ProtoReflect.Descriptor instead.
func (*ExportNoticesResponse) Descriptor() ([]byte, []int) {
	return file_notices_v1_notices_proto_rawDescGZIP(), []int{9}
}

func (x *ExportNoticesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_notices_v1_notices_proto protoreflect.FileDescriptor

const file_notices_v1_notices_proto_rawDesc = "" +
	"\n" +
	"\x18notices/v1/notices.proto\x12\n" +
	"notices.v1\"\x93\x01\n" +
	"\vBoundingBox\x12\x1b\n" +
	"\tx_percent\x18\x01 \x01(\x01R\bxPercent\x12\x1b\n" +
	"\ty_percent\x18\x02 \x01(\x01R\byPercent\x12#\n" +
	"\rwidth_percent\x18\x03 \x01(\x01R\fwidthPercent\x12%\n" +
	"\x0eheight_percent\x18\x04 \x01(\x01R\rheightPercent\"\xa7\x03\n" +
	"\x06Notice\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04hash\x18\x02 \x01(\tR\x04hash\x12\x1b\n" +
	"\tfull_name\x18\x03 \x01(\tR\bfullName\x12#\n" +
	"\ropening_quote\x18\x04 \x01(\tR\fopeningQuote\x12\x1d\n" +
	"\n" +
	"death_date\x18\x05 \x01(\tR\tdeathDate\x12!\n" +
	"\ffuneral_date\x18\x06 \x01(\tR\vfuneralDate\x12+\n" +
	"\x11announcement_text\x18\a \x01(\tR\x10announcementText\x12\x16\n" +
	"\x06source\x18\b \x01(\tR\x06source\x12\x1d\n" +
	"\n" +
	"source_url\x18\t \x01(\tR\tsourceUrl\x12\x1b\n" +
	"\thas_photo\x18\n" +
	" \x01(\bR\bhasPhoto\x126\n" +
	"\n" +
	"photo_bbox\x18\v \x01(\v2\x17.notices.v1.BoundingBoxR\tphotoBbox\x12\x1d\n" +
	"\n" +
	"created_at\x18\f \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\r \x01(\tR\tupdatedAt\"b\n" +
	"\x12ListNoticesRequest\x12\x16\n" +
	"\x06source\x18\x01 \x01(\tR\x06source\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"C\n" +
	"\x13ListNoticesResponse\x12,\n" +
	"\anotices\x18\x01 \x03(\v2\x12.notices.v1.NoticeR\anotices\"\"\n" +
	"\x10GetNoticeRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"?\n" +
	"\x11GetNoticeResponse\x12*\n" +
	"\x06notice\x18\x01 \x01(\v2\x12.notices.v1.NoticeR\x06notice\"<\n" +
	"\x16ReextractNoticeRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x12\n" +
	"\x04mode\x18\x02 \x01(\tR\x04mode\"1\n" +
	"\x17ReextractNoticeResponse\x12\x16\n" +
	"\x06queued\x18\x01 \x01(\bR\x06queued\"d\n" +
	"\x14ExportNoticesRequest\x12\x16\n" +
	"\x06source\x18\x01 \x01(\tR\x06source\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\"+\n" +
	"\x15ExportNoticesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x86\x02\n" +
	"\x0eNoticesService\x12N\n" +
	"\vListNotices\x12\x1e.notices.v1.ListNoticesRequest\x1a\x1f.notices.v1.ListNoticesResponse\x12H\n" +
	"\tGetNotice\x12\x1c.notices.v1.GetNoticeRequest\x1a\x1d.notices.v1.GetNoticeResponse\x12Z\n" +
	"\x0fReextractNotice\x12\".notices.v1.ReextractNoticeRequest\x1a#.notices.v1.ReextractNoticeResponse2e\n" +
	"\rExportService\x12T\n" +
	"\rExportNotices\x12 .notices.v1.ExportNoticesRequest\x1a!.notices.v1.ExportNoticesResponseBFZDgithub.com/parte-archiv/parte-tracker/gen/proto/notices/v1;noticespbb\x06proto3"

var (
	file_notices_v1_notices_proto_rawDescOnce sync.Once
	file_notices_v1_notices_proto_rawDescData []byte
)

func file_notices_v1_notices_proto_rawDescGZIP() []byte {
	file_notices_v1_notices_proto_rawDescOnce.Do(func() {
		file_notices_v1_notices_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_notices_v1_notices_proto_rawDesc), len(file_notices_v1_notices_proto_rawDesc)))
	})
	return file_notices_v1_notices_proto_rawDescData
}

var file_notices_v1_notices_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_notices_v1_notices_proto_goTypes = []any{
	(*BoundingBox)(nil),             // 0: notices.v1.BoundingBox
	(*Notice)(nil),                  // 1: notices.v1.Notice
	(*ListNoticesRequest)(nil),      // 2: notices.v1.ListNoticesRequest
	(*ListNoticesResponse)(nil),     // 3: notices.v1.ListNoticesResponse
	(*GetNoticeRequest)(nil),        // 4: notices.v1.GetNoticeRequest
	(*GetNoticeResponse)(nil),       // 5: notices.v1.GetNoticeResponse
	(*ReextractNoticeRequest)(nil),  // 6: notices.v1.ReextractNoticeRequest
	(*ReextractNoticeResponse)(nil), // 7: notices.v1.ReextractNoticeResponse
	(*ExportNoticesRequest)(nil),    // 8: notices.v1.ExportNoticesRequest
	(*ExportNoticesResponse)(nil),   // 9: notices.v1.ExportNoticesResponse
}
var file_notices_v1_notices_proto_depIdxs = []int32{
	0, // 0: notices.v1.Notice.photo_bbox:type_name -> notices.v1.BoundingBox
	1, // 1: notices.v1.ListNoticesResponse.notices:type_name -> notices.v1.Notice
	1, // 2: notices.v1.GetNoticeResponse.notice:type_name -> notices.v1.Notice
	2, // 3: notices.v1.NoticesService.ListNotices:input_type -> notices.v1.ListNoticesRequest
	4, // 4: notices.v1.NoticesService.GetNotice:input_type -> notices.v1.GetNoticeRequest
	6, // 5: notices.v1.NoticesService.ReextractNotice:input_type -> notices.v1.ReextractNoticeRequest
	8, // 6: notices.v1.ExportService.ExportNotices:input_type -> notices.v1.ExportNoticesRequest
	3, // 7: notices.v1.NoticesService.ListNotices:output_type -> notices.v1.ListNoticesResponse
	5, // 8: notices.v1.NoticesService.GetNotice:output_type -> notices.v1.GetNoticeResponse
	7, // 9: notices.v1.NoticesService.ReextractNotice:output_type -> notices.v1.ReextractNoticeResponse
	9, // 10: notices.v1.ExportService.ExportNotices:output_type -> notices.v1.ExportNoticesResponse
	7, // [7:11] is the sub-list for method output_type
	3, // [3:7] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_notices_v1_notices_proto_init() }
func file_notices_v1_notices_proto_init() {
	if File_notices_v1_notices_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_notices_v1_notices_proto_rawDesc), len(file_notices_v1_notices_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_notices_v1_notices_proto_goTypes,
		DependencyIndexes: file_notices_v1_notices_proto_depIdxs,
		MessageInfos:      file_notices_v1_notices_proto_msgTypes,
	}.Build()
	File_notices_v1_notices_proto = out.File
	file_notices_v1_notices_proto_goTypes = nil
	file_notices_v1_notices_proto_depIdxs = nil
}
