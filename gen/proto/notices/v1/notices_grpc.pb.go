// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: notices/v1/notices.proto

package noticespb

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	NoticesService_ListNotices_FullMethodName     = "/notices.v1.NoticesService/ListNotices"
	NoticesService_GetNotice_FullMethodName       = "/notices.v1.NoticesService/GetNotice"
	NoticesService_ReextractNotice_FullMethodName = "/notices.v1.NoticesService/ReextractNotice"
)

// NoticesServiceClient is the client API for NoticesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type NoticesServiceClient interface {
	// ListNotices returns notices, optionally filtered by source and by
	// funeral date range (YYYY-MM-DD, inclusive).
	ListNotices(ctx context.Context, in *ListNoticesRequest, opts ...grpc.CallOption) (*ListNoticesResponse, error)
	GetNotice(ctx context.Context, in *GetNoticeRequest, opts ...grpc.CallOption) (*GetNoticeResponse, error)
	// ReextractNotice queues another extraction pass for a stored notice.
	ReextractNotice(ctx context.Context, in *ReextractNoticeRequest, opts ...grpc.CallOption) (*ReextractNoticeResponse, error)
}

type noticesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewNoticesServiceClient(cc grpc.ClientConnInterface) NoticesServiceClient {
	return &noticesServiceClient{cc}
}

func (c *noticesServiceClient) ListNotices(ctx context.Context, in *ListNoticesRequest, opts ...grpc.CallOption) (*ListNoticesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListNoticesResponse)
	err := c.cc.Invoke(ctx, NoticesService_ListNotices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *noticesServiceClient) GetNotice(ctx context.Context, in *GetNoticeRequest, opts ...grpc.CallOption) (*GetNoticeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetNoticeResponse)
	err := c.cc.Invoke(ctx, NoticesService_GetNotice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *noticesServiceClient) ReextractNotice(ctx context.Context, in *ReextractNoticeRequest, opts ...grpc.CallOption) (*ReextractNoticeResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ReextractNoticeResponse)
	err := c.cc.Invoke(ctx, NoticesService_ReextractNotice_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// NoticesServiceServer is the server API for NoticesService service.
// All implementations must embed UnimplementedNoticesServiceServer
// for forward compatibility.
type NoticesServiceServer interface {
	// ListNotices returns notices, optionally filtered by source and by
	// funeral date range (YYYY-MM-DD, inclusive).
	ListNotices(context.Context, *ListNoticesRequest) (*ListNoticesResponse, error)
	GetNotice(context.Context, *GetNoticeRequest) (*GetNoticeResponse, error)
	// ReextractNotice queues another extraction pass for a stored notice.
	ReextractNotice(context.Context, *ReextractNoticeRequest) (*ReextractNoticeResponse, error)
	mustEmbedUnimplementedNoticesServiceServer()
}

// UnimplementedNoticesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedNoticesServiceServer struct{}

func (UnimplementedNoticesServiceServer) ListNotices(context.Context, *ListNoticesRequest) (*ListNoticesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListNotices not implemented")
}
func (UnimplementedNoticesServiceServer) GetNotice(context.Context, *GetNoticeRequest) (*GetNoticeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetNotice not implemented")
}
func (UnimplementedNoticesServiceServer) ReextractNotice(context.Context, *ReextractNoticeRequest) (*ReextractNoticeResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ReextractNotice not implemented")
}
func (UnimplementedNoticesServiceServer) mustEmbedUnimplementedNoticesServiceServer() {}
func (UnimplementedNoticesServiceServer) testEmbeddedByValue()                        {}

// UnsafeNoticesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to NoticesServiceServer will
// result in compilation errors.
type UnsafeNoticesServiceServer interface {
	mustEmbedUnimplementedNoticesServiceServer()
}

func RegisterNoticesServiceServer(s grpc.ServiceRegistrar, srv NoticesServiceServer) {
	// If the following call panics, it indicates UnimplementedNoticesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&NoticesService_ServiceDesc, srv)
}

func _NoticesService_ListNotices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListNoticesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NoticesServiceServer).ListNotices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NoticesService_ListNotices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NoticesServiceServer).ListNotices(ctx, req.(*ListNoticesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NoticesService_GetNotice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetNoticeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NoticesServiceServer).GetNotice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NoticesService_GetNotice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NoticesServiceServer).GetNotice(ctx, req.(*GetNoticeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _NoticesService_ReextractNotice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReextractNoticeRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(NoticesServiceServer).ReextractNotice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: NoticesService_ReextractNotice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(NoticesServiceServer).ReextractNotice(ctx, req.(*ReextractNoticeRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// NoticesService_ServiceDesc is the grpc.ServiceDesc for NoticesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var NoticesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "notices.v1.NoticesService",
	HandlerType: (*NoticesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListNotices",
			Handler:    _NoticesService_ListNotices_Handler,
		},
		{
			MethodName: "GetNotice",
			Handler:    _NoticesService_GetNotice_Handler,
		},
		{
			MethodName: "ReextractNotice",
			Handler:    _NoticesService_ReextractNotice_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "notices/v1/notices.proto",
}

const (
	ExportService_ExportNotices_FullMethodName = "/notices.v1.ExportService/ExportNotices"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExportServiceClient interface {
	// ExportNotices returns an XLSX workbook of the matching notices.
	ExportNotices(ctx context.Context, in *ExportNoticesRequest, opts ...grpc.CallOption) (*ExportNoticesResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportNotices(ctx context.Context, in *ExportNoticesRequest, opts ...grpc.CallOption) (*ExportNoticesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportNoticesResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportNotices_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
type ExportServiceServer interface {
	// ExportNotices returns an XLSX workbook of the matching notices.
	ExportNotices(context.Context, *ExportNoticesRequest) (*ExportNoticesResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportNotices(context.Context, *ExportNoticesRequest) (*ExportNoticesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportNotices not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call panics, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportNotices_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportNoticesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportNotices(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportNotices_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportNotices(ctx, req.(*ExportNoticesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "notices.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportNotices",
			Handler:    _ExportService_ExportNotices_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "notices/v1/notices.proto",
}
