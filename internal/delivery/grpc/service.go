package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ServiceName is the fully qualified name of the hostname service.
const ServiceName = "hostname.v1.HostnameService"

const (
	validateMethod        = "/" + ServiceName + "/Validate"
	parseMethod           = "/" + ServiceName + "/Parse"
	parseNormalizedMethod = "/" + ServiceName + "/ParseNormalized"
	matchMethod           = "/" + ServiceName + "/Match"
	getStatsMethod        = "/" + ServiceName + "/GetStats"
)

// HostnameServer is the server API for the hostname service. Messages are
// protobuf well-known types so no generated code is needed on either side.
type HostnameServer interface {
	Validate(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
	Parse(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	ParseNormalized(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	Match(context.Context, *wrapperspb.StringValue) (*structpb.Struct, error)
	GetStats(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

func RegisterHostnameServer(s grpc.ServiceRegistrar, srv HostnameServer) {
	s.RegisterService(&HostnameServiceDesc, srv)
}

var HostnameServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*HostnameServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Validate", Handler: validateHandler},
		{MethodName: "Parse", Handler: parseHandler},
		{MethodName: "ParseNormalized", Handler: parseNormalizedHandler},
		{MethodName: "Match", Handler: matchHandler},
		{MethodName: "GetStats", Handler: getStatsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "hostname/v1/hostname.proto",
}

func validateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HostnameServer).Validate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: validateMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HostnameServer).Validate(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func parseHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HostnameServer).Parse(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: parseMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HostnameServer).Parse(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func parseNormalizedHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HostnameServer).ParseNormalized(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: parseNormalizedMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HostnameServer).ParseNormalized(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func matchHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HostnameServer).Match(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: matchMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HostnameServer).Match(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func getStatsHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(HostnameServer).GetStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: getStatsMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(HostnameServer).GetStats(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// HostnameClient is the client API for the hostname service.
type HostnameClient interface {
	Validate(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	Parse(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	ParseNormalized(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	Match(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetStats(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type hostnameClient struct {
	cc grpc.ClientConnInterface
}

func NewHostnameClient(cc grpc.ClientConnInterface) HostnameClient {
	return &hostnameClient{cc: cc}
}

func (c *hostnameClient) Validate(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, validateMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hostnameClient) Parse(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, parseMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hostnameClient) ParseNormalized(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, parseNormalizedMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hostnameClient) Match(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, matchMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *hostnameClient) GetStats(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, getStatsMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
