package launches_service_api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const ServiceName = "missioncontrol.launches.v1.LaunchesService"

// LaunchesServiceServer is the server API for LaunchesService. Messages are
// protobuf well-known types, so no generated stubs are required.
type LaunchesServiceServer interface {
	ListLaunches(context.Context, *structpb.Struct) (*structpb.ListValue, error)
	ScheduleLaunch(context.Context, *structpb.Struct) (*structpb.Struct, error)
	AbortLaunch(context.Context, *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error)
	LaunchExists(context.Context, *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error)
}

func RegisterLaunchesServiceServer(s grpc.ServiceRegistrar, srv LaunchesServiceServer) {
	s.RegisterService(&LaunchesService_ServiceDesc, srv)
}

var LaunchesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*LaunchesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListLaunches",
			Handler: unaryHandler("ListLaunches", func() proto.Message { return new(structpb.Struct) },
				func(srv LaunchesServiceServer, ctx context.Context, in proto.Message) (proto.Message, error) {
					return srv.ListLaunches(ctx, in.(*structpb.Struct))
				}),
		},
		{
			MethodName: "ScheduleLaunch",
			Handler: unaryHandler("ScheduleLaunch", func() proto.Message { return new(structpb.Struct) },
				func(srv LaunchesServiceServer, ctx context.Context, in proto.Message) (proto.Message, error) {
					return srv.ScheduleLaunch(ctx, in.(*structpb.Struct))
				}),
		},
		{
			MethodName: "AbortLaunch",
			Handler: unaryHandler("AbortLaunch", func() proto.Message { return new(wrapperspb.Int64Value) },
				func(srv LaunchesServiceServer, ctx context.Context, in proto.Message) (proto.Message, error) {
					return srv.AbortLaunch(ctx, in.(*wrapperspb.Int64Value))
				}),
		},
		{
			MethodName: "LaunchExists",
			Handler: unaryHandler("LaunchExists", func() proto.Message { return new(wrapperspb.Int64Value) },
				func(srv LaunchesServiceServer, ctx context.Context, in proto.Message) (proto.Message, error) {
					return srv.LaunchExists(ctx, in.(*wrapperspb.Int64Value))
				}),
		},
	},
	Streams: []grpc.StreamDesc{},
}

func FullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

func unaryHandler(
	method string,
	newRequest func() proto.Message,
	call func(LaunchesServiceServer, context.Context, proto.Message) (proto.Message, error),
) func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := newRequest()
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(LaunchesServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(method),
		}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(LaunchesServiceServer), ctx, req.(proto.Message))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Client calls LaunchesService over conn.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) ListLaunches(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, FullMethod("ListLaunches"), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ScheduleLaunch(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod("ScheduleLaunch"), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AbortLaunch(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, FullMethod("AbortLaunch"), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) LaunchExists(ctx context.Context, in *wrapperspb.Int64Value, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, FullMethod("LaunchExists"), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
