package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully-qualified name of the subtitle service.
const ServiceName = "torec.v1.TorecService"

// ListSubtitlesFullMethod is the method path used by clients and interceptors.
const ListSubtitlesFullMethod = "/" + ServiceName + "/ListSubtitles"

// TorecServiceServer is the server API for the subtitle service. Messages are
// google.protobuf.Struct values:
//
//	request:  {"name": "<release filename>", "languages": ["he", ...]}
//	response: {"video": {...}, "subtitles": [{..., "matches": [...]}]}
type TorecServiceServer interface {
	ListSubtitles(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// RegisterTorecServiceServer registers srv on s.
func RegisterTorecServiceServer(s grpc.ServiceRegistrar, srv TorecServiceServer) {
	s.RegisterService(&torecServiceDesc, srv)
}

func listSubtitlesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TorecServiceServer).ListSubtitles(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ListSubtitlesFullMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TorecServiceServer).ListSubtitles(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

var torecServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TorecServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListSubtitles",
			Handler:    listSubtitlesHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "torec/v1/torec.proto",
}

// TorecServiceClient is the client API for the subtitle service.
type TorecServiceClient interface {
	ListSubtitles(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type torecServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewTorecServiceClient returns a client calling the service over cc.
func NewTorecServiceClient(cc grpc.ClientConnInterface) TorecServiceClient {
	return &torecServiceClient{cc: cc}
}

func (c *torecServiceClient) ListSubtitles(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ListSubtitlesFullMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
