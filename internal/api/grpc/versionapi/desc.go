package versionapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	// ServiceName is the fully-qualified gRPC service name.
	ServiceName = "feathr.version.v1.VersionService"

	// GetVersionMethod is the full method name of GetVersion.
	GetVersionMethod = "/" + ServiceName + "/GetVersion"
	// GetMavenArtifactFullnameMethod is the full method name of GetMavenArtifactFullname.
	GetMavenArtifactFullnameMethod = "/" + ServiceName + "/GetMavenArtifactFullname"
)

// VersionServiceServer is the server API for the version service.
type VersionServiceServer interface {
	GetVersion(ctx context.Context, req *emptypb.Empty) (*wrapperspb.StringValue, error)
	GetMavenArtifactFullname(ctx context.Context, req *emptypb.Empty) (*wrapperspb.StringValue, error)
}

// ServiceDesc describes the version service for grpc.ServiceRegistrar.
//
//nolint:gochecknoglobals // grpc.ServiceRegistrar takes a descriptor pointer.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*VersionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetVersion",
			Handler:    getVersionHandler,
		},
		{
			MethodName: "GetMavenArtifactFullname",
			Handler:    getMavenArtifactFullnameHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "feathr/version/v1/version.proto",
}

// Register attaches srv to the registrar under ServiceDesc.
func Register(registrar grpc.ServiceRegistrar, srv VersionServiceServer) {
	registrar.RegisterService(&ServiceDesc, srv)
}

func getVersionHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}

	//nolint:forcetypeassert // grpc checks HandlerType at registration.
	server := srv.(VersionServiceServer)
	if interceptor == nil {
		return server.GetVersion(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetVersionMethod,
	}

	return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
		//nolint:forcetypeassert // Request type is fixed by the descriptor.
		return server.GetVersion(ctx, req.(*emptypb.Empty))
	})
}

func getMavenArtifactFullnameHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}

	//nolint:forcetypeassert // grpc checks HandlerType at registration.
	server := srv.(VersionServiceServer)
	if interceptor == nil {
		return server.GetMavenArtifactFullname(ctx, in)
	}

	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GetMavenArtifactFullnameMethod,
	}

	return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
		//nolint:forcetypeassert // Request type is fixed by the descriptor.
		return server.GetMavenArtifactFullname(ctx, req.(*emptypb.Empty))
	})
}
