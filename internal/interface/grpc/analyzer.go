// Package grpc exposes block analysis as the stringlang.v1.Analyzer gRPC
// service. Messages are protobuf well-known types, so no generated code is
// needed: the service descriptor below is written by hand.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Full names of the service and its methods.
const (
	ServiceName          = "stringlang.v1.Analyzer"
	AnalyzeMethod        = "/" + ServiceName + "/Analyze"
	ListBlocksMethod     = "/" + ServiceName + "/ListBlocks"
	analyzerProtoFileTag = "stringlang/v1/analyzer.proto"
)

// AnalyzerServer is the server API of stringlang.v1.Analyzer.
type AnalyzerServer interface {
	// Analyze returns the report as an ordered list of [name, count] pairs.
	Analyze(context.Context, *wrapperspb.StringValue) (*structpb.ListValue, error)
	// ListBlocks returns the catalog as {name, low, high} structs.
	ListBlocks(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
}

// ServiceDesc describes stringlang.v1.Analyzer for grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AnalyzerServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Analyze", Handler: analyzeHandler},
		{MethodName: "ListBlocks", Handler: listBlocksHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: analyzerProtoFileTag,
}

// RegisterAnalyzerServer registers srv on s.
func RegisterAnalyzerServer(s grpc.ServiceRegistrar, srv AnalyzerServer) {
	s.RegisterService(&ServiceDesc, srv)
}

// analyzeHandler decodes the request and runs it through the interceptor
// chain, as protoc-gen-go-grpc handlers do.
func analyzeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AnalyzerServer).Analyze(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: AnalyzeMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AnalyzerServer).Analyze(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func listBlocksHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AnalyzerServer).ListBlocks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ListBlocksMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AnalyzerServer).ListBlocks(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// AnalyzerClient is the client API of stringlang.v1.Analyzer.
type AnalyzerClient interface {
	Analyze(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error)
	ListBlocks(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error)
}

// analyzerClient invokes the methods on cc without a breaker. The infra
// client adds the breaker and the timeouts.
type analyzerClient struct {
	cc grpc.ClientConnInterface
}

// NewAnalyzerClient creates an AnalyzerClient on cc.
func NewAnalyzerClient(cc grpc.ClientConnInterface) AnalyzerClient {
	return &analyzerClient{cc: cc}
}

func (c *analyzerClient) Analyze(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, AnalyzeMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *analyzerClient) ListBlocks(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.ListValue, error) {
	out := new(structpb.ListValue)
	if err := c.cc.Invoke(ctx, ListBlocksMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
