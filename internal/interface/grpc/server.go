package grpc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"stringlang/internal/usecase/analysis"
	"stringlang/pkg/unicodeblock"
)

var errMalformedReport = errors.New("malformed report entry")

// Server implements AnalyzerServer on top of the analysis use case.
type Server struct {
	svc *analysis.Service
}

// NewServer creates a Server that counts against the full catalog of svc.
func NewServer(svc *analysis.Service) *Server {
	return &Server{svc: svc}
}

// Analyze counts the code points of the request string. Texts over the
// configured limit fail with codes.InvalidArgument.
func (s *Server) Analyze(ctx context.Context, in *wrapperspb.StringValue) (*structpb.ListValue, error) {
	res, err := s.svc.Analyze(ctx, in.GetValue())
	if err != nil {
		return nil, toStatus(err)
	}
	return ReportToList(res.Report), nil
}

// ListBlocks returns the standard catalog as {name, low, high} structs in
// catalog order.
func (s *Server) ListBlocks(_ context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	cat := unicodeblock.Standard()
	values := make([]*structpb.Value, 0, cat.Len())
	for _, b := range cat.All() {
		values = append(values, structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
			"name": structpb.NewStringValue(b.Name),
			"low":  structpb.NewNumberValue(float64(b.Low)),
			"high": structpb.NewNumberValue(float64(b.High)),
		}}))
	}
	return &structpb.ListValue{Values: values}, nil
}

// toStatus maps use case errors to gRPC codes. Unexpected errors become
// codes.Internal without their message.
func toStatus(err error) error {
	switch {
	case errors.Is(err, analysis.ErrTextTooLong):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "request canceled")
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

// ReportToList encodes r as [[name, count], ...] in report order.
func ReportToList(r unicodeblock.Report) *structpb.ListValue {
	values := make([]*structpb.Value, 0, r.Len())
	for name, n := range r.All() {
		values = append(values, structpb.NewListValue(&structpb.ListValue{Values: []*structpb.Value{
			structpb.NewStringValue(name),
			structpb.NewNumberValue(float64(n)),
		}}))
	}
	return &structpb.ListValue{Values: values}
}

// ListToReport decodes the output of ReportToList.
func ListToReport(l *structpb.ListValue) (unicodeblock.Report, error) {
	entries := make([]unicodeblock.Entry, 0, len(l.GetValues()))
	for i, v := range l.GetValues() {
		pair := v.GetListValue().GetValues()
		if len(pair) != 2 {
			return unicodeblock.Report{}, fmt.Errorf("%w %d", errMalformedReport, i)
		}
		name := pair[0].GetStringValue()
		n := pair[1].GetNumberValue()
		if name == "" || n < 1 || n != float64(int(n)) {
			return unicodeblock.Report{}, fmt.Errorf("%w %d", errMalformedReport, i)
		}
		entries = append(entries, unicodeblock.Entry{Block: name, Count: int(n)})
	}
	return unicodeblock.NewReport(entries...), nil
}

// UnaryLogging logs every call with its code and duration and turns handler
// panics into codes.Internal.
func UnaryLogging(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		start := time.Now()
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered",
					slog.String("method", info.FullMethod),
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())))
				resp, err = nil, status.Error(codes.Internal, "internal error")
			}
			code := status.Code(err)
			level := slog.LevelInfo
			if code == codes.Internal || code == codes.Unknown {
				level = slog.LevelError
			}
			logger.Log(ctx, level, "grpc request",
				slog.String("method", info.FullMethod),
				slog.String("code", code.String()),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		}()
		return handler(ctx, req)
	}
}
