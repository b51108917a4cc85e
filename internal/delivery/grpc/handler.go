package grpc

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/kerim-dauren/hostname/internal/application"
	"github.com/kerim-dauren/hostname/internal/delivery/common"
	"github.com/kerim-dauren/hostname/internal/domain"
)

type Handler struct {
	hostnameService application.HostnameChecker
}

var _ HostnameServer = (*Handler)(nil)

func NewHandler(hostnameService application.HostnameChecker) *Handler {
	return &Handler{
		hostnameService: hostnameService,
	}
}

func (h *Handler) Validate(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	return wrapperspb.Bool(h.hostnameService.Validate(ctx, req.GetValue())), nil
}

func (h *Handler) Parse(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	return h.parse(ctx, req.GetValue(), false)
}

func (h *Handler) ParseNormalized(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	return h.parse(ctx, req.GetValue(), true)
}

func (h *Handler) parse(ctx context.Context, host string, normalize bool) (*structpb.Struct, error) {
	if strings.TrimSpace(host) == "" {
		return nil, status.Error(codes.InvalidArgument, "Host is required")
	}

	result, err := h.hostnameService.Parse(ctx, host, normalize)
	if err != nil {
		return nil, serviceError("Failed to parse host", err)
	}

	return newStruct(result.Fields())
}

func (h *Handler) Match(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	if strings.TrimSpace(req.GetValue()) == "" {
		return nil, status.Error(codes.InvalidArgument, "Host is required")
	}

	result, err := h.hostnameService.Match(ctx, req.GetValue())
	if err != nil {
		return nil, serviceError("Failed to match host", err)
	}

	return newStruct(matchFields(result))
}

func (h *Handler) GetStats(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	stats, err := h.hostnameService.GetStats(ctx)
	if err != nil {
		slog.Error("Failed to get stats", "error", err)
		return nil, status.Error(codes.Internal, "Failed to get statistics")
	}

	return newStruct(map[string]any{
		"total_entries":    stats.TotalEntries,
		"exact_entries":    stats.ExactEntries,
		"wildcard_entries": stats.WildcardEntries,
		"rejected_lines":   stats.RejectedLines,
		"last_update":      stats.LastUpdate,
		"version":          stats.Version,
		"source":           stats.Source,
	})
}

func matchFields(result *domain.MatchResult) map[string]any {
	fields := map[string]any{
		"host":       result.Host.String(),
		"matched":    result.Matched,
		"wildcard":   result.Wildcard,
		"checked_at": result.CheckedAt.Format(time.RFC3339),
	}
	if result.Entry != nil {
		fields["entry"] = result.Entry.String()
	}
	return fields
}

func newStruct(fields map[string]any) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(fields)
	if err != nil {
		slog.Error("Failed to encode response", "error", err)
		return nil, status.Error(codes.Internal, "Internal server error")
	}
	return s, nil
}

func serviceError(msg string, err error) error {
	if !common.IsClientError(err) {
		slog.Error(msg, "error", err)
	}
	return common.NewGRPCError(err)
}
