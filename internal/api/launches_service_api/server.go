package launches_service_api

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/missioncontrol/internal/domain"
	"github.com/Domenick1991/missioncontrol/internal/service/launches"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Server implements LaunchesServiceServer on top of the launch use case.
type Server struct {
	launches launches.LaunchUseCase
}

func NewServer(launches launches.LaunchUseCase) *Server {
	return &Server{launches: launches}
}

func (s *Server) ListLaunches(ctx context.Context, req *structpb.Struct) (*structpb.ListValue, error) {
	fields := req.GetFields()
	rawSkip := fields["skip"].GetNumberValue()
	rawLimit := fields["limit"].GetNumberValue()
	if rawSkip < 0 || rawLimit < 0 {
		return nil, status.Error(codes.InvalidArgument, "skip and limit must not be negative")
	}
	if rawSkip > launches.MaxListOffset || rawLimit > launches.MaxListOffset {
		return nil, status.Error(codes.InvalidArgument, "skip or limit out of range")
	}
	skip, limit := int(rawSkip), int(rawLimit)

	list, err := s.launches.List(ctx, skip, limit)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	values := make([]*structpb.Value, 0, len(list))
	for i := range list {
		st, err := toPBLaunch(&list[i])
		if err != nil {
			return nil, status.Error(codes.Internal, err.Error())
		}
		values = append(values, structpb.NewStructValue(st))
	}
	return &structpb.ListValue{Values: values}, nil
}

func (s *Server) ScheduleLaunch(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()
	input, err := launches.ParseScheduleRequest(
		fields["mission"].GetStringValue(),
		fields["rocket"].GetStringValue(),
		fields["launchDate"].GetStringValue(),
		fields["target"].GetStringValue(),
	)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	launch, err := s.launches.Schedule(ctx, input)
	switch {
	case errors.Is(err, domain.ErrPlanetNotFound):
		return nil, status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, launches.ErrScheduleBusy):
		return nil, status.Error(codes.Unavailable, err.Error())
	case err != nil:
		return nil, status.Error(codes.Internal, err.Error())
	}

	st, err := toPBLaunch(launch)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return st, nil
}

func (s *Server) AbortLaunch(ctx context.Context, req *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error) {
	found, err := s.launches.Exists(ctx, req.GetValue())
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !found {
		return nil, status.Error(codes.NotFound, domain.ErrLaunchNotFound.Error())
	}

	aborted, err := s.launches.Abort(ctx, req.GetValue())
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return wrapperspb.Bool(aborted), nil
}

func (s *Server) LaunchExists(ctx context.Context, req *wrapperspb.Int64Value) (*wrapperspb.BoolValue, error) {
	found, err := s.launches.Exists(ctx, req.GetValue())
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return wrapperspb.Bool(found), nil
}

func toPBLaunch(l *domain.Launch) (*structpb.Struct, error) {
	customers := make([]interface{}, 0, len(l.Customers))
	for _, c := range l.Customers {
		customers = append(customers, c)
	}
	fields := map[string]interface{}{
		"flightNumber": l.FlightNumber,
		"mission":      l.Mission,
		"rocket":       l.Rocket,
		"launchDate":   l.LaunchDate.Format(time.RFC3339),
		"customers":    customers,
		"upcoming":     l.Upcoming,
		"success":      l.Success,
	}
	if l.Target != "" {
		fields["target"] = l.Target
	}
	return structpb.NewStruct(fields)
}

var _ LaunchesServiceServer = (*Server)(nil)
