package api

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "triply.v1.TripPlanner"

// Full method names, as seen by interceptors in grpc.UnaryServerInfo.
const (
	MethodRegisterUser            = "/" + ServiceName + "/RegisterUser"
	MethodGetSalt                 = "/" + ServiceName + "/GetSalt"
	MethodLogin                   = "/" + ServiceName + "/Login"
	MethodRefreshToken            = "/" + ServiceName + "/RefreshToken"
	MethodListTrips               = "/" + ServiceName + "/ListTrips"
	MethodGetTrip                 = "/" + ServiceName + "/GetTrip"
	MethodCreateTrip              = "/" + ServiceName + "/CreateTrip"
	MethodUpdateTrip              = "/" + ServiceName + "/UpdateTrip"
	MethodDeleteTrip              = "/" + ServiceName + "/DeleteTrip"
	MethodAddItem                 = "/" + ServiceName + "/AddItem"
	MethodUpdateItem              = "/" + ServiceName + "/UpdateItem"
	MethodDeleteItem              = "/" + ServiceName + "/DeleteItem"
	MethodAddChecklistItem        = "/" + ServiceName + "/AddChecklistItem"
	MethodSetChecklistItemChecked = "/" + ServiceName + "/SetChecklistItemChecked"
	MethodDeleteChecklistItem     = "/" + ServiceName + "/DeleteChecklistItem"
	MethodExportItinerary         = "/" + ServiceName + "/ExportItinerary"
)

// TripPlannerServer is implemented by the server's gRPC handlers.
type TripPlannerServer interface {
	RegisterUser(context.Context, *RegisterUserRequest) (*RegisterUserResponse, error)
	GetSalt(context.Context, *GetSaltRequest) (*GetSaltResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error)

	ListTrips(context.Context, *ListTripsRequest) (*ListTripsResponse, error)
	GetTrip(context.Context, *GetTripRequest) (*GetTripResponse, error)
	CreateTrip(context.Context, *CreateTripRequest) (*CreateTripResponse, error)
	UpdateTrip(context.Context, *UpdateTripRequest) (*UpdateTripResponse, error)
	DeleteTrip(context.Context, *DeleteTripRequest) (*DeleteTripResponse, error)

	AddItem(context.Context, *AddItemRequest) (*AddItemResponse, error)
	UpdateItem(context.Context, *UpdateItemRequest) (*UpdateItemResponse, error)
	DeleteItem(context.Context, *DeleteItemRequest) (*DeleteItemResponse, error)

	AddChecklistItem(context.Context, *AddChecklistItemRequest) (*AddChecklistItemResponse, error)
	SetChecklistItemChecked(context.Context, *SetChecklistItemCheckedRequest) (*SetChecklistItemCheckedResponse, error)
	DeleteChecklistItem(context.Context, *DeleteChecklistItemRequest) (*DeleteChecklistItemResponse, error)

	ExportItinerary(context.Context, *ExportItineraryRequest) (*ExportItineraryResponse, error)
}

// RegisterTripPlannerServer attaches srv to s.
func RegisterTripPlannerServer(s grpc.ServiceRegistrar, srv TripPlannerServer) {
	s.RegisterService(&TripPlannerServiceDesc, srv)
}

func unary[Req, Resp any](name string, call func(TripPlannerServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, status.Errorf(codes.InvalidArgument, "decode %s: %v", name, err)
			}
			if interceptor == nil {
				return call(srv.(TripPlannerServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + ServiceName + "/" + name}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(TripPlannerServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// TripPlannerServiceDesc describes the TripPlanner service to grpc-go.
var TripPlannerServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TripPlannerServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("RegisterUser", TripPlannerServer.RegisterUser),
		unary("GetSalt", TripPlannerServer.GetSalt),
		unary("Login", TripPlannerServer.Login),
		unary("RefreshToken", TripPlannerServer.RefreshToken),
		unary("ListTrips", TripPlannerServer.ListTrips),
		unary("GetTrip", TripPlannerServer.GetTrip),
		unary("CreateTrip", TripPlannerServer.CreateTrip),
		unary("UpdateTrip", TripPlannerServer.UpdateTrip),
		unary("DeleteTrip", TripPlannerServer.DeleteTrip),
		unary("AddItem", TripPlannerServer.AddItem),
		unary("UpdateItem", TripPlannerServer.UpdateItem),
		unary("DeleteItem", TripPlannerServer.DeleteItem),
		unary("AddChecklistItem", TripPlannerServer.AddChecklistItem),
		unary("SetChecklistItemChecked", TripPlannerServer.SetChecklistItemChecked),
		unary("DeleteChecklistItem", TripPlannerServer.DeleteChecklistItem),
		unary("ExportItinerary", TripPlannerServer.ExportItinerary),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "triply/v1/trip_planner",
}

// UnimplementedTripPlannerServer answers every method with Unimplemented.
// Embed it to stay forward compatible when methods are added.
type UnimplementedTripPlannerServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedTripPlannerServer) RegisterUser(context.Context, *RegisterUserRequest) (*RegisterUserResponse, error) {
	return nil, unimplemented("RegisterUser")
}
func (UnimplementedTripPlannerServer) GetSalt(context.Context, *GetSaltRequest) (*GetSaltResponse, error) {
	return nil, unimplemented("GetSalt")
}
func (UnimplementedTripPlannerServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, unimplemented("Login")
}
func (UnimplementedTripPlannerServer) RefreshToken(context.Context, *RefreshTokenRequest) (*RefreshTokenResponse, error) {
	return nil, unimplemented("RefreshToken")
}
func (UnimplementedTripPlannerServer) ListTrips(context.Context, *ListTripsRequest) (*ListTripsResponse, error) {
	return nil, unimplemented("ListTrips")
}
func (UnimplementedTripPlannerServer) GetTrip(context.Context, *GetTripRequest) (*GetTripResponse, error) {
	return nil, unimplemented("GetTrip")
}
func (UnimplementedTripPlannerServer) CreateTrip(context.Context, *CreateTripRequest) (*CreateTripResponse, error) {
	return nil, unimplemented("CreateTrip")
}
func (UnimplementedTripPlannerServer) UpdateTrip(context.Context, *UpdateTripRequest) (*UpdateTripResponse, error) {
	return nil, unimplemented("UpdateTrip")
}
func (UnimplementedTripPlannerServer) DeleteTrip(context.Context, *DeleteTripRequest) (*DeleteTripResponse, error) {
	return nil, unimplemented("DeleteTrip")
}
func (UnimplementedTripPlannerServer) AddItem(context.Context, *AddItemRequest) (*AddItemResponse, error) {
	return nil, unimplemented("AddItem")
}
func (UnimplementedTripPlannerServer) UpdateItem(context.Context, *UpdateItemRequest) (*UpdateItemResponse, error) {
	return nil, unimplemented("UpdateItem")
}
func (UnimplementedTripPlannerServer) DeleteItem(context.Context, *DeleteItemRequest) (*DeleteItemResponse, error) {
	return nil, unimplemented("DeleteItem")
}
func (UnimplementedTripPlannerServer) AddChecklistItem(context.Context, *AddChecklistItemRequest) (*AddChecklistItemResponse, error) {
	return nil, unimplemented("AddChecklistItem")
}
func (UnimplementedTripPlannerServer) SetChecklistItemChecked(context.Context, *SetChecklistItemCheckedRequest) (*SetChecklistItemCheckedResponse, error) {
	return nil, unimplemented("SetChecklistItemChecked")
}
func (UnimplementedTripPlannerServer) DeleteChecklistItem(context.Context, *DeleteChecklistItemRequest) (*DeleteChecklistItemResponse, error) {
	return nil, unimplemented("DeleteChecklistItem")
}
func (UnimplementedTripPlannerServer) ExportItinerary(context.Context, *ExportItineraryRequest) (*ExportItineraryResponse, error) {
	return nil, unimplemented("ExportItinerary")
}
