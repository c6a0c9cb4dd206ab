package api

import (
	"context"

	"google.golang.org/grpc"
)

// TripPlannerClient is the client side of the TripPlanner service.
type TripPlannerClient interface {
	RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserResponse, error)
	GetSalt(ctx context.Context, in *GetSaltRequest, opts ...grpc.CallOption) (*GetSaltResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error)

	ListTrips(ctx context.Context, in *ListTripsRequest, opts ...grpc.CallOption) (*ListTripsResponse, error)
	GetTrip(ctx context.Context, in *GetTripRequest, opts ...grpc.CallOption) (*GetTripResponse, error)
	CreateTrip(ctx context.Context, in *CreateTripRequest, opts ...grpc.CallOption) (*CreateTripResponse, error)
	UpdateTrip(ctx context.Context, in *UpdateTripRequest, opts ...grpc.CallOption) (*UpdateTripResponse, error)
	DeleteTrip(ctx context.Context, in *DeleteTripRequest, opts ...grpc.CallOption) (*DeleteTripResponse, error)

	AddItem(ctx context.Context, in *AddItemRequest, opts ...grpc.CallOption) (*AddItemResponse, error)
	UpdateItem(ctx context.Context, in *UpdateItemRequest, opts ...grpc.CallOption) (*UpdateItemResponse, error)
	DeleteItem(ctx context.Context, in *DeleteItemRequest, opts ...grpc.CallOption) (*DeleteItemResponse, error)

	AddChecklistItem(ctx context.Context, in *AddChecklistItemRequest, opts ...grpc.CallOption) (*AddChecklistItemResponse, error)
	SetChecklistItemChecked(ctx context.Context, in *SetChecklistItemCheckedRequest, opts ...grpc.CallOption) (*SetChecklistItemCheckedResponse, error)
	DeleteChecklistItem(ctx context.Context, in *DeleteChecklistItemRequest, opts ...grpc.CallOption) (*DeleteChecklistItemResponse, error)

	ExportItinerary(ctx context.Context, in *ExportItineraryRequest, opts ...grpc.CallOption) (*ExportItineraryResponse, error)
}

type tripPlannerClient struct {
	cc grpc.ClientConnInterface
}

// NewTripPlannerClient returns a stub that sends every call with the JSON
// codec.
func NewTripPlannerClient(cc grpc.ClientConnInterface) TripPlannerClient {
	return &tripPlannerClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *tripPlannerClient) RegisterUser(ctx context.Context, in *RegisterUserRequest, opts ...grpc.CallOption) (*RegisterUserResponse, error) {
	return invoke[RegisterUserResponse](ctx, c.cc, MethodRegisterUser, in, opts)
}

func (c *tripPlannerClient) GetSalt(ctx context.Context, in *GetSaltRequest, opts ...grpc.CallOption) (*GetSaltResponse, error) {
	return invoke[GetSaltResponse](ctx, c.cc, MethodGetSalt, in, opts)
}

func (c *tripPlannerClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, MethodLogin, in, opts)
}

func (c *tripPlannerClient) RefreshToken(ctx context.Context, in *RefreshTokenRequest, opts ...grpc.CallOption) (*RefreshTokenResponse, error) {
	return invoke[RefreshTokenResponse](ctx, c.cc, MethodRefreshToken, in, opts)
}

func (c *tripPlannerClient) ListTrips(ctx context.Context, in *ListTripsRequest, opts ...grpc.CallOption) (*ListTripsResponse, error) {
	return invoke[ListTripsResponse](ctx, c.cc, MethodListTrips, in, opts)
}

func (c *tripPlannerClient) GetTrip(ctx context.Context, in *GetTripRequest, opts ...grpc.CallOption) (*GetTripResponse, error) {
	return invoke[GetTripResponse](ctx, c.cc, MethodGetTrip, in, opts)
}

func (c *tripPlannerClient) CreateTrip(ctx context.Context, in *CreateTripRequest, opts ...grpc.CallOption) (*CreateTripResponse, error) {
	return invoke[CreateTripResponse](ctx, c.cc, MethodCreateTrip, in, opts)
}

func (c *tripPlannerClient) UpdateTrip(ctx context.Context, in *UpdateTripRequest, opts ...grpc.CallOption) (*UpdateTripResponse, error) {
	return invoke[UpdateTripResponse](ctx, c.cc, MethodUpdateTrip, in, opts)
}

func (c *tripPlannerClient) DeleteTrip(ctx context.Context, in *DeleteTripRequest, opts ...grpc.CallOption) (*DeleteTripResponse, error) {
	return invoke[DeleteTripResponse](ctx, c.cc, MethodDeleteTrip, in, opts)
}

func (c *tripPlannerClient) AddItem(ctx context.Context, in *AddItemRequest, opts ...grpc.CallOption) (*AddItemResponse, error) {
	return invoke[AddItemResponse](ctx, c.cc, MethodAddItem, in, opts)
}

func (c *tripPlannerClient) UpdateItem(ctx context.Context, in *UpdateItemRequest, opts ...grpc.CallOption) (*UpdateItemResponse, error) {
	return invoke[UpdateItemResponse](ctx, c.cc, MethodUpdateItem, in, opts)
}

func (c *tripPlannerClient) DeleteItem(ctx context.Context, in *DeleteItemRequest, opts ...grpc.CallOption) (*DeleteItemResponse, error) {
	return invoke[DeleteItemResponse](ctx, c.cc, MethodDeleteItem, in, opts)
}

func (c *tripPlannerClient) AddChecklistItem(ctx context.Context, in *AddChecklistItemRequest, opts ...grpc.CallOption) (*AddChecklistItemResponse, error) {
	return invoke[AddChecklistItemResponse](ctx, c.cc, MethodAddChecklistItem, in, opts)
}

func (c *tripPlannerClient) SetChecklistItemChecked(ctx context.Context, in *SetChecklistItemCheckedRequest, opts ...grpc.CallOption) (*SetChecklistItemCheckedResponse, error) {
	return invoke[SetChecklistItemCheckedResponse](ctx, c.cc, MethodSetChecklistItemChecked, in, opts)
}

func (c *tripPlannerClient) DeleteChecklistItem(ctx context.Context, in *DeleteChecklistItemRequest, opts ...grpc.CallOption) (*DeleteChecklistItemResponse, error) {
	return invoke[DeleteChecklistItemResponse](ctx, c.cc, MethodDeleteChecklistItem, in, opts)
}

func (c *tripPlannerClient) ExportItinerary(ctx context.Context, in *ExportItineraryRequest, opts ...grpc.CallOption) (*ExportItineraryResponse, error) {
	return invoke[ExportItineraryResponse](ctx, c.cc, MethodExportItinerary, in, opts)
}
