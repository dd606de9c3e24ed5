package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/sunnycool038/Decentralized-Delivery-Network/internal/core/application/usecases/queries"
)

// --- Request types ---

type createPackageRequest struct {
	ID               uint64 `json:"id" validate:"required"`
	Recipient        string `json:"recipient" validate:"required"`
	Price            uint64 `json:"price"`
	PickupLocation   string `json:"pickup_location" validate:"required"`
	DeliveryLocation string `json:"delivery_location" validate:"required"`
}

type registerCourierRequest struct {
	Name string `json:"name" validate:"required"`
}

type updateLocationRequest struct {
	Location string `json:"location" validate:"required"`
}

type fileDisputeRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type rateCourierRequest struct {
	Score uint64 `json:"score" validate:"required,min=1,max=5"`
}

// --- Response types ---

type packageResponse struct {
	ID               uint64  `json:"id"`
	Sender           string  `json:"sender"`
	Recipient        string  `json:"recipient"`
	Price            uint64  `json:"price"`
	PickupLocation   string  `json:"pickup_location"`
	DeliveryLocation string  `json:"delivery_location"`
	CurrentLocation  string  `json:"current_location"`
	Courier          *string `json:"courier,omitempty"`
	Status           string  `json:"status"`
	Escrow           string  `json:"escrow"`
}

type openPackageResponse struct {
	ID               uint64 `json:"id"`
	Sender           string `json:"sender"`
	Price            uint64 `json:"price"`
	PickupLocation   string `json:"pickup_location"`
	DeliveryLocation string `json:"delivery_location"`
}

type courierPackageResponse struct {
	ID               uint64 `json:"id"`
	Sender           string `json:"sender"`
	Recipient        string `json:"recipient"`
	Price            uint64 `json:"price"`
	CurrentLocation  string `json:"current_location"`
	DeliveryLocation string `json:"delivery_location"`
	Status           string `json:"status"`
}

type courierResponse struct {
	Principal     string  `json:"principal"`
	Name          string  `json:"name"`
	RatingTotal   uint64  `json:"rating_total"`
	RatingCount   uint64  `json:"rating_count"`
	AverageRating float64 `json:"average_rating"`
}

type disputeResponse struct {
	ID        uuid.UUID `json:"id"`
	PackageID uint64    `json:"package_id"`
	Filer     string    `json:"filer"`
	Reason    string    `json:"reason"`
	FiledAt   time.Time `json:"filed_at"`
}

func toPackageResponse(model queries.GetPackageQueryResponse) packageResponse {
	response := packageResponse{
		ID:               model.ID,
		Sender:           model.Sender.String(),
		Recipient:        model.Recipient.String(),
		Price:            model.Price,
		PickupLocation:   model.PickupLocation.String(),
		DeliveryLocation: model.DeliveryLocation.String(),
		CurrentLocation:  model.CurrentLocation.String(),
		Status:           model.Status,
		Escrow:           model.Escrow,
	}
	if model.Courier != nil {
		courier := model.Courier.String()
		response.Courier = &courier
	}
	return response
}

func toOpenPackageResponse(model queries.GetOpenPackagesQueryResponse) openPackageResponse {
	return openPackageResponse{
		ID:               model.ID,
		Sender:           model.Sender.String(),
		Price:            model.Price,
		PickupLocation:   model.PickupLocation.String(),
		DeliveryLocation: model.DeliveryLocation.String(),
	}
}

func toCourierPackageResponse(model queries.GetCourierPackagesQueryResponse) courierPackageResponse {
	return courierPackageResponse{
		ID:               model.ID,
		Sender:           model.Sender.String(),
		Recipient:        model.Recipient.String(),
		Price:            model.Price,
		CurrentLocation:  model.CurrentLocation.String(),
		DeliveryLocation: model.DeliveryLocation.String(),
		Status:           model.Status,
	}
}

func toCourierResponse(model queries.GetCourierQueryResponse) courierResponse {
	return courierResponse{
		Principal:     model.Principal.String(),
		Name:          model.Name,
		RatingTotal:   model.RatingTotal,
		RatingCount:   model.RatingCount,
		AverageRating: model.AverageRating,
	}
}

func toDisputeResponse(model queries.GetDisputeQueryResponse) disputeResponse {
	return disputeResponse{
		ID:        model.ID,
		PackageID: model.PackageID,
		Filer:     model.Filer.String(),
		Reason:    model.Reason,
		FiledAt:   model.FiledAt,
	}
}
