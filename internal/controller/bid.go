package controller

import (
	"net/http"

	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type bidRoutesHandler struct {
	bidService  service.Bid
	hireService service.Hire
	validate    *validator.Validate
}

func newBidRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, auth *authMiddleware) *bidRoutesHandler {
	h := &bidRoutesHandler{bidService: services.Bid, hireService: services.Hire, validate: v}
	outer.POST("/bids", h.PostBid, auth.Authenticate)
	outer.GET("/bids/my/bids", h.GetUserBids, auth.Authenticate)
	outer.GET("/bids/gig/:gigId", h.GetGigBids, auth.Authenticate)
	outer.PATCH("/bids/:bidId/hire", h.HireBid, auth.Authenticate)

	return h
}

type postBidInput struct {
	GigId   string  `json:"gigId" validate:"required,max=100"`
	Message string  `json:"message" validate:"required,max=500"`
	Price   float64 `json:"price" validate:"required,gt=0"`
}

// /bids
func (h *bidRoutesHandler) PostBid(c echo.Context) error {
	var input postBidInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	model := &entity.CreateBidInput{
		GigId:        input.GigId,
		FreelancerId: requesterId(c),
		Message:      input.Message,
		Price:        input.Price,
	}

	bid, err := h.bidService.SubmitBid(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusCreated, bid); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrGigNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no gig with given id"}); e != nil {
			return e
		}
	case service.ErrGigAlreadyAssigned:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"This gig has already been assigned"}); e != nil {
			return e
		}
	case service.ErrOwnGigBid:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"You cannot bid on your own gig"}); e != nil {
			return e
		}
	case service.ErrDuplicateBid:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"You have already bid on this gig"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type getUserBidsInput struct {
	Limit  int32 `query:"limit" validate:"gte=0,lte=50"`
	Offset int32 `query:"offset" validate:"gte=0"`
}

// /bids/my/bids
func (h *bidRoutesHandler) GetUserBids(c echo.Context) error {
	var input = getUserBidsInput{Limit: defaultLimit, Offset: defaultOffset}
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	bids, err := h.bidService.GetUserBids(c.Request().Context(), requesterId(c), pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, bids); e != nil {
			return e
		}

		return nil
	}

	if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
		return e
	}

	return err
}

type getGigBidsInput struct {
	Limit  int32 `query:"limit" validate:"gte=0,lte=50"`
	Offset int32 `query:"offset" validate:"gte=0"`
}

// /bids/gig/:gigId
func (h *bidRoutesHandler) GetGigBids(c echo.Context) error {
	var input = getGigBidsInput{Limit: defaultLimit, Offset: defaultOffset}
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	pg := entity.NewPaginationInput(int(input.Limit), int(input.Offset))
	bids, err := h.bidService.GetGigBids(c.Request().Context(), c.Param("gigId"), requesterId(c), pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, bids); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrGigNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no gig with given id"}); e != nil {
			return e
		}
	case service.ErrUserHasNoAccessToGig:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Not authorized to view these bids"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type hireBidInput struct {
	GigId string `json:"gigId" validate:"required,max=100"`
}

// /bids/:bidId/hire
func (h *bidRoutesHandler) HireBid(c echo.Context) error {
	var input hireBidInput
	if err := c.Bind(&input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Input data is not formed correctly"}); e != nil {
			return e
		}

		return err
	}

	if err := h.validate.Struct(input); err != nil {
		if e := c.JSON(http.StatusBadRequest, errorResponse{getAllErrorMessages(err)}); e != nil {
			return e
		}

		return err
	}

	result, err := h.hireService.HireBid(c.Request().Context(), input.GigId, c.Param("bidId"), requesterId(c))
	if err == nil {
		if e := c.JSON(http.StatusOK, result); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrGigNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no gig with given id"}); e != nil {
			return e
		}
	case service.ErrBidNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no bid with given id"}); e != nil {
			return e
		}
	case service.ErrUserHasNoAccessToGig:
		if e := c.JSON(http.StatusForbidden, errorResponse{"Not authorized to hire for this gig"}); e != nil {
			return e
		}
	case service.ErrGigAlreadyAssigned:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"This gig has already been assigned"}); e != nil {
			return e
		}
	case service.ErrBidUnavailable:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"This bid is no longer available"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
