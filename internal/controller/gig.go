package controller

import (
	"net/http"

	"gig-marketplace-api/internal/entity"
	"gig-marketplace-api/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

type gigRoutesHandler struct {
	gigService service.Gig
	validate   *validator.Validate
}

func newGigRoutesHandler(outer *echo.Group, services *service.Services, v *validator.Validate, auth *authMiddleware) *gigRoutesHandler {
	h := &gigRoutesHandler{gigService: services.Gig, validate: v}
	outer.POST("/gigs", h.PostGig, auth.Authenticate)
	outer.GET("/gigs", h.GetGigs)
	outer.GET("/gigs/my/gigs", h.GetUserGigs, auth.Authenticate)
	outer.GET("/gigs/:gigId", h.GetGig)
	outer.PATCH("/gigs/:gigId", h.EditGig, auth.Authenticate)
	outer.DELETE("/gigs/:gigId", h.DeleteGig, auth.Authenticate)

	return h
}

type postGigInput struct {
	Title       string  `json:"title" validate:"required,max=100"`
	Description string  `json:"description" validate:"required,max=2000"`
	Budget      float64 `json:"budget" validate:"required,gt=0"`
}

// /gigs
func (h *gigRoutesHandler) PostGig(c echo.Context) error {
	var input postGigInput
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

	model := &entity.CreateGigInput{
		Title:       input.Title,
		Description: input.Description,
		Budget:      input.Budget,
		OwnerId:     requesterId(c),
	}

	gig, err := h.gigService.CreateGig(c.Request().Context(), model)
	if err == nil {
		if e := c.JSON(http.StatusCreated, gig); e != nil {
			return e
		}

		return nil
	}

	if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
		return e
	}

	return err
}

type getGigsInput struct {
	Search string `query:"search" validate:"max=100"`
	Limit  int32  `query:"limit" validate:"gte=0,lte=50"`
	Offset int32  `query:"offset" validate:"gte=0"`
}

func newGetGigsInput() getGigsInput {
	return getGigsInput{Limit: defaultLimit, Offset: defaultOffset}
}

// /gigs
func (h *gigRoutesHandler) GetGigs(c echo.Context) error {
	var input = newGetGigsInput()
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
	gigs, err := h.gigService.GetOpenGigs(c.Request().Context(), input.Search, pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, gigs); e != nil {
			return e
		}

		return nil
	}

	if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
		return e
	}

	return err
}

type getUserGigsInput struct {
	Limit  int32 `query:"limit" validate:"gte=0,lte=50"`
	Offset int32 `query:"offset" validate:"gte=0"`
}

// /gigs/my/gigs
func (h *gigRoutesHandler) GetUserGigs(c echo.Context) error {
	var input = getUserGigsInput{Limit: defaultLimit, Offset: defaultOffset}
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
	gigs, err := h.gigService.GetUserGigs(c.Request().Context(), requesterId(c), pg)
	if err == nil {
		if e := c.JSON(http.StatusOK, gigs); e != nil {
			return e
		}

		return nil
	}

	if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
		return e
	}

	return err
}

// /gigs/:gigId
func (h *gigRoutesHandler) GetGig(c echo.Context) error {
	gig, err := h.gigService.GetGigById(c.Request().Context(), c.Param("gigId"))
	if err == nil {
		if e := c.JSON(http.StatusOK, gig); e != nil {
			return e
		}

		return nil
	}

	switch err {
	case service.ErrGigNotFound:
		if e := c.JSON(http.StatusNotFound, errorResponse{"There is no gig with given id"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

type editGigInput struct {
	Title       string  `json:"title" validate:"omitempty,max=100"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
	Budget      float64 `json:"budget" validate:"omitempty,gt=0"`
}

// /gigs/:gigId
func (h *gigRoutesHandler) EditGig(c echo.Context) error {
	var input editGigInput
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

	gig, err := h.gigService.EditGigById(c.Request().Context(), c.Param("gigId"), requesterId(c),
		input.Title, input.Description, input.Budget)
	if err == nil {
		if e := c.JSON(http.StatusOK, gig); e != nil {
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
		if e := c.JSON(http.StatusForbidden, errorResponse{"Not authorized to update this gig"}); e != nil {
			return e
		}
	case service.ErrGigAlreadyAssigned:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Cannot update an assigned gig"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}

// /gigs/:gigId
func (h *gigRoutesHandler) DeleteGig(c echo.Context) error {
	err := h.gigService.DeleteGigById(c.Request().Context(), c.Param("gigId"), requesterId(c))
	if err == nil {
		if e := c.JSON(http.StatusOK, map[string]string{"message": "Gig deleted successfully"}); e != nil {
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
		if e := c.JSON(http.StatusForbidden, errorResponse{"Not authorized to delete this gig"}); e != nil {
			return e
		}
	case service.ErrGigAlreadyAssigned:
		if e := c.JSON(http.StatusBadRequest, errorResponse{"Cannot delete an assigned gig"}); e != nil {
			return e
		}
	default:
		if e := c.JSON(http.StatusInternalServerError, errorResponse{"Error"}); e != nil {
			return e
		}
	}

	return err
}
