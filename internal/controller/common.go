package controller

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
)

const (
	defaultLimit  = 20
	defaultOffset = 0

	userIdContextKey = "userId"
)

type errorResponse struct {
	Reason string `json:"reason"`
}

// requesterId returns the authenticated user id placed into the context
// by the auth middleware. Empty only on routes that skip authentication.
func requesterId(c echo.Context) string {
	id, _ := c.Get(userIdContextKey).(string)

	return id
}

func getAllErrorMessages(err error) string {
	var builder strings.Builder
	for _, fe := range err.(validator.ValidationErrors) {
		message := fmt.Sprintf("'%s': %s\n", fe.Field(), getMessage(fe))
		builder.WriteString(message)
	}

	return builder.String()
}

func getMessage(fe validator.FieldError) string {
	switch fe.Type().Kind() {
	case reflect.String:
		return getMessageForString(fe)
	case reflect.Int, reflect.Int32, reflect.Int64:
		return getMessageForNumber(fe)
	case reflect.Float32, reflect.Float64:
		return getMessageForNumber(fe)
	}

	return "incorrect value passed"
}

func getMessageForNumber(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "should be less or equal than " + fe.Param()
	case "gte", "min":
		return "should be greater or equal than " + fe.Param()
	case "gt":
		return "should be greater than " + fe.Param()
	}

	return "incorrect value passed"
}

func getMessageForString(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "length should be less or equal than " + fe.Param()
	case "gte", "min":
		return "length should be greater or equal than " + fe.Param()
	case "email":
		return "should be a valid email address"
	case "oneof":
		return "should have value in: " + fe.Param()
	}

	return "incorrect value passed"
}
