package helper

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
	"gopkg.in/go-playground/validator.v9"
)

// Flash categories, matching the styles the site renders alerts with.
const (
	categorySuccess = "success"
	categoryDanger  = "danger"
	categoryWarning = "warning"
)

// HTTPHelper shapes every response as a flash-style envelope: a category, a
// user-facing message and the payload.
type HTTPHelper struct {
	Validate   *validator.Validate
	Translator ut.Translator
}

type response struct {
	Category string      `json:"category"`
	Message  string      `json:"message"`
	Data     interface{} `json:"data"`
}

func (u *HTTPHelper) send(c *gin.Context, status int, category, message string, data interface{}) {
	if data == nil {
		data = u.EmptyJsonMap()
	}
	c.JSON(status, response{Category: category, Message: message, Data: data})
}

func (u *HTTPHelper) SendSuccess(c *gin.Context, message string, data interface{}) {
	u.send(c, http.StatusOK, categorySuccess, message, data)
}

func (u *HTTPHelper) SendCreated(c *gin.Context, message string, data interface{}) {
	u.send(c, http.StatusCreated, categorySuccess, message, data)
}

// SendExpired reports an expired link. The page still renders, so the status
// stays 200 with a warning flash.
func (u *HTTPHelper) SendExpired(c *gin.Context, message string) {
	u.send(c, http.StatusOK, categoryWarning, message, nil)
}

func (u *HTTPHelper) SendBadRequest(c *gin.Context, message string) {
	u.send(c, http.StatusBadRequest, categoryDanger, message, nil)
}

func (u *HTTPHelper) SendUnauthorizedError(c *gin.Context, message string) {
	u.send(c, http.StatusUnauthorized, categoryDanger, message, nil)
}

func (u *HTTPHelper) SendNotFoundError(c *gin.Context, message string) {
	u.send(c, http.StatusNotFound, categoryDanger, message, nil)
}

func (u *HTTPHelper) SendInternalServerError(c *gin.Context, message string) {
	u.send(c, http.StatusInternalServerError, categoryDanger, message, nil)
}

// SendValidationError translates field errors into a per-field message map.
func (u *HTTPHelper) SendValidationError(c *gin.Context, validationErrors validator.ValidationErrors) {
	errorResponse := map[string][]string{}
	errorTranslation := validationErrors.Translate(u.Translator)
	for _, err := range validationErrors {
		errKey := strings.ToLower(err.Field())
		errorResponse[errKey] = append(errorResponse[errKey], errorTranslation[err.Namespace()])
	}

	c.JSON(http.StatusBadRequest, response{
		Category: categoryDanger,
		Message:  "Validation failed",
		Data:     errorResponse,
	})
}

func (u *HTTPHelper) EmptyJsonMap() map[string]interface{} {
	return make(map[string]interface{})
}
